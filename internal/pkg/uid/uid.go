// Package uid generates identifiers for correlating work across logs and traces.
package uid

// StringID generates string identifiers.
type StringID interface {
	Generate() string
}
