// Package validator provides a small validation abstraction for input structs.
//
// Business code depends on the Validator interface; the go-playground/validator
// v10 implementation lives in this package and reports failures as a map of
// snake_case field names to translated messages.
package validator
