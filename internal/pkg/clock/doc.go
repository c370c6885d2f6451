// Package clock provides a tiny time abstraction.
//
// Code that stamps or measures work depends on Clocker instead of calling
// time.Now directly, so tests can substitute a fixed clock.
package clock
