// Package clock provides a tiny time abstraction.
//
// Production code should depend on the Clocker interface instead of calling
// time.Now() directly, so business logic can be tested against a
// deterministic time source.
package clock
