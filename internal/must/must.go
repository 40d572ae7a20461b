// Package must implements panic-wrapping helpers for turning a (value,
// error) tuple or a bare error into a fatal condition, for the call sites
// in a one-shot build tool where there is no caller left to hand a
// recoverable error back to.
package must

import "fmt"

// Result accepts a (value, err) tuple as input and panics if err != nil,
// otherwise returns value. The error raised by panic is wrapped in
// another error.
//
// For example, must.Result(os.Open("UnicodeData.txt")) panics with an
// error like "error in must.Result[*os.File]: open UnicodeData.txt: no
// such file or directory". On success, returns *os.File.
func Result[T any](t T, err error) T {
	if err != nil {
		panic(fmt.Errorf("error in must.Result[%T]: %w", t, err))
	}
	return t
}

// Check panics if err is not nil. Otherwise, it returns a nil error, so
// that it is convenient to chain.
func Check(err error) error {
	if err != nil {
		panic(fmt.Errorf("must.Check: unexpected error: %w", err))
	}
	return nil
}

// CatchFunc takes a function f() => x that may panic, and instead returns
// a function f() => (x, error).
func CatchFunc[X any](f func() X) func() (x X, err error) {
	return func() (x X, err error) {
		defer func() {
			if r := recover(); r != nil {
				if rErr, ok := r.(error); ok {
					err = fmt.Errorf("must.CatchFunc: caught panic: %w", rErr)
				} else {
					err = fmt.Errorf("must.CatchFunc: caught panic: %v", r)
				}
			}
		}()

		return f(), nil
	}
}
