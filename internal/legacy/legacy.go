// Package legacy adapts opener/do/closer triples into a single error value,
// combining an open error, a do error (or recovered panic), and a close
// error into one chained error so a caller only has to check one thing.
package legacy

import (
	"fmt"
	"io"

	"github.com/dropbox/miniutf/internal/must"
)

// WithCloser opens a resource with opener, passes it to do, and closes it
// regardless of whether do returns an error or panics. The open error, the
// do error (or panic), and the close error are combined into a single
// returned error.
func WithCloser[T io.Closer](opener func() (T, error), do func(v T) error) error {
	var zero T

	f, err := opener()
	if err != nil {
		return fmt.Errorf("WithCloser[%T] open error: %w", zero, err)
	}

	doer := must.CatchFunc(func() error {
		return do(f)
	})
	err, panicErr := doer()
	if err != nil {
		err = fmt.Errorf("WithCloser[%T] error: %w", zero, err)
	} else if panicErr != nil {
		err = fmt.Errorf("WithCloser[%T] error: panic: %w", zero, panicErr)
	}

	errClose := f.Close()
	if errClose != nil {
		err = fmt.Errorf("WithCloser[%T] close error: %v; %w", zero, errClose, err)
	}

	return err
}
