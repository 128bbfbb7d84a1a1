package cmd

import (
	"errors"
	"strings"
)

type MultiError []error

func (m MultiError) Error() string {
	var b strings.Builder
	b.WriteString("multiple errors:")
	for _, err := range m {
		b.WriteString("\n- " + err.Error())
	}
	return b.String()
}

// Unwrap lets errors.Is and errors.As see every collected error.
func (m MultiError) Unwrap() []error {
	return m
}

// errOrNil returns nil for an empty collection so callers never hand back
// a non-nil error interface holding zero errors.
func (m MultiError) errOrNil() error {
	if len(m) == 0 {
		return nil
	}
	return m
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongArity     = errors.New("wrong number of arguments")
	ErrNoIterator     = errors.New("no iterator, run ITER first")
)
