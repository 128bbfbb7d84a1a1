package hashset

import "errors"

var (
	// ErrInvalidBits is returned by New when bits is outside [MinBits, MaxBits].
	ErrInvalidBits = errors.New("hashset: bits out of range")

	// ErrTableFull is returned by Add when a full lap of the table finds no
	// empty or tombstone slot. The table is left unchanged.
	ErrTableFull = errors.New("hashset: table is full")

	// ErrNoMoreElements is returned by Iterator.Next once the sweep is done.
	ErrNoMoreElements = errors.New("hashset: no more elements")

	// ErrIllegalState is returned by Iterator.Remove when no element is
	// checked out.
	ErrIllegalState = errors.New("hashset: iterator has no current element")
)
