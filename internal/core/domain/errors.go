package domain

import "errors"

// Domain errors represent input failures. Every one of them is fatal and is
// detected before the combination search begins.
var (
	// ErrTooFewArguments indicates fewer than three command-line values
	// were supplied.
	ErrTooFewArguments = errors.New("too few arguments")

	// ErrInvalidInput indicates input that could not be converted to numbers.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooFewValues indicates the parsed sequence holds fewer than three
	// numeric values, so no combination can be drawn.
	ErrTooFewValues = errors.New("not enough values")
)
