package main

import "errors"

// Boundary input errors. None of these cross into C: the operation that
// hits one is discarded and the error logged at debug level.
var (
	// ErrNullPointer indicates a required pointer argument was NULL.
	ErrNullPointer = errors.New("null pointer")

	// ErrInvalidUTF8 indicates a string argument was not valid UTF-8.
	ErrInvalidUTF8 = errors.New("string is not valid UTF-8")

	// ErrUnknownHandle indicates a handle that is 0, freed, or of another kind.
	ErrUnknownHandle = errors.New("unknown handle")

	// ErrUnknownValueKind indicates an mc_value kind outside MC_VALUE_*.
	ErrUnknownValueKind = errors.New("unknown value kind")

	// ErrInvalidColorSpace indicates a color tag outside the color space table.
	ErrInvalidColorSpace = errors.New("invalid color space")
)
