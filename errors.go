// Copyright 2016 David Stainton
//
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file in the root of the source
// tree.

package xorcrack

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode matches any *DecodeError with errors.Is
	ErrDecode = errors.New("invalid hex input")
	// ErrLengthMismatch matches any *LengthMismatchError with errors.Is
	ErrLengthMismatch = errors.New("buffer length mismatch")
	// ErrInvalidKeySpace indicates a key space outside [1, 256]
	ErrInvalidKeySpace = errors.New("invalid key space")
	// ErrInvalidWorkers indicates a negative worker count
	ErrInvalidWorkers = errors.New("invalid worker count")
)

// maxQuotedInput bounds how much of a bad input DecodeError quotes.
const maxQuotedInput = 32

// DecodeError is returned when an input is not valid hexadecimal text.
type DecodeError struct {
	Input string
	Err   error
}

func (e *DecodeError) Error() string {
	input := e.Input
	if len(input) > maxQuotedInput {
		return fmt.Sprintf("hex decode of %q... (%d bytes) failed: %v",
			input[:maxQuotedInput], len(input), e.Err)
	}
	return fmt.Sprintf("hex decode of %q failed: %v", input, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports ErrDecode as a match
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// LengthMismatchError is returned when two buffers that must be of
// equal length are not.
type LengthMismatchError struct {
	Left, Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("buffer lengths differ: %d != %d", e.Left, e.Right)
}

// Is reports ErrLengthMismatch as a match
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}
