package dump

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRoots is returned when no root directory was given.
	ErrNoRoots = errors.New("no root directories given")
	// ErrNoSuffixes is returned when no file suffix was given.
	ErrNoSuffixes = errors.New("no file suffixes given")
	// ErrNoOutput is returned when no output file was given.
	ErrNoOutput = errors.New("no output file given")
)

// ReadError reports a matched file whose content could not be decoded as text.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// DecodeError describes the first invalid UTF-8 sequence found in a file.
type DecodeError struct {
	Offset int // Byte offset of the invalid sequence.
	Byte   byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 byte 0x%02x at offset %d", e.Byte, e.Offset)
}
