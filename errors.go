package vec

import (
	"errors"
	"fmt"
)

// Sentinel errors that can be checked with errors.Is().
var (
	// ErrEmpty is returned by Pop when the vector holds no elements.
	ErrEmpty = errors.New("vector is empty")

	// ErrIndexOutOfRange is returned by checked access when the index does
	// not address a live element.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError reports a checked access outside the live elements, carrying
// the offending index and the vector's length at the time of the call.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
