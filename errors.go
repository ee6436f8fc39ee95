package mcstate2

import "fmt"

// StreamIndexError reports access to a stream index outside the
// collection's bounds.
type StreamIndexError struct {
	Index int
	Size  int
}

func (e *StreamIndexError) Error() string {
	return fmt.Sprintf("stream index %d out of range for %d streams", e.Index, e.Size)
}

// StreamCountError reports a request for more streams than a
// collection holds.
type StreamCountError struct {
	Requested int
	Have      int
}

func (e *StreamCountError) Error() string {
	return fmt.Sprintf("requested a rng with %d streams but only have %d", e.Requested, e.Have)
}

// AlgorithmMismatchError reports an attempt to reattach state under
// the wrong generator algorithm.
type AlgorithmMismatchError struct {
	Given    string
	Expected string
}

func (e *AlgorithmMismatchError) Error() string {
	return fmt.Sprintf("incorrect rng type: given %s, expected %s", e.Given, e.Expected)
}
