package logo

import "fmt"

// Kind tells which stage of Process failed.
type Kind int

const (
	// Decode covers a missing, unreadable or undecodable input.
	Decode Kind = iota + 1
	// Encode covers an unwritable output or a failing encoder.
	Encode
)

func (k Kind) String() string {
	switch k {
	case Decode:
		return "decode"
	case Encode:
		return "encode"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by Process.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
