package stream

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/twister/pkg/errz"
)

// ID names one of the two reference streams.
type ID int

const (
	// A is the scripting-language stream (the "random" module).
	A ID = iota
	// B is the numeric-library stream (legacy "np.random").
	B
)

// IDs lists every stream in registry order.
var IDs = []ID{A, B}

// String returns the short ecosystem name of the stream.
func (id ID) String() string {
	switch id {
	case A:
		return "random"
	case B:
		return "np.random"
	default:
		return fmt.Sprintf("stream(%d)", int(id))
	}
}

// Valid reports whether id names a known stream.
func (id ID) Valid() bool {
	return id == A || id == B
}

// ParseID maps a user-facing stream name to an ID. Matching is case
// insensitive.
func ParseID(name string) (ID, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a", "py", "python", "random":
		return A, nil
	case "b", "np", "numpy", "np.random", "numpy.random":
		return B, nil
	default:
		return 0, errz.Newf(errz.ErrName, "stream", "unknown stream %q", name)
	}
}
