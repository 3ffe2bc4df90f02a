package wing

import (
	"errors"
	"fmt"
	"runtime"
)

const (
	// degToRad converts twist angles read off the angle graph, in degrees.
	degToRad = 0.01745329251994
	// chordTol is the minimum chord length of a usable profile.
	chordTol = 1e-5
	// perimTol is the minimum trailing edge perimeter the skin is built on.
	perimTol = 1e-3
)

// ErrNoSolid is returned when the wing produces no skin triangles,
// usually because an edge curve is unresolved.
var ErrNoSolid = errors.New("wing has no solid geometry")

// ErrMsg returns an error with a message, function name and line number.
func ErrMsg(msg string) error {
	pc, _, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("?: %s", msg)
	}
	fn := runtime.FuncForPC(pc)
	return fmt.Errorf("%s line %d: %s", fn.Name(), line, msg)
}

// ExportError is returned when a file of an export set cannot be written.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string { return "export " + e.Path + ": " + e.Err.Error() }

func (e *ExportError) Unwrap() error { return e.Err }

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
