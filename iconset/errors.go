package iconset

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the stage a run failed in.
type Kind int

const (
	// KindLoad means the source image could not be read or decoded.
	KindLoad Kind = iota
	// KindResize means a resample step failed. Unreachable with a validated Config.
	KindResize
	// KindWrite means an icon could not be encoded or written.
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindLoad:
		return "load"
	case KindResize:
		return "resize"
	case KindWrite:
		return "write"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by Generator.Run. Path is the file involved: the source
// for load failures, the icon for resize and write failures.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// Cause returns the underlying error for github.com/pkg/errors.Cause.
func (e *Error) Cause() error { return e.Err }

// IsLoad reports whether err is a load failure.
func IsLoad(err error) bool {
	return isKind(err, KindLoad)
}

// IsWrite reports whether err is a write failure.
func IsWrite(err error) bool {
	return isKind(err, KindWrite)
}

func isKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
