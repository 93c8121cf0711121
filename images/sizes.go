package images

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidSize is returned when a target size has a non-positive dimension.
var ErrInvalidSize = errors.New("invalid size")

// Size describes the exact pixel dimensions of a raster.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Square returns a Size with equal sides.
func Square(side int) Size {
	return Size{Width: side, Height: side}
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// IsSquare reports whether the width equals the height.
func (s Size) IsSquare() bool {
	return s.Width == s.Height
}

// AspectRatio returns width / height, or 0 for an invalid size.
func (s Size) AspectRatio() float64 {
	if !s.Valid() {
		return 0.0
	}
	return float64(s.Width) / float64(s.Height)
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Validate returns ErrInvalidSize if either dimension is not positive.
func (s Size) Validate() error {
	if !s.Valid() {
		return errors.Wrapf(ErrInvalidSize, "width=%d, height=%d", s.Width, s.Height)
	}
	return nil
}
