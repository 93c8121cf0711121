package images

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// TestSize performs table-driven tests on the Size helpers.
func TestSize(t *testing.T) {
	testCases := []struct {
		name   string
		size   Size
		str    string
		valid  bool
		square bool
		aspect float64
	}{
		{name: "icon 16", size: Square(16), str: "16x16", valid: true, square: true, aspect: 1},
		{name: "wide", size: Size{Width: 200, Height: 100}, str: "200x100", valid: true, aspect: 2},
		{name: "tall", size: Size{Width: 30, Height: 120}, str: "30x120", valid: true, aspect: 0.25},
		{name: "zero", size: Size{}, str: "0x0", square: true},
		{name: "negative width", size: Size{Width: -16, Height: 16}, str: "-16x16"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.str, tc.size.String())
			assert.Equal(t, tc.valid, tc.size.Valid())
			assert.Equal(t, tc.square, tc.size.IsSquare())
			assert.InDelta(t, tc.aspect, tc.size.AspectRatio(), 1e-9)

			err := tc.size.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrInvalidSize))
			}
		})
	}
}
