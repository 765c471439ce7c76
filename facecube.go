package cubecoord

import (
	"fmt"
	"strings"
)

// SolvedFacelets is the facelet string of a solved cube.
const SolvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// FaceletCube is a cube described sticker by sticker.
// Facelets are stored in the order of the Facelet constants, which is also
// the order of the 54-character string form.
type FaceletCube struct {
	Facelets [NumFacelets]Color
}

// NewFaceletCube creates a solved facelet cube.
func NewFaceletCube() *FaceletCube {
	fc := &FaceletCube{}
	for i := range fc.Facelets {
		fc.Facelets[i] = Color(i / 9)
	}
	return fc
}

// ParseFaceletCube builds a facelet cube from a 54-character string over
// U, R, F, D, L and B. An empty string yields the solved cube. Any other
// string that is not 54 characters long is an error wrapping
// ErrMalformedInput; it does not fall back to the solved cube.
//
// Only the overall shape is checked here. Unknown characters are skipped,
// so a string of the right length with stray characters is reported as
// short. Use FromString or Validate for the color-count check.
func ParseFaceletCube(s string) (*FaceletCube, error) {
	if s == "" {
		return NewFaceletCube(), nil
	}
	facelets, err := parseFacelets(s)
	if err != nil {
		return nil, err
	}
	return &FaceletCube{Facelets: facelets}, nil
}

// parseFacelets converts s into colors, skipping unrecognized characters.
func parseFacelets(s string) ([NumFacelets]Color, error) {
	var facelets [NumFacelets]Color
	if len(s) != NumFacelets {
		return facelets, fmt.Errorf("%w: length %d, want %d", ErrMalformedInput, len(s), NumFacelets)
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c, ok := colorFromByte(s[i])
		if !ok {
			continue
		}
		facelets[n] = c
		n++
	}
	if n != NumFacelets {
		return facelets, fmt.Errorf("%w: %d recognized colors, want %d", ErrMalformedInput, n, NumFacelets)
	}
	return facelets, nil
}

// FromString replaces the cube contents with the coloring in s.
// Unlike ParseFaceletCube it also requires every color to appear exactly
// 9 times. On error the cube is left unchanged.
func (fc *FaceletCube) FromString(s string) error {
	facelets, err := parseFacelets(s)
	if err != nil {
		return err
	}
	if err := checkColorCounts(&facelets); err != nil {
		return err
	}
	fc.Facelets = facelets
	return nil
}

// Validate checks that every facelet holds one of the six colors and that
// every color appears exactly 9 times.
func (fc *FaceletCube) Validate() error {
	return checkColorCounts(&fc.Facelets)
}

func checkColorCounts(facelets *[NumFacelets]Color) error {
	var count [NumColors]int
	for i, c := range facelets {
		if c < 0 || c >= NumColors {
			return fmt.Errorf("%w: facelet %d has color %d", ErrMalformedInput, i, c)
		}
		count[c]++
	}
	for c, n := range count {
		if n != 9 {
			return fmt.Errorf("%w: %v appears %d times", ErrColorCount, Color(c), n)
		}
	}
	return nil
}

// Color returns the color of a single facelet.
func (fc *FaceletCube) Color(f Facelet) Color {
	return fc.Facelets[f]
}

// String returns the 54-character facelet string.
func (fc *FaceletCube) String() string {
	var sb strings.Builder
	sb.Grow(NumFacelets)
	for _, c := range fc.Facelets {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// IsSolved returns true if every face shows a single color.
func (fc *FaceletCube) IsSolved() bool {
	for i, c := range fc.Facelets {
		if c != fc.Facelets[i/9*9+4] {
			return false
		}
	}
	return true
}
