package cubecoord

import (
	"errors"
	"testing"
)

// swapFacelets returns s with the stickers at a and b exchanged.
func swapFacelets(s string, a, b Facelet) string {
	buf := []byte(s)
	buf[a], buf[b] = buf[b], buf[a]
	return string(buf)
}

// setFacelets returns s with the given stickers repainted.
func setFacelets(s string, colors map[Facelet]Color) string {
	buf := []byte(s)
	for f, c := range colors {
		buf[f] = c.String()[0]
	}
	return string(buf)
}

func TestSolvedConvertsToIdentity(t *testing.T) {
	cc, err := ParseCubieCube(SolvedFacelets)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < NumCorners; i++ {
		if cc.Cp[i] != Corner(i) || cc.Co[i] != 0 {
			t.Errorf("corner slot %d: got piece %v twist %d", i, cc.Cp[i], cc.Co[i])
		}
	}
	for i := 0; i < NumEdges; i++ {
		if cc.Ep[i] != Edge(i) || cc.Eo[i] != 0 {
			t.Errorf("edge slot %d: got piece %v flip %d", i, cc.Ep[i], cc.Eo[i])
		}
	}
}

func TestConvertSingleTurns(t *testing.T) {
	for m := FaceTurn(0); m < NumFaceTurns; m++ {
		want := NewCubieCube()
		want.Apply(m)

		fc, err := want.ToFaceletCube()
		if err != nil {
			t.Fatalf("%v: %v", m, err)
		}
		got, err := ParseCubieCube(fc.String())
		if err != nil {
			t.Errorf("%v: %v", m, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%v: got %+v, want %+v", m, got, want)
		}
	}
}

func TestConvertRMove(t *testing.T) {
	cc, err := ParseCubieCube(afterR)
	if err != nil {
		t.Fatal(err)
	}
	if !cc.Equal(BasicMove(R)) {
		t.Errorf("got %+v, want the R basic move", cc)
	}
}

func TestConvertRoundTripScrambles(t *testing.T) {
	for _, seq := range []string{"R U R' U'", "F B2 L' D", "D2 B' L F2 U R' D B2 L2 F"} {
		moves, err := ParseFaceTurns(seq)
		if err != nil {
			t.Fatal(err)
		}
		want := NewCubieCube()
		want.ApplySequence(moves)

		fc, err := want.ToFaceletCube()
		if err != nil {
			t.Fatalf("%s: %v", seq, err)
		}
		got, err := fc.ToCubieCube()
		if err != nil {
			t.Errorf("%s: %v", seq, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%s: conversion did not invert ToFaceletCube", seq)
		}
		if err := got.Verify(); err != nil {
			t.Errorf("%s: reachable cube should verify, got %v", seq, err)
		}
	}
}

func TestConvertChecksColorCountFirst(t *testing.T) {
	fc, err := ParseFaceletCube("R" + SolvedFacelets[1:])
	if err != nil {
		t.Fatal(err)
	}
	cc, err := fc.ToCubieCube()
	if !errors.Is(err, ErrColorCount) {
		t.Errorf("Expected ErrColorCount, got %v", err)
	}
	if cc != nil {
		t.Error("No cube should be returned on error")
	}
}

func TestConvertUnresolvableCorner(t *testing.T) {
	// URF shows R R F once its U sticker trades places with the R center.
	s := swapFacelets(SolvedFacelets, U9, R5)
	cc, err := ParseCubieCube(s)
	if !errors.Is(err, ErrUnresolvableCorner) {
		t.Errorf("Expected ErrUnresolvableCorner, got %v", err)
	}
	if cc != nil {
		t.Error("No partial cube should be returned")
	}
}

func TestConvertUnresolvableEdge(t *testing.T) {
	// UR shows U U once its R sticker trades places with the U center.
	s := swapFacelets(SolvedFacelets, R2, U5)
	cc, err := ParseCubieCube(s)
	if !errors.Is(err, ErrUnresolvableEdge) {
		t.Errorf("Expected ErrUnresolvableEdge, got %v", err)
	}
	if cc != nil {
		t.Error("No partial cube should be returned")
	}
}

func TestConvertReportsEverySlot(t *testing.T) {
	s := swapFacelets(SolvedFacelets, U9, R5)
	s = swapFacelets(s, L2, D5)
	_, err := ParseCubieCube(s)
	if !errors.Is(err, ErrUnresolvableCorner) {
		t.Errorf("Expected ErrUnresolvableCorner, got %v", err)
	}
	if !errors.Is(err, ErrUnresolvableEdge) {
		t.Errorf("Expected ErrUnresolvableEdge in the joined error, got %v", err)
	}
}

func TestConvertResolvesUnreachableColorings(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want error
	}{
		{"twisted corner", setFacelets(SolvedFacelets, map[Facelet]Color{U9: F, R1: U, F3: R}), ErrTwistParity},
		{"flipped edge", swapFacelets(SolvedFacelets, U6, R2), ErrFlipParity},
		{"swapped edges", setFacelets(SolvedFacelets, map[Facelet]Color{R2: F, F2: R}), ErrPermutationParity},
		{"mirrored corner", swapFacelets(SolvedFacelets, R1, F3), ErrDuplicateCorner},
	}
	for _, tt := range tests {
		cc, err := ParseCubieCube(tt.s)
		if err != nil {
			t.Errorf("%s: conversion should succeed, got %v", tt.name, err)
			continue
		}
		if err := cc.Verify(); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}
