package cubecoord

import (
	"errors"
	"testing"
)

const (
	// Facelet strings after a single clockwise turn from solved.
	afterR = "UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB"
	afterU = "UUUUUUUUUBBBRRRRRRRRRFFFFFFDDDDDDDDDFFFLLLLLLLLLBBBBBB"
)

func TestNewCubieCubeIsSolved(t *testing.T) {
	cc := NewCubieCube()
	if !cc.IsSolved() {
		t.Error("New cubie cube should be solved")
	}
	if err := cc.Verify(); err != nil {
		t.Errorf("Solved cube should verify, got %v", err)
	}
}

func TestSingleTurnBreaksSolved(t *testing.T) {
	cc := NewCubieCube()
	cc.Apply(MoveR)
	if cc.IsSolved() {
		t.Error("Cube should not be solved after R")
	}
}

func TestQuarterTurnFourTimesIsIdentity_AllFaces(t *testing.T) {
	for face := Color(0); face < NumColors; face++ {
		cc := NewCubieCube()
		for i := 0; i < 4; i++ {
			cc.Multiply(BasicMove(face))
		}
		if !cc.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
		}
	}
}

func TestHalfTurnTwiceIsIdentity(t *testing.T) {
	cc := NewCubieCube()
	cc.Apply(MoveF2)
	cc.Apply(MoveF2)
	if !cc.IsSolved() {
		t.Error("F2 F2 should return to solved")
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	cc := NewCubieCube()
	for i := 0; i < 6; i++ {
		cc.ApplySequence(SexyMove)
	}
	if !cc.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
	}
}

func TestTPermParity(t *testing.T) {
	cc := NewCubieCube()
	cc.ApplySequence(TPerm)
	if cc.CornerParity() != 1 || cc.EdgeParity() != 1 {
		t.Errorf("T-perm should be an odd permutation, got corners=%d edges=%d", cc.CornerParity(), cc.EdgeParity())
	}
	if err := cc.Verify(); err != nil {
		t.Errorf("T-perm state should verify, got %v", err)
	}

	cc.ApplySequence(TPerm)
	if !cc.IsSolved() {
		t.Error("T-perm twice should return to solved")
	}
}

func TestScrambleAndReverse(t *testing.T) {
	scramble, err := ParseFaceTurns("R U R' U' F D L2 B' D2")
	if err != nil {
		t.Fatal(err)
	}

	cc := NewCubieCube()
	cc.ApplySequence(scramble)
	if cc.IsSolved() {
		t.Error("Cube should be scrambled after moves")
	}
	if err := cc.Verify(); err != nil {
		t.Errorf("Scrambled cube should verify, got %v", err)
	}

	for i := len(scramble) - 1; i >= 0; i-- {
		cc.Apply(scramble[i].Inverse())
	}
	if !cc.IsSolved() {
		t.Error("Cube should be solved after reversing scramble")
	}
}

func TestBasicMoveFacelets(t *testing.T) {
	tests := []struct {
		move FaceTurn
		want string
	}{
		{MoveR, afterR},
		{MoveU, afterU},
	}
	for _, tt := range tests {
		cc := NewCubieCube()
		cc.Apply(tt.move)
		fc, err := cc.ToFaceletCube()
		if err != nil {
			t.Fatalf("%v: %v", tt.move, err)
		}
		if got := fc.String(); got != tt.want {
			t.Errorf("%v: got %s, want %s", tt.move, got, tt.want)
		}
	}
}

func TestBasicMoveReturnsCopy(t *testing.T) {
	m := BasicMove(R)
	m.Cp[0] = URF
	if BasicMove(R).Cp[0] != DFR {
		t.Error("Mutating a BasicMove result should not change the move definition")
	}
}

func TestVerifyUnresolved(t *testing.T) {
	cc := newUnresolvedCubieCube()
	if err := cc.Verify(); !errors.Is(err, ErrUnresolved) {
		t.Errorf("Expected ErrUnresolved, got %v", err)
	}
}

func TestVerifyDetectsBadStates(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cc *CubieCube)
		want   error
	}{
		{"duplicate corner", func(cc *CubieCube) { cc.Cp[1] = URF }, ErrDuplicateCorner},
		{"duplicate edge", func(cc *CubieCube) { cc.Ep[1] = UR }, ErrDuplicateEdge},
		{"single flip", func(cc *CubieCube) { cc.Eo[3] = 1 }, ErrFlipParity},
		{"single twist", func(cc *CubieCube) { cc.Co[5] = 2 }, ErrTwistParity},
		{"edge swap", func(cc *CubieCube) { cc.Ep[0], cc.Ep[1] = cc.Ep[1], cc.Ep[0] }, ErrPermutationParity},
	}
	for _, tt := range tests {
		cc := NewCubieCube()
		tt.modify(cc)
		if err := cc.Verify(); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cc := NewCubieCube()
	clone := cc.Clone()
	clone.Apply(MoveL)
	if !cc.IsSolved() {
		t.Error("Turning a clone should not affect the original")
	}
	if cc.Equal(clone) {
		t.Error("Clone should differ after a turn")
	}
}

func TestToFaceletCubeRejectsUnresolvedSlots(t *testing.T) {
	if _, err := newUnresolvedCubieCube().ToFaceletCube(); !errors.Is(err, ErrUnresolved) {
		t.Errorf("unresolved cube: expected ErrUnresolved, got %v", err)
	}

	cc := NewCubieCube()
	cc.Co[DFR] = 3
	if _, err := cc.ToFaceletCube(); !errors.Is(err, ErrUnresolved) {
		t.Errorf("twist 3: expected ErrUnresolved, got %v", err)
	}

	cc = NewCubieCube()
	cc.Ep[BR] = NumEdges
	if _, err := cc.ToFaceletCube(); !errors.Is(err, ErrUnresolved) {
		t.Errorf("edge out of range: expected ErrUnresolved, got %v", err)
	}
}
