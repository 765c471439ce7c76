package cubecoord

import (
	"errors"
	"testing"
	"time"
)

func TestSolvedCoordinatesAreZero(t *testing.T) {
	cc := NewCubieCube()
	if cc.Twist() != 0 || cc.Flip() != 0 || cc.CornerPerm() != 0 {
		t.Errorf("Solved cube should have zero coordinates, got twist=%d flip=%d cperm=%d",
			cc.Twist(), cc.Flip(), cc.CornerPerm())
	}
}

func TestTwistRoundTrip(t *testing.T) {
	cc := NewCubieCube()
	for i := 0; i < NumTwist; i++ {
		cc.SetTwist(i)
		if got := cc.Twist(); got != i {
			t.Fatalf("SetTwist(%d) read back as %d", i, got)
		}
		sum := 0
		for _, o := range cc.Co {
			sum += int(o)
		}
		if sum%3 != 0 {
			t.Fatalf("twist %d: orientation sum %d is not a multiple of 3", i, sum)
		}
	}
}

func TestFlipRoundTrip(t *testing.T) {
	cc := NewCubieCube()
	for i := 0; i < NumFlip; i++ {
		cc.SetFlip(i)
		if got := cc.Flip(); got != i {
			t.Fatalf("SetFlip(%d) read back as %d", i, got)
		}
		sum := 0
		for _, o := range cc.Eo {
			sum += int(o)
		}
		if sum%2 != 0 {
			t.Fatalf("flip %d: orientation sum %d is odd", i, sum)
		}
	}
}

func TestCornerPermRoundTrip(t *testing.T) {
	cc := NewCubieCube()
	for i := 0; i < NumCornerPerm; i++ {
		cc.SetCornerPerm(i)
		var seen [NumCorners]bool
		for _, c := range cc.Cp {
			if seen[c] {
				t.Fatalf("SetCornerPerm(%d) produced a repeated corner: %v", i, cc.Cp)
			}
			seen[c] = true
		}
		if got := cc.CornerPerm(); got != i {
			t.Fatalf("SetCornerPerm(%d) read back as %d", i, got)
		}
	}
}

func TestCoordinatesTrackTurns(t *testing.T) {
	cc := NewCubieCube()
	cc.Apply(MoveU)
	if cc.Twist() != 0 || cc.Flip() != 0 {
		t.Error("U should not twist corners or flip edges")
	}
	if cc.CornerPerm() == 0 {
		t.Error("U should permute corners")
	}

	cc = NewCubieCube()
	cc.Apply(MoveR)
	if cc.Twist() == 0 {
		t.Error("R should twist corners")
	}
	if cc.Flip() != 0 {
		t.Error("R should not flip edges")
	}

	cc = NewCubieCube()
	cc.Apply(MoveF)
	if cc.Flip() == 0 {
		t.Error("F should flip edges")
	}
}

func TestCoordinateDescriptors(t *testing.T) {
	tests := []struct {
		coord Coordinate
		name  string
		size  int
	}{
		{TwistCoord, "twist", NumTwist},
		{FlipCoord, "flip", NumFlip},
		{CornerPermCoord, "corner_perm", NumCornerPerm},
	}
	for _, tt := range tests {
		if tt.coord.Name() != tt.name || tt.coord.Size() != tt.size {
			t.Errorf("got %s/%d, want %s/%d", tt.coord.Name(), tt.coord.Size(), tt.name, tt.size)
		}
		alg := tt.coord.NewAlgebra()
		alg.SetCoord(tt.size - 1)
		if alg.Coord() != tt.size-1 {
			t.Errorf("%s: algebra did not keep coordinate %d", tt.name, tt.size-1)
		}
	}
}

// DFR is painted as a second URF, so piece DFR is missing.
const duplicateCornerFacelets = "UUUUDUUUURRRRRRFRRFFFFFFFFRDDUDDDDDDLLLLLLLLLBBBBBBBBB"

func TestCornerPermWithMissingPiece(t *testing.T) {
	cc, err := ParseCubieCube(duplicateCornerFacelets)
	if err != nil {
		t.Fatal(err)
	}
	if cc.Cp[DFR] != URF {
		t.Fatalf("expected URF in the DFR slot, got %v", cc.Cp[DFR])
	}
	if err := cc.Verify(); !errors.Is(err, ErrDuplicateCorner) {
		t.Fatalf("expected ErrDuplicateCorner, got %v", err)
	}

	done := make(chan int, 1)
	go func() { done <- cc.CornerPerm() }()
	select {
	case got := <-done:
		if got < 0 || got >= NumCornerPerm {
			t.Errorf("CornerPerm() = %d, want a value in [0, %d)", got, NumCornerPerm)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("CornerPerm did not return for a cube with a missing corner")
	}
}
