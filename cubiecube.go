package cubecoord

import "fmt"

// Unresolved marks a permutation entry the converter has not filled in.
const (
	UnresolvedCorner Corner = -1
	UnresolvedEdge   Edge   = -1
)

// CubieCube is a cube described piece by piece.
//
// Cp[i] is the corner piece sitting in slot i and Co[i] its twist (0, 1 or 2).
// Ep[i] is the edge piece sitting in slot i and Eo[i] its flip (0 or 1).
type CubieCube struct {
	Cp [NumCorners]Corner
	Co [NumCorners]int8
	Ep [NumEdges]Edge
	Eo [NumEdges]int8
}

// NewCubieCube creates a solved cubie cube.
func NewCubieCube() *CubieCube {
	cc := &CubieCube{}
	for i := range cc.Cp {
		cc.Cp[i] = Corner(i)
	}
	for i := range cc.Ep {
		cc.Ep[i] = Edge(i)
	}
	return cc
}

// newUnresolvedCubieCube creates a cube whose permutation entries all hold
// the unresolved sentinel.
func newUnresolvedCubieCube() *CubieCube {
	cc := &CubieCube{}
	for i := range cc.Cp {
		cc.Cp[i] = UnresolvedCorner
	}
	for i := range cc.Ep {
		cc.Ep[i] = UnresolvedEdge
	}
	return cc
}

// Clone returns a copy of the cube.
func (cc *CubieCube) Clone() *CubieCube {
	clone := *cc
	return &clone
}

// Equal reports whether both cubes describe the same state.
func (cc *CubieCube) Equal(o *CubieCube) bool {
	return *cc == *o
}

// IsSolved returns true if every piece is home and untwisted.
func (cc *CubieCube) IsSolved() bool {
	return *cc == *NewCubieCube()
}

// CornerMultiply composes the corner state with b, in place.
// After the call the cube represents "cc then b".
func (cc *CubieCube) CornerMultiply(b *CubieCube) {
	var cp [NumCorners]Corner
	var co [NumCorners]int8
	for c := 0; c < NumCorners; c++ {
		cp[c] = cc.Cp[b.Cp[c]]
		co[c] = (cc.Co[b.Cp[c]] + b.Co[c]) % 3
	}
	cc.Cp = cp
	cc.Co = co
}

// EdgeMultiply composes the edge state with b, in place.
func (cc *CubieCube) EdgeMultiply(b *CubieCube) {
	var ep [NumEdges]Edge
	var eo [NumEdges]int8
	for e := 0; e < NumEdges; e++ {
		ep[e] = cc.Ep[b.Ep[e]]
		eo[e] = (cc.Eo[b.Ep[e]] + b.Eo[e]) % 2
	}
	cc.Ep = ep
	cc.Eo = eo
}

// Multiply composes both corners and edges with b.
func (cc *CubieCube) Multiply(b *CubieCube) {
	cc.CornerMultiply(b)
	cc.EdgeMultiply(b)
}

// Apply performs a face turn.
func (cc *CubieCube) Apply(m FaceTurn) {
	basic := &basicMoves[m.Face()]
	for i := 0; i < m.QuarterTurns(); i++ {
		cc.Multiply(basic)
	}
}

// ApplySequence performs face turns in order.
func (cc *CubieCube) ApplySequence(moves []FaceTurn) {
	for _, m := range moves {
		cc.Apply(m)
	}
}

// CornerParity returns the parity of the corner permutation (0 even, 1 odd).
func (cc *CubieCube) CornerParity() int {
	s := 0
	for i := NumCorners - 1; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if cc.Cp[j] > cc.Cp[i] {
				s++
			}
		}
	}
	return s % 2
}

// EdgeParity returns the parity of the edge permutation (0 even, 1 odd).
func (cc *CubieCube) EdgeParity() int {
	s := 0
	for i := NumEdges - 1; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if cc.Ep[j] > cc.Ep[i] {
				s++
			}
		}
	}
	return s % 2
}

// Verify checks that the cube can be reached by turning a real cube.
func (cc *CubieCube) Verify() error {
	var cornerSeen [NumCorners]bool
	for i, c := range cc.Cp {
		if c < 0 || c >= NumCorners {
			return fmt.Errorf("%w: corner slot %v", ErrUnresolved, Corner(i))
		}
		if cornerSeen[c] {
			return fmt.Errorf("%w: %v", ErrDuplicateCorner, c)
		}
		cornerSeen[c] = true
	}

	var edgeSeen [NumEdges]bool
	for i, e := range cc.Ep {
		if e < 0 || e >= NumEdges {
			return fmt.Errorf("%w: edge slot %v", ErrUnresolved, Edge(i))
		}
		if edgeSeen[e] {
			return fmt.Errorf("%w: %v", ErrDuplicateEdge, e)
		}
		edgeSeen[e] = true
	}

	flip := 0
	for _, o := range cc.Eo {
		flip += int(o)
	}
	if flip%2 != 0 {
		return ErrFlipParity
	}

	twist := 0
	for _, o := range cc.Co {
		twist += int(o)
	}
	if twist%3 != 0 {
		return ErrTwistParity
	}

	if cc.CornerParity() != cc.EdgeParity() {
		return ErrPermutationParity
	}
	return nil
}

// ToFaceletCube paints the stickers described by the cube.
// Centers keep their solved colors. A slot holding no piece or an
// orientation out of range yields an error wrapping ErrUnresolved.
func (cc *CubieCube) ToFaceletCube() (*FaceletCube, error) {
	fc := NewFaceletCube()
	for i := 0; i < NumCorners; i++ {
		j := cc.Cp[i]
		ori := int(cc.Co[i])
		if j < 0 || j >= NumCorners || ori < 0 || ori > 2 {
			return nil, fmt.Errorf("%w: corner slot %v holds %d/%d", ErrUnresolved, Corner(i), j, ori)
		}
		for k := 0; k < 3; k++ {
			fc.Facelets[cornerFacelet[i][(k+ori)%3]] = cornerColor[j][k]
		}
	}
	for i := 0; i < NumEdges; i++ {
		j := cc.Ep[i]
		ori := int(cc.Eo[i])
		if j < 0 || j >= NumEdges || ori < 0 || ori > 1 {
			return nil, fmt.Errorf("%w: edge slot %v holds %d/%d", ErrUnresolved, Edge(i), j, ori)
		}
		for k := 0; k < 2; k++ {
			fc.Facelets[edgeFacelet[i][(k+ori)%2]] = edgeColor[j][k]
		}
	}
	return fc, nil
}

// BasicMove returns the cube reached by a clockwise quarter turn of face
// from the solved state.
func BasicMove(face Color) *CubieCube {
	m := basicMoves[face]
	return &m
}

// basicMoves holds the quarter turns in face order U, R, F, D, L, B.
var basicMoves = [NumColors]CubieCube{
	U: {
		Cp: [NumCorners]Corner{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		Ep: [NumEdges]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
	},
	R: {
		Cp: [NumCorners]Corner{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		Co: [NumCorners]int8{2, 0, 0, 1, 1, 0, 0, 2},
		Ep: [NumEdges]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
	},
	F: {
		Cp: [NumCorners]Corner{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		Co: [NumCorners]int8{1, 2, 0, 0, 2, 1, 0, 0},
		Ep: [NumEdges]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		Eo: [NumEdges]int8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	D: {
		Cp: [NumCorners]Corner{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		Ep: [NumEdges]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
	},
	L: {
		Cp: [NumCorners]Corner{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		Co: [NumCorners]int8{0, 1, 2, 0, 0, 2, 1, 0},
		Ep: [NumEdges]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
	},
	B: {
		Cp: [NumCorners]Corner{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		Co: [NumCorners]int8{0, 0, 1, 2, 0, 0, 2, 1},
		Ep: [NumEdges]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		Eo: [NumEdges]int8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}
