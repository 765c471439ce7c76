package cubecoord

// Color represents a sticker color. Each color is named after the face
// that carries it on a solved cube.
type Color int8

const (
	U Color = iota // Up
	R              // Right
	F              // Front
	D              // Down
	L              // Left
	B              // Back
)

// NumColors is the number of distinct sticker colors.
const NumColors = 6

func (c Color) String() string {
	switch c {
	case U:
		return "U"
	case R:
		return "R"
	case F:
		return "F"
	case D:
		return "D"
	case L:
		return "L"
	case B:
		return "B"
	default:
		return "?"
	}
}

// colorFromByte maps a facelet character to its color.
func colorFromByte(ch byte) (Color, bool) {
	switch ch {
	case 'U':
		return U, true
	case 'R':
		return R, true
	case 'F':
		return F, true
	case 'D':
		return D, true
	case 'L':
		return L, true
	case 'B':
		return B, true
	default:
		return 0, false
	}
}

// Facelet is a sticker position on the cube surface.
// Faces are laid out U, R, F, D, L, B with 9 facelets each, read row by row:
//
//	1 2 3
//	4 5 6
//	7 8 9
type Facelet int

const (
	U1 Facelet = iota
	U2
	U3
	U4
	U5
	U6
	U7
	U8
	U9
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9
	L1
	L2
	L3
	L4
	L5
	L6
	L7
	L8
	L9
	B1
	B2
	B3
	B4
	B5
	B6
	B7
	B8
	B9
)

// NumFacelets is the number of stickers on a cube.
const NumFacelets = 54

// Corner identifies a corner slot, or the corner piece that belongs there
// when the cube is solved.
type Corner int8

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// NumCorners is the number of corner slots.
const NumCorners = 8

var cornerNames = [NumCorners]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}

func (c Corner) String() string {
	if c < 0 || c >= NumCorners {
		return "?"
	}
	return cornerNames[c]
}

// Edge identifies an edge slot, or the edge piece that belongs there when
// the cube is solved.
type Edge int8

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// NumEdges is the number of edge slots.
const NumEdges = 12

var edgeNames = [NumEdges]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}

func (e Edge) String() string {
	if e < 0 || e >= NumEdges {
		return "?"
	}
	return edgeNames[e]
}

// cornerFacelet lists the stickers of each corner slot in clockwise order,
// starting with the sticker on the U or D face.
var cornerFacelet = [NumCorners][3]Facelet{
	{U9, R1, F3}, {U7, F1, L3}, {U1, L1, B3}, {U3, B1, R3},
	{D3, F9, R7}, {D1, L9, F7}, {D7, B9, L7}, {D9, R9, B7},
}

// cornerColor holds the colors of each corner piece in the same order as
// cornerFacelet. Index 0 is always the U or D color.
var cornerColor = [NumCorners][3]Color{
	{U, R, F}, {U, F, L}, {U, L, B}, {U, B, R},
	{D, F, R}, {D, L, F}, {D, B, L}, {D, R, B},
}

// edgeFacelet lists the two stickers of each edge slot.
var edgeFacelet = [NumEdges][2]Facelet{
	{U6, R2}, {U8, F2}, {U4, L2}, {U2, B2}, {D6, R8}, {D2, F8},
	{D4, L8}, {D8, B8}, {F6, R4}, {F4, L6}, {B6, L4}, {B4, R6},
}

// edgeColor holds the colors of each edge piece in the same order as
// edgeFacelet.
var edgeColor = [NumEdges][2]Color{
	{U, R}, {U, F}, {U, L}, {U, B}, {D, R}, {D, F},
	{D, L}, {D, B}, {F, R}, {F, L}, {B, L}, {B, R},
}

// CornerFacelets returns the sticker positions of corner slot c.
func CornerFacelets(c Corner) [3]Facelet { return cornerFacelet[c] }

// CornerColors returns the solved colors of corner piece c.
func CornerColors(c Corner) [3]Color { return cornerColor[c] }

// EdgeFacelets returns the sticker positions of edge slot e.
func EdgeFacelets(e Edge) [2]Facelet { return edgeFacelet[e] }

// EdgeColors returns the solved colors of edge piece e.
func EdgeColors(e Edge) [2]Color { return edgeColor[e] }
