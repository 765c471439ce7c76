package cubecoord

// Coordinate sizes.
const (
	NumTwist      = 2187  // 3^7 corner orientations
	NumFlip       = 2048  // 2^11 edge orientations
	NumCornerPerm = 40320 // 8! corner permutations
)

// Twist returns the corner orientation coordinate in [0, NumTwist).
// The orientations of URF..DBL are read as a base-3 number; DRB follows
// from the others.
func (cc *CubieCube) Twist() int {
	ret := 0
	for i := URF; i < DRB; i++ {
		ret = 3*ret + int(cc.Co[i])
	}
	return ret
}

// SetTwist sets the corner orientations from a twist coordinate.
func (cc *CubieCube) SetTwist(twist int) {
	parity := 0
	for i := DRB - 1; i >= URF; i-- {
		cc.Co[i] = int8(twist % 3)
		parity += int(cc.Co[i])
		twist /= 3
	}
	cc.Co[DRB] = int8((3 - parity%3) % 3)
}

// Flip returns the edge orientation coordinate in [0, NumFlip).
func (cc *CubieCube) Flip() int {
	ret := 0
	for i := UR; i < BR; i++ {
		ret = 2*ret + int(cc.Eo[i])
	}
	return ret
}

// SetFlip sets the edge orientations from a flip coordinate.
func (cc *CubieCube) SetFlip(flip int) {
	parity := 0
	for i := BR - 1; i >= UR; i-- {
		cc.Eo[i] = int8(flip % 2)
		parity += int(cc.Eo[i])
		flip /= 2
	}
	cc.Eo[BR] = int8((2 - parity%2) % 2)
}

// CornerPerm returns the corner permutation coordinate in [0, NumCornerPerm).
// The value is only meaningful when Cp is a permutation. For a cube that
// fails Verify it still returns a value in range.
func (cc *CubieCube) CornerPerm() int {
	perm := cc.Cp
	b := 0
	for j := DRB; j > URF; j-- {
		k := 0
		// At most j rotations bring piece j into place; a missing piece
		// stops here.
		for perm[j] != j && k < int(j) {
			rotateCornersLeft(&perm, j)
			k++
		}
		b = (int(j)+1)*b + k
	}
	return b
}

// SetCornerPerm sets the corner permutation from a coordinate.
func (cc *CubieCube) SetCornerPerm(idx int) {
	for i := range cc.Cp {
		cc.Cp[i] = Corner(i)
	}
	for j := URF; j <= DRB; j++ {
		k := idx % (int(j) + 1)
		idx /= int(j) + 1
		for ; k > 0; k-- {
			rotateCornersRight(&cc.Cp, j)
		}
	}
}

// rotateCornersLeft rotates p[0..r] one step to the left.
func rotateCornersLeft(p *[NumCorners]Corner, r Corner) {
	tmp := p[0]
	copy(p[0:r], p[1:r+1])
	p[r] = tmp
}

// rotateCornersRight rotates p[0..r] one step to the right.
func rotateCornersRight(p *[NumCorners]Corner, r Corner) {
	tmp := p[r]
	copy(p[1:r+1], p[0:r])
	p[0] = tmp
}

// Algebra is a cube state reduced to a single coordinate. Implementations
// are not safe for concurrent use; each worker owns its own.
type Algebra interface {
	// SetCoord resets the state to the given coordinate value.
	SetCoord(v int)
	// Coord reads the coordinate of the current state.
	Coord() int
	// ApplyBasicMove composes the state with a clockwise quarter turn of face.
	ApplyBasicMove(face Color)
}

// Coordinate describes a coordinate space a move table can be built over.
type Coordinate interface {
	Name() string
	Size() int
	NewAlgebra() Algebra
}

// cubieCoord is a Coordinate backed by a CubieCube.
type cubieCoord struct {
	name     string
	size     int
	get      func(*CubieCube) int
	set      func(*CubieCube, int)
	multiply func(a, b *CubieCube)
}

func (c *cubieCoord) Name() string { return c.name }
func (c *cubieCoord) Size() int    { return c.size }

func (c *cubieCoord) NewAlgebra() Algebra {
	return &cubieAlgebra{coord: c, cube: NewCubieCube()}
}

type cubieAlgebra struct {
	coord *cubieCoord
	cube  *CubieCube
}

func (a *cubieAlgebra) SetCoord(v int) { a.coord.set(a.cube, v) }
func (a *cubieAlgebra) Coord() int     { return a.coord.get(a.cube) }

func (a *cubieAlgebra) ApplyBasicMove(face Color) {
	a.coord.multiply(a.cube, &basicMoves[face])
}

// Built-in coordinates.
var (
	TwistCoord Coordinate = &cubieCoord{
		name:     "twist",
		size:     NumTwist,
		get:      (*CubieCube).Twist,
		set:      (*CubieCube).SetTwist,
		multiply: (*CubieCube).CornerMultiply,
	}
	FlipCoord Coordinate = &cubieCoord{
		name:     "flip",
		size:     NumFlip,
		get:      (*CubieCube).Flip,
		set:      (*CubieCube).SetFlip,
		multiply: (*CubieCube).EdgeMultiply,
	}
	CornerPermCoord Coordinate = &cubieCoord{
		name:     "corner_perm",
		size:     NumCornerPerm,
		get:      (*CubieCube).CornerPerm,
		set:      (*CubieCube).SetCornerPerm,
		multiply: (*CubieCube).CornerMultiply,
	}
)
