package cubecoord

import (
	"errors"
	"fmt"
)

// ToCubieCube resolves the pieces shown by the stickers.
//
// Every corner and edge slot is resolved on its own. If any slot matches no
// piece, the returned error joins one failure per bad slot and no cube is
// returned. A successful result has no unresolved entries but may still be
// unreachable; call Verify on it to check the cube invariants.
func (fc *FaceletCube) ToCubieCube() (*CubieCube, error) {
	if err := fc.Validate(); err != nil {
		return nil, err
	}

	cc := newUnresolvedCubieCube()
	var errs []error
	for i := Corner(0); i < NumCorners; i++ {
		if err := fc.resolveCorner(cc, i); err != nil {
			errs = append(errs, err)
		}
	}
	for i := Edge(0); i < NumEdges; i++ {
		if err := fc.resolveEdge(cc, i); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cc, nil
}

// resolveCorner fills in the piece and twist of corner slot idx.
func (fc *FaceletCube) resolveCorner(cc *CubieCube, idx Corner) error {
	places := cornerFacelet[idx]

	ori := -1
	for k := 0; k < 3; k++ {
		c := fc.Facelets[places[k]]
		if c == U || c == D {
			ori = k
			break
		}
	}
	if ori < 0 {
		return fmt.Errorf("%w: slot %v has no U or D sticker", ErrUnresolvableCorner, idx)
	}

	col1 := fc.Facelets[places[(ori+1)%3]]
	col2 := fc.Facelets[places[(ori+2)%3]]
	for j := Corner(0); j < NumCorners; j++ {
		if cornerColor[j][1] == col1 && cornerColor[j][2] == col2 {
			cc.Cp[idx] = j
			cc.Co[idx] = int8(ori)
			return nil
		}
	}
	return fmt.Errorf("%w: slot %v shows %v%v%v", ErrUnresolvableCorner, idx,
		fc.Facelets[places[0]], fc.Facelets[places[1]], fc.Facelets[places[2]])
}

// resolveEdge fills in the piece and flip of edge slot idx.
func (fc *FaceletCube) resolveEdge(cc *CubieCube, idx Edge) error {
	c0 := fc.Facelets[edgeFacelet[idx][0]]
	c1 := fc.Facelets[edgeFacelet[idx][1]]
	for j := Edge(0); j < NumEdges; j++ {
		switch {
		case edgeColor[j][0] == c0 && edgeColor[j][1] == c1:
			cc.Ep[idx] = j
			cc.Eo[idx] = 0
			return nil
		case edgeColor[j][0] == c1 && edgeColor[j][1] == c0:
			cc.Ep[idx] = j
			cc.Eo[idx] = 1
			return nil
		}
	}
	return fmt.Errorf("%w: slot %v shows %v%v", ErrUnresolvableEdge, idx, c0, c1)
}

// ParseCubieCube converts a facelet string straight to a cubie cube.
func ParseCubieCube(s string) (*CubieCube, error) {
	fc, err := ParseFaceletCube(s)
	if err != nil {
		return nil, err
	}
	return fc.ToCubieCube()
}
