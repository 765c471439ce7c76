// Package cubecoord converts Rubik's cube states between the sticker view
// and the piece view, and builds the move tables a two-phase search uses.
//
// # Facelets and Cubies
//
// A FaceletCube holds the 54 sticker colors in the order U, R, F, D, L, B,
// nine per face. A CubieCube holds which corner and edge piece sits in each
// slot and how it is twisted or flipped:
//
//	fc, err := cubecoord.ParseFaceletCube("UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cc, err := fc.ToCubieCube()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cc.Twist(), cc.Flip())
//
// # Move Tables
//
// A MoveTable maps a coordinate value and one of the 18 face turns to the
// resulting coordinate. Tables are built once and cached in a TableStore:
//
//	store, _ := cubecoord.NewFileStore("./tables")
//	twist, err := cubecoord.LoadOrBuild(ctx, cubecoord.TwistCoord, store)
//	next := twist.Apply(0, cubecoord.MoveR)
package cubecoord
