// cubecoord - convert Rubik's cube facelet strings and manage move tables.
package main

import (
	"github.com/SeamusWaldron/cubecoord/internal/cli"
)

func main() {
	cli.Execute()
}
