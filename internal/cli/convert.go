package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecoord"
)

var convertCmd = &cobra.Command{
	Use:   "convert [facelets]",
	Short: "Convert a facelet string into a cubie cube",
	Long: `Parse a 54-character facelet string (faces U, R, F, D, L, B, nine stickers
each) and print the corner and edge permutation and orientation it describes,
its coordinates, and whether the state is reachable.

With --scramble, the facelets are generated by applying the turns to a
solved cube instead.

Examples:
  cubecoord convert UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB
  cubecoord convert --scramble "R U R' U'"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

var convertScramble string

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertScramble, "scramble", "s", "", "Turns to apply to a solved cube")
}

func runConvert(cmd *cobra.Command, args []string) error {
	facelets, err := faceletsFromArgs(args, convertScramble)
	if err != nil {
		return err
	}

	fc := cubecoord.NewFaceletCube()
	if err := fc.FromString(facelets); err != nil {
		return err
	}
	cc, err := fc.ToCubieCube()
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	printCubie(cmd.OutOrStdout(), fc, cc)
	return nil
}

// faceletsFromArgs returns the facelet string given on the command line,
// or the one produced by a scramble.
func faceletsFromArgs(args []string, scramble string) (string, error) {
	switch {
	case len(args) == 1 && scramble != "":
		return "", fmt.Errorf("give either facelets or --scramble, not both")
	case len(args) == 1:
		return strings.TrimSpace(args[0]), nil
	case scramble != "":
		moves, err := cubecoord.ParseFaceTurns(scramble)
		if err != nil {
			return "", err
		}
		cc := cubecoord.NewCubieCube()
		cc.ApplySequence(moves)
		fc, err := cc.ToFaceletCube()
		if err != nil {
			return "", err
		}
		return fc.String(), nil
	default:
		return cubecoord.SolvedFacelets, nil
	}
}

func printCubie(w io.Writer, fc *cubecoord.FaceletCube, cc *cubecoord.CubieCube) {
	fmt.Fprintln(w, titleStyle.Render(fc.String()))
	fmt.Fprintln(w)
	fmt.Fprint(w, renderNet(fc))
	fmt.Fprintln(w)

	corners := make([]string, cubecoord.NumCorners)
	for i := range corners {
		corners[i] = fmt.Sprintf("%v:%v/%d", cubecoord.Corner(i), cc.Cp[i], cc.Co[i])
	}
	edges := make([]string, cubecoord.NumEdges)
	for i := range edges {
		edges[i] = fmt.Sprintf("%v:%v/%d", cubecoord.Edge(i), cc.Ep[i], cc.Eo[i])
	}

	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Corners:"), strings.Join(corners, " "))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Edges:  "), strings.Join(edges, " "))

	// Coordinates only describe reachable cubes.
	if err := cc.Verify(); err != nil {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("State:  "), errorStyle.Render(err.Error()))
		return
	}
	fmt.Fprintf(w, "%s twist=%d flip=%d corner_perm=%d\n", labelStyle.Render("Coords: "),
		cc.Twist(), cc.Flip(), cc.CornerPerm())
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("State:  "), okStyle.Render("reachable"))
}
