package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubecoord"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// stickerStyles paints each color with the usual Western scheme:
// white top, green front.
var stickerStyles = map[cubecoord.Color]lipgloss.Style{
	cubecoord.U: sticker("255", "0"),
	cubecoord.R: sticker("160", "255"),
	cubecoord.F: sticker("34", "0"),
	cubecoord.D: sticker("226", "0"),
	cubecoord.L: sticker("208", "0"),
	cubecoord.B: sticker("27", "255"),
}

func sticker(bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg))
}

// renderNet draws the cube as an unfolded net:
//
//	  U
//	L F R B
//	  D
func renderNet(fc *cubecoord.FaceletCube) string {
	var sb strings.Builder
	pad := strings.Repeat(" ", 9)

	row := func(face cubecoord.Color, r int) string {
		var cells strings.Builder
		for col := 0; col < 3; col++ {
			c := fc.Facelets[int(face)*9+r*3+col]
			cells.WriteString(stickerStyles[c].Render(" " + c.String() + " "))
		}
		return cells.String()
	}

	for r := 0; r < 3; r++ {
		sb.WriteString(pad + row(cubecoord.U, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		for _, face := range []cubecoord.Color{cubecoord.L, cubecoord.F, cubecoord.R, cubecoord.B} {
			sb.WriteString(row(face, r))
		}
		sb.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		sb.WriteString(pad + row(cubecoord.D, r) + "\n")
	}
	return sb.String()
}
