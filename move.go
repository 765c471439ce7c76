package cubecoord

import (
	"fmt"
	"strings"
)

// Turn is the number of clockwise quarter turns in a face turn.
type Turn int

const (
	TurnCW     Turn = 1 // Clockwise (90 degrees)
	TurnDouble Turn = 2 // Half turn (180 degrees)
	TurnCCW    Turn = 3 // Counter-clockwise (270 degrees clockwise)
)

// FaceTurn is one of the 18 face turns. Turns of the same face are
// adjacent: face*3 + quarterTurns-1.
type FaceTurn int

// NumFaceTurns is the number of distinct face turns.
const NumFaceTurns = 18

// Predefined face turns in table order.
const (
	MoveU FaceTurn = iota
	MoveU2
	MoveUPrime
	MoveR
	MoveR2
	MoveRPrime
	MoveF
	MoveF2
	MoveFPrime
	MoveD
	MoveD2
	MoveDPrime
	MoveL
	MoveL2
	MoveLPrime
	MoveB
	MoveB2
	MoveBPrime
)

// NewFaceTurn returns the face turn of face by turn quarter turns.
func NewFaceTurn(face Color, turn Turn) FaceTurn {
	return FaceTurn(int(face)*3 + int(turn) - 1)
}

// Face returns the face being turned.
func (m FaceTurn) Face() Color {
	return Color(m / 3)
}

// Turn returns the turn amount.
func (m FaceTurn) Turn() Turn {
	return Turn(m%3 + 1)
}

// QuarterTurns returns the number of clockwise quarter turns, 1 to 3.
func (m FaceTurn) QuarterTurns() int {
	return int(m%3) + 1
}

// Inverse returns the turn that undoes m.
// R becomes R', R' becomes R, R2 stays R2.
func (m FaceTurn) Inverse() FaceTurn {
	return NewFaceTurn(m.Face(), Turn(4-m.QuarterTurns()))
}

// Notation returns the standard cube notation string for this turn.
// Examples: R, R', R2, U, U', U2
func (m FaceTurn) Notation() string {
	suffix := ""
	switch m.Turn() {
	case TurnCCW:
		suffix = "'"
	case TurnDouble:
		suffix = "2"
	}
	return m.Face().String() + suffix
}

// String returns the notation string (alias for Notation).
func (m FaceTurn) String() string {
	if m < 0 || m >= NumFaceTurns {
		return "?"
	}
	return m.Notation()
}

// ParseFaceTurn parses a standard notation string into a FaceTurn.
// Examples: R, R', R2, U, U', U2
func ParseFaceTurn(s string) (FaceTurn, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, ErrInvalidNotation
	}

	face, ok := colorFromByte(upper(s[0]))
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := TurnCW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = TurnCCW
		case "2", "2'", "2`":
			turn = TurnDouble
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return NewFaceTurn(face, turn), nil
}

func upper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

// ParseFaceTurns parses a space-separated sequence of turns.
// Example: "R U R' U'"
func ParseFaceTurns(s string) ([]FaceTurn, error) {
	parts := strings.Fields(s)
	moves := make([]FaceTurn, 0, len(parts))

	for i, part := range parts {
		m, err := ParseFaceTurn(part)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}

	return moves, nil
}

// FormatFaceTurns formats turns as a space-separated notation string.
func FormatFaceTurns(moves []FaceTurn) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// SexyMove is R U R' U'; six repetitions return to the start.
var SexyMove = []FaceTurn{MoveR, MoveU, MoveRPrime, MoveUPrime}

// TPerm swaps two corners and two edges.
var TPerm = []FaceTurn{MoveR, MoveU, MoveRPrime, MoveUPrime, MoveRPrime, MoveF, MoveR2, MoveUPrime, MoveRPrime, MoveUPrime, MoveR, MoveU, MoveRPrime, MoveFPrime}
