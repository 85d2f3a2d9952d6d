package board

import "fmt"

// Stone is the contents of one position on the board.
type Stone int8

const (
	Empty Stone = iota
	Black
	White
	// OffBoard marks the permanent sentinel frame around the playable grid.
	OffBoard
)

func (s Stone) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	case OffBoard:
		return "OffBoard"
	}
	return fmt.Sprintf("Stone(%d)", int8(s))
}

// Opponent returns the other playing color. Panics for Empty or OffBoard,
// which are not players.
func (s Stone) Opponent() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	}
	panic(fmt.Sprintf("board: %v has no opponent", s))
}

// ParseColor parses a GTP-style color token ("b", "black", "w", "white").
func ParseColor(input string) (Stone, bool) {
	switch input {
	case "b", "B", "black", "Black", "BLACK":
		return Black, true
	case "w", "W", "white", "White", "WHITE":
		return White, true
	}
	return Empty, false
}
