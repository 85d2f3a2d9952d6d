package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a 1-D index into the framed grid. Point 0 is always part of the
// sentinel frame (see board.go), which lets a zero Point double as a "no
// point"/chain-terminator sentinel without ambiguity.
type Point int

// Pass is the distinguished non-position meaning "play no stone".
const Pass Point = -1

// MaxBoardSize mirrors the GTP protocol's board size ceiling.
const MaxBoardSize = 25

// columnLetters skips 'I', matching Go board notation (A1..T19).
const columnLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// stride is the distance between vertically adjacent points: the playable
// width plus one sentinel column on each side. See §3: "pos = x + size·y".
func (b *Board) stride() int { return b.size }

// point converts 1-based playable coordinates (x,y) to a Point.
// x is column (1..n, left to right), y is row (1..n, bottom to top).
func (b *Board) point(x, y int) Point {
	return Point(x + b.size*y)
}

// Coords converts a Point back to 1-based playable coordinates.
func (b *Board) Coords(p Point) (x, y int) {
	y = int(p) / b.size
	x = int(p) % b.size
	return
}

// ParseVertex parses a GTP-style vertex ("A1".."T19", or "pass"/"PASS").
// Returns ok=false for malformed input; it does not itself validate the
// vertex against a particular board size (callers check that via
// Board.InBounds once the board is known).
func ParseVertex(input string) (x, y int, ok bool) {
	input = strings.ToUpper(strings.TrimSpace(input))
	if input == "PASS" {
		return 0, 0, true
	}
	if len(input) < 2 {
		return 0, 0, false
	}
	col := strings.IndexByte(columnLetters, input[0])
	if col < 0 {
		return 0, 0, false
	}
	row, err := strconv.Atoi(input[1:])
	if err != nil || row < 1 {
		return 0, 0, false
	}
	return col + 1, row, true
}

// FormatVertex renders 1-based playable coordinates as a GTP vertex string,
// or "pass" for (0,0).
func FormatVertex(x, y int) string {
	if x == 0 && y == 0 {
		return "pass"
	}
	if x < 1 || x > len(columnLetters) {
		return fmt.Sprintf("invalid(%d,%d)", x, y)
	}
	return fmt.Sprintf("%c%d", columnLetters[x-1], y)
}
