package board

import "fmt"

// Code enumerates the core's rule-violation taxonomy.
type Code int

const (
	// IllegalOccupied: the target point is non-empty.
	IllegalOccupied Code = iota + 1
	// IllegalOffBoard: the target point is a sentinel (out of bounds).
	IllegalOffBoard
	// IllegalKo: the target point is the recorded ko point for this color.
	IllegalKo
	// IllegalSuicide: the resulting own group would have zero liberties,
	// no enemy group is captured, and suicide is prohibited.
	IllegalSuicide
	// InternalError marks a violated invariant; should be unreachable.
	InternalError
)

func (c Code) String() string {
	switch c {
	case IllegalOccupied:
		return "IllegalOccupied"
	case IllegalOffBoard:
		return "IllegalOffBoard"
	case IllegalKo:
		return "IllegalKo"
	case IllegalSuicide:
		return "IllegalSuicide"
	case InternalError:
		return "InternalError"
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// RuleError reports why Board.Play rejected a move. The zero value is not
// a valid RuleError; always construct via newRuleError.
type RuleError struct {
	Code  Code
	Point Point
	Color Stone
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("board: illegal move %v at %v: %s", e.Color, e.Point, e.Code)
}

func newRuleError(code Code, p Point, c Stone) error {
	return &RuleError{Code: code, Point: p, Color: c}
}
