package board

// IsEyelike reports whether every orthogonal neighbor of p is either color
// or off-board — the cheap, purely-local predicate used as a fast filter
// before the more expensive diagonal check.
func (b *Board) IsEyelike(p Point, color Stone) bool {
	return b.neighborCount(p, color)+b.neighborCount(p, OffBoard) == 4
}

// IsOnePointEye reports whether p is a true single-point eye for color: p
// is empty, eyelike, and the diagonal neighbors don't contain too many
// enemy stones. An off-board diagonal counts as an enemy (it can never be
// friendly territory), which is why corners and edges get a stricter
// threshold than interior points:
//
//   - interior (all 4 diagonals on-board): at most 1 diagonal enemy
//   - edge/corner (1 or more diagonals off-board): 0 diagonal enemies
//
// Grounded on robot.go's wouldFillEye (`enemies+haveEdge < 2`), generalized
// from there-or-pass to a standalone query other callers (scoring, the
// random playout's own-eye rejection) can use directly.
func (b *Board) IsOnePointEye(p Point, color Stone) bool {
	if b.stone[p] != Empty {
		return false
	}
	if !b.IsEyelike(p, color) {
		return false
	}
	enemy := color.Opponent()
	enemies := 0
	haveEdge := false
	for _, d := range b.diagonalNeighbors(p) {
		switch b.stone[d] {
		case enemy:
			enemies++
		case OffBoard:
			haveEdge = true
		}
	}
	if haveEdge {
		return enemies == 0
	}
	return enemies <= 1
}

// AtariPoint returns a group's single liberty point, if it has exactly one.
// GroupLibs alone isn't enough to tell: pseudo-liberties count stone-to-empty
// edges, so a group bordering one empty point through two different member
// stones has libs == 2 despite having only one real escape point.
func (b *Board) AtariPoint(gid GroupID) (Point, bool) {
	liberty := Pass
	distinct := 0
	var seen [4]Point // a group's distinct liberties rarely exceed a handful in atari
	seenCount := 0
	b.forEachInGroup(gid, func(p Point) {
		for _, q := range b.orthogonalNeighbors(p) {
			if b.stone[q] != Empty {
				continue
			}
			already := false
			for i := 0; i < seenCount; i++ {
				if seen[i] == q {
					already = true
					break
				}
			}
			if already {
				continue
			}
			if seenCount < len(seen) {
				seen[seenCount] = q
				seenCount++
			}
			distinct++
			liberty = q
		}
	})
	if distinct == 1 {
		return liberty, true
	}
	return Pass, false
}
