package board

// Score is an area score: each side's stones-on-board plus the territory
// that borders only that color, White's total including komi. A region
// bordering both colors (dame) scores for neither.
type Score struct {
	Black float64
	White float64
}

// FastScore computes area score directly from the current position with no
// life-and-death judgment, the same flood-fill union over empty regions
// robot.go's getEasyScore uses for its Monte Carlo playout payoff. Suitable
// for scoring the tail end of a random playout, where stray single stones
// have normally already died or filled in.
func (b *Board) FastScore() Score {
	return b.areaScore(nil)
}

// OfficialScore first marks as dead any stone whose group borders no true
// one-point eye, removes those stones from the count, and then applies the
// same area-scoring flood fill. This is the coarse "no eyes, no life"
// heuristic a human referee's double-check approximates; it is not full
// Chinese-rules life-and-death resolution, but it catches the common case
// the fast score gets wrong: large dead groups that were never actually
// captured on the board because nobody played out the capture.
func (b *Board) OfficialScore() Score {
	return b.areaScore(b.deadStones())
}

func (b *Board) deadStones() map[Point]bool {
	dead := map[Point]bool{}
	seenGroup := map[GroupID]bool{}
	for y := 1; y <= b.boardSize; y++ {
		for x := 1; x <= b.boardSize; x++ {
			p := b.point(x, y)
			color := b.stone[p]
			if color != Black && color != White {
				continue
			}
			gid := b.group[p]
			if seenGroup[gid] {
				continue
			}
			seenGroup[gid] = true
			if !b.groupHasEye(gid, color) {
				b.forEachInGroup(gid, func(q Point) { dead[q] = true })
			}
		}
	}
	return dead
}

func (b *Board) groupHasEye(gid GroupID, color Stone) bool {
	hasEye := false
	b.forEachInGroup(gid, func(p Point) {
		if hasEye {
			return
		}
		for _, q := range b.orthogonalNeighbors(p) {
			if b.stone[q] == Empty && b.IsOnePointEye(q, color) {
				hasEye = true
				return
			}
		}
	})
	return hasEye
}

func (b *Board) areaScore(dead map[Point]bool) Score {
	effective := func(p Point) Stone {
		if dead != nil && dead[p] {
			return Empty
		}
		return b.stone[p]
	}

	visited := make([]bool, len(b.stone))
	var blackStones, whiteStones, blackArea, whiteArea int

	for y := 1; y <= b.boardSize; y++ {
		for x := 1; x <= b.boardSize; x++ {
			p := b.point(x, y)
			switch effective(p) {
			case Black:
				blackStones++
			case White:
				whiteStones++
			case Empty:
				if visited[p] {
					continue
				}
				size, bordersBlack, bordersWhite := b.floodEmptyRegion(p, effective, visited)
				switch {
				case bordersBlack && !bordersWhite:
					blackArea += size
				case bordersWhite && !bordersBlack:
					whiteArea += size
				}
			}
		}
	}

	return Score{
		Black: float64(blackStones + blackArea),
		White: float64(whiteStones+whiteArea) + b.komi,
	}
}

// floodEmptyRegion walks the connected region of points effective() treats
// as empty starting at p (a plain BFS over the free-point frontier; dead
// stones are transparent to it, so territory flows through a captured-in-
// place group the same as if it had actually been lifted off the board).
func (b *Board) floodEmptyRegion(p Point, effective func(Point) Stone, visited []bool) (size int, bordersBlack, bordersWhite bool) {
	stack := []Point{p}
	visited[p] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		for _, q := range b.orthogonalNeighbors(cur) {
			switch effective(q) {
			case Empty:
				if !visited[q] {
					visited[q] = true
					stack = append(stack, q)
				}
			case Black:
				bordersBlack = true
			case White:
				bordersWhite = true
			}
		}
	}
	return size, bordersBlack, bordersWhite
}
