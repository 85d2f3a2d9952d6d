package board

// Play applies a move for color at 1-based playable coordinates (x,y), or
// passes when x == 0 && y == 0 (the GTP convention; see gongo_gtp.go's
// vertex handling). On success it returns the id of the group the played
// stone now belongs to (0 for a pass or a suicide that removed its own
// group). On failure the board is left exactly as it was and the error is
// a *RuleError.
//
// The legality checks before commit are all read-only, so an illegal move
// never mutates the board: occupied/off-board/ko are simple point lookups,
// and a suicide-without-capture rejection is decided by precheckSuicide
// without touching any group or census state. Only a legal move reaches
// commit.
func (b *Board) Play(color Stone, x, y int) (GroupID, error) {
	if x == 0 && y == 0 {
		b.moves++
		b.lastMove = Move{Color: color, Point: Pass}
		b.koPoint = Pass
		b.koForbiddenColor = Empty
		return 0, nil
	}
	if !b.InBounds(x, y) {
		return 0, newRuleError(IllegalOffBoard, Pass, color)
	}
	p := b.point(x, y)
	if b.stone[p] != Empty {
		return 0, newRuleError(IllegalOccupied, p, color)
	}
	if p == b.koPoint && color == b.koForbiddenColor {
		return 0, newRuleError(IllegalKo, p, color)
	}
	if b.prohibitSuicide && b.precheckSuicide(color, p) {
		return 0, newRuleError(IllegalSuicide, p, color)
	}
	return b.commit(color, p)
}

// precheckSuicide reports, without mutating the board, whether playing
// color at the empty point p would be a suicide: no enemy group captured,
// and the stone's own resulting group left with zero liberties. Because it
// never mutates anything, a positive result can be turned directly into a
// RuleError with no board state to unwind.
//
// A group is captured by this move iff every one of its remaining
// pseudo-liberties runs through p — i.e. libs(g) <= the number of edges
// between p and g. If any neighboring enemy group would be captured, this
// can never be a suicide: removing it always opens at least one liberty
// exactly where the captured stone was.
func (b *Board) precheckSuicide(color Stone, p Point) bool {
	neighbors := b.orthogonalNeighbors(p)
	enemy := color.Opponent()

	var sameGroups [4]GroupID
	sameCount := 0
	sameColorEdges := 0
	emptyNeighbors := 0

	for _, q := range neighbors {
		switch b.stone[q] {
		case Empty:
			emptyNeighbors++
		case color:
			sameColorEdges++
			g := b.group[q]
			seen := false
			for i := 0; i < sameCount; i++ {
				if sameGroups[i] == g {
					seen = true
					break
				}
			}
			if !seen {
				sameGroups[sameCount] = g
				sameCount++
			}
		case enemy:
			g := b.group[q]
			edgesToG := 0
			for _, q2 := range neighbors {
				if b.stone[q2] == enemy && b.group[q2] == g {
					edgesToG++
				}
			}
			if b.groups[g].libs <= edgesToG {
				return false // this neighbor would be captured: not a suicide
			}
		}
	}

	if sameCount == 0 {
		return emptyNeighbors == 0
	}
	total := 0
	for i := 0; i < sameCount; i++ {
		total += b.groups[sameGroups[i]].libs
	}
	return total-sameColorEdges+emptyNeighbors == 0
}

// commit places a known-legal stone and applies the full move sequence:
// neighbor census update, enemy capture, own-group extend/merge with the
// shared-edge liberty correction, the suicide-allowed removal case, and the
// simple-ko bookkeeping. Grounded on robot.go's makeMove combined with the
// group algebra in zzgo/Pachi board.h.
func (b *Board) commit(color Stone, p Point) (GroupID, error) {
	neighbors := b.orthogonalNeighbors(p)
	enemy := color.Opponent()

	b.stone[p] = color
	b.removeFree(p)
	for _, q := range neighbors {
		b.decNeighborCount(q, Empty)
		b.incNeighborCount(q, color)
	}

	var sameGroups [4]GroupID
	sameCount := 0
	sameColorEdges := 0
	var capturedGroups [4]GroupID
	capturedCount := 0

	for _, q := range neighbors {
		switch b.stone[q] {
		case color:
			sameColorEdges++
			g := b.group[q]
			seen := false
			for i := 0; i < sameCount; i++ {
				if sameGroups[i] == g {
					seen = true
					break
				}
			}
			if !seen {
				sameGroups[sameCount] = g
				sameCount++
			}
		case enemy:
			g := b.group[q]
			b.groups[g].libs--
			if b.groups[g].libs == 0 {
				seen := false
				for i := 0; i < capturedCount; i++ {
					if capturedGroups[i] == g {
						seen = true
						break
					}
				}
				if !seen {
					capturedGroups[capturedCount] = g
					capturedCount++
				}
			}
		}
	}

	totalCaptured := 0
	capturedPoint := Pass
	for i := 0; i < capturedCount; i++ {
		n, pt := b.captureGroup(capturedGroups[i])
		totalCaptured += n
		if n == 1 {
			capturedPoint = pt
		}
	}
	if totalCaptured > 0 {
		b.captures[color] += totalCaptured
	}

	emptyNeighbors := 0
	for _, q := range neighbors {
		if b.stone[q] == Empty {
			emptyNeighbors++
		}
	}

	var gid GroupID
	switch sameCount {
	case 0:
		gid = b.allocGroup(p, emptyNeighbors)
		b.next[p] = p
		b.group[p] = gid
	case 1:
		gid = sameGroups[0]
		b.groups[gid].libs += emptyNeighbors - sameColorEdges
		b.spliceIntoGroup(gid, p)
	default:
		gid = b.mergeGroups(sameGroups[:sameCount])
		b.groups[gid].libs += emptyNeighbors - sameColorEdges
		b.spliceIntoGroup(gid, p)
	}

	if totalCaptured == 0 && b.groups[gid].libs == 0 {
		// Suicide: precheckSuicide already refused this when prohibited, so
		// reaching here means the policy allows it. The whole group the new
		// stone joined (not just the stone itself) goes to the free queue.
		b.captureGroup(gid)
		b.koPoint = Pass
		b.koForbiddenColor = Empty
		b.moves++
		b.lastMove = Move{Color: color, Point: p}
		return 0, nil
	}

	// Simple ko: only possible when this move captured exactly one stone
	// and formed a brand-new lone group with exactly one liberty — the
	// classic single-stone recapture shape. sameCount == 0 guarantees the
	// group is the single placed stone, so no group-size walk is needed.
	if totalCaptured == 1 && sameCount == 0 && b.groups[gid].libs == 1 {
		b.koPoint = capturedPoint
		b.koForbiddenColor = enemy
	} else {
		b.koPoint = Pass
		b.koForbiddenColor = Empty
	}

	b.moves++
	b.lastMove = Move{Color: color, Point: p}
	return gid, nil
}

// spliceIntoGroup inserts point p into gid's circular chain right after the
// group's base stone.
func (b *Board) spliceIntoGroup(gid GroupID, p Point) {
	base := b.groups[gid].baseStone
	b.next[p] = b.next[base]
	b.next[base] = p
	b.group[p] = gid
}

// mergeGroups folds every group in groups into groups[0] (the survivor):
// each absorbed group's stones are reassigned to the survivor id (the one
// O(group-size) walk the commit path performs), its chain is spliced into
// the survivor's, its liberties are added in, and its id is freed.
// Reassignment must happen before splicing, while the absorbed group's own
// base-stone boundary still delimits its chain.
func (b *Board) mergeGroups(groups []GroupID) GroupID {
	survivor := groups[0]
	for _, g := range groups[1:] {
		b.forEachInGroup(g, func(p Point) { b.group[p] = survivor })
		b.groups[survivor].libs += b.groups[g].libs
		b.spliceChains(b.groups[survivor].baseStone, b.groups[g].baseStone)
		b.freeGroup(g)
	}
	return survivor
}
