package board

// captureGroup removes every stone of a dead group from the board: each
// point goes back to the free queue, the neighbor census is corrected for
// the color-to-empty transition, and every still-live neighboring group
// gains one pseudo-liberty per edge it shared with the removed stones.
// Returns the number of stones removed, and (when exactly one stone was
// removed) that point — Board.Play needs it to decide whether this move
// sets a new ko point.
//
// Grounded on zzgo/Pachi board.h's group_capture / foreach_in_group, and
// on robot.go's capture loop (which freed stones back into its own
// free-point tracking the same way).
func (b *Board) captureGroup(gid GroupID) (count int, onlyPoint Point) {
	b.captureScratch = b.captureScratch[:0]
	b.forEachInGroup(gid, func(p Point) {
		b.captureScratch = append(b.captureScratch, p)
	})
	capturedColor := b.stone[b.captureScratch[0]]

	for _, p := range b.captureScratch {
		b.stone[p] = Empty
		b.group[p] = 0
		b.pushFree(p)
	}
	for _, p := range b.captureScratch {
		for _, n := range b.orthogonalNeighbors(p) {
			b.decNeighborCount(n, capturedColor)
			b.incNeighborCount(n, Empty)
			if hg := b.group[n]; hg != 0 {
				b.groups[hg].libs++
			}
		}
	}

	count = len(b.captureScratch)
	b.freeGroup(gid)
	if count == 1 {
		onlyPoint = b.captureScratch[0]
	} else {
		onlyPoint = Pass
	}
	return count, onlyPoint
}
