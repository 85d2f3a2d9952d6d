package board

// GroupID identifies a live group of connected same-color stones. Zero
// means "no group" (an empty or off-board point).
type GroupID uint16

// groupRecord is the per-group slab entry: a pseudo-liberty count and the
// head of the group's circular stone chain, mirroring zzgo/Pachi
// board.h's `struct group`.
type groupRecord struct {
	libs      int
	baseStone Point
	inUse     bool
}

// allocGroup reserves a group id, reusing a freed slot when available so the
// slab never grows unboundedly across a long game.
func (b *Board) allocGroup(base Point, libs int) GroupID {
	var gid GroupID
	if n := len(b.freeGroupIDs); n > 0 {
		gid = b.freeGroupIDs[n-1]
		b.freeGroupIDs = b.freeGroupIDs[:n-1]
	} else {
		b.nextGroupID++
		gid = b.nextGroupID
		if int(gid) >= len(b.groups) {
			grown := make([]groupRecord, int(gid)+1)
			copy(grown, b.groups)
			b.groups = grown
		}
	}
	b.groups[gid] = groupRecord{libs: libs, baseStone: base, inUse: true}
	return gid
}

func (b *Board) freeGroup(gid GroupID) {
	b.groups[gid] = groupRecord{}
	b.freeGroupIDs = append(b.freeGroupIDs, gid)
}

// GroupLibs returns a group's pseudo-liberty count, counted once per
// stone-to-empty edge, not once per distinct empty neighbor.
func (b *Board) GroupLibs(gid GroupID) int {
	return b.groups[gid].libs
}

// GroupCaptured reports whether a group's pseudo-liberty count has reached
// zero. This is the operative capture predicate.
func (b *Board) GroupCaptured(gid GroupID) bool {
	return b.groups[gid].libs == 0
}

// GroupAt returns the group id occupying a point, or 0 if empty/off-board.
func (b *Board) GroupAt(p Point) GroupID {
	return b.group[p]
}

// spliceChains merges two disjoint circular singly-linked chains into one
// by swapping the next-pointers of one node from each list. This is the
// classic O(1) circular-list splice: because both lists are cycles, cutting
// and rejoining at any one node from each side reconnects them into a single
// cycle containing every node of both. Reassigning the `group[]` id of every
// absorbed stone is still a separate O(group-size) walk (see mergeGroups).
func (b *Board) spliceChains(a, c Point) {
	b.next[a], b.next[c] = b.next[c], b.next[a]
}

// forEachInGroup walks a group's circular chain starting at its base stone,
// calling fn once per stone. Matches zzgo/Pachi board.h's foreach_in_group
// iterator.
func (b *Board) forEachInGroup(gid GroupID, fn func(Point)) {
	base := b.groups[gid].baseStone
	p := base
	for {
		fn(p)
		p = b.next[p]
		if p == base {
			return
		}
	}
}

// groupSize counts the stones in a group by walking its chain.
func (b *Board) groupSize(gid GroupID) int {
	n := 0
	b.forEachInGroup(gid, func(Point) { n++ })
	return n
}
