// Package board implements the Go (baduk) board-state engine: stone
// placement, capture, simple ko, suicide policy, eye classification, a fast
// uniform random-move generator for playouts, and area scoring.
//
// The design follows zzgo/Pachi's board.h: positions are 1-D indices into a
// grid framed by a 1-point sentinel border of permanently off-board stones,
// liberties are tracked as an O(1)-maintainable pseudo-liberty count rather
// than a true liberty set, and groups are singly-linked circular chains
// addressed by small integer ids.
package board

import "fmt"

// Move records one ply, as reported by Board.LastMove.
type Move struct {
	Color Stone
	Point Point // Pass for a pass
}

// Board is a single Go position plus enough bookkeeping to apply moves in
// O(1) amortized time. A Board is an exclusive resource of its owner: there
// is no internal locking and no process-wide state. Copy via CopyFrom to
// hand an independent board to another goroutine.
type Board struct {
	size      int // stride: BoardSize + 2, including the sentinel frame
	boardSize int // playable side length
	komi      float64
	prohibitSuicide bool

	moves    int
	lastMove Move
	captures [3]int // indexed by Stone (Black, White)

	stone   []Stone
	group   []GroupID
	next    []Point
	census  []uint16

	free      []Point
	flen      int
	freeIndex []int // free[freeIndex[p]] == p, or -1 if p is not free

	groups       []groupRecord
	freeGroupIDs []GroupID
	nextGroupID  GroupID

	koPoint          Point
	koForbiddenColor Stone

	// scratch buffer reused across capture calls to avoid per-capture
	// allocation; safe because one capture always fully finishes (copies
	// out the count/point it needs) before the next one reuses it.
	captureScratch []Point
}

// New allocates a board with the given playable side length, komi, and
// suicide policy. size must be between 1 and MaxBoardSize.
func New(size int, komi float64, prohibitSuicide bool) (*Board, error) {
	b := &Board{}
	if err := b.Resize(size); err != nil {
		return nil, err
	}
	b.komi = komi
	b.prohibitSuicide = prohibitSuicide
	return b, nil
}

// BoardSize returns the playable side length (excludes the sentinel frame).
func (b *Board) BoardSize() int { return b.boardSize }

// Komi returns the current komi.
func (b *Board) Komi() float64 { return b.komi }

// SetKomi changes komi without otherwise touching the position.
func (b *Board) SetKomi(komi float64) { b.komi = komi }

// ProhibitSuicide reports the current suicide policy.
func (b *Board) ProhibitSuicide() bool { return b.prohibitSuicide }

// SetProhibitSuicide changes the suicide policy without otherwise touching
// the position.
func (b *Board) SetProhibitSuicide(prohibit bool) { b.prohibitSuicide = prohibit }

// Moves returns the number of plies played (including passes) since the
// last Clear/Resize.
func (b *Board) Moves() int { return b.moves }

// LastMove returns the most recently played move.
func (b *Board) LastMove() Move { return b.lastMove }

// Captures returns the running capture tally for one color.
func (b *Board) Captures(color Stone) int { return b.captures[color] }

// At returns the stone at a playable point.
func (b *Board) At(x, y int) Stone { return b.stone[b.point(x, y)] }

// InBounds reports whether (x,y) names a playable point on this board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 1 && x <= b.boardSize && y >= 1 && y <= b.boardSize
}

// Resize reallocates the board for a new playable side length, filling the
// sentinel frame with OffBoard stones and clearing the rest. Any Point
// values obtained before a Resize must be discarded.
func (b *Board) Resize(size int) error {
	if size < 1 || size > MaxBoardSize {
		return fmt.Errorf("board: size %d out of range [1,%d]", size, MaxBoardSize)
	}
	b.boardSize = size
	b.size = size + 2

	n := b.size * b.size
	b.stone = make([]Stone, n)
	b.group = make([]GroupID, n)
	b.next = make([]Point, n)
	b.census = make([]uint16, n)
	b.free = make([]Point, 0, size*size)
	b.flen = 0
	b.freeIndex = make([]int, n)
	b.groups = make([]groupRecord, 1, size*size/2+2)
	b.captureScratch = make([]Point, 0, size*size)

	for i := range b.stone {
		b.stone[i] = OffBoard
		b.freeIndex[i] = -1
	}
	for y := 1; y <= size; y++ {
		for x := 1; x <= size; x++ {
			p := b.point(x, y)
			b.stone[p] = Empty
		}
	}
	for y := 1; y <= size; y++ {
		for x := 1; x <= size; x++ {
			p := b.point(x, y)
			b.recomputeCensus(p)
			b.pushFree(p)
		}
	}

	b.freeGroupIDs = b.freeGroupIDs[:0]
	b.nextGroupID = 0
	b.moves = 0
	b.lastMove = Move{Point: Pass}
	b.captures = [3]int{}
	b.koPoint = Pass
	b.koForbiddenColor = Empty
	return nil
}

// Clear resets the board to the empty position, preserving size and komi.
func (b *Board) Clear() {
	_ = b.Resize(b.boardSize)
}

// Done releases a board's arrays. The board must not be used afterward.
func (b *Board) Done() {
	b.stone = nil
	b.group = nil
	b.next = nil
	b.census = nil
	b.free = nil
	b.freeIndex = nil
	b.groups = nil
	b.freeGroupIDs = nil
	b.captureScratch = nil
}

// CopyFrom performs a deep value copy of src into b: no arrays are shared
// between the two boards afterward. This is the primitive playout workers
// use to fan out a position across goroutines.
func (b *Board) CopyFrom(src *Board) {
	if b.size != src.size {
		if err := b.Resize(src.boardSize); err != nil {
			panic(err)
		}
	}
	copy(b.stone, src.stone)
	copy(b.group, src.group)
	copy(b.next, src.next)
	copy(b.census, src.census)

	b.free = append(b.free[:0], src.free...)
	b.flen = src.flen
	copy(b.freeIndex, src.freeIndex)

	b.groups = append(b.groups[:0], src.groups...)
	b.freeGroupIDs = append(b.freeGroupIDs[:0], src.freeGroupIDs...)
	b.nextGroupID = src.nextGroupID

	b.komi = src.komi
	b.prohibitSuicide = src.prohibitSuicide
	b.moves = src.moves
	b.lastMove = src.lastMove
	b.captures = src.captures
	b.koPoint = src.koPoint
	b.koForbiddenColor = src.koForbiddenColor
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{}
	clone.CopyFrom(b)
	return clone
}

// --- free queue: an unordered set of empty points with O(1) membership ---

func (b *Board) pushFree(p Point) {
	b.free = append(b.free[:b.flen], p)
	b.flen++
	b.freeIndex[p] = b.flen - 1
}

func (b *Board) removeFree(p Point) {
	idx := b.freeIndex[p]
	last := b.flen - 1
	lastPoint := b.free[last]
	b.free[idx] = lastPoint
	b.freeIndex[lastPoint] = idx
	b.flen--
	b.freeIndex[p] = -1
}

// FreeCount returns the number of empty playable points.
func (b *Board) FreeCount() int { return b.flen }

// ForEachPoint calls fn once for every playable point on the board, in
// row-major order.
func (b *Board) ForEachPoint(fn func(x, y int)) {
	for y := 1; y <= b.boardSize; y++ {
		for x := 1; x <= b.boardSize; x++ {
			fn(x, y)
		}
	}
}
