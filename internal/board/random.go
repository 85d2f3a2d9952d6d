package board

// randomTriesCap bounds the number of uniform draws PlayRandom makes before
// falling back to a linear scan of the free queue. Keeps the common case
// (almost every candidate is legal) O(1) while still terminating quickly
// when most of the board is someone's eyes late in a playout.
const randomTriesCap = 10

// Chooser is the one method PlayRandom needs from a random source. A
// *rand.Rand (golang.org/x/exp/rand, or math/rand) satisfies this
// structurally; tests substitute a deterministic fake the same way
// robot.go's playRandomGame took a Randomness interface instead of a
// concrete generator, which is what lets gongo_robot_test.go enumerate
// every possible random playout exhaustively on tiny boards.
type Chooser interface {
	Intn(n int) int
}

// PlayRandom plays a uniformly random legal, non-self-eye-filling move for
// color and returns the point played (Pass if none existed). rng is
// injected per call rather than held on the Board or in a package global,
// so concurrent playouts never share mutable RNG state.
//
// Grounded on robot.go's playRandomGame: draw from the free-point pool,
// reject self-eye fills and illegal moves, retry a bounded number of times,
// then fall back to an exhaustive scan before conceding a pass.
func (b *Board) PlayRandom(color Stone, rng Chooser) (Point, error) {
	if b.flen == 0 {
		_, err := b.Play(color, 0, 0)
		return Pass, err
	}

	tries := randomTriesCap
	if tries > b.flen {
		tries = b.flen
	}
	for i := 0; i < tries; i++ {
		p := b.free[rng.Intn(b.flen)]
		if b.randomCandidateLegal(color, p) {
			return b.playPoint(color, p)
		}
	}
	for i := 0; i < b.flen; i++ {
		p := b.free[i]
		if b.randomCandidateLegal(color, p) {
			return b.playPoint(color, p)
		}
	}
	_, err := b.Play(color, 0, 0)
	return Pass, err
}

// randomCandidateLegal is a read-only check: true iff p would both be a
// legal move for color and not fill color's own eye. No board state is
// touched, so rejecting a candidate costs nothing to undo.
func (b *Board) randomCandidateLegal(color Stone, p Point) bool {
	if b.IsOnePointEye(p, color) {
		return false
	}
	if p == b.koPoint && color == b.koForbiddenColor {
		return false
	}
	if b.prohibitSuicide && b.precheckSuicide(color, p) {
		return false
	}
	return true
}

func (b *Board) playPoint(color Stone, p Point) (Point, error) {
	x, y := b.Coords(p)
	_, err := b.Play(color, x, y)
	return p, err
}
