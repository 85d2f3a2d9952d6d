package board

import "testing"

// fakeChooser is a deterministic Chooser that can be driven through every
// possible sequence of choices a caller might make, one sequence per run,
// like a depth-first search (or an odometer: the last call increments
// first, carrying into earlier calls once its range is exhausted). Ported
// from gongo_robot_test.go's fakeRandomness, used there to exhaustively
// enumerate every random playout on a 1x1/2x2 board.
//
// Invariant: for index i, every sequence of choices has already been tried
// that begins with outputs[0..i-1] followed by any value in [0, outputs[i]).
const maxChooserCalls = 64

type fakeChooser struct {
	inputs  [maxChooserCalls]int
	outputs [maxChooserCalls]int
	callCount int
}

func (r *fakeChooser) Intn(n int) int {
	if n < 1 {
		panic("fakeChooser.Intn: n must be positive")
	}
	if n == 1 {
		// no real choice, so it doesn't consume an odometer slot.
		return 0
	}
	r.inputs[r.callCount] = n
	if r.outputs[r.callCount] >= n {
		panic("fakeChooser: ranges changed between runs, enumeration is unsound")
	}
	result := r.outputs[r.callCount]
	r.callCount++
	return result
}

// next advances the odometer to the next untried sequence. Returns false
// once every sequence has been tried.
func (r *fakeChooser) next() bool {
	for i := r.callCount - 1; i >= 0; i-- {
		if r.outputs[i] < r.inputs[i]-1 {
			r.outputs[i]++
			for j := i + 1; j < maxChooserCalls; j++ {
				r.outputs[j] = 0
			}
			r.callCount = 0
			return true
		}
	}
	return false
}

func TestFakeChooserEnumeratesEveryCombination(t *testing.T) {
	r := new(fakeChooser)
	seen := map[[2]int]bool{}
	count := 0
	for {
		a := r.Intn(2)
		b := r.Intn(3)
		seen[[2]int{a, b}] = true
		count++
		if !r.next() {
			break
		}
	}
	if count != 6 {
		t.Fatalf("expected 6 runs (2x3 combinations), got %d", count)
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 distinct (a,b) pairs, got %d: %v", len(seen), seen)
	}
}

func TestFakeChooserSkipsTrivialChoices(t *testing.T) {
	// Intn(1) never has more than one outcome, so it shouldn't grow the
	// odometer or prevent termination after the real choice is exhausted.
	r := new(fakeChooser)
	count := 0
	for {
		_ = r.Intn(1)
		a := r.Intn(2)
		_ = a
		count++
		if !r.next() {
			break
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 runs (Intn(1) contributes no branching), got %d", count)
	}
}

func TestPlayRandomOnOneByOneBoardIsFullyDetermined(t *testing.T) {
	// A 1x1 board has exactly one point. On the empty board it is a
	// one-point eye for both colors (every neighbor and every diagonal is
	// off-board, so there is no diagonal enemy), and a stone there would
	// have no liberty, which newTestBoard's suicide policy forbids: both
	// colors pass. PlayRandom never faces a real choice: the fake records
	// every Intn call with more than one candidate, and r.next() reports
	// false only when there was none, proving there's no hidden branching.
	b := newTestBoard(t, 1)
	r := new(fakeChooser)

	p, err := b.PlayRandom(Black, r)
	if err != nil {
		t.Fatalf("Black PlayRandom: %v", err)
	}
	if p != Pass {
		t.Fatalf("expected Black to pass, got a move")
	}
	checkBoard(t, b, `.`)

	p, err = b.PlayRandom(White, r)
	if err != nil {
		t.Fatalf("White PlayRandom on the empty board: %v", err)
	}
	if p != Pass {
		t.Errorf("expected White to pass as well, got a move")
	}
	if r.next() {
		t.Errorf("expected no further branching on a 1x1 board")
	}
}

func TestPlayRandomTerminatesWithinMoveBudget(t *testing.T) {
	// A fixed (non-branching) chooser drives a full game on a small board to
	// confirm it ends in two passes once no legal non-eye-filling move
	// remains. A 2x2 board would not do: with only simple ko, this chooser's
	// game there repeats the same capture cycle and never passes.
	b := newTestBoard(t, 3)
	r := new(fakeChooser)

	const maxMoves = 9 * 3 // mirrors playRandomGame's len(points)*3 budget
	consecutivePasses := 0
	color := Black
	for i := 0; i < maxMoves && consecutivePasses < 2; i++ {
		p, err := b.PlayRandom(color, r)
		if err != nil {
			t.Fatalf("move %d (%v): %v", i, color, err)
		}
		if p == Pass {
			consecutivePasses++
		} else {
			consecutivePasses = 0
		}
		color = color.Opponent()
	}
	if consecutivePasses != 2 {
		t.Errorf("game did not settle into a double pass within %d moves", maxMoves)
	}
}
