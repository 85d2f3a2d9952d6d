package playout

import (
	"context"
	"testing"

	"github.com/skybrian/goban/internal/board"
)

func newRootBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(3, 0.5, true)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	if _, err := b.Play(board.Black, 2, 2); err != nil {
		t.Fatalf("seeding root board: %v", err)
	}
	return b
}

func TestSimulateReturnsOneResultPerPlayout(t *testing.T) {
	root := newRootBoard(t)
	pool := New(3, 1)
	results := pool.Simulate(context.Background(), root, board.White, 10)
	if len(results) != 10 {
		t.Fatalf("len(results) = %d, want 10", len(results))
	}
}

func TestSimulateZeroPlayoutsReturnsEmpty(t *testing.T) {
	root := newRootBoard(t)
	pool := New(2, 1)
	results := pool.Simulate(context.Background(), root, board.Black, 0)
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestSimulateNeverMutatesRoot(t *testing.T) {
	root := newRootBoard(t)
	before := root.FastScore()
	moves := root.Moves()

	pool := New(4, 42)
	pool.Simulate(context.Background(), root, board.White, 40)

	after := root.FastScore()
	if before != after {
		t.Errorf("root score changed from %+v to %+v after Simulate", before, after)
	}
	if root.Moves() != moves {
		t.Errorf("root move count changed from %d to %d after Simulate", moves, root.Moves())
	}
}

func TestSimulateIsDeterministicForAGivenSeed(t *testing.T) {
	root := newRootBoard(t)

	run := func(seed uint64) []Result {
		pool := New(2, seed)
		return pool.Simulate(context.Background(), root, board.Black, 20)
	}

	first := run(7)
	second := run(7)
	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("result %d differs between identically-seeded runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSimulateSingleWorkerMatchesSingleWorkerCount(t *testing.T) {
	root := newRootBoard(t)
	pool := New(1, 5)
	results := pool.Simulate(context.Background(), root, board.White, 6)
	if len(results) != 6 {
		t.Fatalf("len(results) = %d, want 6", len(results))
	}
	for i, r := range results {
		if r.Black < 0 || r.White < 0 {
			t.Errorf("result %d has a negative score: %+v", i, r)
		}
	}
}
