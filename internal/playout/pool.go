// Package playout runs independent random games concurrently over copies
// of a position: one *board.Board scratch copy per worker, no locks, no
// process-wide state.
//
// Grounded on multirobot.go's slave-robot fan-out: one robot (here, one
// board + rng) per worker, synced from the root position via CopyFrom
// before each batch, results collected with a WaitGroup rather than
// multirobot.go's raw `chan float64` since results are order-independent
// and never need to race against each other.
package playout

import (
	"context"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/skybrian/goban/internal/board"
)

// MaxMoves caps a single playout so a degenerate fill-in sequence (every
// legal move is suicide-prohibited-adjacent dame on a tiny board) can't
// run unbounded; zzgo.c's own playout driver carries an equivalent cap.
const MaxMoves = 1000

// Result is one playout's terminal score, read off FastScore.
type Result struct {
	Black, White float64
}

// Pool holds one scratch board and one RNG per worker. Both are private to
// the worker's goroutine for the lifetime of the pool; Simulate never
// shares a board or an RNG across goroutines.
type Pool struct {
	workers int
	scratch []*board.Board
	rngs    []*rand.Rand
}

// New creates a pool of the given worker count, each with its own RNG
// seeded deterministically off seed so a benchmark run is reproducible.
// workers is clamped to at least 1.
func New(workers int, seed uint64) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{workers: workers}
	p.scratch = make([]*board.Board, workers)
	p.rngs = make([]*rand.Rand, workers)
	for i := 0; i < workers; i++ {
		scratch, err := board.New(1, 0, false)
		if err != nil {
			panic(err) // size 1 is always in range
		}
		p.scratch[i] = scratch
		p.rngs[i] = rand.New(rand.NewSource(seed + uint64(i)))
	}
	return p
}

// Simulate runs n independent random playouts starting from root with
// toMove to play first, and returns each one's terminal FastScore. root is
// never mutated: every playout works on a worker's scratch board, freshly
// copied from root. Work is split evenly across the pool's workers; ctx
// cancellation stops queuing new playouts but lets in-flight ones finish.
func (p *Pool) Simulate(ctx context.Context, root *board.Board, toMove board.Stone, n int) []Result {
	results := make([]Result, n)
	if n == 0 {
		return results
	}

	perWorker := (n + p.workers - 1) / p.workers
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		start := w * perWorker
		if start >= n {
			break
		}
		end := start + perWorker
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			scratch := p.scratch[w]
			rng := p.rngs[w]
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				scratch.CopyFrom(root)
				results[i] = playOut(scratch, toMove, rng)
			}
		}(w, start, end)
	}
	wg.Wait()
	return results
}

// playOut alternates uniform random moves until two consecutive passes or
// MaxMoves is reached, then reads off the fast area score.
func playOut(b *board.Board, color board.Stone, rng *rand.Rand) Result {
	consecutivePasses := 0
	for i := 0; i < MaxMoves && consecutivePasses < 2; i++ {
		p, err := b.PlayRandom(color, rng)
		if err != nil {
			break // leave the partial position; the score still reads out fine
		}
		if p == board.Pass {
			consecutivePasses++
		} else {
			consecutivePasses = 0
		}
		color = color.Opponent()
	}
	score := b.FastScore()
	return Result{Black: score.Black, White: score.White}
}
