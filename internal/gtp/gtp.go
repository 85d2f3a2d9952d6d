// Package gtp implements a Go Text Protocol shell over internal/board and
// internal/playout.
//
// Grounded on gongo_gtp.go: the same request/response/handler shape and the
// same vertex codec, rewired from gongo's GoRobot interface onto
// board.Board directly, and extended with final_score (zzgo/Pachi's
// board_official_score/board_fast_score, absent from gongo's own GTP
// shell) and a playout_score analyze command that exercises
// internal/playout.
package gtp

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"golang.org/x/exp/rand"

	"github.com/skybrian/goban/internal/board"
	"github.com/skybrian/goban/internal/playout"
)

// MaxBoardSize mirrors the GTP protocol ceiling; GTP itself never supports
// boards bigger than 25x25.
const MaxBoardSize = board.MaxBoardSize

// Engine is the state one GTP session drives: a live board plus the
// playout pool its analyze commands sample from.
type Engine struct {
	board       *board.Board
	pool        *playout.Pool
	rng         *rand.Rand
	sampleCount int
}

// NewEngine builds an engine around a fresh board of the given size, komi,
// and suicide policy.
func NewEngine(size int, komi float64, prohibitSuicide bool, pool *playout.Pool, sampleCount int, seed uint64) (*Engine, error) {
	b, err := board.New(size, komi, prohibitSuicide)
	if err != nil {
		return nil, errors.Wrap(err, "gtp: create board")
	}
	return &Engine{
		board:       b,
		pool:        pool,
		rng:         rand.New(rand.NewSource(seed)),
		sampleCount: sampleCount,
	}, nil
}

var wordPattern = regexp.MustCompile(`\S+`)

// Run reads commands from in, dispatches them against engine, and writes
// GTP responses to out until "quit" is received or in returns an error.
func Run(ctx context.Context, engine *Engine, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	for {
		command, args, err := parseCommand(reader)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "gtp: read command")
		}
		if command == "" {
			continue
		}

		h, ok := handlers[command]
		if !ok {
			fmt.Fprint(out, errorResponse("unknown command").String())
			continue
		}
		fmt.Fprint(out, h(ctx, request{engine, args}).String())
		if command == "quit" {
			return nil
		}
	}
}

func parseCommand(in *bufio.Reader) (cmd string, args []string, err error) {
	for {
		line, err := in.ReadString('\n')
		if err != nil {
			return "", nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			if err != nil {
				return "", nil, err
			}
			continue
		}
		words := wordPattern.FindAllString(line, -1)
		return strings.ToLower(words[0]), words[1:], nil
	}
}

type request struct {
	engine *Engine
	args   []string
}

type response struct {
	message string
	success bool
}

func successResponse(message string) response { return response{message, true} }
func errorResponse(message string) response   { return response{message, false} }

func (r response) String() string {
	prefix := "="
	if !r.success {
		prefix = "?"
	}
	return prefix + " " + r.message + "\n\n"
}

type handler func(ctx context.Context, req request) response

var handlers = map[string]handler{
	"protocol_version": func(ctx context.Context, req request) response { return successResponse("2") },
	"name":             func(ctx context.Context, req request) response { return successResponse("goban") },
	"version":          func(ctx context.Context, req request) response { return successResponse("1.0") },
	"quit":             func(ctx context.Context, req request) response { return successResponse("") },
	"known_command":    handleKnownCommand,
	"list_commands":    handleListCommands,
	"boardsize":        handleBoardsize,
	"clear_board":      handleClearBoard,
	"komi":             handleKomi,
	"play":             handlePlay,
	"genmove":          handleGenmove,
	"final_score":      handleFinalScore,
	"showboard":        handleShowboard,
	"playout_score":    handlePlayoutScore,
}

func handleKnownCommand(ctx context.Context, req request) response {
	if len(req.args) != 1 {
		return errorResponse("wrong number of arguments")
	}
	_, ok := handlers[req.args[0]]
	return successResponse(fmt.Sprint(ok))
}

func handleListCommands(ctx context.Context, req request) response {
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return successResponse(strings.Join(names, "\n"))
}

func handleBoardsize(ctx context.Context, req request) response {
	if len(req.args) != 1 {
		return errorResponse("wrong number of arguments")
	}
	size, err := strconv.Atoi(req.args[0])
	if err != nil {
		return errorResponse("unacceptable size")
	}
	if err := req.engine.board.Resize(size); err != nil {
		return errorResponse("unacceptable size")
	}
	return successResponse("")
}

func handleClearBoard(ctx context.Context, req request) response {
	req.engine.board.Clear()
	return successResponse("")
}

func handleKomi(ctx context.Context, req request) response {
	if len(req.args) != 1 {
		return errorResponse("wrong number of arguments")
	}
	komi, err := strconv.ParseFloat(req.args[0], 64)
	if err != nil {
		return errorResponse("syntax error")
	}
	req.engine.board.SetKomi(komi)
	return successResponse("")
}

func handlePlay(ctx context.Context, req request) response {
	if len(req.args) != 2 {
		return errorResponse("wrong number of arguments")
	}
	color, ok := board.ParseColor(req.args[0])
	if !ok {
		return errorResponse("syntax error")
	}
	x, y, ok := board.ParseVertex(req.args[1])
	if !ok {
		return errorResponse("syntax error")
	}
	if _, err := req.engine.board.Play(color, x, y); err != nil {
		return errorResponse(errors.Wrapf(err, "illegal move %s", req.args[1]).Error())
	}
	return successResponse("")
}

func handleGenmove(ctx context.Context, req request) response {
	if len(req.args) != 1 {
		return errorResponse("wrong number of arguments")
	}
	color, ok := board.ParseColor(req.args[0])
	if !ok {
		return errorResponse("syntax error")
	}

	p, err := req.engine.board.PlayRandom(color, req.engine.rng)
	if err != nil {
		return errorResponse(errors.Wrap(err, "genmove").Error())
	}
	if p == board.Pass {
		return successResponse("pass")
	}
	x, y := req.engine.board.Coords(p)
	return successResponse(board.FormatVertex(x, y))
}

func handleFinalScore(ctx context.Context, req request) response {
	mode := "official"
	if len(req.args) == 1 {
		mode = strings.ToLower(req.args[0])
	}
	var result board.Score
	switch mode {
	case "fast":
		result = req.engine.board.FastScore()
	case "official":
		result = req.engine.board.OfficialScore()
	default:
		return errorResponse("unknown scoring mode")
	}
	return successResponse(formatScoreResult(result))
}

func formatScoreResult(s board.Score) string {
	diff := s.Black - s.White
	if diff > 0 {
		return fmt.Sprintf("B+%.1f", diff)
	}
	if diff < 0 {
		return fmt.Sprintf("W+%.1f", -diff)
	}
	return "0"
}

// playout_score is not a standard GTP command; it's a gogui-analyze-style
// extension that runs the engine's sample count worth of random playouts
// from the current position through internal/playout.Pool and reports the
// average terminal score, the pool's only caller in this shell.
func handlePlayoutScore(ctx context.Context, req request) response {
	if len(req.args) != 1 {
		return errorResponse("wrong number of arguments")
	}
	color, ok := board.ParseColor(req.args[0])
	if !ok {
		return errorResponse("syntax error")
	}
	if req.engine.pool == nil {
		return errorResponse("no playout pool configured")
	}
	results := req.engine.pool.Simulate(ctx, req.engine.board, color, req.engine.sampleCount)
	var black, white float64
	for _, r := range results {
		black += r.Black
		white += r.White
	}
	n := float64(len(results))
	if n == 0 {
		return successResponse("no samples")
	}
	return successResponse(fmt.Sprintf("B=%.2f W=%.2f (n=%d)", black/n, white/n, len(results)))
}

func handleShowboard(ctx context.Context, req request) response {
	size := req.engine.board.BoardSize()
	var buf bytes.Buffer
	for y := size; y >= 1; y-- {
		for x := 1; x <= size; x++ {
			switch req.engine.board.At(x, y) {
			case board.Empty:
				buf.WriteByte('.')
			case board.White:
				buf.WriteByte('O')
			case board.Black:
				buf.WriteByte('@')
			}
		}
		if y > 1 {
			buf.WriteByte('\n')
		}
	}
	return successResponse(buf.String())
}
