package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"

	"github.com/skybrian/goban/internal/board"
)

// GameStore holds the process's in-memory games keyed by a generated id.
// This façade has no persistence layer — games don't survive a restart.
type GameStore struct {
	games  sync.Map // id string -> *board.Board
	nextID uint64
}

// NewGameStore returns an empty store.
func NewGameStore() *GameStore { return &GameStore{} }

func (s *GameStore) create(size int, komi float64, prohibitSuicide bool) (string, *board.Board, error) {
	b, err := board.New(size, komi, prohibitSuicide)
	if err != nil {
		return "", nil, err
	}
	id := strconv.FormatUint(atomic.AddUint64(&s.nextID, 1), 10)
	s.games.Store(id, b)
	return id, b, nil
}

func (s *GameStore) get(id string) (*board.Board, bool) {
	v, ok := s.games.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*board.Board), true
}

type handlers struct {
	games *GameStore
}

type createGameRequest struct {
	Size            int     `json:"size"`
	Komi            float64 `json:"komi"`
	ProhibitSuicide bool    `json:"prohibit_suicide"`
}

type gameResponse struct {
	ID   string `json:"id"`
	Size int    `json:"size"`
	Komi float64 `json:"komi"`
}

func (h *handlers) createGame(c echo.Context) error {
	req := createGameRequest{Size: 9}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, b, err := h.games.create(req.Size, req.Komi, req.ProhibitSuicide)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, gameResponse{ID: id, Size: b.BoardSize(), Komi: b.Komi()})
}

type gameStateResponse struct {
	ID     string   `json:"id"`
	Size   int      `json:"size"`
	Moves  int      `json:"moves"`
	Grid   []string `json:"grid"` // one row per line, top row (y=size) first; '.'/'@'/'O'
	Captures struct {
		Black int `json:"black"`
		White int `json:"white"`
	} `json:"captures"`
}

func (h *handlers) getGame(c echo.Context) error {
	b, ok := h.games.get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no such game")
	}

	size := b.BoardSize()
	grid := make([]string, size)
	for y := size; y >= 1; y-- {
		var row strings.Builder
		for x := 1; x <= size; x++ {
			switch b.At(x, y) {
			case board.Empty:
				row.WriteByte('.')
			case board.Black:
				row.WriteByte('@')
			case board.White:
				row.WriteByte('O')
			}
		}
		grid[size-y] = row.String()
	}

	resp := gameStateResponse{ID: c.Param("id"), Size: size, Moves: b.Moves(), Grid: grid}
	resp.Captures.Black = b.Captures(board.Black)
	resp.Captures.White = b.Captures(board.White)
	return c.JSON(http.StatusOK, resp)
}

type playMoveRequest struct {
	Color  string `json:"color"`
	Vertex string `json:"vertex"`
}

type playMoveResponse struct {
	Group   uint16 `json:"group"`
	Suicide bool   `json:"suicide"`
}

// playMove applies a move and maps the core's error taxonomy onto HTTP: a
// rule violation is a 409 with the violated code in the body, anything
// else (a malformed request) is a 400.
func (h *handlers) playMove(c echo.Context) error {
	b, ok := h.games.get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no such game")
	}

	var req playMoveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	color, ok := board.ParseColor(req.Color)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid color")
	}
	x, y, ok := board.ParseVertex(req.Vertex)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid vertex")
	}

	gid, err := b.Play(color, x, y)
	if err != nil {
		wrapped := pkgerrors.Wrapf(err, "play %s at %s", req.Color, req.Vertex)
		var ruleErr *board.RuleError
		if errors.As(err, &ruleErr) {
			return c.JSON(http.StatusConflict, map[string]string{
				"code":  ruleErr.Code.String(),
				"error": wrapped.Error(),
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, wrapped.Error())
	}

	return c.JSON(http.StatusOK, playMoveResponse{Group: uint16(gid), Suicide: gid == 0 && x != 0})
}

func (h *handlers) getScore(c echo.Context) error {
	b, ok := h.games.get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no such game")
	}

	mode := c.QueryParam("mode")
	var result board.Score
	switch mode {
	case "fast":
		result = b.FastScore()
	case "", "official":
		result = b.OfficialScore()
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown scoring mode %q", mode))
	}

	return c.JSON(http.StatusOK, map[string]float64{"black": result.Black, "white": result.White})
}
