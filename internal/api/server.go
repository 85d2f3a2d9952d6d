// Package api exposes the board engine over HTTP/JSON for non-GTP front
// ends, grounded on fcarvajalbrown-Go-on-Go/main.go's echo wiring (same
// middleware, same route-per-operation shape), generalized from that
// example's stub handlers into real ones backed by internal/board.
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewServer builds an *echo.Echo with the games REST surface mounted on
// top of the given in-memory game store.
func NewServer(games *GameStore) *echo.Echo {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	h := &handlers{games: games}
	e.POST("/games", h.createGame)
	e.GET("/games/:id", h.getGame)
	e.POST("/games/:id/moves", h.playMove)
	e.GET("/games/:id/score", h.getScore)
	return e
}
