package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer() (*GameStore, http.Handler) {
	games := NewGameStore()
	return games, NewServer(games)
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateGameDefaultsToNineBySize(t *testing.T) {
	_, h := newTestServer()
	rec := doRequest(t, h, http.MethodPost, "/games", "{}")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp gameResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Size != 9 {
		t.Errorf("Size = %d, want 9", resp.Size)
	}
	if resp.ID == "" {
		t.Errorf("expected a non-empty game id")
	}
}

func TestCreateGameWithExplicitSizeAndKomi(t *testing.T) {
	_, h := newTestServer()
	rec := doRequest(t, h, http.MethodPost, "/games", `{"size":5,"komi":6.5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp gameResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Size != 5 || resp.Komi != 6.5 {
		t.Errorf("got %+v, want size=5 komi=6.5", resp)
	}
}

func TestGetGameNotFound(t *testing.T) {
	_, h := newTestServer()
	rec := doRequest(t, h, http.MethodGet, "/games/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func createGame(t *testing.T, h http.Handler, body string) gameResponse {
	t.Helper()
	rec := doRequest(t, h, http.MethodPost, "/games", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("create game: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp gameResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return resp
}

func TestPlayMoveThenGetGameReflectsIt(t *testing.T) {
	_, h := newTestServer()
	game := createGame(t, h, `{"size":5}`)

	rec := doRequest(t, h, http.MethodPost, "/games/"+game.ID+"/moves", `{"color":"b","vertex":"C3"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("play move: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, h, http.MethodGet, "/games/"+game.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get game: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var state gameStateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if state.Moves != 1 {
		t.Errorf("Moves = %d, want 1", state.Moves)
	}
	want := "..@.."
	if state.Grid[2] != want {
		t.Errorf("Grid[2] = %q, want %q (row y=3 of 5)", state.Grid[2], want)
	}
}

func TestPlayMoveRuleViolationReturnsConflictWithCode(t *testing.T) {
	_, h := newTestServer()
	game := createGame(t, h, `{"size":5}`)

	rec := doRequest(t, h, http.MethodPost, "/games/"+game.ID+"/moves", `{"color":"b","vertex":"C3"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("first move: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, h, http.MethodPost, "/games/"+game.ID+"/moves", `{"color":"w","vertex":"C3"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409, body = %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["code"] != "IllegalOccupied" {
		t.Errorf("code = %q, want IllegalOccupied", body["code"])
	}
}

func TestPlayMoveMalformedBodyReturnsBadRequest(t *testing.T) {
	_, h := newTestServer()
	game := createGame(t, h, `{"size":5}`)

	rec := doRequest(t, h, http.MethodPost, "/games/"+game.ID+"/moves", `{"color":"purple","vertex":"C3"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400, body = %s", rec.Code, rec.Body.String())
	}
}

func TestGetScoreModes(t *testing.T) {
	_, h := newTestServer()
	game := createGame(t, h, `{"size":3}`)
	doRequest(t, h, http.MethodPost, "/games/"+game.ID+"/moves", `{"color":"b","vertex":"B2"}`)

	rec := doRequest(t, h, http.MethodGet, "/games/"+game.ID+"/score?mode=fast", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var fast map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &fast); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fast["black"] != 9 || fast["white"] != 0 {
		t.Errorf("fast score = %+v, want black=9 white=0", fast)
	}

	rec = doRequest(t, h, http.MethodGet, "/games/"+game.ID+"/score?mode=bogus", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for an unknown mode", rec.Code)
	}
}
