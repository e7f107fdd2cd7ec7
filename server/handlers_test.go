package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	return NewRouter(NewHandler(nil, func() int64 { return 1 }))
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("GET /health body = %s", w.Body.String())
	}
}

func TestSelectMoveMateInOne(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodPost, "/move",
		`{"fen":"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1","tier":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /move status = %d, body %s", w.Code, w.Body.String())
	}

	var got moveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	move, san := "a1a8", "Ra8#"
	want := moveResponse{
		Move:    &move,
		SAN:     &san,
		FEN:     "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1",
		Outcome: "1-0",
		Method:  "Checkmate",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("POST /move mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectMoveNoLegalMoves(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodPost, "/move",
		`{"fen":"k7/8/1Q6/8/8/8/8/7K b - - 0 1","tier":10}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /move status = %d, body %s", w.Code, w.Body.String())
	}

	var got moveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Move != nil {
		t.Errorf("move = %q, want null", *got.Move)
	}
	if got.Outcome != "1/2-1/2" {
		t.Errorf("outcome = %q, want 1/2-1/2", got.Outcome)
	}
}

func TestSelectMoveBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"tier too high", `{"fen":"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1","tier":11}`},
		{"tier missing", `{"fen":"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"}`},
		{"bad fen", `{"fen":"nonsense","tier":4}`},
		{"not json", `tier=4`},
	}
	router := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/move", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("POST /move status = %d, want 400; body %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want evaluateResponse
	}{
		{"start", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", evaluateResponse{Score: 20}},
		{"stalemate", "k7/8/1Q6/8/8/8/8/7K b - - 0 1", evaluateResponse{}},
		{"white mated", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", evaluateResponse{Mate: -1}},
	}
	router := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/evaluate", `{"fen":"`+tt.fen+`"}`)
			if w.Code != http.StatusOK {
				t.Fatalf("POST /evaluate status = %d, body %s", w.Code, w.Body.String())
			}
			var got evaluateResponse
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("POST /evaluate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
