package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/peterkuimelis/savedata/internal/game"
	"github.com/peterkuimelis/savedata/internal/view"
)

// ActionResponse is the body returned by POST /api/actions and /api/undo.
type ActionResponse struct {
	Result game.Result     `json:"result"`
	State  *view.StateView `json:"state"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server exposes a roster over HTTP and pushes state views to WebSocket
// subscribers after every command.
type Server struct {
	mu     sync.Mutex
	roster *game.Roster

	subsMu sync.Mutex
	subs   map[chan []byte]struct{}

	zl  *zap.Logger
	mux *http.ServeMux
}

// NewServer creates a new web server around roster.
func NewServer(roster *game.Roster, zl *zap.Logger) *Server {
	if zl == nil {
		zl = zap.NewNop()
	}
	s := &Server{
		roster: roster,
		subs:   make(map[chan []byte]struct{}),
		zl:     zl,
		mux:    http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /api/state", s.handleState)
	s.mux.HandleFunc("GET /api/characters", s.handleCharacters)
	s.mux.HandleFunc("POST /api/actions", s.handleAction)
	s.mux.HandleFunc("POST /api/undo", s.handleUndo)
	s.mux.HandleFunc("GET /api/lookup", s.handleLookup)
	s.mux.HandleFunc("POST /api/bulk", s.handleBulk)

	// State stream
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	sv := view.BuildStateView(s.roster)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, sv)
}

func (s *Server) handleCharacters(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	chars := view.BuildCharacterViews(s.roster.Characters())
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, chars)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var cmd game.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid body: %v", err)})
		return
	}
	s.apply(w, cmd)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.apply(w, game.Command{Action: game.ActionUndo})
}

// apply runs cmd and publishes the new state. Broadcasting under mu keeps
// subscribers seeing states in command order.
func (s *Server) apply(w http.ResponseWriter, cmd game.Command) {
	s.mu.Lock()
	res, err := s.roster.Apply(cmd)
	var sv *view.StateView
	if err == nil {
		sv = view.BuildStateView(s.roster)
		if res.Applied {
			s.broadcast(sv)
		}
	}
	s.mu.Unlock()

	if err != nil {
		s.zl.Info("command rejected", zap.String("action", cmd.Action), zap.Error(err))
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}
	s.zl.Debug("command applied", zap.String("action", cmd.Action), zap.Bool("applied", res.Applied))
	writeJSON(w, http.StatusOK, ActionResponse{Result: res, State: sv})
}

func statusFor(err error) int {
	if errors.Is(err, game.ErrCardNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

type lookupQuery struct {
	CardType          string `mapstructure:"card_type"`
	Epiphany          string `mapstructure:"epiphany"`
	DuplicatePosition int    `mapstructure:"duplicate_position"`
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	params := make(map[string]any)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	var q lookupQuery
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{WeaklyTypedInput: true, Result: &q})
	if err == nil {
		err = dec.Decode(params)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid query: %v", err)})
		return
	}

	t, err := game.ParseCardType(q.CardType)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	e, err := game.ParseEpiphanyType(q.Epiphany)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if q.DuplicatePosition < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "duplicate_position must be >= 0"})
		return
	}
	writeJSON(w, http.StatusOK, view.BuildLookupView(game.QuickLookup(t, e, q.DuplicatePosition)))
}

func (s *Server) handleBulk(w http.ResponseWriter, r *http.Request) {
	var counts game.BulkCounts
	if err := json.NewDecoder(r.Body).Decode(&counts); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid body: %v", err)})
		return
	}
	writeJSON(w, http.StatusOK, game.BulkTotalsFor(counts))
}

// --- WebSocket stream ---

func (s *Server) subscribe() chan []byte {
	ch := make(chan []byte, 8)
	s.subsMu.Lock()
	s.subs[ch] = struct{}{}
	s.subsMu.Unlock()
	return ch
}

func (s *Server) unsubscribe(ch chan []byte) {
	s.subsMu.Lock()
	delete(s.subs, ch)
	s.subsMu.Unlock()
}

// broadcast sends sv to every subscriber without blocking. Slow subscribers
// miss updates; each message is a full state. Callers hold mu.
func (s *Server) broadcast(sv *view.StateView) {
	data, err := json.Marshal(sv)
	if err != nil {
		s.zl.Error("marshal state", zap.Error(err))
		return
	}
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- data:
		default:
			s.zl.Warn("dropping state update for slow subscriber")
		}
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		s.zl.Warn("websocket accept", zap.Error(err))
		return
	}
	defer wsConn.CloseNow()

	ctx := wsConn.CloseRead(r.Context())
	updates := s.subscribe()
	defer s.unsubscribe(updates)
	s.zl.Info("websocket subscriber connected", zap.String("remote", r.RemoteAddr))

	s.mu.Lock()
	initial, err := json.Marshal(view.BuildStateView(s.roster))
	s.mu.Unlock()
	if err != nil {
		s.zl.Error("marshal state", zap.Error(err))
		return
	}
	if err := writeMessage(ctx, wsConn, initial); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			s.zl.Info("websocket subscriber gone", zap.String("remote", r.RemoteAddr))
			return
		case data := <-updates:
			if err := writeMessage(ctx, wsConn, data); err != nil {
				s.zl.Info("websocket write", zap.Error(err))
				return
			}
		}
	}
}

func writeMessage(ctx context.Context, c *websocket.Conn, data []byte) error {
	return c.Write(ctx, websocket.MessageText, data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
