package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/peterkuimelis/savedata/internal/game"
	"github.com/peterkuimelis/savedata/internal/log"
	"github.com/peterkuimelis/savedata/internal/view"
)

// ToolResponse is the JSON envelope returned by the state-bearing tools.
type ToolResponse struct {
	Result *game.Result     `json:"result,omitempty"`
	Events []view.EventView `json:"events"`
	State  *view.StateView  `json:"state"`
}

// Session holds the roster driven by one MCP process. Tool calls may
// arrive concurrently, so every roster access goes through mu.
type Session struct {
	mu     sync.Mutex
	roster *game.Roster
	events *log.MemoryLogger
	zl     *zap.Logger
}

// NewSession creates a session. events must be the logger the roster was
// built with; its buffer is emptied into each tool response.
func NewSession(roster *game.Roster, events *log.MemoryLogger, zl *zap.Logger) *Session {
	if zl == nil {
		zl = zap.NewNop()
	}
	return &Session{roster: roster, events: events, zl: zl}
}

// apply runs a command and returns the response for it.
func (s *Session) apply(cmd game.Command) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.roster.Apply(cmd)
	if err != nil {
		s.zl.Info("command rejected", zap.String("action", cmd.Action), zap.Error(err))
		return nil, err
	}
	s.zl.Debug("command applied",
		zap.String("action", cmd.Action),
		zap.Bool("applied", res.Applied),
		zap.Int("team_member", s.roster.ActiveTeamMember()),
		zap.Int("points", s.roster.CurrentPoints()),
	)
	resp := s.snapshotLocked()
	resp.Result = &res
	return resp, nil
}

// snapshot returns the current state and any events not yet reported.
func (s *Session) snapshot() *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() *ToolResponse {
	var events []log.GameEvent
	if s.events != nil {
		events = s.events.Take()
	}
	return &ToolResponse{
		Events: view.BuildEventViews(events),
		State:  view.BuildStateView(s.roster),
	}
}

func (s *Session) characters() []view.CharacterView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.BuildCharacterViews(s.roster.Characters())
}

// decodeArgs decodes tool arguments into target using its mapstructure
// tags. JSON numbers arrive as float64 and numeric strings are accepted.
func decodeArgs(args map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	return nil
}

// respondJSON marshals a value to a JSON string.
func respondJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
