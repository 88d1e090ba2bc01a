package game

import (
	"go-pairs/internal/board"
	"go-pairs/internal/feedback"
	"go-pairs/internal/state"

	"github.com/rs/zerolog"
)

// Session owns the current game and keeps in-memory tallies across resets.
// Nothing here outlives the process.
type Session struct {
	CurrentGame *Game
	Layout      board.Layout
	Log         zerolog.Logger

	GamesPlayed  int
	GamesWon     int
	BestAttempts int // fewest attempts in a won game, 0 until the first win

	recorded bool // current game's win already tallied
}

func NewSession(faces []board.Face, layout board.Layout, sink feedback.Sink, opts state.GameOptions, log zerolog.Logger) (*Session, error) {
	g, err := NewGame(faces, layout, sink, opts)
	if err != nil {
		return nil, err
	}

	s := &Session{
		CurrentGame: g,
		Layout:      layout,
		Log:         log,
		GamesPlayed: 1,
	}
	s.Log.Info().Str("game", g.ID).Int("faces", len(faces)).Msg("game started")
	return s, nil
}

// Update syncs the tallies with the current game. Call it after every input or tick.
func (s *Session) Update() {
	g := s.CurrentGame
	if g == nil || !g.Won() || s.recorded {
		return
	}
	s.recorded = true
	s.GamesWon++
	if s.BestAttempts == 0 || g.Attempts() < s.BestAttempts {
		s.BestAttempts = g.Attempts()
	}
	s.Log.Info().
		Str("game", g.ID).
		Int("attempts", g.Attempts()).
		Int("best", s.BestAttempts).
		Msg("game won")
}

// Reset starts a new game. It is legal from any state.
func (s *Session) Reset() {
	prev := s.CurrentGame.ID
	s.CurrentGame.Reset()
	s.recorded = false
	s.GamesPlayed++
	s.Log.Info().
		Str("game", s.CurrentGame.ID).
		Str("previous", prev).
		Msg("game reset")
}

// IsFinished reports whether the current game has been won.
func (s *Session) IsFinished() bool {
	return s.CurrentGame != nil && s.CurrentGame.Won()
}
