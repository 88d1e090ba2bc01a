package game

import (
	"bytes"
	"go-pairs/internal/board"
	"go-pairs/internal/feedback"
	"go-pairs/internal/state"
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestSession(t *testing.T, log zerolog.Logger) *Session {
	t.Helper()
	opts := state.GameOptions{Rand: rand.New(rand.NewSource(11))}
	sess, err := NewSession(DefaultFaces(), board.DefaultLayout(), &feedback.Recorder{}, opts, log)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return sess
}

func TestSession_Init(t *testing.T) {
	sess := newTestSession(t, zerolog.Nop())

	if sess.CurrentGame == nil {
		t.Fatal("CurrentGame should be initialized")
	}
	if sess.GamesPlayed != 1 || sess.GamesWon != 0 || sess.BestAttempts != 0 {
		t.Errorf("Unexpected initial tallies: %+v", sess)
	}
	if sess.IsFinished() {
		t.Error("Fresh session should not be finished")
	}
}

func TestSession_InitTooFewFaces(t *testing.T) {
	_, err := NewSession(DefaultFaces()[:5], board.DefaultLayout(), nil, state.GameOptions{}, zerolog.Nop())
	if err == nil {
		t.Error("Expected error for too few faces")
	}
}

func TestSession_Progression(t *testing.T) {
	var buf bytes.Buffer
	sess := newTestSession(t, zerolog.New(&buf))

	solve(sess.CurrentGame, 0)
	sess.Update()
	sess.Update() // tallied once

	if !sess.IsFinished() {
		t.Fatal("Session should report the finished game")
	}
	if sess.GamesWon != 1 {
		t.Errorf("Expected 1 game won, got %d", sess.GamesWon)
	}
	if sess.BestAttempts != 12 {
		t.Errorf("Expected best 12, got %d", sess.BestAttempts)
	}
	if strings.Count(buf.String(), "game won") != 1 {
		t.Errorf("Expected one win log line, got %q", buf.String())
	}

	firstID := sess.CurrentGame.ID
	sess.Reset()
	if sess.GamesPlayed != 2 {
		t.Errorf("Expected 2 games played, got %d", sess.GamesPlayed)
	}
	if sess.IsFinished() {
		t.Error("Reset should start an unfinished game")
	}
	if !strings.Contains(buf.String(), firstID) {
		t.Error("Reset log should reference the previous game")
	}

	// a worse second game keeps the best score
	g := sess.CurrentGame
	a, _ := pairFor(g, "ryu")
	c := mismatchFor(g, a)
	g.HandleSelection(a, ms(0))
	g.HandleSelection(c, ms(0))
	g.HandleTick(ms(800))
	solve(g, 1000)
	sess.Update()

	if sess.GamesWon != 2 || sess.BestAttempts != 12 {
		t.Errorf("Expected 2 wins with best 12, got %d and %d", sess.GamesWon, sess.BestAttempts)
	}
}
