package game

import (
	"context"
	"go-pairs/internal/board"
	"go-pairs/internal/feedback"
	"go-pairs/internal/state"
	"time"

	"github.com/google/uuid"
)

// Game encapsulates the core game logic, independent of the UI.
type Game struct {
	ID    string
	State *state.State
}

// NewGame deals a board from the face pool and starts in the idle state.
func NewGame(faces []board.Face, layout board.Layout, sink feedback.Sink, opts state.GameOptions) (*Game, error) {
	b, err := board.New(faces, layout, opts.Rand)
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:    uuid.NewString(),
		State: state.NewState(b, sink, opts),
	}, nil
}

// HandleSelection flips the slot with the given index if the turn allows it.
func (g *Game) HandleSelection(index int, now time.Time) {
	if g.State.Won {
		return
	}
	// Rejected selections surface as fsm errors; they are no-ops by contract.
	_ = g.State.FSM.Event(context.Background(), "select", index, now)
}

// HandlePointer resolves a cell coordinate to a slot and selects it.
func (g *Game) HandlePointer(x, y int, now time.Time) {
	slot := g.State.Board.SlotAt(x, y)
	if slot == nil {
		return
	}
	g.HandleSelection(slot.Index, now)
}

// HandleTick resolves an expired comparison and checks the win condition.
func (g *Game) HandleTick(now time.Time) {
	s := g.State
	if s.Won {
		return
	}
	if s.IsAwaitingResolution() && s.DeadlinePassed(now) {
		_ = s.FSM.Event(context.Background(), "expire", now)
	}
	if !s.Won && s.FSM.Current() == state.Idle && s.AllPairsFound() {
		_ = s.FSM.Event(context.Background(), "win", now)
	}
}

// Reset deals a new board and discards all turn state.
func (g *Game) Reset() {
	old := g.State
	g.ID = uuid.NewString()
	g.State = state.NewState(old.Board.Reshuffled(old.Options.Rand), old.Sink, old.Options)
}

func (g *Game) Attempts() int {
	return g.State.Attempts
}

func (g *Game) MatchesFound() int {
	return g.State.MatchesFound
}

func (g *Game) Won() bool {
	return g.State.Won
}
