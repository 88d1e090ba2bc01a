package state

import (
	"context"
	"go-pairs/internal/board"
	"go-pairs/internal/feedback"
	"math/rand"
	"time"

	"github.com/looplab/fsm"
)

// ResolutionDelay is how long two flipped cards stay visible before they are compared.
const ResolutionDelay = 800 * time.Millisecond

// Resting states. Everything else is passed through within a single event.
const (
	Idle               = "idle"
	AwaitingResolution = "awaitingResolution"
	Won                = "won"
)

type GameOptions struct {
	Delay time.Duration // 0 uses ResolutionDelay
	Rand  *rand.Rand    // nil uses the global source
}

// State is the turn state of one game. It is not safe for concurrent use.
type State struct {
	Board        *board.Board
	Pending      []int     // slot indexes flipped this turn, at most two
	Deadline     time.Time // zero unless two slots are pending
	Attempts     int
	MatchesFound int
	Won          bool
	Now          time.Time // clock value of the event being processed
	FSM          *fsm.FSM
	Sink         feedback.Sink
	Options      GameOptions
}

func NewState(b *board.Board, sink feedback.Sink, opts GameOptions) *State {
	if sink == nil {
		sink = feedback.Discard
	}
	if opts.Delay <= 0 {
		opts.Delay = ResolutionDelay
	}

	s := &State{
		Board:   b,
		Sink:    sink,
		Options: opts,
	}

	s.FSM = fsm.NewFSM(
		Idle,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		// Selection
		{Name: "select", Src: []string{Idle}, Dst: "revealing"},
		{Name: "wait", Src: []string{"revealing", "evaluating"}, Dst: Idle},
		{Name: "arm", Src: []string{"revealing"}, Dst: AwaitingResolution},

		// Resolution
		{Name: "expire", Src: []string{AwaitingResolution}, Dst: "comparing"},
		{Name: "match", Src: []string{"comparing"}, Dst: "gotMatch"},
		{Name: "mismatch", Src: []string{"comparing"}, Dst: "noMatch"},
		{Name: "resolved", Src: []string{"gotMatch", "noMatch"}, Dst: "evaluating"},

		// End
		{Name: "win", Src: []string{"evaluating", Idle}, Dst: Won},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"before_event": func(_ context.Context, e *fsm.Event) {
			for _, arg := range e.Args {
				if now, ok := arg.(time.Time); ok {
					s.Now = now
				}
			}
		},
		"before_select": func(_ context.Context, e *fsm.Event) {
			if len(e.Args) == 0 {
				e.Cancel()
				return
			}
			index, ok := e.Args[0].(int)
			if !ok || !s.selectable(index) {
				e.Cancel()
			}
		},
		"enter_revealing": func(ctx context.Context, e *fsm.Event) {
			index := e.Args[0].(int)
			s.Board.Reveal(s.Board.At(index))
			s.Pending = append(s.Pending, index)
			s.notify(feedback.Selection, index)

			if len(s.Pending) == 2 {
				e.FSM.Event(ctx, "arm")
				return
			}
			e.FSM.Event(ctx, "wait")
		},
		"enter_awaitingResolution": func(_ context.Context, _ *fsm.Event) {
			s.Deadline = s.Now.Add(s.Options.Delay)
		},
		"enter_comparing": func(ctx context.Context, e *fsm.Event) {
			first, second := s.PendingSlots()
			if first.Face.ID == second.Face.ID {
				e.FSM.Event(ctx, "match")
				return
			}
			e.FSM.Event(ctx, "mismatch")
		},
		"enter_gotMatch": func(ctx context.Context, e *fsm.Event) {
			first, second := s.PendingSlots()
			s.Board.MarkMatched(first)
			s.Board.MarkMatched(second)
			s.MatchesFound++
			s.notify(feedback.Match, s.Pending...)
			e.FSM.Event(ctx, "resolved")
		},
		"enter_noMatch": func(ctx context.Context, e *fsm.Event) {
			first, second := s.PendingSlots()
			s.Board.Hide(first)
			s.Board.Hide(second)
			s.notify(feedback.Mismatch, s.Pending...)
			e.FSM.Event(ctx, "resolved")
		},
		"enter_evaluating": func(ctx context.Context, e *fsm.Event) {
			s.Attempts++
			s.Pending = nil
			s.Deadline = time.Time{}

			if s.AllPairsFound() {
				e.FSM.Event(ctx, "win")
				return
			}
			e.FSM.Event(ctx, "wait")
		},
		"enter_won": func(_ context.Context, _ *fsm.Event) {
			s.Won = true
			s.notify(feedback.Victory)
		},
	}
}

func (s *State) notify(kind feedback.Kind, slots ...int) {
	s.Sink.Notify(feedback.Notification{
		Kind:  kind,
		Slots: append([]int(nil), slots...),
		At:    s.Now,
	})
}
