package state

import (
	"go-pairs/internal/board"
	"slices"
	"time"
)

func (s State) IsPending(index int) bool {
	return slices.Contains(s.Pending, index)
}

// CanSelect reports whether flipping the slot would be accepted right now.
func (s State) CanSelect(index int) bool {
	return s.FSM.Current() == Idle && s.selectable(index)
}

func (s State) selectable(index int) bool {
	if s.Won || len(s.Pending) >= 2 {
		return false
	}
	slot := s.Board.At(index)
	if slot == nil || slot.Matched || slot.Revealed {
		return false
	}
	return !s.IsPending(index)
}

// PendingSlots returns the two slots awaiting resolution.
// It must only be called with exactly two pending slots.
func (s State) PendingSlots() (*board.Slot, *board.Slot) {
	return s.Board.At(s.Pending[0]), s.Board.At(s.Pending[1])
}

func (s State) IsAwaitingResolution() bool {
	return s.FSM.Current() == AwaitingResolution
}

// DeadlinePassed reports whether now is at or after an armed deadline.
func (s State) DeadlinePassed(now time.Time) bool {
	return !s.Deadline.IsZero() && !now.Before(s.Deadline)
}

func (s State) TotalPairs() int {
	return s.Board.Pairs()
}

func (s State) AllPairsFound() bool {
	return s.MatchesFound == s.Board.Pairs()
}
