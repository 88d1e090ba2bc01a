package board

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	Rows = 4
	Cols = 6
	// RequiredFaces is the number of distinct faces a board is built from.
	RequiredFaces = Rows * Cols / 2
)

// ErrConfiguration is matched by every ConfigurationError.
var ErrConfiguration = errors.New("board configuration error")

// ConfigurationError reports a face pool that cannot fill the board.
type ConfigurationError struct {
	Distinct int
	Required int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("need at least %d distinct faces, got %d", e.Required, e.Distinct)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// Face is the identity of a card image. Two faces match when their IDs are equal.
type Face struct {
	ID    string
	Glyph string
	Asset string
}

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout places the grid on screen.
type Layout struct {
	OriginX    int
	OriginY    int
	CardWidth  int
	CardHeight int
	GapX       int
	GapY       int
}

// DefaultLayout fits a 4x6 grid of bordered 7x3 cards under a three line header.
func DefaultLayout() Layout {
	return Layout{
		OriginX:    2,
		OriginY:    3,
		CardWidth:  7,
		CardHeight: 3,
		GapX:       1,
		GapY:       0,
	}
}

// Bounds returns the cell rectangle of the card at (row, col).
func (l Layout) Bounds(row, col int) Rect {
	return Rect{
		X: l.OriginX + col*(l.CardWidth+l.GapX),
		Y: l.OriginY + row*(l.CardHeight+l.GapY),
		W: l.CardWidth,
		H: l.CardHeight,
	}
}

// Height is the number of terminal rows the grid occupies.
func (l Layout) Height() int {
	return Rows*l.CardHeight + (Rows-1)*l.GapY
}

// Slot is one fixed board position.
type Slot struct {
	Index    int
	Row      int
	Col      int
	Bounds   Rect
	Face     Face
	Revealed bool
	Matched  bool
}

// FaceUp reports whether the slot should be drawn showing its face.
func (s *Slot) FaceUp() bool {
	return s.Revealed || s.Matched
}

// Board is the ordered, row-major set of Rows*Cols slots.
type Board struct {
	Layout Layout
	faces  []Face
	slots  []Slot
}

// New builds a shuffled board holding every face exactly twice.
// Only the first RequiredFaces distinct faces of the pool are used.
func New(pool []Face, layout Layout, rng *rand.Rand) (*Board, error) {
	faces := distinctFaces(pool)
	if len(faces) < RequiredFaces {
		return nil, &ConfigurationError{Distinct: len(faces), Required: RequiredFaces}
	}
	faces = faces[:RequiredFaces]

	b := &Board{Layout: layout, faces: faces}
	b.deal(rng)
	return b, nil
}

// Reshuffled returns a fresh board over the same faces and layout.
func (b *Board) Reshuffled(rng *rand.Rand) *Board {
	nb := &Board{Layout: b.Layout, faces: b.faces}
	nb.deal(rng)
	return nb
}

func (b *Board) deal(rng *rand.Rand) {
	deck := make([]Face, 0, len(b.faces)*2)
	deck = append(deck, b.faces...)
	deck = append(deck, b.faces...)

	swap := func(i, j int) { deck[i], deck[j] = deck[j], deck[i] }
	if rng != nil {
		rng.Shuffle(len(deck), swap)
	} else {
		rand.Shuffle(len(deck), swap)
	}

	b.slots = make([]Slot, len(deck))
	for i, f := range deck {
		row, col := i/Cols, i%Cols
		b.slots[i] = Slot{
			Index:  i,
			Row:    row,
			Col:    col,
			Bounds: b.Layout.Bounds(row, col),
			Face:   f,
		}
	}
}

func distinctFaces(pool []Face) []Face {
	seen := make(map[string]bool, len(pool))
	var out []Face
	for _, f := range pool {
		if f.ID == "" || seen[f.ID] {
			continue
		}
		seen[f.ID] = true
		out = append(out, f)
	}
	return out
}

// Len returns the number of slots.
func (b *Board) Len() int {
	return len(b.slots)
}

// Pairs returns the number of pairs needed to win.
func (b *Board) Pairs() int {
	return len(b.slots) / 2
}

// Faces returns the faces the board was dealt from.
func (b *Board) Faces() []Face {
	return b.faces
}

// Slots exposes the slots in row-major order for rendering.
func (b *Board) Slots() []Slot {
	return b.slots
}

// At returns the slot with the given index, or nil if it is out of range.
func (b *Board) At(index int) *Slot {
	if index < 0 || index >= len(b.slots) {
		return nil
	}
	return &b.slots[index]
}

// SlotAt returns the slot whose bounds contain (x, y), or nil.
func (b *Board) SlotAt(x, y int) *Slot {
	for i := range b.slots {
		if b.slots[i].Bounds.Contains(x, y) {
			return &b.slots[i]
		}
	}
	return nil
}

// MatchedCount returns the number of slots flagged as matched.
func (b *Board) MatchedCount() int {
	n := 0
	for _, s := range b.slots {
		if s.Matched {
			n++
		}
	}
	return n
}

func (b *Board) Reveal(s *Slot) {
	s.Revealed = true
}

func (b *Board) Hide(s *Slot) {
	s.Revealed = false
}

func (b *Board) MarkMatched(s *Slot) {
	s.Matched = true
}
