package board

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func testFaces(n int) []Face {
	faces := make([]Face, n)
	for i := range faces {
		faces[i] = Face{ID: fmt.Sprint(i + 1), Glyph: fmt.Sprintf("F%d", i+1)}
	}
	return faces
}

func TestNew_PairingInvariant(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b, err := New(testFaces(12), DefaultLayout(), rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if b.Len() != Rows*Cols {
			t.Fatalf("Expected %d slots, got %d", Rows*Cols, b.Len())
		}

		counts := make(map[string]int)
		for _, s := range b.Slots() {
			counts[s.Face.ID]++
			if s.Revealed || s.Matched {
				t.Errorf("Slot %d should start hidden", s.Index)
			}
		}
		if len(counts) != RequiredFaces {
			t.Errorf("Expected %d distinct faces, got %d", RequiredFaces, len(counts))
		}
		for id, n := range counts {
			if n != 2 {
				t.Errorf("Face %s appears %d times, expected 2", id, n)
			}
		}
	}
}

func TestNew_RowMajorPositions(t *testing.T) {
	layout := DefaultLayout()
	b, _ := New(testFaces(12), layout, rand.New(rand.NewSource(7)))

	for i, s := range b.Slots() {
		if s.Index != i {
			t.Errorf("Slot %d has index %d", i, s.Index)
		}
		if s.Row != i/Cols || s.Col != i%Cols {
			t.Errorf("Slot %d at (%d,%d), expected (%d,%d)", i, s.Row, s.Col, i/Cols, i%Cols)
		}
		if s.Bounds != layout.Bounds(s.Row, s.Col) {
			t.Errorf("Slot %d bounds %+v", i, s.Bounds)
		}
	}
}

func TestNew_TooFewFaces(t *testing.T) {
	pool := testFaces(11)
	// duplicates do not count towards the distinct total
	pool = append(pool, pool[0], pool[1])

	_, err := New(pool, DefaultLayout(), nil)
	if err == nil {
		t.Fatal("Expected error for 11 distinct faces")
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration, got %v", err)
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected *ConfigurationError, got %T", err)
	}
	if cfgErr.Distinct != 11 || cfgErr.Required != 12 {
		t.Errorf("Unexpected error fields: %+v", cfgErr)
	}
}

func TestNew_ExtraFacesTruncated(t *testing.T) {
	b, err := New(testFaces(15), DefaultLayout(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if len(b.Faces()) != RequiredFaces {
		t.Errorf("Expected %d faces, got %d", RequiredFaces, len(b.Faces()))
	}
	for _, s := range b.Slots() {
		if s.Face.ID == "13" || s.Face.ID == "14" || s.Face.ID == "15" {
			t.Errorf("Face %s should not be dealt", s.Face.ID)
		}
	}
}

func TestSlotAt(t *testing.T) {
	layout := DefaultLayout()
	b, _ := New(testFaces(12), layout, nil)

	tests := []struct {
		name  string
		x, y  int
		index int // -1 for none
	}{
		{"top left corner", layout.OriginX, layout.OriginY, 0},
		{"inside first card", layout.OriginX + 3, layout.OriginY + 1, 0},
		{"second card", layout.OriginX + layout.CardWidth + layout.GapX, layout.OriginY, 1},
		{"gap between cards", layout.OriginX + layout.CardWidth, layout.OriginY, -1},
		{"second row", layout.OriginX, layout.OriginY + layout.CardHeight, Cols},
		{"last card", layout.OriginX + (Cols-1)*(layout.CardWidth+layout.GapX) + 1, layout.OriginY + (Rows-1)*layout.CardHeight + 2, Rows*Cols - 1},
		{"header", 0, 0, -1},
		{"below grid", layout.OriginX, layout.OriginY + layout.Height(), -1},
		{"negative", -1, -1, -1},
	}

	for _, tt := range tests {
		s := b.SlotAt(tt.x, tt.y)
		if tt.index < 0 {
			if s != nil {
				t.Errorf("%s: expected no slot, got %d", tt.name, s.Index)
			}
			continue
		}
		if s == nil {
			t.Errorf("%s: expected slot %d, got none", tt.name, tt.index)
			continue
		}
		if s.Index != tt.index {
			t.Errorf("%s: expected slot %d, got %d", tt.name, tt.index, s.Index)
		}
	}
}

func TestAt_OutOfRange(t *testing.T) {
	b, _ := New(testFaces(12), DefaultLayout(), nil)

	if b.At(-1) != nil || b.At(b.Len()) != nil {
		t.Error("Expected nil for out of range index")
	}
	if b.At(5) == nil || b.At(5).Index != 5 {
		t.Error("Expected slot 5")
	}
}

func TestMutators(t *testing.T) {
	b, _ := New(testFaces(12), DefaultLayout(), nil)
	s := b.At(3)

	b.Reveal(s)
	if !s.Revealed || !s.FaceUp() {
		t.Error("Reveal should flag the slot face up")
	}
	b.Hide(s)
	if s.Revealed || s.FaceUp() {
		t.Error("Hide should flag the slot face down")
	}
	b.MarkMatched(s)
	if !s.Matched || !s.FaceUp() {
		t.Error("Matched slot should be face up")
	}
	if b.MatchedCount() != 1 {
		t.Errorf("Expected 1 matched slot, got %d", b.MatchedCount())
	}
}

func TestReshuffled(t *testing.T) {
	b, _ := New(testFaces(12), DefaultLayout(), rand.New(rand.NewSource(1)))
	b.MarkMatched(b.At(0))
	b.Reveal(b.At(1))

	nb := b.Reshuffled(rand.New(rand.NewSource(2)))
	if nb == b {
		t.Fatal("Reshuffled should return a new board")
	}
	if nb.MatchedCount() != 0 {
		t.Error("Fresh board should have no matched slots")
	}
	counts := make(map[string]int)
	for _, s := range nb.Slots() {
		if s.Revealed {
			t.Errorf("Slot %d should be hidden", s.Index)
		}
		counts[s.Face.ID]++
	}
	for id, n := range counts {
		if n != 2 {
			t.Errorf("Face %s appears %d times", id, n)
		}
	}
	if nb.Layout != b.Layout {
		t.Error("Layout should carry over")
	}
}
