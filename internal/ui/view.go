package ui

import (
	"fmt"
	"go-pairs/internal/board"
	"go-pairs/internal/feedback"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	title          = "STREET FIGHTER PAIRS"
	resetLabel     = "[ Reset ]"
	playAgainLabel = "[ Play Again ]"
	backGlyph      = "?"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	hudStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	buttonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("25")).Bold(true)
	winStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	redStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Align(lipgloss.Center)
	revealedEdge = lipgloss.Color("11")
	matchedEdge  = lipgloss.Color("10")
	cursorEdge   = lipgloss.Color("12")
)

func (m *Model) layout() board.Layout {
	return m.Session.CurrentGame.State.Board.Layout
}

// boardRight is the first column after the grid.
func (m *Model) boardRight() int {
	l := m.layout()
	return l.OriginX + board.Cols*l.CardWidth + (board.Cols-1)*l.GapX
}

func (m *Model) statusY() int {
	l := m.layout()
	return l.OriginY + l.Height() + 1
}

func (m *Model) popupY() int {
	return m.statusY() + 2
}

// Buttons lists the clickable regions currently on screen.
func (m *Model) Buttons() []Button {
	buttons := []Button{{
		Label:  resetLabel,
		Bounds: board.Rect{X: m.boardRight() - lipgloss.Width(resetLabel), Y: 0, W: lipgloss.Width(resetLabel), H: 1},
		Action: ActionReset,
	}}
	if m.Session.IsFinished() {
		buttons = append(buttons, Button{
			Label:  playAgainLabel,
			Bounds: board.Rect{X: m.layout().OriginX, Y: m.popupY() + 2, W: lipgloss.Width(playAgainLabel), H: 1},
			Action: ActionReset,
		})
	}
	return buttons
}

func (m *Model) View() string {
	l := m.layout()
	g := m.Session.CurrentGame
	buttons := m.Buttons()
	reset := buttons[0]

	lines := make([]string, 0, l.OriginY+l.Height()+10)

	// 1. Header
	head := strings.Repeat(" ", l.OriginX) + titleStyle.Render(title)
	pad := reset.Bounds.X - lipgloss.Width(head)
	if pad < 1 {
		pad = 1
	}
	lines = append(lines, head+strings.Repeat(" ", pad)+buttonStyle.Render(reset.Label))

	hud := fmt.Sprintf("Attempts: %d | Matches: %d/%d | Games won: %d/%d",
		g.Attempts(), g.MatchesFound(), g.State.TotalPairs(), m.Session.GamesWon, m.Session.GamesPlayed)
	if m.Session.BestAttempts > 0 {
		hud += fmt.Sprintf(" | Best: %d", m.Session.BestAttempts)
	}
	lines = append(lines, strings.Repeat(" ", l.OriginX)+hudStyle.Render(hud))
	for len(lines) < l.OriginY {
		lines = append(lines, "")
	}

	// 2. Board
	lines = append(lines, m.renderBoard()...)

	// 3. Status line
	for len(lines) < m.statusY() {
		lines = append(lines, "")
	}
	lines = append(lines, strings.Repeat(" ", l.OriginX)+m.statusLine())

	// 4. Victory popup
	if m.Session.IsFinished() {
		for len(lines) < m.popupY() {
			lines = append(lines, "")
		}
		indent := strings.Repeat(" ", l.OriginX)
		lines = append(lines,
			indent+winStyle.Render("You Win!"),
			indent+fmt.Sprintf("Attempts: %d | Matches: %d", g.Attempts(), g.MatchesFound()),
			indent+buttonStyle.Render(buttons[1].Label),
		)
	}

	lines = append(lines, "", strings.Repeat(" ", l.OriginX)+m.Help.View(m.Keys))
	return strings.Join(lines, "\n")
}

// renderBoard draws every slot inside its layout bounds.
func (m *Model) renderBoard() []string {
	l := m.layout()
	slots := m.Session.CurrentGame.State.Board.Slots()
	indent := strings.Repeat(" ", l.OriginX)
	gap := strings.Repeat(" ", l.GapX)

	var lines []string
	for row := 0; row < board.Rows; row++ {
		if row > 0 {
			for i := 0; i < l.GapY; i++ {
				lines = append(lines, "")
			}
		}
		parts := make([]string, 0, board.Cols*2)
		for col := 0; col < board.Cols; col++ {
			if col > 0 && l.GapX > 0 {
				parts = append(parts, gap)
			}
			parts = append(parts, m.renderCard(slots[row*board.Cols+col]))
		}
		for _, line := range strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, parts...), "\n") {
			lines = append(lines, indent+line)
		}
	}
	return lines
}

func (m *Model) renderCard(s board.Slot) string {
	l := m.layout()
	style := cardStyle.
		Width(l.CardWidth - 2).
		Height(l.CardHeight - 2).
		MaxHeight(l.CardHeight)

	content := backGlyph
	switch {
	case s.Matched:
		content = s.Face.Glyph
		style = style.BorderForeground(matchedEdge).Foreground(matchedEdge)
	case s.Revealed:
		content = s.Face.Glyph
		style = style.BorderForeground(revealedEdge).Bold(true)
	}
	if s.Index == m.Cursor {
		style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(cursorEdge)
	}
	return style.Render(content)
}

func (m *Model) statusLine() string {
	n, ok := m.Status.Get()
	if !ok {
		if m.Mouse {
			return "Click two cards to find a pair."
		}
		return "Pick two cards to find a pair."
	}

	b := m.Session.CurrentGame.State.Board
	glyph := func(i int) string {
		if s := b.At(i); s != nil {
			return s.Face.Glyph
		}
		return "?"
	}

	switch n.Kind {
	case feedback.Selection:
		if len(n.Slots) == 1 {
			return "Flipped " + glyph(n.Slots[0]) + "."
		}
	case feedback.Match:
		if len(n.Slots) == 2 {
			return greenStyle.Render("Match! " + glyph(n.Slots[0]) + " stays up.")
		}
	case feedback.Mismatch:
		return redStyle.Render("No match.")
	case feedback.Victory:
		return winStyle.Render("All pairs found!")
	}
	return ""
}
