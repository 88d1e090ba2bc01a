package ui

import (
	"go-pairs/internal/board"
	"go-pairs/internal/feedback"
	"go-pairs/internal/game"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FrameInterval is the spacing of update ticks.
const FrameInterval = 50 * time.Millisecond

type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Action names what an input event asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionSelect
	ActionReset
	ActionMove
	ActionQuit
)

type Command struct {
	Action Action
	Index  int // slot for ActionSelect
	DRow   int // cursor delta for ActionMove
	DCol   int
}

// Button is a clickable screen region bound to an action.
type Button struct {
	Label  string
	Bounds board.Rect
	Action Action
}

type Model struct {
	Session *game.Session
	Status  *feedback.Latest
	Keys    KeyMap
	Help    help.Model
	Now     func() time.Time
	Mouse   bool
	Cursor  int
}

// New builds the UI around a session. status must be one of the sinks the
// session's games notify, so the status line can show the latest outcome.
func New(sess *game.Session, status *feedback.Latest, mouse bool) *Model {
	if status == nil {
		status = &feedback.Latest{}
	}
	return &Model{
		Session: sess,
		Status:  status,
		Keys:    Keys,
		Help:    help.New(),
		Now:     time.Now,
		Mouse:   mouse,
	}
}

func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.Session.CurrentGame.HandleTick(time.Time(msg))
		m.Session.Update()
		return m, tickCmd()
	case tea.WindowSizeMsg:
		m.Help.Width = msg.Width
	case tea.MouseMsg:
		if !m.Mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m, m.dispatch(m.commandAt(msg.X, msg.Y))
	case tea.KeyMsg:
		return m, m.dispatch(m.commandForKey(msg))
	}

	return m, nil
}

func (m *Model) commandForKey(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return Command{Action: ActionQuit}
	case key.Matches(msg, m.Keys.Reset):
		return Command{Action: ActionReset}
	case key.Matches(msg, m.Keys.Select):
		return Command{Action: ActionSelect, Index: m.Cursor}
	case key.Matches(msg, m.Keys.Up):
		return Command{Action: ActionMove, DRow: -1}
	case key.Matches(msg, m.Keys.Down):
		return Command{Action: ActionMove, DRow: 1}
	case key.Matches(msg, m.Keys.Left):
		return Command{Action: ActionMove, DCol: -1}
	case key.Matches(msg, m.Keys.Right):
		return Command{Action: ActionMove, DCol: 1}
	}
	return Command{}
}

// commandAt hit-tests buttons first, then card slots.
func (m *Model) commandAt(x, y int) Command {
	for _, b := range m.Buttons() {
		if b.Bounds.Contains(x, y) {
			return Command{Action: b.Action}
		}
	}
	if slot := m.Session.CurrentGame.State.Board.SlotAt(x, y); slot != nil {
		return Command{Action: ActionSelect, Index: slot.Index}
	}
	return Command{}
}

func (m *Model) dispatch(cmd Command) tea.Cmd {
	g := m.Session.CurrentGame

	switch cmd.Action {
	case ActionQuit:
		return tea.Quit
	case ActionReset:
		m.Session.Reset()
		m.Status.Clear()
	case ActionSelect:
		m.Cursor = cmd.Index
		g.HandleSelection(cmd.Index, m.Now())
		m.Session.Update()
	case ActionMove:
		m.moveCursor(cmd.DRow, cmd.DCol)
	}
	return nil
}

func (m *Model) moveCursor(dRow, dCol int) {
	row := clamp(m.Cursor/board.Cols+dRow, 0, board.Rows-1)
	col := clamp(m.Cursor%board.Cols+dCol, 0, board.Cols-1)
	m.Cursor = row*board.Cols + col
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
