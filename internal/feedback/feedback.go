package feedback

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Kind identifies a gameplay notification.
type Kind int

const (
	Selection Kind = iota
	Match
	Mismatch
	Victory
)

func (k Kind) String() string {
	switch k {
	case Selection:
		return "selection"
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case Victory:
		return "victory"
	default:
		return "unknown"
	}
}

// Notification is emitted by the controller. Consumers must not block.
type Notification struct {
	Kind  Kind
	Slots []int
	At    time.Time
}

// Sink receives notifications. Implementations are fire-and-forget.
type Sink interface {
	Notify(n Notification)
}

// Discard drops every notification.
var Discard Sink = discard{}

type discard struct{}

func (discard) Notify(Notification) {}

// Fanout forwards each notification to every sink in order.
type Fanout []Sink

func (f Fanout) Notify(n Notification) {
	for _, s := range f {
		if s != nil {
			s.Notify(n)
		}
	}
}

// Logger writes one structured log event per notification.
type Logger struct {
	Log zerolog.Logger
}

func (l Logger) Notify(n Notification) {
	ev := l.Log.Debug()
	if n.Kind == Victory {
		ev = l.Log.Info()
	}
	ev.Str("event", n.Kind.String()).
		Ints("slots", n.Slots).
		Time("at", n.At).
		Msg("notification")
}

// Bell rings the terminal bell for outcomes. Selections stay silent.
type Bell struct {
	W io.Writer
}

func (b Bell) Notify(n Notification) {
	if b.W == nil || n.Kind == Selection {
		return
	}
	rings := 1
	if n.Kind == Victory {
		rings = 2
	}
	for i := 0; i < rings; i++ {
		_, _ = io.WriteString(b.W, "\a")
	}
}

// Latest remembers only the most recent notification.
type Latest struct {
	n  Notification
	ok bool
}

func (l *Latest) Notify(n Notification) {
	l.n, l.ok = n, true
}

func (l *Latest) Get() (Notification, bool) {
	return l.n, l.ok
}

func (l *Latest) Clear() {
	l.n, l.ok = Notification{}, false
}

// Recorder keeps every notification it receives.
type Recorder struct {
	Events []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.Events = append(r.Events, n)
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	if len(r.Events) == 0 {
		return Notification{}, false
	}
	return r.Events[len(r.Events)-1], true
}

// Count returns how many notifications of the given kind were recorded.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Reset forgets recorded notifications.
func (r *Recorder) Reset() {
	r.Events = nil
}
