package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/roadmap/internal/ui"
)

var lastClockID int64

func nextClockID() int { return int(atomic.AddInt64(&lastClockID, 1)) }

// clockTickMsg carries the clock id and run tag so ticks from a stopped
// or restarted clock are dropped.
type clockTickMsg struct {
	id   int
	tag  int
	time time.Time
}

// Clock is a live time/date widget refreshed once a second while started.
type Clock struct {
	id      int
	tag     int
	running bool
	now     time.Time
	every   time.Duration
}

func NewClock(now time.Time) Clock {
	return Clock{id: nextClockID(), now: now, every: time.Second}
}

// Start begins ticking. Calling it again supersedes the previous loop.
func (c Clock) Start() (Clock, tea.Cmd) {
	c.tag++
	c.running = true
	return c, c.tick()
}

func (c Clock) Stop() Clock {
	c.running = false
	c.tag++
	return c
}

func (c Clock) Running() bool { return c.running }

func (c Clock) Now() time.Time { return c.now }

func (c Clock) tick() tea.Cmd {
	id, tag := c.id, c.tag
	return tea.Tick(c.every, func(t time.Time) tea.Msg {
		return clockTickMsg{id: id, tag: tag, time: t}
	})
}

func (c Clock) Update(msg tea.Msg) (Clock, tea.Cmd) {
	m, ok := msg.(clockTickMsg)
	if !ok || m.id != c.id || m.tag != c.tag || !c.running {
		return c, nil
	}
	c.now = m.time
	return c, c.tick()
}

func (c Clock) View() string {
	t := ui.Current()
	return t.Accent.Render("◷ "+c.now.Format("15:04")) + t.Muted.Render(" │ "+c.now.Format("Mon, Jan 2"))
}
