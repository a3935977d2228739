package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/roadmap/internal/model"
	"github.com/idilsaglam/roadmap/internal/ui"
)

// below this width cards stack on one side of the connector
const twoColumnMinWidth = 90

type stepRef struct {
	phase, step int
	key         string
}

// Timeline renders phases as alternating step cards. Each card's
// expansion is a local flag keyed by step identity.
type Timeline struct {
	phases   []model.Phase
	refs     []stepRef
	cursor   int
	expanded map[string]bool
}

func NewTimeline(phases []model.Phase) Timeline {
	t := Timeline{phases: phases, expanded: map[string]bool{}}
	for pi, p := range phases {
		for si, s := range p.Steps {
			t.refs = append(t.refs, stepRef{phase: pi, step: si, key: model.StepKey(pi, si, s.ID)})
		}
	}
	return t
}

func (t *Timeline) Len() int { return len(t.refs) }

func (t *Timeline) Cursor() int { return t.cursor }

func (t *Timeline) Next() {
	if t.cursor < len(t.refs)-1 {
		t.cursor++
	}
}

func (t *Timeline) Prev() {
	if t.cursor > 0 {
		t.cursor--
	}
}

// Toggle flips the card under the cursor and reports its new state.
func (t *Timeline) Toggle() bool {
	if len(t.refs) == 0 {
		return false
	}
	k := t.refs[t.cursor].key
	t.expanded[k] = !t.expanded[k]
	return t.expanded[k]
}

func (t *Timeline) Expanded(i int) bool {
	if i < 0 || i >= len(t.refs) {
		return false
	}
	return t.expanded[t.refs[i].key]
}

// View renders the timeline for width columns and returns the line at
// which the cursor card starts, for scrolling.
func (t *Timeline) View(width int) (string, int) {
	th := ui.Current()
	if len(t.phases) == 0 {
		return th.Muted.Render("This roadmap has no phases."), 0
	}
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	lines, cursorLine := 0, 0
	write := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
		lines += lipgloss.Height(s)
	}

	idx := 0
	for pi, p := range t.phases {
		if pi > 0 {
			write("")
		}
		write(th.Accent.Render(fmt.Sprintf("Phase %d", pi+1)) + "  " + th.Title.Render(p.Title))
		if p.Description != "" {
			write(lipgloss.NewStyle().Width(width).Render(th.Muted.Render(p.Description)))
		}
		write("")
		for si, s := range p.Steps {
			if idx == t.cursor {
				cursorLine = lines
			}
			write(t.row(idx, s, width, t.expanded[model.StepKey(pi, si, s.ID)]))
			idx++
		}
	}
	return strings.TrimRight(b.String(), "\n"), cursorLine
}

func (t *Timeline) row(idx int, s model.Step, width int, open bool) string {
	th := ui.Current()

	marker := th.Collapsed
	if open {
		marker = th.Expanded
	}
	body := ui.StepLines(s, open)
	body[1] = body[1] + " " + th.Muted.Render(marker)

	if width < twoColumnMinWidth {
		card := t.card(idx, body, width-4)
		return lipgloss.JoinHorizontal(lipgloss.Top, connector(lipgloss.Height(card)), " ", card)
	}

	colW := (width - 3) / 2
	card := t.card(idx, body, colW)
	blank := lipgloss.NewStyle().Width(colW).Render("")
	mid := connector(lipgloss.Height(card))
	// even steps sit left of the line, odd steps right
	if idx%2 == 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, card, " ", mid, " ", blank)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blank, " ", mid, " ", card)
}

func (t *Timeline) card(idx int, body []string, outer int) string {
	th := ui.Current()
	st := lipgloss.NewStyle().
		Border(th.Border).
		BorderForeground(th.BorderColor).
		Padding(0, 1).
		Width(max(outer-2, 10))
	if idx == t.cursor {
		st = st.BorderForeground(th.ActiveColor)
	}
	return st.Render(strings.Join(body, "\n"))
}

func connector(height int) string {
	th := ui.Current()
	parts := make([]string, 0, height)
	parts = append(parts, th.Accent.Render(th.Dot))
	for i := 1; i < height; i++ {
		parts = append(parts, th.Muted.Render(th.Connector))
	}
	return strings.Join(parts, "\n")
}
