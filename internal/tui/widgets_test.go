package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/idilsaglam/roadmap/internal/model"
	"github.com/idilsaglam/roadmap/internal/ui"
)

func TestClockIgnoresStaleTicks(t *testing.T) {
	start := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	later := start.Add(time.Second)

	c, cmd := NewClock(start).Start()
	if cmd == nil || !c.Running() {
		t.Fatal("start should schedule a tick")
	}

	c, cmd = c.Update(clockTickMsg{id: c.id, tag: c.tag, time: later})
	if !c.Now().Equal(later) || cmd == nil {
		t.Fatalf("current tick not applied: now=%v cmd=%v", c.Now(), cmd != nil)
	}

	// tick from a superseded loop
	oldTag := c.tag
	c, _ = c.Start()
	c, cmd = c.Update(clockTickMsg{id: c.id, tag: oldTag, time: later.Add(time.Minute)})
	if cmd != nil || !c.Now().Equal(later) {
		t.Fatal("superseded tick should be ignored")
	}

	// tick for another clock
	other := NewClock(start)
	c, cmd = c.Update(clockTickMsg{id: other.id, tag: c.tag, time: later.Add(time.Hour)})
	if cmd != nil || !c.Now().Equal(later) {
		t.Fatal("foreign tick should be ignored")
	}

	tag := c.tag
	c = c.Stop()
	c, cmd = c.Update(clockTickMsg{id: c.id, tag: tag, time: later.Add(time.Hour)})
	if cmd != nil || c.Running() {
		t.Fatal("stopped clock must not tick")
	}
}

func TestClockView(t *testing.T) {
	ui.SetTheme("mono")
	defer ui.SetTheme("classic")

	c := NewClock(time.Date(2026, 1, 2, 9, 5, 0, 0, time.UTC))
	v := c.View()
	if !strings.Contains(v, "09:05") || !strings.Contains(v, "Fri, Jan 2") {
		t.Fatalf("clock view = %q", v)
	}
}

func timelinePhases() []model.Phase {
	return []model.Phase{
		{Title: "One", Steps: []model.Step{
			{ID: "a", Title: "Alpha", Duration: "1w", AIStrategy: "alpha strategy"},
			{ID: "b", Title: "Beta", Duration: "1w", AIStrategy: "beta strategy"},
		}},
		{Title: "Two", Steps: []model.Step{
			// repeated id in another phase stays a distinct card
			{ID: "a", Title: "Gamma", Duration: "2w", AIStrategy: "gamma strategy"},
		}},
	}
}

func TestTimelineToggleIsPerStep(t *testing.T) {
	tl := NewTimeline(timelinePhases())
	if tl.Len() != 3 {
		t.Fatalf("len = %d", tl.Len())
	}

	if !tl.Toggle() {
		t.Fatal("toggle should expand")
	}
	tl.Next()
	tl.Next()
	if tl.Expanded(2) {
		t.Fatal("step with the same id in another phase must not share state")
	}
	tl.Next() // clamps at the end
	if tl.Cursor() != 2 {
		t.Fatalf("cursor = %d", tl.Cursor())
	}

	tl.Prev()
	tl.Prev()
	tl.Prev()
	if tl.Cursor() != 0 {
		t.Fatalf("cursor = %d", tl.Cursor())
	}
	if tl.Toggle() {
		t.Fatal("second toggle should collapse")
	}
	if tl.Expanded(0) || tl.Expanded(-1) || tl.Expanded(9) {
		t.Fatal("unexpected expanded state")
	}
}

func TestTimelineView(t *testing.T) {
	ui.SetTheme("mono")
	defer ui.SetTheme("classic")

	tl := NewTimeline(timelinePhases())
	tl.Toggle()

	for _, width := range []int{120, 60} {
		out, cursorLine := tl.View(width)
		for _, want := range []string{"Phase 1", "Phase 2", "Alpha", "Beta", "Gamma", "alpha strategy"} {
			if !strings.Contains(out, want) {
				t.Errorf("width %d: missing %q", width, want)
			}
		}
		if strings.Contains(out, "beta strategy") {
			t.Errorf("width %d: collapsed step shows its strategy", width)
		}
		if cursorLine <= 0 {
			t.Errorf("width %d: cursor line = %d", width, cursorLine)
		}
	}

	// wide layout puts the first card left of the connector and the second right
	wide, _ := tl.View(120)
	for _, ln := range strings.Split(wide, "\n") {
		if strings.Contains(ln, "Alpha") && strings.Index(ln, "Alpha") > strings.Index(ln, "|") && strings.Contains(ln, "|") {
			t.Errorf("first card should be left of the connector: %q", ln)
		}
		if strings.Contains(ln, "Beta") && strings.Index(ln, "Beta") < 50 {
			t.Errorf("second card should be right of the connector: %q", ln)
		}
	}
}

func TestTimelineEmpty(t *testing.T) {
	tl := NewTimeline(nil)
	out, line := tl.View(80)
	if !strings.Contains(out, "no phases") || line != 0 {
		t.Fatalf("empty view = %q, %d", out, line)
	}
	if tl.Toggle() {
		t.Fatal("toggle on empty timeline")
	}
}

func TestSyllabusColumns(t *testing.T) {
	cases := []struct {
		width, want int
	}{
		{40, 1}, {74, 1}, {75, 2}, {119, 2}, {120, 3}, {200, 3},
	}
	for _, c := range cases {
		if got := syllabusColumns(c.width); got != c.want {
			t.Errorf("syllabusColumns(%d) = %d, want %d", c.width, got, c.want)
		}
	}
}

func TestSyllabusView(t *testing.T) {
	ui.SetTheme("mono")
	defer ui.SetTheme("classic")

	topics := []model.SyllabusTopic{
		{Name: "Polity", Subtopics: []string{"Constitution"}, Importance: model.ImportanceHigh},
		{Name: "Economy", Subtopics: []string{"Budget"}, Importance: model.ImportanceMedium},
		{Name: "Ethics", Importance: model.ImportanceLow},
	}
	out := SyllabusView(topics, 130)
	for _, want := range []string{"Polity", "High Priority", "Medium Priority", "Low Priority", "- Constitution"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
	// three columns: all names on the same row
	for _, ln := range strings.Split(out, "\n") {
		if strings.Contains(ln, "Polity") && !strings.Contains(ln, "Ethics") {
			t.Errorf("expected one row at width 130: %q", ln)
		}
	}

	if !strings.Contains(SyllabusView(nil, 80), "no syllabus") {
		t.Fatal("empty syllabus message missing")
	}
}
