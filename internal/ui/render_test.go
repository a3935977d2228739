package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/idilsaglam/roadmap/internal/model"
)

func sample() model.Roadmap {
	return model.Roadmap{
		Goal:                   "Product Manager",
		Overview:               "Ship things people want.",
		EstimatedTotalDuration: "6 months",
		Phases: []model.Phase{{
			Title:       "Foundation",
			Description: "Learn the basics.",
			Steps: []model.Step{{
				ID: "p1", Title: "Discovery", Duration: "2 weeks", Description: "Talk to users.",
				Topics:     []string{"interviews", "personas"},
				AIStrategy: "Ask AI to role-play a customer.",
				Resources: []model.Resource{
					{Title: "Inspired", Type: model.ResourceBook},
					{Title: "Lenny's Newsletter", Type: model.ResourceArticle, URL: "https://lennysnewsletter.com"},
				},
			}},
		}},
		Syllabus: []model.SyllabusTopic{
			{Name: "Metrics", Subtopics: []string{"North star", "Funnels"}, Importance: model.ImportanceMedium},
		},
	}
}

func TestRenderRoadmap(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	RenderRoadmap(&buf, sample())
	out := buf.String()

	for _, want := range []string{
		"Product Manager", "6 months", "Phase 1:", "Foundation",
		"[2 weeks]", "Discovery", "KEY TOPICS", "interviews · personas",
		"How to Prepare with AI", "Ask AI to role-play a customer.",
		"Inspired (book)", "https://lennysnewsletter.com",
		"Detailed Syllabus", "Metrics", "Medium Priority", "- North star",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestStepLinesCollapsed(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	lines := strings.Join(StepLines(sample().Phases[0].Steps[0], false), "\n")
	if strings.Contains(lines, "KEY TOPICS") || strings.Contains(lines, "Prepare with AI") {
		t.Fatalf("collapsed card shows details:\n%s", lines)
	}
	if !strings.Contains(lines, "Discovery") {
		t.Fatalf("collapsed card lost its title:\n%s", lines)
	}
}

func TestRenderEmptyRoadmap(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	RenderRoadmap(&buf, model.Roadmap{Goal: "g"})
	if !strings.Contains(buf.String(), "(no phases)") || !strings.Contains(buf.String(), "(no syllabus topics)") {
		t.Fatalf("empty sections not marked:\n%s", buf.String())
	}
}

func TestImportanceStyleAndLabel(t *testing.T) {
	SetTheme("classic")
	th := Current()
	if th.ImportanceStyle(model.ImportanceHigh).GetForeground() != th.High.GetForeground() {
		t.Error("High must use the high style")
	}
	if th.ImportanceStyle(model.ImportanceLow).GetForeground() != th.Low.GetForeground() {
		t.Error("Low must use the low style")
	}
	if PriorityLabel(model.ImportanceHigh) != "High Priority" {
		t.Errorf("label = %q", PriorityLabel(model.ImportanceHigh))
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdefghij", 6); got != "abc..." {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate = %q", got)
	}
}

func TestOKAndFailWriteToGivenWriter(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var out, errOut bytes.Buffer
	OK(&out, "saved plan.json")
	Fail(&errOut, "save failed")
	if got := out.String(); got != "✔ saved plan.json\n" {
		t.Errorf("OK wrote %q", got)
	}
	if got := errOut.String(); !strings.Contains(got, "✖ save failed") {
		t.Errorf("Fail wrote %q", got)
	}
}
