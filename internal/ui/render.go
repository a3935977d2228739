package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/idilsaglam/roadmap/internal/model"
)

// RenderRoadmap writes a non-interactive, fully expanded view of r:
// header panel, phased steps, then the syllabus.
func RenderRoadmap(w io.Writer, r model.Roadmap) {
	t := Current()

	header := []string{
		t.Title.Render(r.Goal),
		r.Overview,
		"",
		fmt.Sprintf("%s %s   %s %d   %s %d",
			t.Muted.Render("Estimated time:"), t.Accent.Render(r.EstimatedTotalDuration),
			t.Muted.Render("Phases:"), len(r.Phases),
			t.Muted.Render("Steps:"), r.StepCount(),
		),
	}
	Panel(w, header)
	fmt.Fprintln(w)

	fmt.Fprintln(w, t.Title.Render("Step-by-Step Roadmap"))
	if len(r.Phases) == 0 {
		fmt.Fprintln(w, t.Muted.Render("(no phases)"))
	}
	for pi, p := range r.Phases {
		fmt.Fprintf(w, "\n%s %s\n", t.Accent.Render(fmt.Sprintf("Phase %d:", pi+1)), t.Title.Render(p.Title))
		if p.Description != "" {
			fmt.Fprintln(w, t.Muted.Render(p.Description))
		}
		for _, s := range p.Steps {
			fmt.Fprintln(w)
			for _, ln := range StepLines(s, true) {
				fmt.Fprintf(w, "  %s %s\n", t.Muted.Render(t.Connector), ln)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, t.Title.Render("Detailed Syllabus"))
	if len(r.Syllabus) == 0 {
		fmt.Fprintln(w, t.Muted.Render("(no syllabus topics)"))
	}
	for _, topic := range r.Syllabus {
		fmt.Fprintln(w)
		for _, ln := range TopicLines(topic) {
			fmt.Fprintln(w, "  "+ln)
		}
	}
}

// StepLines renders a step card body. The collapsed form shows duration,
// title and description; expanded adds topics, AI strategy and resources.
func StepLines(s model.Step, expanded bool) []string {
	t := Current()
	lines := []string{
		t.Badge.Render("[" + s.Duration + "]"),
		t.Title.Render(s.Title),
	}
	if s.Description != "" {
		lines = append(lines, t.Muted.Render(s.Description))
	}
	if !expanded {
		return lines
	}

	if len(s.Topics) > 0 {
		lines = append(lines, "", t.Accent.Render("KEY TOPICS"), strings.Join(s.Topics, " · "))
	}
	if s.AIStrategy != "" {
		lines = append(lines, "", t.Strategy.Render("✦ How to Prepare with AI"), s.AIStrategy)
	}
	if len(s.Resources) > 0 {
		lines = append(lines, "", t.Accent.Render("RESOURCES"))
		for _, res := range s.Resources {
			lines = append(lines, ResourceLine(res))
		}
	}
	return lines
}

func ResourceLine(res model.Resource) string {
	t := Current()
	ln := fmt.Sprintf("%s %s %s", t.Accent.Render(t.Bullet), res.Title, t.Muted.Render("("+string(res.Type)+")"))
	if res.URL != "" {
		ln += " " + t.Muted.Render(res.URL)
	}
	return ln
}

// TopicLines renders a syllabus card body.
func TopicLines(topic model.SyllabusTopic) []string {
	t := Current()
	lines := []string{
		t.Title.Render(topic.Name) + "  " + t.ImportanceStyle(topic.Importance).Render(PriorityLabel(topic.Importance)),
	}
	for _, sub := range topic.Subtopics {
		lines = append(lines, t.Muted.Render(t.Bullet)+" "+sub)
	}
	return lines
}
