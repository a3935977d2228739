package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/roadmap/internal/model"
	"github.com/idilsaglam/roadmap/internal/ui"
)

func syllabusColumns(width int) int {
	switch {
	case width >= 120:
		return 3
	case width >= 75:
		return 2
	default:
		return 1
	}
}

// SyllabusView lays topics out as a card grid, colour coded by importance.
func SyllabusView(topics []model.SyllabusTopic, width int) string {
	th := ui.Current()
	if len(topics) == 0 {
		return th.Muted.Render("This roadmap has no syllabus topics.")
	}
	cols := syllabusColumns(width)
	cardW := width/cols - 1

	var rows []string
	for start := 0; start < len(topics); start += cols {
		end := min(start+cols, len(topics))
		cards := make([]string, 0, cols*2)
		for i, topic := range topics[start:end] {
			if i > 0 {
				cards = append(cards, " ")
			}
			cards = append(cards, topicCard(topic, cardW))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func topicCard(topic model.SyllabusTopic, outer int) string {
	th := ui.Current()
	return lipgloss.NewStyle().
		Border(th.Border).
		BorderForeground(th.ImportanceStyle(topic.Importance).GetForeground()).
		Padding(0, 1).
		Width(max(outer-2, 10)).
		Render(strings.Join(ui.TopicLines(topic), "\n"))
}
