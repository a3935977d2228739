package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/roadmap/internal/model"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Strategy, Badge                               lipgloss.Style
	High, Medium, Low                             lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor
	ActiveColor lipgloss.TerminalColor

	Bullet, Dot, Connector, Expanded, Collapsed string
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Strategy:    lipgloss.NewStyle().Foreground(lipgloss.Color("105")),
		Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true),
		High:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Medium:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Low:         lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		ActiveColor: lipgloss.Color("12"),
		Bullet:      "•", Dot: "●", Connector: "│", Expanded: "▾", Collapsed: "▸",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		t := classic()
		t.Name = "neon"
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		t.BorderColor = lipgloss.Color("13")
		t.ActiveColor = lipgloss.Color("14")
		current = t
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Strategy: plain, Badge: plain,
			High: plain, Medium: plain, Low: plain,
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			ActiveColor: lipgloss.NoColor{},
			Bullet:      "-", Dot: "o", Connector: "|", Expanded: "v", Collapsed: ">",
		}
	default: // classic
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }

// ImportanceStyle colours a syllabus priority: High red, Medium yellow,
// Low green.
func (t Theme) ImportanceStyle(i model.Importance) lipgloss.Style {
	switch i {
	case model.ImportanceHigh:
		return t.High
	case model.ImportanceMedium:
		return t.Medium
	default:
		return t.Low
	}
}

// PriorityLabel is the badge text for a syllabus topic.
func PriorityLabel(i model.Importance) string {
	return string(i) + " Priority"
}
