package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/roadmap/internal/app"
	"github.com/idilsaglam/roadmap/internal/logger"
	"github.com/idilsaglam/roadmap/internal/model"
	"github.com/idilsaglam/roadmap/internal/store/export"
	"github.com/idilsaglam/roadmap/internal/ui"
)

// Planner is what the UI needs from the request adapter.
type Planner interface {
	Generate(ctx context.Context, goal, userContext string) (model.Roadmap, error)
}

type Options struct {
	SaveDir string // where "s" writes JSON exports; defaults to "."
	Now     func() time.Time
}

// roadmapMsg is the resolution of one generation request.
type roadmapMsg struct {
	token   uint64
	roadmap model.Roadmap
	err     error
}

const (
	fieldGoal = iota
	fieldContext
)

// Model is the root Bubble Tea model. All state transitions go through
// the controller; the model only owns widgets and layout.
type Model struct {
	ctrl    *app.Controller
	planner Planner
	log     *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc // in-flight request, nil when none

	goal    textinput.Model
	context textinput.Model
	focus   int

	spinner    spinner.Model
	viewport   viewport.Model
	help       help.Model
	keys       keyMap
	clock      Clock
	timeline   Timeline
	cursorLine int

	width, height int
	status        string
	saveDir       string

	startup tea.Cmd // cursor blink and the first clock tick
}

func New(ctx context.Context, p Planner, log *logger.Logger, opt Options) Model {
	if log == nil {
		log = logger.NewNop()
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.SaveDir == "" {
		opt.SaveDir = "."
	}

	goal := textinput.New()
	goal.Prompt = "⌕ "
	goal.Placeholder = "What is your goal? (e.g., UPSC, Full Stack Dev)"
	goal.CharLimit = 200
	goal.Focus()

	userCtx := textinput.New()
	userCtx.Prompt = "  "
	userCtx.Placeholder = "Optional context (e.g., 'I am a beginner with 6 months time')"
	userCtx.CharLimit = 500

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = ui.Current().Pending

	clock, tick := NewClock(opt.Now()).Start()

	return Model{
		ctrl:     app.NewController(),
		planner:  p,
		log:      log.With("component", "tui"),
		ctx:      ctx,
		goal:     goal,
		context:  userCtx,
		spinner:  sp,
		viewport: viewport.New(80, 20),
		help:     help.New(),
		keys:     defaultKeys(),
		clock:    clock,
		startup:  tea.Batch(textinput.Blink, tick),
		width:    80,
		height:   24,
		saveDir:  opt.SaveDir,
	}
}

func (m Model) Init() tea.Cmd {
	return m.startup
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.goal.Width = min(max(m.width-24, 20), 80)
		m.context.Width = m.goal.Width
		m.help.Width = m.width
		m.refreshResults()
		return m, nil

	case clockTickMsg:
		var cmd tea.Cmd
		m.clock, cmd = m.clock.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if m.ctrl.State() != app.StateGenerating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case roadmapMsg:
		return m, m.resolve(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m.quit()
		}
		switch m.ctrl.State() {
		case app.StateGenerating:
			return m.updateGenerating(msg)
		case app.StateError:
			return m.updateError(msg)
		case app.StateSuccess:
			return m.updateResults(msg)
		default:
			return m.updateForm(msg)
		}
	}

	// cursor blink and friends
	if s := m.ctrl.State(); s == app.StateIdle || s == app.StateError {
		return m.updateFocused(msg)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.release()
	m.clock = m.clock.Stop()
	return m, tea.Quit
}

// ---------------------------------------------------
// per-state key handling
// ---------------------------------------------------

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.syncInputs()
		req, ok := m.ctrl.Submit()
		if !ok {
			return m, nil
		}
		return m.startRequest(req)

	case key.Matches(msg, m.keys.NextField):
		return m, m.focusField(1 - m.focus)

	case key.Matches(msg, m.keys.Suggest):
		s := msg.String()
		i := int(s[len(s)-1] - '1')
		if m.ctrl.UseSuggestion(i) {
			m.goal.SetValue(app.Suggestions[i])
			m.goal.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		return m.quit()
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == fieldGoal {
		m.goal, cmd = m.goal.Update(msg)
	} else {
		m.context, cmd = m.context.Update(msg)
	}
	m.syncInputs()
	return m, cmd
}

func (m Model) updateGenerating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) && m.ctrl.Abandon() {
		m.log.Info("generation abandoned by user")
		m.release()
		return m, m.focusField(fieldGoal)
	}
	return m, nil
}

// updateError keeps the form live under the failure banner: edits and
// enter work as in idle, ctrl+r clears the banner.
func (m Model) updateError(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.TryAgain) {
		m.ctrl.TryAgain()
		return m, m.focusField(fieldGoal)
	}
	return m.updateForm(msg)
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.ctrl.Snapshot()
	onRoadmap := v.Tab == app.TabRoadmap

	switch {
	case key.Matches(msg, m.keys.SwitchTab):
		if onRoadmap {
			m.ctrl.SetTab(app.TabSyllabus)
		} else {
			m.ctrl.SetTab(app.TabRoadmap)
		}
		m.viewport.SetYOffset(0)
		m.refreshResults()
		return m, nil

	case key.Matches(msg, m.keys.NewRoadmap):
		m.ctrl.NewRoadmap()
		m.goal.SetValue("")
		m.context.SetValue("")
		m.timeline = Timeline{}
		m.status = ""
		return m, m.focusField(fieldGoal)

	case key.Matches(msg, m.keys.Save):
		m.save(v)
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case onRoadmap && key.Matches(msg, m.keys.Up):
		m.timeline.Prev()
		m.refreshResults()
		m.followCursor()
		return m, nil

	case onRoadmap && key.Matches(msg, m.keys.Down):
		m.timeline.Next()
		m.refreshResults()
		m.followCursor()
		return m, nil

	case onRoadmap && key.Matches(msg, m.keys.Toggle):
		m.timeline.Toggle()
		m.refreshResults()
		m.followCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// ---------------------------------------------------
// request lifecycle
// ---------------------------------------------------

func (m Model) startRequest(req app.Request) (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.status = ""
	m.goal.Blur()
	m.context.Blur()
	m.log.Debug("request submitted", "generation", req.Token)
	return m, tea.Batch(generateCmd(ctx, m.planner, req), m.spinner.Tick)
}

func generateCmd(ctx context.Context, p Planner, req app.Request) tea.Cmd {
	return func() tea.Msg {
		r, err := p.Generate(ctx, req.Goal, req.Context)
		return roadmapMsg{token: req.Token, roadmap: r, err: err}
	}
}

func (m *Model) resolve(msg roadmapMsg) tea.Cmd {
	if !m.ctrl.Resolve(msg.token, msg.roadmap, msg.err) {
		m.log.Debug("dropped stale roadmap response", "generation", msg.token, "pending", m.ctrl.Pending())
		return nil
	}
	m.release()
	if msg.err != nil {
		return m.focusField(fieldGoal)
	}
	m.timeline = NewTimeline(msg.roadmap.Phases)
	m.viewport.SetYOffset(0)
	m.refreshResults()
	return nil
}

func (m *Model) release() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// ---------------------------------------------------
// helpers
// ---------------------------------------------------

func (m *Model) syncInputs() {
	m.ctrl.SetGoal(m.goal.Value())
	m.ctrl.SetContext(m.context.Value())
}

func (m *Model) focusField(f int) tea.Cmd {
	m.focus = f
	if f == fieldGoal {
		m.context.Blur()
		return m.goal.Focus()
	}
	m.goal.Blur()
	return m.context.Focus()
}

func (m *Model) save(v app.View) {
	if v.Data == nil {
		return
	}
	path := filepath.Join(m.saveDir, slug(v.Data.Goal)+".json")
	if err := export.Save(path, *v.Data, export.FormatJSON); err != nil {
		m.log.Error("save roadmap failed", "path", path, "error", err.Error())
		m.status = ui.Current().Error.Render("✖ save failed: " + err.Error())
		return
	}
	m.status = ui.Current().Success.Render("✔ saved to " + path)
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "roadmap"
	}
	return out
}

func (m *Model) contentWidth() int {
	return max(m.width-2, 20)
}

func (m *Model) refreshResults() {
	v := m.ctrl.Snapshot()
	if v.State != app.StateSuccess || v.Data == nil {
		return
	}
	w := m.contentWidth()
	chrome := lipgloss.Height(m.appHeader(v)) + lipgloss.Height(m.resultsHeader(v)) + 2
	m.viewport.Width = w
	m.viewport.Height = max(m.height-chrome, 3)

	var content string
	if v.Tab == app.TabRoadmap {
		content, m.cursorLine = m.timeline.View(w)
	} else {
		content = SyllabusView(v.Data.Syllabus, w)
	}
	m.viewport.SetContent(content)
}

// followCursor keeps the selected card on screen.
func (m *Model) followCursor() {
	top := m.viewport.YOffset
	switch {
	case m.cursorLine < top:
		m.viewport.SetYOffset(m.cursorLine)
	case m.cursorLine > top+m.viewport.Height-4:
		m.viewport.SetYOffset(max(m.cursorLine-1, 0))
	}
}

// ---------------------------------------------------
// views
// ---------------------------------------------------

func (m Model) View() string {
	v := m.ctrl.Snapshot()

	var body string
	switch v.State {
	case app.StateGenerating:
		body = m.loadingView()
	case app.StateError:
		body = m.errorView(v)
	case app.StateSuccess:
		body = m.resultsHeader(v) + "\n" + m.viewport.View()
	default:
		body = m.heroView()
	}

	keys := m.keys
	if v.State == app.StateSuccess && m.timeline.Expanded(m.timeline.Cursor()) {
		keys.Toggle.SetHelp("space", "collapse")
	}
	footer := m.help.ShortHelpView(keys.bindings(v.State, v.Tab))
	if m.status != "" {
		footer = m.status + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.appHeader(v), body, footer)
}

func (m Model) appHeader(v app.View) string {
	t := ui.Current()
	left := t.Title.Render("◆ Career Roadmap")
	right := m.clock.View()
	if v.Data != nil && v.State == app.StateSuccess {
		right = t.Muted.Render("Goal: ") + t.Accent.Render(ui.Truncate(v.Data.Goal, 30)) + "   " + right
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	line := left + strings.Repeat(" ", gap) + right
	rule := t.Muted.Render(strings.Repeat("─", max(m.width-1, 1)))
	return line + "\n" + rule
}

func (m Model) heroView() string {
	t := ui.Current()
	intro := lipgloss.JoinVertical(lipgloss.Center,
		"",
		t.Accent.Render("✦"),
		t.Title.Render("Career Roadmap"),
		t.Accent.Render("Make your plan structured"),
		"",
		t.Muted.Render("Generate personalized, AI-powered study roadmaps for UPSC, Coding, JEE, or any skill."),
		t.Muted.Render("Detailed steps, syllabus, and AI prep strategies included."),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, intro) + "\n" + m.formView()
}

// formView is the goal/context form with its Plan action and suggestions.
func (m Model) formView() string {
	t := ui.Current()

	goalBox := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
	ctxBox := goalBox
	if m.focus == fieldGoal {
		goalBox = goalBox.BorderForeground(t.ActiveColor)
	} else {
		ctxBox = ctxBox.BorderForeground(t.ActiveColor)
	}

	plan := t.Muted.Render("[ Plan ]")
	if m.ctrl.CanSubmit() {
		plan = t.Accent.Bold(true).Render("[ Plan ]")
	}

	tags := []string{t.Muted.Render("Try:")}
	for i, s := range app.Suggestions {
		tags = append(tags, t.Muted.Render(fmt.Sprintf("%d·", i+1))+s)
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, goalBox.Render(m.goal.View()), " ", plan),
		ctxBox.Render(m.context.View()),
		"",
		strings.Join(tags, "  "),
		"",
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}

func (m Model) loadingView() string {
	t := ui.Current()
	block := lipgloss.JoinVertical(lipgloss.Center,
		"",
		m.spinner.View()+" "+t.Pending.Bold(true).Render("Architecting your path..."),
		t.Muted.Render("Analyzing syllabus · Structuring phases · Curating AI strategies"),
		"",
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}

func (m Model) errorView(v app.View) string {
	t := ui.Current()
	block := lipgloss.JoinVertical(lipgloss.Center,
		"",
		t.Error.Render("⚠ Generation Failed"),
		"",
		lipgloss.NewStyle().Width(min(m.width-4, 60)).Align(lipgloss.Center).Render(v.Message),
		"",
		t.Muted.Render("Edit your goal and press enter, or ctrl+r to try again."),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block) + "\n" + m.formView()
}

func (m Model) resultsHeader(v app.View) string {
	t := ui.Current()
	if v.Data == nil {
		return ""
	}
	r := v.Data

	est := ui.Box(t.Muted.Render("ESTIMATED TIME")+"\n"+t.Accent.Render(r.EstimatedTotalDuration), 0)
	textW := max(m.contentWidth()-lipgloss.Width(est)-2, 20)
	intro := lipgloss.NewStyle().Width(textW).Render(t.Title.Render(r.Goal) + "\n" + r.Overview)
	top := lipgloss.JoinHorizontal(lipgloss.Bottom, intro, "  ", est)

	roadmapTab, syllabusTab := t.Muted, t.Muted
	if v.Tab == app.TabRoadmap {
		roadmapTab = t.Accent.Underline(true)
	} else {
		syllabusTab = t.Accent.Underline(true)
	}
	tabs := roadmapTab.Render("▤ Step-by-Step Roadmap") + "   " + syllabusTab.Render("▥ Detailed Syllabus")
	return top + "\n\n" + tabs
}
