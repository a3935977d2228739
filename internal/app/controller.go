package app

import (
	"strings"

	"github.com/idilsaglam/roadmap/internal/model"
)

// State is the loading state of the view.
type State int

const (
	StateIdle State = iota
	StateGenerating
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateGenerating:
		return "generating"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

type Tab int

const (
	TabRoadmap Tab = iota
	TabSyllabus
)

// Suggestions are the quick-pick goals shown under the search form.
var Suggestions = []string{"UPSC CSE", "Machine Learning Engineer", "Bank PO", "Product Manager"}

// Request is one submitted generation. Token identifies it so a late
// answer to an abandoned request can be dropped.
type Request struct {
	Token   uint64
	Goal    string
	Context string
}

// View is a snapshot of the controller state. Data is a fresh Roadmap
// value but its slices are shared with the controller; treat it as
// read-only.
type View struct {
	State   State
	Goal    string
	Context string
	Data    *model.Roadmap
	Message string
	Tab     Tab
}

// Controller owns the single view-state bundle. It is not safe for
// concurrent use; the UI loop is its only writer.
type Controller struct {
	state   State
	goal    string
	context string
	data    *model.Roadmap
	message string
	tab     Tab

	token   uint64 // bumped per submission and reset
	pending uint64 // token of the in-flight request, 0 when none
}

func NewController() *Controller { return &Controller{} }

func (c *Controller) editable() bool {
	return c.state == StateIdle || c.state == StateError
}

func (c *Controller) SetGoal(s string) {
	if c.editable() {
		c.goal = s
	}
}

func (c *Controller) SetContext(s string) {
	if c.editable() {
		c.context = s
	}
}

// UseSuggestion fills the goal with Suggestions[i].
func (c *Controller) UseSuggestion(i int) bool {
	if i < 0 || i >= len(Suggestions) || !c.editable() {
		return false
	}
	c.goal = Suggestions[i]
	return true
}

// CanSubmit mirrors the disabled state of the Plan action.
func (c *Controller) CanSubmit() bool {
	return c.editable() && strings.TrimSpace(c.goal) != ""
}

// Submit moves idle/error to generating. A blank goal changes nothing.
func (c *Controller) Submit() (Request, bool) {
	if !c.CanSubmit() {
		return Request{}, false
	}
	c.token++
	c.pending = c.token
	c.state = StateGenerating
	c.message = ""
	c.data = nil
	return Request{Token: c.pending, Goal: c.goal, Context: c.context}, true
}

// Resolve applies the outcome of the request identified by token. Stale
// tokens are ignored and reported with false.
func (c *Controller) Resolve(token uint64, r model.Roadmap, err error) bool {
	if c.state != StateGenerating || token == 0 || token != c.pending {
		return false
	}
	c.pending = 0
	if err != nil {
		c.state = StateError
		c.message = err.Error()
		if c.message == "" {
			c.message = "An unexpected error occurred."
		}
		return true
	}
	c.data = &r
	c.state = StateSuccess
	c.tab = TabRoadmap
	return true
}

// TryAgain returns from error to idle, keeping the inputs.
func (c *Controller) TryAgain() bool {
	if c.state != StateError {
		return false
	}
	c.state = StateIdle
	c.message = ""
	return true
}

// NewRoadmap drops the current result and every input field.
func (c *Controller) NewRoadmap() bool {
	if c.state != StateSuccess {
		return false
	}
	c.reset()
	return true
}

// Abandon forgets the in-flight request and returns to idle with the
// inputs intact. Its eventual answer will be dropped by Resolve.
func (c *Controller) Abandon() bool {
	if c.state != StateGenerating {
		return false
	}
	c.state = StateIdle
	c.pending = 0
	return true
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.goal = ""
	c.context = ""
	c.data = nil
	c.message = ""
	c.tab = TabRoadmap
	c.pending = 0
}

func (c *Controller) SetTab(t Tab) {
	if c.state == StateSuccess {
		c.tab = t
	}
}

// Pending is the token of the in-flight request, 0 when idle.
func (c *Controller) Pending() uint64 { return c.pending }

func (c *Controller) State() State { return c.state }

// Snapshot returns the current state. See View for what is shared.
func (c *Controller) Snapshot() View {
	v := View{
		State:   c.state,
		Goal:    c.goal,
		Context: c.context,
		Message: c.message,
		Tab:     c.tab,
	}
	if c.data != nil {
		d := *c.data
		v.Data = &d
	}
	return v
}
