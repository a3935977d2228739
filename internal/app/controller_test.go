package app

import (
	"errors"
	"testing"

	"github.com/idilsaglam/roadmap/internal/model"
)

var sample = model.Roadmap{Goal: "Bank PO", Overview: "o", EstimatedTotalDuration: "6 months"}

func TestSubmitTransitions(t *testing.T) {
	for _, ctx := range []string{"", "I am a beginner"} {
		c := NewController()
		c.SetGoal("Bank PO")
		c.SetContext(ctx)

		req, ok := c.Submit()
		if !ok {
			t.Fatal("Submit refused a non-empty goal")
		}
		if c.State() != StateGenerating {
			t.Fatalf("state = %v, want generating", c.State())
		}
		if req.Goal != "Bank PO" || req.Context != ctx || req.Token == 0 {
			t.Fatalf("request = %+v", req)
		}
		if _, again := c.Submit(); again {
			t.Fatal("second submit while generating must be refused")
		}

		if !c.Resolve(req.Token, sample, nil) {
			t.Fatal("Resolve rejected the current token")
		}
		v := c.Snapshot()
		if v.State != StateSuccess || v.Data == nil || v.Data.Goal != "Bank PO" {
			t.Fatalf("after success: %+v", v)
		}
	}
}

func TestSubmitFromErrorAndFailure(t *testing.T) {
	c := NewController()
	c.SetGoal("UPSC CSE")
	req, _ := c.Submit()
	c.Resolve(req.Token, model.Roadmap{}, errors.New("We've hit the usage limit"))

	v := c.Snapshot()
	if v.State != StateError || v.Message != "We've hit the usage limit" || v.Data != nil {
		t.Fatalf("after failure: %+v", v)
	}

	req2, ok := c.Submit()
	if !ok || c.State() != StateGenerating {
		t.Fatalf("submit from error: ok=%v state=%v", ok, c.State())
	}
	if c.Snapshot().Message != "" {
		t.Fatal("submit must clear the previous message")
	}
	if req2.Token == req.Token {
		t.Fatal("each submission gets a fresh token")
	}
}

func TestBlankGoalIsIgnored(t *testing.T) {
	for _, goal := range []string{"", "   ", "\t"} {
		c := NewController()
		c.SetGoal(goal)
		c.SetContext("some context")
		before := c.Snapshot()

		if c.CanSubmit() {
			t.Errorf("goal %q: CanSubmit = true", goal)
		}
		if _, ok := c.Submit(); ok {
			t.Errorf("goal %q: Submit accepted", goal)
		}
		if after := c.Snapshot(); after != before {
			t.Errorf("goal %q: state changed %+v -> %+v", goal, before, after)
		}
	}
}

func TestTryAgainKeepsInputs(t *testing.T) {
	c := NewController()
	c.SetGoal("Product Manager")
	c.SetContext("ex-engineer")
	req, _ := c.Submit()
	c.Resolve(req.Token, model.Roadmap{}, errors.New("boom"))

	if !c.TryAgain() {
		t.Fatal("TryAgain from error failed")
	}
	v := c.Snapshot()
	if v.State != StateIdle || v.Message != "" || v.Goal != "Product Manager" || v.Context != "ex-engineer" {
		t.Fatalf("after try again: %+v", v)
	}
	if c.TryAgain() {
		t.Fatal("TryAgain outside error must be a no-op")
	}
}

func TestNewRoadmapClearsEverything(t *testing.T) {
	c := NewController()
	c.SetGoal("Bank PO")
	c.SetContext("6 months")
	req, _ := c.Submit()
	c.Resolve(req.Token, sample, nil)
	c.SetTab(TabSyllabus)

	if !c.NewRoadmap() {
		t.Fatal("NewRoadmap after success failed")
	}
	v := c.Snapshot()
	if v != (View{}) {
		t.Fatalf("after new roadmap: %+v", v)
	}
}

func TestStaleResolutionIsDropped(t *testing.T) {
	c := NewController()
	c.SetGoal("UPSC CSE")
	first, _ := c.Submit()
	if !c.Abandon() {
		t.Fatal("Abandon while generating failed")
	}
	if v := c.Snapshot(); v.State != StateIdle || v.Goal != "UPSC CSE" {
		t.Fatalf("after abandon: %+v", v)
	}

	c.SetGoal("Bank PO")
	second, _ := c.Submit()

	if c.Resolve(first.Token, sample, nil) {
		t.Fatal("stale token must be ignored")
	}
	if c.State() != StateGenerating {
		t.Fatalf("stale result changed state to %v", c.State())
	}
	if !c.Resolve(second.Token, sample, nil) {
		t.Fatal("current token rejected")
	}
	if c.Resolve(second.Token, sample, errors.New("late duplicate")) {
		t.Fatal("a token resolves at most once")
	}
	if c.State() != StateSuccess {
		t.Fatalf("state = %v", c.State())
	}
}

func TestResolveAfterNewRoadmapIsDropped(t *testing.T) {
	c := NewController()
	c.SetGoal("a")
	req, _ := c.Submit()
	c.Resolve(req.Token, sample, nil)
	c.NewRoadmap()
	if c.Resolve(req.Token, sample, nil) {
		t.Fatal("resolution after reset must be discarded")
	}
	if c.State() != StateIdle {
		t.Fatalf("state = %v", c.State())
	}
}

func TestSuggestionsAndTabs(t *testing.T) {
	c := NewController()
	if !c.UseSuggestion(1) || c.Snapshot().Goal != "Machine Learning Engineer" {
		t.Fatalf("suggestion not applied: %+v", c.Snapshot())
	}
	if c.UseSuggestion(len(Suggestions)) {
		t.Fatal("out of range suggestion accepted")
	}

	c.SetTab(TabSyllabus)
	if c.Snapshot().Tab != TabRoadmap {
		t.Fatal("tab switching is only meaningful with results")
	}
	req, _ := c.Submit()
	c.SetGoal("ignored while generating")
	if c.Snapshot().Goal != "Machine Learning Engineer" {
		t.Fatal("inputs are locked while generating")
	}
	c.Resolve(req.Token, sample, nil)
	c.SetTab(TabSyllabus)
	if c.Snapshot().Tab != TabSyllabus {
		t.Fatal("tab not switched")
	}
}

func TestPendingTracksInFlightToken(t *testing.T) {
	c := NewController()
	if c.Pending() != 0 {
		t.Fatalf("pending before submit = %d", c.Pending())
	}
	c.SetGoal("UPSC CSE")
	req, _ := c.Submit()
	if c.Pending() != req.Token {
		t.Fatalf("pending = %d, want %d", c.Pending(), req.Token)
	}
	c.Resolve(req.Token, sample, errors.New("boom"))
	if c.Pending() != 0 {
		t.Fatalf("pending after resolve = %d", c.Pending())
	}

	// resubmit straight from the error state
	req2, ok := c.Submit()
	if !ok || req2.Token == req.Token || c.State() != StateGenerating {
		t.Fatalf("resubmit from error: ok=%v req=%+v state=%v", ok, req2, c.State())
	}
}
