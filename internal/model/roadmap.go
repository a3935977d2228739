package model

import (
	"fmt"
	"strings"
)

// ResourceType is the kind of a suggested learning resource.
type ResourceType string

const (
	ResourceBook    ResourceType = "book"
	ResourceVideo   ResourceType = "video"
	ResourceCourse  ResourceType = "course"
	ResourceArticle ResourceType = "article"
	ResourceTool    ResourceType = "tool"
)

// ResourceTypes lists the accepted resource types in schema order.
var ResourceTypes = []ResourceType{ResourceBook, ResourceVideo, ResourceCourse, ResourceArticle, ResourceTool}

func (t ResourceType) Valid() bool {
	for _, v := range ResourceTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Importance is the priority rating of a syllabus topic.
type Importance string

const (
	ImportanceHigh   Importance = "High"
	ImportanceMedium Importance = "Medium"
	ImportanceLow    Importance = "Low"
)

var Importances = []Importance{ImportanceHigh, ImportanceMedium, ImportanceLow}

func (i Importance) Valid() bool {
	for _, v := range Importances {
		if i == v {
			return true
		}
	}
	return false
}

// RequiredFields are the top-level Roadmap keys a response must carry.
var RequiredFields = []string{"goal", "overview", "phases", "syllabus", "estimatedTotalDuration"}

// Roadmap is the full study/career plan returned by one generation.
// It is built wholesale from a response and never mutated afterwards.
type Roadmap struct {
	Goal                   string          `json:"goal" yaml:"goal"`
	Overview               string          `json:"overview" yaml:"overview"`
	EstimatedTotalDuration string          `json:"estimatedTotalDuration" yaml:"estimatedTotalDuration"`
	Phases                 []Phase         `json:"phases" yaml:"phases"`
	Syllabus               []SyllabusTopic `json:"syllabus" yaml:"syllabus"`
}

type Phase struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Steps       []Step `json:"steps" yaml:"steps"`
}

// Step is a single actionable unit within a phase.
type Step struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Duration    string     `json:"duration" yaml:"duration"`
	Description string     `json:"description" yaml:"description"`
	Topics      []string   `json:"topics" yaml:"topics"`
	AIStrategy  string     `json:"aiStrategy" yaml:"aiStrategy"`
	Resources   []Resource `json:"resources" yaml:"resources"`
}

type Resource struct {
	Title string       `json:"title" yaml:"title"`
	Type  ResourceType `json:"type" yaml:"type"`
	URL   string       `json:"url,omitempty" yaml:"url,omitempty"`
}

type SyllabusTopic struct {
	Name       string     `json:"name" yaml:"name"`
	Subtopics  []string   `json:"subtopics" yaml:"subtopics"`
	Importance Importance `json:"importance" yaml:"importance"`
}

// Validate reports the first enum field holding an undeclared literal.
func (r Roadmap) Validate() error {
	for pi, p := range r.Phases {
		for si, s := range p.Steps {
			for ri, res := range s.Resources {
				if !res.Type.Valid() {
					return fmt.Errorf("phases[%d].steps[%d].resources[%d].type: invalid value %q", pi, si, ri, res.Type)
				}
			}
		}
	}
	for ti, t := range r.Syllabus {
		if !t.Importance.Valid() {
			return fmt.Errorf("syllabus[%d].importance: invalid value %q", ti, t.Importance)
		}
	}
	return nil
}

// StepCount is the total number of steps across all phases.
func (r Roadmap) StepCount() int {
	n := 0
	for _, p := range r.Phases {
		n += len(p.Steps)
	}
	return n
}

// StepKey identifies a step inside a roadmap even when the model repeats
// or omits ids.
func StepKey(phase, step int, id string) string {
	id = strings.TrimSpace(id)
	return fmt.Sprintf("%d.%d:%s", phase, step, id)
}
