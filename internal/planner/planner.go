package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/idilsaglam/roadmap/internal/logger"
	"github.com/idilsaglam/roadmap/internal/model"
)

// Generator returns JSON text for a prompt. The implementation owns the
// output schema (see gemini.Client).
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Planner turns a goal into a Roadmap with one generation request.
// It never retries; the caller decides whether to ask again.
type Planner struct {
	gen Generator
	log *logger.Logger
}

func New(gen Generator, log *logger.Logger) *Planner {
	if log == nil {
		log = logger.NewNop()
	}
	return &Planner{gen: gen, log: log.With("service", "Planner")}
}

// Generate builds the prompt, calls the generator and parses the result.
// All failures are *Error values.
func (p *Planner) Generate(ctx context.Context, goal, userContext string) (model.Roadmap, error) {
	if strings.TrimSpace(goal) == "" {
		return model.Roadmap{}, newError(KindEmptyInput, ErrEmptyGoal)
	}

	log := p.log.With("request_id", uuid.NewString())
	log.Info("generating roadmap", "goal", goal, "has_context", strings.TrimSpace(userContext) != "")

	text, err := p.gen.GenerateJSON(ctx, BuildPrompt(goal, userContext))
	if err != nil {
		kind := Classify(err)
		log.Error("generation failed", "kind", kind.String(), "error", err.Error())
		return model.Roadmap{}, newError(kind, err)
	}

	r, err := Parse(text)
	if err != nil {
		log.Error("response parse failed", "kind", KindMalformed.String(), "error", err.Error(), "bytes", len(text))
		return model.Roadmap{}, newError(KindMalformed, err)
	}
	log.Info("roadmap generated", "phases", len(r.Phases), "steps", r.StepCount(), "syllabus", len(r.Syllabus))
	return r, nil
}

// Parse decodes response text into a Roadmap, checking the required
// top-level fields and enum literals.
func Parse(text string) (model.Roadmap, error) {
	raw := []byte(strings.TrimSpace(text))

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return model.Roadmap{}, fmt.Errorf("decode roadmap: %w", err)
	}
	for _, name := range model.RequiredFields {
		v, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return model.Roadmap{}, fmt.Errorf("decode roadmap: missing required field %q", name)
		}
	}

	var r model.Roadmap
	if err := json.Unmarshal(raw, &r); err != nil {
		return model.Roadmap{}, fmt.Errorf("decode roadmap: %w", err)
	}
	if err := r.Validate(); err != nil {
		return model.Roadmap{}, fmt.Errorf("validate roadmap: %w", err)
	}
	return r, nil
}
