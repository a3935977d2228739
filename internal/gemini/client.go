package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/idilsaglam/roadmap/internal/logger"
)

// contentGenerator is the slice of *genai.Models the client needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var (
	ErrEmptyResponse = errors.New("no response content generated")
	ErrBlocked       = errors.New("request blocked by safety filters")
)

type Options struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client sends one structured-output request per call. It is built once
// at startup and handed to whoever needs it.
type Client struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	log     *logger.Logger
}

func New(ctx context.Context, opt Options, log *logger.Logger) (*Client, error) {
	if strings.TrimSpace(opt.APIKey) == "" {
		return nil, fmt.Errorf("gemini: api key required")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opt.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return newWithModels(gc.Models, opt, log), nil
}

func newWithModels(m contentGenerator, opt Options, log *logger.Logger) *Client {
	if log == nil {
		log = logger.NewNop()
	}
	name := strings.TrimSpace(opt.Model)
	if name == "" {
		name = "gemini-3-flash-preview"
	}
	return &Client{
		models:  m,
		model:   name,
		timeout: opt.Timeout,
		log:     log.With("service", "GeminiClient", "model", name),
	}
}

func (c *Client) Model() string { return c.model }

// GenerateJSON asks for application/json output conforming to
// RoadmapSchema and returns the raw response text.
func (c *Client) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   RoadmapSchema(),
	})
	if err != nil {
		return "", err
	}
	if err := blockedError(resp); err != nil {
		return "", err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	c.log.Debug("generate content done", "elapsed", time.Since(start).String(), "bytes", len(text))
	return text, nil
}

func blockedError(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return nil
	}
	if pf := resp.PromptFeedback; pf != nil && pf.BlockReason != "" && pf.BlockReason != genai.BlockedReasonUnspecified {
		return fmt.Errorf("%w: prompt %s", ErrBlocked, pf.BlockReason)
	}
	for _, cand := range resp.Candidates {
		if cand == nil {
			continue
		}
		switch cand.FinishReason {
		case genai.FinishReasonSafety, genai.FinishReasonProhibitedContent, genai.FinishReasonBlocklist:
			return fmt.Errorf("%w: finish reason %s", ErrBlocked, cand.FinishReason)
		}
	}
	return nil
}
