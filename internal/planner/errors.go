package planner

import (
	"encoding/json"
	"errors"
	"net"
	"net/url"
	"strings"
)

// Kind is the user-facing category of a failed generation.
type Kind int

const (
	KindUnknown Kind = iota
	KindEmptyInput
	KindNetwork
	KindRateLimited
	KindOverloaded
	KindSafety
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty_input"
	case KindNetwork:
		return "network"
	case KindRateLimited:
		return "rate_limited"
	case KindOverloaded:
		return "overloaded"
	case KindSafety:
		return "safety"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

const (
	MsgEmptyInput  = "Please enter a goal to plan for."
	MsgNetwork     = "Network error. Please check your internet connection and try again."
	MsgRateLimited = "We've hit the usage limit for the AI service. Please wait a moment and try again."
	MsgOverloaded  = "The AI service is currently experiencing high traffic. Please try again in a minute."
	MsgSafety      = "The request was blocked by safety filters. Please try rephrasing your goal."
	MsgMalformed   = "Failed to parse the roadmap data. Please try again."
	MsgUnknown     = "An unexpected error occurred while generating your roadmap. Please try again."
)

func (k Kind) Message() string {
	switch k {
	case KindEmptyInput:
		return MsgEmptyInput
	case KindNetwork:
		return MsgNetwork
	case KindRateLimited:
		return MsgRateLimited
	case KindOverloaded:
		return MsgOverloaded
	case KindSafety:
		return MsgSafety
	case KindMalformed:
		return MsgMalformed
	default:
		return MsgUnknown
	}
}

var ErrEmptyGoal = errors.New("goal is empty")

// Error is a classified generation failure. Error() is safe to show to
// the user; the raw cause stays reachable through Unwrap.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Kind.Message()
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the Kind of a classified error, or KindUnknown.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}

// Classify maps a raw generation error to a Kind. Matching is a substring
// heuristic over the lower-cased error text, checked in priority order.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "429") || strings.Contains(s, "quota"):
		return KindRateLimited
	case strings.Contains(s, "503") || strings.Contains(s, "overloaded"):
		return KindOverloaded
	case strings.Contains(s, "blocked") || strings.Contains(s, "safety"):
		return KindSafety
	case isNetworkError(err, s):
		return KindNetwork
	case isSyntaxError(err):
		return KindMalformed
	}
	return KindUnknown
}

func isNetworkError(err error, s string) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	for _, needle := range []string{
		"fetch failed",
		"connection refused",
		"connection reset",
		"no such host",
		"network is unreachable",
		"i/o timeout",
	} {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

func isSyntaxError(err error) bool {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return true
	}
	var te *json.UnmarshalTypeError
	return errors.As(err, &te)
}
