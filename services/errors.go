package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/SoyPhilips/BalanceAI-Pro/repository"
)

// Analysis failures. Callers match them with errors.Is; the wrapped cause
// carries the provider's message.
var (
	ErrInvalidImage       = errors.New("invalid image")
	ErrMissingCredential  = errors.New("missing inference credential")
	ErrQuotaExhausted     = errors.New("inference quota exhausted")
	ErrModelUnavailable   = errors.New("no inference model available")
	ErrUnparsableResponse = errors.New("unparsable model response")
	ErrTransport          = errors.New("inference transport error")
)

var (
	ErrInvalidMealType = errors.New("invalid meal type")
	ErrNotFound        = repository.ErrNotFound
)

// ValidationError reports per-field problems with user input.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// fieldErrors collects messages and turns into a *ValidationError when
// anything was added.
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}
