// Package jsonx locates and decodes JSON documents embedded in free-form text,
// such as a language model reply that wraps its JSON in prose or code fences.
package jsonx

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoMatch is returned when the text holds no open delimiter followed by a close delimiter.
	ErrNoMatch = errors.New("no bracketed JSON found in text")

	// ErrInvalidJSON is returned when the bracketed span does not decode into the target type.
	ErrInvalidJSON = errors.New("bracketed text is not valid JSON")
)

// Span returns the greedy substring running from the first open byte to the
// last close byte that follows it, matching the regular expression
// `\{[\s\S]*\}` when open and close are '{' and '}'.
func Span(raw string, open, close byte) (string, bool) {
	start := strings.IndexByte(raw, open)
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(raw, close)
	if end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// Extract decodes the greedy bracketed span of raw into a value of type T.
// Errors wrap ErrNoMatch or ErrInvalidJSON.
func Extract[T any](raw string, open, close byte) (T, error) {
	var out T

	span, ok := Span(raw, open, close)
	if !ok {
		return out, fmt.Errorf("%w: looking for %q...%q", ErrNoMatch, open, close)
	}

	if err := json.Unmarshal([]byte(span), &out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return out, nil
}

// ExtractOrDefault is Extract with every failure collapsed into def,
// which is returned unchanged.
func ExtractOrDefault[T any](raw string, open, close byte, def T) T {
	out, err := Extract[T](raw, open, close)
	if err != nil {
		return def
	}
	return out
}
