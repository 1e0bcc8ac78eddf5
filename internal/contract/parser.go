// Package contract parses free-form model output against an expected JSON
// shape. Models frequently wrap JSON in Markdown code fences or return
// something that decodes but is semantically useless; callers need to tell
// those cases apart for diagnostics even when recovery is the same.
package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformed means the text was not valid JSON after cleaning.
	ErrMalformed = errors.New("malformed model response")
	// ErrSemantic means the JSON decoded but did not satisfy the expected
	// shape (missing fields, wrong types, empty array).
	ErrSemantic = errors.New("semantically invalid model response")
)

// Clean strips Markdown code-fence wrapping and surrounding whitespace from
// raw model output. Fences with or without a language tag are handled.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		// Drop the opening fence line, tag included.
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// DecodeArray cleans raw and decodes it as a JSON array into out. An empty
// array is a semantic failure: every array-shaped contract in this system
// requires at least one element.
func DecodeArray[T any](raw string) ([]T, error) {
	cleaned := Clean(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty response", ErrMalformed)
	}
	var out []T
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty array", ErrSemantic)
	}
	return out, nil
}

// DecodeObject cleans raw and decodes it as a JSON object into out. The
// caller validates required fields; DecodeObject only rejects non-objects.
func DecodeObject(raw string, out any) error {
	cleaned := Clean(raw)
	if cleaned == "" {
		return fmt.Errorf("%w: empty response", ErrMalformed)
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
