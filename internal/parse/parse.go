// Package parse converts raw command-line arguments into measurement
// values.
//
// Two input forms are accepted: independent numeric tokens, or a single
// argument carrying a JSON array of numbers. Anything else fails with
// domain.ErrInvalidInput.
package parse

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/aetheric-labs/triad-cli/internal/core/domain"
)

// IsJSONArray reports whether args is exactly one argument that, after
// trimming surrounding whitespace, is bracketed like a JSON array.
func IsJSONArray(args []string) bool {
	if len(args) != 1 {
		return false
	}
	trimmed := strings.TrimSpace(args[0])
	return strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")
}

// Values converts command-line arguments into floating-point values.
//
// A single bracketed argument is decoded as a JSON array of numbers.
// Every other shape is parsed token by token, so a bracketed argument
// mixed with further tokens fails on the bracketed token.
func Values(args []string) ([]float64, error) {
	if IsJSONArray(args) {
		return jsonValues(strings.TrimSpace(args[0]))
	}
	return tokenValues(args)
}

// jsonValues decodes a JSON array of numbers. Elements must be JSON
// numbers; strings and nested values are rejected.
func jsonValues(payload string) ([]float64, error) {
	var values []float64
	if err := json.Unmarshal([]byte(payload), &values); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON array %q: %v", domain.ErrInvalidInput, payload, err)
	}
	return values, nil
}

// tokenValues converts each argument independently.
func tokenValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %q is not a number", domain.ErrInvalidInput, arg)
		}
		values = append(values, v)
	}
	return values, nil
}
