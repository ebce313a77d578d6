// Package json pulls a JSON object out of a model reply.
//
// The itinerary exporter asks the model for a single JSON object, but
// replies routinely arrive wrapped in markdown fences or with commentary
// around the object. This package isolates the object and decodes it.
package json

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONFromResponse finds the JSON object in a model reply and decodes
// it into T. Handles fenced (```json ... ```) replies and objects embedded in
// surrounding text via first-'{' / last-'}' matching.
//
// Only objects are supported, not top-level arrays; brace matching is
// simple and can fail on unbalanced braces inside strings.
func ExtractJSONFromResponse[T any](response string) (T, error) {
	var result T
	raw, err := isolateObject(response)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return result, nil
}

// isolateObject returns the JSON portion of a reply.
func isolateObject(response string) (string, error) {
	response = stripFences(response)

	var parsed any
	if err := json.Unmarshal([]byte(response), &parsed); err == nil {
		return response, nil
	}

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start != -1 && end > start {
		candidate := response[start : end+1]
		if err := json.Unmarshal([]byte(candidate), &parsed); err == nil {
			return candidate, nil
		}
	}

	preview := response
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}
	return "", fmt.Errorf("failed to extract valid JSON from response: %q", preview)
}

// stripFences removes a surrounding markdown code block, fenced as
// ```json ... ``` or plain ``` ... ```.
func stripFences(response string) string {
	trimmed := strings.TrimSpace(response)

	if strings.HasPrefix(trimmed, "```json") {
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "```json"))
	} else if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
	}
	if strings.HasSuffix(trimmed, "```") {
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "```"))
	}
	return trimmed
}
