package services

import (
	"encoding/json"
	"strings"
)

// DecodeParseErrorMessage tags the envelope returned when model output
// cannot be parsed as structured data.
const DecodeParseErrorMessage = "Failed to parse AI response as JSON."

// CleanModelOutput strips surrounding whitespace and markdown code fences
// from raw model text. Models routinely wrap JSON in ```json fences even
// when told not to.
func CleanModelOutput(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// DecodeObject attempts strict JSON-object decoding of cleaned model output.
// On failure it degrades to the raw-text envelope instead of erroring: the
// model is not contractually guaranteed to emit well-formed JSON, and the
// caller should still be able to surface the raw text.
func DecodeObject(raw string) map[string]interface{} {
	cleaned := CleanModelOutput(raw)
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return rawTextEnvelope(raw)
	}
	return result
}

// DecodeArray attempts strict JSON-array decoding. The second return is the
// raw-text envelope when decoding fails (nil otherwise).
func DecodeArray(raw string) ([]map[string]interface{}, map[string]interface{}) {
	cleaned := CleanModelOutput(raw)
	var result []map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		// The payload may itself be an in-band error object.
		if obj := DecodeObject(raw); IsErrorResult(obj) {
			return nil, obj
		}
		return nil, rawTextEnvelope(raw)
	}
	return result, nil
}

// IsErrorResult reports whether a decoded result carries an error tag,
// either from the completion client's failure payload or from the decode
// fallback envelope.
func IsErrorResult(result map[string]interface{}) bool {
	if result == nil {
		return true
	}
	_, ok := result["error"]
	return ok
}

func rawTextEnvelope(raw string) map[string]interface{} {
	return map[string]interface{}{
		"error":        DecodeParseErrorMessage,
		"raw_response": raw,
	}
}
