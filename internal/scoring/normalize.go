// Package scoring implements answer normalization, required-answer
// validation, and the deterministic scoring function for finalized attempts.
// Everything here is pure: no clock, no storage, no network.
package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"examsense/internal/model"
)

// Normalize converts one raw answer value into its canonical string form.
// Multi-value answers (selected option keys) collapse to a comma-joined
// string; scalars are stringified. The canonical string is what gets
// persisted and what the scorer operates on.
func Normalize(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, Normalize(item))
		}
		return strings.Join(parts, ",")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Present reports whether a raw answer counts as answered. Absent, nil,
// empty or whitespace-only strings, and empty lists do not.
func Present(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []string:
		return len(v) > 0
	case []interface{}:
		return len(v) > 0
	default:
		return true
	}
}

// NormalizeAll canonicalizes every present answer in the raw submission,
// keyed by question id. Answers that are not present are dropped rather
// than stored as empty strings.
func NormalizeAll(raw map[string]interface{}) map[string]string {
	normalized := make(map[string]string, len(raw))
	for questionID, value := range raw {
		if !Present(value) {
			continue
		}
		normalized[questionID] = Normalize(value)
	}
	return normalized
}

// MissingQuestions returns the ids of snapshot questions without a present
// answer, in snapshot order. Every question is required at this layer; the
// per-question IsRequired flag only drives client-side behavior.
func MissingQuestions(questions []model.Question, raw map[string]interface{}) []uint {
	var missing []uint
	for _, q := range questions {
		value, ok := raw[QuestionKey(q.ID)]
		if !ok || !Present(value) {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

// QuestionKey renders a question id the way answer maps key it.
func QuestionKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
