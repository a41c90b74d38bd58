// Package normalize rewrites inventory documents so field types are
// consistent across a corpus: numeric strings become numbers, boolean
// spellings become booleans, and single-valued list fields become lists.
//
// Rules apply per field in a fixed precedence order; the first match wins.
// Coercion never guesses: a value that cannot be cleanly converted keeps
// its original form, and the document structure is never altered beyond
// the value rewrites themselves.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/fredericlepied/lshw-normalization/core/inventory"
	"github.com/fredericlepied/lshw-normalization/core/typetag"
)

// Normalizer applies the coercion rules and accumulates run statistics.
type Normalizer struct {
	Stats Stats
}

// New creates a Normalizer with zeroed statistics.
func New() *Normalizer {
	return &Normalizer{}
}

// Normalize coerces one decoded document and rebuilds its envelope. The
// returned bool reports whether the rebuilt document differs from the
// original. Shape-invalid documents return a validation error untouched;
// recording the skip is the caller's concern.
func (n *Normalizer) Normalize(doc any) (map[string]any, bool, error) {
	env, err := inventory.ParseEnvelope(doc)
	if err != nil {
		return nil, false, err
	}

	rebuilt := env.Rebuild(n.normalizeObject(env.Data))

	before, err := inventory.Digest(doc)
	if err != nil {
		return nil, false, err
	}
	after, err := inventory.Digest(rebuilt)
	if err != nil {
		return nil, false, err
	}

	return rebuilt, before != after, nil
}

// normalizeObject applies the field rules to every entry of one object.
func (n *Normalizer) normalizeObject(obj map[string]any) map[string]any {
	normalized := make(map[string]any, len(obj))
	for key, value := range obj {
		normalized[key] = n.normalizeField(key, value)
	}
	return normalized
}

// normalizeField picks the rule for one field. Precedence: configuration,
// capabilities, logicalname, physid/version, boolean set, numeric set,
// structural recursion.
func (n *Normalizer) normalizeField(key string, value any) any {
	if key == "configuration" {
		if config, ok := value.(map[string]any); ok {
			return n.normalizeConfiguration(config)
		}
	}
	if key == "capabilities" {
		if caps, ok := value.(map[string]any); ok {
			return n.normalizeCapabilities(caps)
		}
	}
	if key == "logicalname" {
		return n.normalizeLogicalName(value)
	}
	// physid and version are sometimes emitted as bare numbers upstream but
	// must stay strings for cross-document key consistency.
	if key == "physid" || key == "version" {
		return forceString(value)
	}
	if booleanFields[key] {
		return n.normalizeBoolean(value)
	}
	if numericFields[key] {
		return n.normalizeNumeric(value)
	}
	return n.normalizeStructural(value)
}

// normalizeStructural recurses into objects and arrays; scalars pass
// through verbatim. Array order and length are preserved.
func (n *Normalizer) normalizeStructural(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return n.normalizeObject(v)
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			switch item.(type) {
			case map[string]any, []any:
				items[i] = n.normalizeStructural(item)
			default:
				items[i] = item
			}
		}
		return items
	}
	return value
}

// normalizeConfiguration applies only the boolean and numeric field rules.
// Everything else passes through without structural recursion.
func (n *Normalizer) normalizeConfiguration(config map[string]any) map[string]any {
	normalized := make(map[string]any, len(config))
	for key, value := range config {
		switch {
		case booleanFields[key]:
			normalized[key] = n.normalizeBoolean(value)
		case numericFields[key]:
			normalized[key] = n.normalizeNumeric(value)
		default:
			normalized[key] = value
		}
	}
	return normalized
}

// normalizeCapabilities coerces capability entries to booleans. Allow-listed
// keys and already-boolean values convert explicit spellings directly; other
// string values are free-text descriptions, which read as false when they
// carry a negative marker and true otherwise — a descriptive string is an
// affirmative capability statement. Keys outside the allow-list whose
// values are not boolean pass through unchanged.
func (n *Normalizer) normalizeCapabilities(caps map[string]any) map[string]any {
	normalized := make(map[string]any, len(caps))
	for key, value := range caps {
		_, isBool := value.(bool)
		if !capabilityBooleans[key] && !isBool {
			normalized[key] = value
			continue
		}

		text, isString := value.(string)
		if !isString {
			normalized[key] = value
			continue
		}

		if typetag.IsBooleanString(text) {
			normalized[key] = n.normalizeBoolean(text)
			continue
		}

		lower := strings.ToLower(strings.TrimSpace(text))
		negative := false
		for _, marker := range negativeMarkers {
			if strings.Contains(lower, marker) {
				negative = true
				break
			}
		}
		n.Stats.BooleanConversions++
		normalized[key] = !negative
	}
	return normalized
}

// normalizeBoolean coerces recognized boolean spellings. Unrecognized
// strings pass through unchanged rather than being guessed at; numbers
// read as nonzero-is-true.
func (n *Normalizer) normalizeBoolean(value any) any {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		word := strings.ToLower(strings.TrimSpace(v))
		if trueWords[word] {
			n.Stats.BooleanConversions++
			return true
		}
		if falseWords[word] {
			n.Stats.BooleanConversions++
			return false
		}
		return v
	case json.Number:
		return !isZero(v)
	}
	return value
}

// normalizeNumeric converts clean numeric literals to numbers. The literal
// is kept exactly as written, so "1.50" becomes the number 1.50. Strings
// that only loosely look numeric ("007", "+5") pass through unchanged: a
// round-trippable literal is required before conversion is safe.
func (n *Normalizer) normalizeNumeric(value any) any {
	switch v := value.(type) {
	case json.Number:
		return v
	case string:
		if num, ok := numberLiteral(v); ok {
			n.Stats.NumericConversions++
			return num
		}
		return v
	}
	return value
}

// normalizeLogicalName wraps a bare string into a single-element list.
// Lists pass through, as does anything else: unexpected shapes are not
// coerced.
func (n *Normalizer) normalizeLogicalName(value any) any {
	switch v := value.(type) {
	case []any:
		return v
	case string:
		n.Stats.ArrayNormalizations++
		return []any{v}
	}
	return value
}

// forceString renders scalar values as strings. Null stays null, and
// container values pass through unchanged rather than being flattened.
func forceString(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	}
	return value
}

// numberLiteral returns the trimmed text of s if it is a valid JSON number
// literal.
func numberLiteral(s string) (json.Number, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", false
	}
	var num json.Number
	if err := json.Unmarshal([]byte(trimmed), &num); err != nil {
		return "", false
	}
	return num, true
}

// isZero reports whether num is numerically zero.
func isZero(num json.Number) bool {
	if i, err := num.Int64(); err == nil {
		return i == 0
	}
	f, err := num.Float64()
	return err == nil && f == 0
}
