// Package typetag classifies decoded JSON values into the type vocabulary
// shared by the analyzer, normalizer, and validator.
//
// Values are expected to come from encoding/json with UseNumber enabled, so
// numbers arrive as json.Number and keep their original literal. Plain Go
// ints and floats are still classified correctly for values constructed in
// code.
package typetag

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Tag identifies the observed type of a JSON value.
type Tag string

// Type tag constants. NumericString and BooleanString mark string values
// whose content looks numeric or boolean; they only come out of Classify,
// never Structural.
const (
	Null          Tag = "null"
	Boolean       Tag = "boolean"
	Integer       Tag = "integer"
	Float         Tag = "float"
	String        Tag = "string"
	NumericString Tag = "string(numeric)"
	BooleanString Tag = "string(boolean)"
	Array         Tag = "array"
	Object        Tag = "object"
)

// validTags is the set of valid type tags.
var validTags = map[Tag]bool{
	Null:          true,
	Boolean:       true,
	Integer:       true,
	Float:         true,
	String:        true,
	NumericString: true,
	BooleanString: true,
	Array:         true,
	Object:        true,
}

// IsValid returns true if the tag is valid.
func (t Tag) IsValid() bool {
	return validTags[t]
}

// booleanWords are the string spellings recognized as boolean-like during
// classification. The normalizer has its own, wider word lists.
var booleanWords = map[string]bool{
	"true":  true,
	"false": true,
	"yes":   true,
	"no":    true,
	"1":     true,
	"0":     true,
}

// IsNumericString reports whether s parses as an integer or float after
// trimming surrounding whitespace. This is deliberately liberal: values
// like "007" and "+5" count as numeric-looking even though the normalizer
// will refuse to convert them.
func IsNumericString(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsBooleanString reports whether s spells a boolean value. Matching is
// case-insensitive and ignores surrounding whitespace.
func IsBooleanString(s string) bool {
	return booleanWords[strings.ToLower(strings.TrimSpace(s))]
}

// Classify returns the tag for a decoded JSON value, sniffing string
// content for numeric- and boolean-looking values. Numeric sniffing wins
// over boolean sniffing, so "1" and "0" classify as NumericString.
func Classify(v any) Tag {
	if s, ok := v.(string); ok {
		if IsNumericString(s) {
			return NumericString
		}
		if IsBooleanString(s) {
			return BooleanString
		}
		return String
	}
	return Structural(v)
}

// Structural returns the tag for a decoded JSON value without inspecting
// string content. The validator uses it to report actual types.
func Structural(v any) Tag {
	switch x := v.(type) {
	case nil:
		return Null
	case bool:
		return Boolean
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return Integer
		}
		return Float
	case int:
		return Integer
	case int64:
		return Integer
	case float64:
		return Float
	case string:
		return String
	case []any:
		return Array
	case map[string]any:
		return Object
	default:
		return Tag(fmt.Sprintf("%T", x))
	}
}
