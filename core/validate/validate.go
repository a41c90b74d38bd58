// Package validate checks inventory documents against the declared field
// type table and reports mistyped values.
//
// Validation is read-only: it never rewrites a document. Errors mark values
// whose category falls outside the field's acceptable set; warnings mark
// values the normalizer could convert (numbers and booleans spelled as
// strings). Warnings alone never fail a document.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fredericlepied/lshw-normalization/core/inventory"
	"github.com/fredericlepied/lshw-normalization/core/typetag"
)

// maxValueLength caps the rendered value stored in an error record.
const maxValueLength = 50

// Error is one recorded validation failure. Field-level errors carry the
// path and type details; file-level failures (unreadable or shape-invalid
// input) carry File and Err instead.
type Error struct {
	File         string `json:"file,omitempty"`
	Path         string `json:"path,omitempty"`
	Field        string `json:"field,omitempty"`
	ExpectedType string `json:"expected_type,omitempty"`
	ActualType   string `json:"actual_type,omitempty"`
	Value        string `json:"value,omitempty"`
	Err          string `json:"error,omitempty"`
}

// Warning flags a value the normalizer would convert. It is advice, not a
// defect: the value is usable as-is.
type Warning struct {
	Path       string `json:"path"`
	Field      string `json:"field"`
	Issue      string `json:"issue"`
	Value      string `json:"value"`
	Suggestion string `json:"suggestion"`
}

// Outcome summarizes one document's validation.
type Outcome struct {
	Valid    bool
	Errors   int
	Warnings int
}

// Validator accumulates errors and warnings across documents.
type Validator struct {
	Errors         []Error
	Warnings       []Warning
	FilesValidated int
	FilesPassed    int
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// FilesFailed returns how many validated documents failed.
func (v *Validator) FilesFailed() int {
	return v.FilesValidated - v.FilesPassed
}

// RecordFailure notes a file whose document never reached the field checks:
// unreadable, unparseable, or not an inventory envelope. The file counts as
// validated and failed.
func (v *Validator) RecordFailure(file string, err error) {
	v.FilesValidated++
	v.Errors = append(v.Errors, Error{File: file, Err: err.Error()})
}

// ValidateDocument walks one decoded document and records every field whose
// value does not match its declared type. file names the source in
// file-level error records. Documents that do not match the envelope shape
// fail outright.
func (v *Validator) ValidateDocument(file string, doc any) Outcome {
	env, err := inventory.ParseEnvelope(doc)
	if err != nil {
		v.RecordFailure(file, err)
		return Outcome{Errors: 1}
	}

	v.FilesValidated++
	errsBefore := len(v.Errors)
	warnsBefore := len(v.Warnings)

	v.walkObject(env.Data, inventory.DataPath)

	outcome := Outcome{
		Errors:   len(v.Errors) - errsBefore,
		Warnings: len(v.Warnings) - warnsBefore,
	}
	outcome.Valid = outcome.Errors == 0
	if outcome.Valid {
		v.FilesPassed++
	}
	return outcome
}

// walkObject checks every field of obj, then recurses into nested objects
// and arrays. Keys are visited in sorted order so the recorded sequence is
// reproducible.
func (v *Validator) walkObject(obj map[string]any, path string) {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := obj[key]
		fieldPath := path + "." + key

		if expected, ok := expectedTypes[key]; ok {
			v.checkType(value, key, expected, fieldPath)
		}
		if booleanWarnFields[key] {
			v.checkBooleanString(value, key, fieldPath)
		}
		if numericWarnFields[key] {
			v.checkNumericString(value, key, fieldPath)
		}

		switch val := value.(type) {
		case map[string]any:
			v.walkObject(val, fieldPath)
		case []any:
			v.walkList(val, fieldPath)
		}
	}
}

// walkList recurses into object and array elements, indexing the path.
// Scalar elements carry no field name and are not checked.
func (v *Validator) walkList(list []any, path string) {
	for i, item := range list {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		switch val := item.(type) {
		case map[string]any:
			v.walkObject(val, itemPath)
		case []any:
			v.walkList(val, itemPath)
		}
	}
}

// checkType records an error when value's category is outside the expected
// set. Null is always acceptable.
func (v *Validator) checkType(value any, field string, expected []typetag.Tag, path string) {
	if value == nil {
		return
	}

	actual := typetag.Structural(value)
	for _, tag := range expected {
		if actual == tag {
			return
		}
	}

	names := make([]string, len(expected))
	for i, tag := range expected {
		names[i] = string(tag)
	}
	v.Errors = append(v.Errors, Error{
		Path:         path,
		Field:        field,
		ExpectedType: strings.Join(names, " or "),
		ActualType:   string(actual),
		Value:        renderValue(value),
	})
}

// checkBooleanString warns when a boolean field holds a boolean literal
// spelled as a string.
func (v *Validator) checkBooleanString(value any, field, path string) {
	text, ok := value.(string)
	if !ok || !typetag.IsBooleanString(text) {
		return
	}
	v.Warnings = append(v.Warnings, Warning{
		Path:       path,
		Field:      field,
		Issue:      "string_boolean",
		Value:      text,
		Suggestion: "Convert to boolean type",
	})
}

// checkNumericString warns when a numeric field holds a number spelled as a
// string.
func (v *Validator) checkNumericString(value any, field, path string) {
	text, ok := value.(string)
	if !ok || !typetag.IsNumericString(text) {
		return
	}
	v.Warnings = append(v.Warnings, Warning{
		Path:       path,
		Field:      field,
		Issue:      "string_numeric",
		Value:      text,
		Suggestion: "Convert to numeric type",
	})
}

// renderValue renders a value for an error record, truncated to
// maxValueLength runes. Strings appear verbatim, without quotes.
func renderValue(value any) string {
	var text string
	switch val := value.(type) {
	case string:
		text = val
	case json.Number:
		text = val.String()
	case bool:
		text = strconv.FormatBool(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			text = fmt.Sprintf("%v", val)
		} else {
			text = string(data)
		}
	}

	runes := []rune(text)
	if len(runes) > maxValueLength {
		return string(runes[:maxValueLength])
	}
	return text
}
