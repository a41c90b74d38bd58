package analyze

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fredericlepied/lshw-normalization/core/inventory"
	"github.com/fredericlepied/lshw-normalization/core/typetag"
)

// sparsityThreshold is the share of files a field must reach before it stops
// counting as sparsely present.
const sparsityThreshold = 0.9

// topEntries caps how many entries each text report section lists.
const topEntries = 20

// newRunID and timeNow are variables to allow deterministic reports in tests.
var (
	newRunID = uuid.NewString
	timeNow  = time.Now
)

// Entry describes one field path flagged by the analyzer.
type Entry struct {
	Field       string   `json:"field"`
	Types       []string `json:"types,omitempty"`
	Occurrences int      `json:"occurrences"`
	Percentage  float64  `json:"percentage"`
}

// NullEntry describes a field path whose observed values were always null.
type NullEntry struct {
	Field       string `json:"field"`
	Occurrences int    `json:"occurrences"`
}

// Issues is the categorized set of findings.
type Issues struct {
	TypeInconsistencies []Entry     `json:"type_inconsistencies"`
	NumericAsString     []Entry     `json:"numeric_as_string"`
	BooleanAsString     []Entry     `json:"boolean_as_string"`
	MissingInSomeFiles  []Entry     `json:"missing_in_some_files"`
	AlwaysNull          []NullEntry `json:"always_null"`
}

// Report is the result of one analysis run.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	TotalFiles  int
	UniquePaths int
	Issues      *Issues
	FieldTypes  map[string][]string
}

// Report derives the categorized findings from the accumulated state.
//
// Entries are collected in field path order and then stably sorted by
// occurrence count, so ties stay alphabetical and the output is
// deterministic.
func (a *Analyzer) Report() *Report {
	paths := make([]string, 0, len(a.fieldTypes))
	for path := range a.fieldTypes {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	issues := &Issues{
		TypeInconsistencies: []Entry{},
		NumericAsString:     []Entry{},
		BooleanAsString:     []Entry{},
		MissingInSomeFiles:  []Entry{},
		AlwaysNull:          []NullEntry{},
	}
	fieldTypes := make(map[string][]string, len(a.fieldTypes))

	for _, path := range paths {
		tags := a.fieldTypes[path]
		occurrences := a.occurrences[path]

		names := make([]string, 0, len(tags))
		nonNull := 0
		for tag := range tags {
			names = append(names, string(tag))
			if tag != typetag.Null {
				nonNull++
			}
		}
		sort.Strings(names)
		fieldTypes[path] = names

		entry := Entry{
			Field:       path,
			Types:       names,
			Occurrences: occurrences,
			Percentage:  percentage(occurrences, a.totalFiles),
		}

		// Null is excluded from the conflict check: optional fields
		// represented as null are expected.
		if nonNull > 1 {
			issues.TypeInconsistencies = append(issues.TypeInconsistencies, entry)
		}
		if _, ok := tags[typetag.NumericString]; ok {
			issues.NumericAsString = append(issues.NumericAsString, entry)
		}
		if _, ok := tags[typetag.BooleanString]; ok {
			issues.BooleanAsString = append(issues.BooleanAsString, entry)
		}
		// A field seen in only one file is noise, not a pattern.
		if float64(occurrences) < float64(a.totalFiles)*sparsityThreshold && occurrences > 1 {
			missing := entry
			missing.Types = nil
			issues.MissingInSomeFiles = append(issues.MissingInSomeFiles, missing)
		}
		if nonNull == 0 && len(tags) == 1 {
			issues.AlwaysNull = append(issues.AlwaysNull, NullEntry{
				Field:       path,
				Occurrences: occurrences,
			})
		}
	}

	sortEntries(issues.TypeInconsistencies)
	sortEntries(issues.NumericAsString)
	sortEntries(issues.BooleanAsString)
	sortEntries(issues.MissingInSomeFiles)
	sort.SliceStable(issues.AlwaysNull, func(i, j int) bool {
		return issues.AlwaysNull[i].Occurrences > issues.AlwaysNull[j].Occurrences
	})

	return &Report{
		RunID:       newRunID(),
		GeneratedAt: timeNow().UTC(),
		TotalFiles:  a.totalFiles,
		UniquePaths: len(a.fieldTypes),
		Issues:      issues,
		FieldTypes:  fieldTypes,
	}
}

// sortEntries orders entries descending by occurrence count.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Occurrences > entries[j].Occurrences
	})
}

// percentage returns occurrences as a share of total files, rounded to two
// decimal places.
func percentage(occurrences, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(occurrences)/float64(total)*100*100) / 100
}

// formatPercent renders a rounded percentage the way the reports print it:
// integral values keep one decimal place ("100.0"), everything else prints
// its shortest form ("66.67", "12.1").
func formatPercent(p float64) string {
	if p == math.Trunc(p) {
		return strconv.FormatFloat(p, 'f', 1, 64)
	}
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// Text renders the human-readable report.
func (r *Report) Text() string {
	rule := strings.Repeat("=", 80)

	lines := []string{
		rule,
		"LSHW JSON Type Analysis Report",
		rule,
		fmt.Sprintf("\nTotal files analyzed: %d", r.TotalFiles),
		fmt.Sprintf("Total unique field paths: %d", r.UniquePaths),
		"",
	}

	lines = typedSection(lines, rule, "TYPE INCONSISTENCIES (HIGH PRIORITY)",
		"Found %d fields with inconsistent types:\n", r.Issues.TypeInconsistencies)
	lines = typedSection(lines, rule, "NUMERIC VALUES AS STRINGS (MEDIUM PRIORITY)",
		"Found %d fields with numeric strings:\n", r.Issues.NumericAsString)
	lines = typedSection(lines, rule, "BOOLEAN VALUES AS STRINGS (MEDIUM PRIORITY)",
		"Found %d fields with boolean strings:\n", r.Issues.BooleanAsString)

	if len(r.Issues.MissingInSomeFiles) > 0 {
		lines = append(lines, "\n"+rule)
		lines = append(lines, "FIELDS MISSING IN SOME FILES (LOW PRIORITY)")
		lines = append(lines, rule)
		lines = append(lines, fmt.Sprintf("Found %d fields not present in all files:\n",
			len(r.Issues.MissingInSomeFiles)))
		for _, item := range top(r.Issues.MissingInSomeFiles) {
			lines = append(lines, fmt.Sprintf("  Field: %s", item.Field))
			lines = append(lines, fmt.Sprintf("    Present in: %d/%d files (%s%%)",
				item.Occurrences, r.TotalFiles, formatPercent(item.Percentage)))
			lines = append(lines, "")
		}
	}

	lines = append(lines, "\n"+rule)
	lines = append(lines, "SUMMARY")
	lines = append(lines, rule)
	lines = append(lines, fmt.Sprintf("Type inconsistencies: %d", len(r.Issues.TypeInconsistencies)))
	lines = append(lines, fmt.Sprintf("Numeric as string: %d", len(r.Issues.NumericAsString)))
	lines = append(lines, fmt.Sprintf("Boolean as string: %d", len(r.Issues.BooleanAsString)))
	lines = append(lines, fmt.Sprintf("Missing in some files: %d", len(r.Issues.MissingInSomeFiles)))
	lines = append(lines, fmt.Sprintf("Always null: %d", len(r.Issues.AlwaysNull)))
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

// typedSection appends one report section listing entries with their types.
// Empty sections are omitted entirely.
func typedSection(lines []string, rule, header, countFormat string, entries []Entry) []string {
	if len(entries) == 0 {
		return lines
	}

	lines = append(lines, "\n"+rule)
	lines = append(lines, header)
	lines = append(lines, rule)
	lines = append(lines, fmt.Sprintf(countFormat, len(entries)))
	for _, item := range top(entries) {
		lines = append(lines, fmt.Sprintf("  Field: %s", item.Field))
		lines = append(lines, fmt.Sprintf("    Types found: %s", strings.Join(item.Types, ", ")))
		lines = append(lines, fmt.Sprintf("    Occurrences: %d (%s%%)",
			item.Occurrences, formatPercent(item.Percentage)))
		lines = append(lines, "")
	}
	return lines
}

// top returns at most topEntries entries.
func top(entries []Entry) []Entry {
	if len(entries) > topEntries {
		return entries[:topEntries]
	}
	return entries
}

// details is the JSON layout of the machine-readable analysis file.
type details struct {
	RunID       string              `json:"run_id"`
	GeneratedAt string              `json:"generated_at"`
	TotalFiles  int                 `json:"total_files"`
	Issues      *Issues             `json:"issues"`
	FieldTypes  map[string][]string `json:"field_types"`
}

// Details serializes the full analysis state for downstream tooling.
func (r *Report) Details() ([]byte, error) {
	return inventory.Encode(details{
		RunID:       r.RunID,
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
		TotalFiles:  r.TotalFiles,
		Issues:      r.Issues,
		FieldTypes:  r.FieldTypes,
	})
}
