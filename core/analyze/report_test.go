package analyze

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// findEntry returns the entry for field, or nil.
func findEntry(entries []Entry, field string) *Entry {
	for i := range entries {
		if entries[i].Field == field {
			return &entries[i]
		}
	}
	return nil
}

// buildCorpus observes three documents exercising every issue category.
func buildCorpus(t *testing.T) *Analyzer {
	t.Helper()
	a := New()
	observe(t, a, `{
		"id": "a", "class": "system",
		"size": 1024, "claimed": true, "vendor": "Dell"
	}`)
	observe(t, a, `{
		"id": "b", "class": "system",
		"size": "2048", "claimed": "true", "vendor": "HPE"
	}`)
	observe(t, a, `{
		"id": "c", "class": "system",
		"size": 4096, "claimed": true, "serial": null
	}`)
	return a
}

func TestReportCategories(t *testing.T) {
	report := buildCorpus(t).Report()

	if report.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d, want 3", report.TotalFiles)
	}

	// size flips between integer and string(numeric), claimed between
	// boolean and string(boolean): both are inconsistencies.
	if len(report.Issues.TypeInconsistencies) != 2 {
		t.Fatalf("TypeInconsistencies = %d entries, want 2", len(report.Issues.TypeInconsistencies))
	}

	size := findEntry(report.Issues.TypeInconsistencies, "hardware.data.size")
	if size == nil {
		t.Fatal("size missing from type inconsistencies")
	}
	if size.Occurrences != 3 {
		t.Errorf("size occurrences = %d, want 3", size.Occurrences)
	}
	if size.Percentage != 100 {
		t.Errorf("size percentage = %v, want 100", size.Percentage)
	}
	wantTypes := []string{"integer", "string(numeric)"}
	if len(size.Types) != 2 || size.Types[0] != wantTypes[0] || size.Types[1] != wantTypes[1] {
		t.Errorf("size types = %v, want %v", size.Types, wantTypes)
	}

	if len(report.Issues.NumericAsString) != 1 || report.Issues.NumericAsString[0].Field != "hardware.data.size" {
		t.Errorf("NumericAsString = %+v, want just size", report.Issues.NumericAsString)
	}
	if len(report.Issues.BooleanAsString) != 1 || report.Issues.BooleanAsString[0].Field != "hardware.data.claimed" {
		t.Errorf("BooleanAsString = %+v, want just claimed", report.Issues.BooleanAsString)
	}

	// vendor appears in 2/3 files: below 90% and above the one-file noise
	// floor. serial appears once, so it stays out.
	if len(report.Issues.MissingInSomeFiles) != 1 {
		t.Fatalf("MissingInSomeFiles = %+v, want just vendor", report.Issues.MissingInSomeFiles)
	}
	vendor := report.Issues.MissingInSomeFiles[0]
	if vendor.Field != "hardware.data.vendor" {
		t.Errorf("missing field = %q, want hardware.data.vendor", vendor.Field)
	}
	if vendor.Percentage != 66.67 {
		t.Errorf("vendor percentage = %v, want 66.67", vendor.Percentage)
	}
	if vendor.Types != nil {
		t.Errorf("missing entry carries types: %v", vendor.Types)
	}

	if len(report.Issues.AlwaysNull) != 1 {
		t.Fatalf("AlwaysNull = %+v, want just serial", report.Issues.AlwaysNull)
	}
	if report.Issues.AlwaysNull[0].Field != "hardware.data.serial" {
		t.Errorf("always-null field = %q, want hardware.data.serial", report.Issues.AlwaysNull[0].Field)
	}
	if report.Issues.AlwaysNull[0].Occurrences != 1 {
		t.Errorf("always-null occurrences = %d, want 1", report.Issues.AlwaysNull[0].Occurrences)
	}
}

func TestReportNullDoesNotTriggerInconsistency(t *testing.T) {
	a := New()
	observe(t, a, `{"id": "a", "class": "system", "serial": null}`)
	observe(t, a, `{"id": "b", "class": "system", "serial": "S123"}`)

	report := a.Report()

	if e := findEntry(report.Issues.TypeInconsistencies, "hardware.data.serial"); e != nil {
		t.Errorf("null+string flagged as inconsistency: %+v", e)
	}
}

func TestReportOrdering(t *testing.T) {
	a := New()
	observe(t, a, `{"id": "a", "class": "system", "size": "1", "width": "64"}`)
	observe(t, a, `{"id": "b", "class": "system", "size": "2"}`)

	report := a.Report()

	numeric := report.Issues.NumericAsString
	if len(numeric) != 2 {
		t.Fatalf("NumericAsString = %d entries, want 2", len(numeric))
	}
	if numeric[0].Field != "hardware.data.size" || numeric[1].Field != "hardware.data.width" {
		t.Errorf("order = [%s, %s], want size before width", numeric[0].Field, numeric[1].Field)
	}
}

func TestReportOrderingTiesAlphabetical(t *testing.T) {
	a := New()
	observe(t, a, `{"id": "a", "class": "system", "width": "64", "clock": "100"}`)

	report := a.Report()

	numeric := report.Issues.NumericAsString
	if len(numeric) != 2 {
		t.Fatalf("NumericAsString = %d entries, want 2", len(numeric))
	}
	if numeric[0].Field != "hardware.data.clock" || numeric[1].Field != "hardware.data.width" {
		t.Errorf("tie order = [%s, %s], want clock before width", numeric[0].Field, numeric[1].Field)
	}
}

func TestReportText(t *testing.T) {
	text := buildCorpus(t).Report().Text()

	for _, want := range []string{
		"LSHW JSON Type Analysis Report",
		"Total files analyzed: 3",
		"TYPE INCONSISTENCIES (HIGH PRIORITY)",
		"Found 2 fields with inconsistent types:",
		"NUMERIC VALUES AS STRINGS (MEDIUM PRIORITY)",
		"BOOLEAN VALUES AS STRINGS (MEDIUM PRIORITY)",
		"FIELDS MISSING IN SOME FILES (LOW PRIORITY)",
		"  Field: hardware.data.size",
		"    Types found: integer, string(numeric)",
		"    Occurrences: 3 (100.0%)",
		"    Present in: 2/3 files (66.67%)",
		"SUMMARY",
		"Type inconsistencies: 2",
		"Numeric as string: 1",
		"Boolean as string: 1",
		"Missing in some files: 1",
		"Always null: 1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report text missing %q", want)
		}
	}
}

func TestReportTextOmitsEmptySections(t *testing.T) {
	a := New()
	observe(t, a, `{"id": "a", "class": "system", "size": 1024}`)

	text := a.Report().Text()

	for _, section := range []string{
		"TYPE INCONSISTENCIES",
		"NUMERIC VALUES AS STRINGS",
		"BOOLEAN VALUES AS STRINGS",
		"FIELDS MISSING IN SOME FILES",
	} {
		if strings.Contains(text, section) {
			t.Errorf("report text contains empty section %q", section)
		}
	}
	if !strings.Contains(text, "SUMMARY") {
		t.Error("report text missing summary")
	}
	if !strings.Contains(text, "Type inconsistencies: 0") {
		t.Error("summary missing zero counts")
	}
}

func TestReportTextCapsEntries(t *testing.T) {
	a := New()
	observe(t, a, `{"id": "a", "class": "system",
		"f01": "1", "f02": "2", "f03": "3", "f04": "4", "f05": "5",
		"f06": "6", "f07": "7", "f08": "8", "f09": "9", "f10": "10",
		"f11": "11", "f12": "12", "f13": "13", "f14": "14", "f15": "15",
		"f16": "16", "f17": "17", "f18": "18", "f19": "19", "f20": "20",
		"f21": "21", "f22": "22"
	}`)

	text := a.Report().Text()

	if !strings.Contains(text, "Found 22 fields with numeric strings:") {
		t.Error("count line should cover all entries")
	}
	if got := strings.Count(text, "  Field: hardware.data.f"); got != 20 {
		t.Errorf("printed %d entries, want capped at 20", got)
	}
}

func TestReportDetails(t *testing.T) {
	originalRunID := newRunID
	originalNow := timeNow
	defer func() {
		newRunID = originalRunID
		timeNow = originalNow
	}()
	newRunID = func() string { return "run-1" }
	timeNow = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	data, err := buildCorpus(t).Report().Details()
	if err != nil {
		t.Fatalf("Details failed: %v", err)
	}

	var decoded struct {
		RunID       string              `json:"run_id"`
		GeneratedAt string              `json:"generated_at"`
		TotalFiles  int                 `json:"total_files"`
		Issues      map[string][]any    `json:"issues"`
		FieldTypes  map[string][]string `json:"field_types"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("details are not valid JSON: %v", err)
	}

	if decoded.RunID != "run-1" {
		t.Errorf("run_id = %q, want %q", decoded.RunID, "run-1")
	}
	if decoded.GeneratedAt != "2024-05-01T12:00:00Z" {
		t.Errorf("generated_at = %q, want %q", decoded.GeneratedAt, "2024-05-01T12:00:00Z")
	}
	if decoded.TotalFiles != 3 {
		t.Errorf("total_files = %d, want 3", decoded.TotalFiles)
	}

	for _, category := range []string{
		"type_inconsistencies", "numeric_as_string", "boolean_as_string",
		"missing_in_some_files", "always_null",
	} {
		if _, ok := decoded.Issues[category]; !ok {
			t.Errorf("issues missing category %q", category)
		}
	}

	if _, ok := decoded.FieldTypes["hardware.data.size"]; !ok {
		t.Error("field_types missing hardware.data.size")
	}
}

func TestReportDetailsEmptyCategories(t *testing.T) {
	a := New()
	observe(t, a, `{"id": "a", "class": "system"}`)

	data, err := a.Report().Details()
	if err != nil {
		t.Fatalf("Details failed: %v", err)
	}

	// Empty categories serialize as empty arrays, never null.
	if strings.Contains(string(data), ": null") {
		t.Errorf("details contain null category: %s", data)
	}
	if !strings.Contains(string(data), `"always_null": []`) {
		t.Errorf("details missing empty always_null array: %s", data)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		occurrences int
		total       int
		want        float64
	}{
		{3, 3, 100},
		{2, 3, 66.67},
		{1, 3, 33.33},
		{1, 8, 12.5},
		{0, 5, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := percentage(tt.occurrences, tt.total); got != tt.want {
			t.Errorf("percentage(%d, %d) = %v, want %v", tt.occurrences, tt.total, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{100, "100.0"},
		{66.67, "66.67"},
		{12.5, "12.5"},
		{0, "0.0"},
	}

	for _, tt := range tests {
		if got := formatPercent(tt.p); got != tt.want {
			t.Errorf("formatPercent(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}
