package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fredericlepied/lshw-normalization/core/inventory"
)

// maxShown caps how many errors and warnings the text summary lists.
const maxShown = 20

// newRunID and timeNow are variables to allow deterministic reports in tests.
var (
	newRunID = uuid.NewString
	timeNow  = time.Now
)

// Summary renders the human-readable run summary: the counters, then the
// first errors and warnings in the order they were recorded.
func (v *Validator) Summary() string {
	rule := strings.Repeat("=", 80)

	lines := []string{
		"",
		rule,
		"Validation Summary",
		rule,
		fmt.Sprintf("Files validated: %d", v.FilesValidated),
		fmt.Sprintf("Files passed: %d", v.FilesPassed),
		fmt.Sprintf("Files failed: %d", v.FilesFailed()),
		fmt.Sprintf("Total errors: %d", len(v.Errors)),
		fmt.Sprintf("Total warnings: %d", len(v.Warnings)),
	}

	if len(v.Errors) > 0 {
		lines = append(lines, "\n"+rule)
		lines = append(lines, fmt.Sprintf("Errors (showing first %d)", maxShown))
		lines = append(lines, rule)
		for i, e := range v.Errors {
			if i == maxShown {
				break
			}
			if e.File != "" {
				lines = append(lines, fmt.Sprintf("\n%d. File: %s", i+1, e.File))
				lines = append(lines, fmt.Sprintf("   Error: %s", e.Err))
				continue
			}
			lines = append(lines, fmt.Sprintf("\n%d. Path: %s", i+1, e.Path))
			lines = append(lines, fmt.Sprintf("   Field: %s", e.Field))
			lines = append(lines, fmt.Sprintf("   Expected: %s", e.ExpectedType))
			lines = append(lines, fmt.Sprintf("   Actual: %s", e.ActualType))
			lines = append(lines, fmt.Sprintf("   Value: %s", e.Value))
		}
	}

	if len(v.Warnings) > 0 {
		lines = append(lines, "\n"+rule)
		lines = append(lines, fmt.Sprintf("Warnings (showing first %d)", maxShown))
		lines = append(lines, rule)
		for i, w := range v.Warnings {
			if i == maxShown {
				break
			}
			lines = append(lines, fmt.Sprintf("\n%d. Path: %s", i+1, w.Path))
			lines = append(lines, fmt.Sprintf("   Issue: %s", w.Issue))
			lines = append(lines, fmt.Sprintf("   Value: %s", w.Value))
			lines = append(lines, fmt.Sprintf("   Suggestion: %s", w.Suggestion))
		}
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// reportSummary is the counter block of the persisted report.
type reportSummary struct {
	FilesValidated int `json:"files_validated"`
	FilesPassed    int `json:"files_passed"`
	FilesFailed    int `json:"files_failed"`
	TotalErrors    int `json:"total_errors"`
	TotalWarnings  int `json:"total_warnings"`
}

// report is the JSON layout of the machine-readable validation file.
type report struct {
	RunID       string        `json:"run_id"`
	GeneratedAt string        `json:"generated_at"`
	Summary     reportSummary `json:"summary"`
	Errors      []Error       `json:"errors"`
	Warnings    []Warning     `json:"warnings"`
}

// Report serializes the full validation results for downstream tooling.
// Empty error and warning lists marshal as [] rather than null.
func (v *Validator) Report() ([]byte, error) {
	errs := v.Errors
	if errs == nil {
		errs = []Error{}
	}
	warns := v.Warnings
	if warns == nil {
		warns = []Warning{}
	}

	return inventory.Encode(report{
		RunID:       newRunID(),
		GeneratedAt: timeNow().UTC().Format(time.RFC3339),
		Summary: reportSummary{
			FilesValidated: v.FilesValidated,
			FilesPassed:    v.FilesPassed,
			FilesFailed:    v.FilesFailed(),
			TotalErrors:    len(v.Errors),
			TotalWarnings:  len(v.Warnings),
		},
		Errors:   errs,
		Warnings: warns,
	})
}
