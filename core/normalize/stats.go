package normalize

import (
	"fmt"
	"strings"
)

// maxListed caps how many skipped files and errors the stats block prints.
const maxListed = 10

// Stats accumulates counters and itemized records across a run. The
// conversion counters are bumped by the coercion rules; the file-level
// counters are recorded by whoever drives the run.
type Stats struct {
	FilesProcessed      int
	FilesModified       int
	FilesSkipped        int
	NumericConversions  int
	BooleanConversions  int
	ArrayNormalizations int
	Errors              []string
	SkippedFiles        []string
}

// RecordProcessed notes one successfully written file.
func (s *Stats) RecordProcessed(modified bool) {
	s.FilesProcessed++
	if modified {
		s.FilesModified++
	}
}

// RecordSkipped notes a file rejected by the shape check.
func (s *Stats) RecordSkipped(file string) {
	s.FilesSkipped++
	s.SkippedFiles = append(s.SkippedFiles, file)
}

// RecordError notes a per-file processing failure.
func (s *Stats) RecordError(msg string) {
	s.Errors = append(s.Errors, msg)
}

// Text renders the end-of-run statistics block.
func (s *Stats) Text() string {
	rule := strings.Repeat("=", 80)

	lines := []string{
		"",
		rule,
		"Normalization Statistics",
		rule,
		fmt.Sprintf("Files processed: %d", s.FilesProcessed),
		fmt.Sprintf("Files modified: %d", s.FilesModified),
		fmt.Sprintf("Files skipped (invalid lshw): %d", s.FilesSkipped),
		fmt.Sprintf("Numeric conversions: %d", s.NumericConversions),
		fmt.Sprintf("Boolean conversions: %d", s.BooleanConversions),
		fmt.Sprintf("Array normalizations: %d", s.ArrayNormalizations),
	}

	if len(s.SkippedFiles) > 0 {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("Skipped files (%d):", len(s.SkippedFiles)))
		for i, skipped := range s.SkippedFiles {
			if i == maxListed {
				lines = append(lines, fmt.Sprintf("  ... and %d more", len(s.SkippedFiles)-maxListed))
				break
			}
			lines = append(lines, fmt.Sprintf("  - %s", skipped))
		}
	}

	if len(s.Errors) > 0 {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("Errors encountered: %d", len(s.Errors)))
		for i, msg := range s.Errors {
			if i == maxListed {
				break
			}
			lines = append(lines, fmt.Sprintf("  - %s", msg))
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
