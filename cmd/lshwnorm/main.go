// Command lshwnorm normalizes, analyzes, and validates lshw hardware
// inventory JSON files wrapped in the collector envelope.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/fredericlepied/lshw-normalization/core/analyze"
	apperrors "github.com/fredericlepied/lshw-normalization/core/errors"
	"github.com/fredericlepied/lshw-normalization/core/inventory"
	"github.com/fredericlepied/lshw-normalization/core/normalize"
	"github.com/fredericlepied/lshw-normalization/core/validate"
	"github.com/fredericlepied/lshw-normalization/internal/fileutil"
	"github.com/fredericlepied/lshw-normalization/internal/logging"
)

const version = "1.0.0"

// detailsName is the machine-readable analysis artifact written alongside
// the text report.
const detailsName = "analysis_details.json"

// originalPrefix is stripped from filenames when copying originals into the
// output directory.
const originalPrefix = "dci-extra."

// CLI defines the command-line interface for lshwnorm.
var CLI struct {
	LogLevel  string `name:"log-level" help:"Log level: debug, info, warn, error" default:"info"`
	LogFormat string `name:"log-format" help:"Log format: text, json" default:"text"`

	Analyze   AnalyzeCmd   `cmd:"" help:"Report field type inconsistencies across inventory files"`
	Normalize NormalizeCmd `cmd:"" help:"Rewrite inventory files with consistent field types"`
	Validate  ValidateCmd  `cmd:"" help:"Check inventory files against the declared field types"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

// AnalyzeCmd aggregates field types across files and reports issues.
type AnalyzeCmd struct {
	Paths  []string `arg:"" name:"path" help:"Inventory files or directories containing them" type:"path"`
	Output string   `name:"output" short:"o" help:"Write the report to a file instead of stdout" type:"path"`
}

func (c *AnalyzeCmd) Run() error {
	files := fileutil.CollectJSON(c.Paths, false)
	if len(files) == 0 {
		return apperrors.NewNotFound("JSON files", "")
	}

	fmt.Printf("Analyzing %d files...\n", len(files))

	analyzer := analyze.New()
	succeeded := 0
	for _, file := range files {
		if err := observeFile(analyzer, file); err != nil {
			logging.FileError(file, "analyze", err)
			continue
		}
		succeeded++
	}

	fmt.Printf("Successfully analyzed %d/%d files\n\n", succeeded, len(files))

	report := analyzer.Report()

	if c.Output != "" {
		if err := os.WriteFile(c.Output, []byte(report.Text()), 0o644); err != nil {
			return apperrors.NewIO("write", c.Output, err)
		}
		fmt.Printf("Report written to: %s\n", c.Output)
	} else {
		fmt.Print(report.Text())
	}

	details, err := report.Details()
	if err != nil {
		return err
	}
	detailsPath := detailsName
	if c.Output != "" {
		detailsPath = filepath.Join(filepath.Dir(c.Output), detailsName)
	}
	if err := os.WriteFile(detailsPath, details, 0o644); err != nil {
		return apperrors.NewIO("write", detailsPath, err)
	}
	fmt.Printf("Detailed analysis saved to: %s\n", detailsPath)

	return nil
}

// observeFile reads, decodes, and folds one file into the analyzer.
func observeFile(analyzer *analyze.Analyzer, path string) error {
	data, err := fileutil.ReadDocument(path)
	if err != nil {
		return err
	}
	doc, err := inventory.Decode(data)
	if err != nil {
		return apperrors.NewParse("JSON", path, err.Error())
	}
	return analyzer.Observe(doc)
}

// NormalizeCmd rewrites inventory files with the coercion rules applied.
type NormalizeCmd struct {
	Paths         []string `arg:"" name:"path" help:"Inventory files or directories containing them" type:"path"`
	OutputDir     string   `name:"output-dir" short:"o" help:"Output directory for normalized files (default: overwrite inputs)" type:"path"`
	Strict        bool     `help:"Stop at the first error instead of continuing"`
	Suffix        string   `help:"Suffix inserted before .json on output filenames"`
	CopyOriginals bool     `name:"copy-originals" help:"Copy originals into the output directory first, stripping the dci-extra. filename prefix"`
}

func (c *NormalizeCmd) Run() error {
	files := fileutil.CollectJSON(c.Paths, true)
	if len(files) == 0 {
		return apperrors.NewNotFound("JSON files", "")
	}

	if c.OutputDir != "" {
		if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
			return apperrors.NewIO("create", c.OutputDir, err)
		}
		if c.CopyOriginals {
			if err := copyOriginals(files, c.OutputDir); err != nil {
				return err
			}
		}
	}

	fmt.Printf("\nNormalizing %d files...\n", len(files))

	normalizer := normalize.New()
	for _, file := range files {
		fmt.Printf("Processing: %s...\n", filepath.Base(file))
		if err := normalizeFile(normalizer, file, c.OutputDir, c.Suffix); err != nil {
			if c.Strict {
				return err
			}
			normalizer.Stats.RecordError(err.Error())
			logging.FileError(file, "normalize", err)
		}
	}

	fmt.Print(normalizer.Stats.Text())

	if n := len(normalizer.Stats.Errors); n > 0 {
		return fmt.Errorf("%d files had errors", n)
	}
	return nil
}

// copyOriginals copies the inputs verbatim into outputDir, stripping the
// collector prefix from each name.
func copyOriginals(files []string, outputDir string) error {
	fmt.Printf("Copying %d original files to %s...\n", len(files), outputDir)
	for _, file := range files {
		name := strings.TrimPrefix(filepath.Base(file), originalPrefix)
		if err := fileutil.CopyFile(file, filepath.Join(outputDir, name)); err != nil {
			return apperrors.NewIO("copy", file, err)
		}
		fmt.Printf("  Copied: %s -> %s\n", filepath.Base(file), name)
	}
	return nil
}

// normalizeFile rewrites one file in place or into outputDir. Shape-invalid
// documents are recorded as skipped, not as errors.
func normalizeFile(n *normalize.Normalizer, path, outputDir, suffix string) error {
	data, err := fileutil.ReadDocument(path)
	if err != nil {
		return err
	}
	doc, err := inventory.Decode(data)
	if err != nil {
		return apperrors.NewParse("JSON", path, err.Error())
	}

	normalized, changed, err := n.Normalize(doc)
	if err != nil {
		n.Stats.RecordSkipped(path)
		logging.FileSkipped(path, err.Error())
		return nil
	}

	out := path
	if outputDir != "" {
		out = filepath.Join(outputDir, fileutil.OutputName(filepath.Base(path), suffix))
	} else if fileutil.CompressionExt(path) != "" {
		// Normalized output is always plain JSON; refuse to clobber a
		// compressed input with it.
		return apperrors.NewUnsupported("in-place rewrite of compressed input", path)
	}

	encoded, err := inventory.Encode(normalized)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		return apperrors.NewIO("write", out, err)
	}

	n.Stats.RecordProcessed(changed)
	logging.Debug("file_normalized", "file", path, "output", out, "modified", changed)
	return nil
}

// ValidateCmd checks each file against the field type table.
type ValidateCmd struct {
	Paths  []string `arg:"" name:"path" help:"Inventory files or directories containing them" type:"path"`
	Output string   `name:"output" short:"o" help:"Write a JSON validation report to a file" type:"path"`
	Strict bool     `help:"Treat warnings as errors for the exit status"`
}

func (c *ValidateCmd) Run() error {
	files := fileutil.CollectJSON(c.Paths, false)
	if len(files) == 0 {
		return apperrors.NewNotFound("JSON files", "")
	}

	fmt.Printf("Validating %d files...\n\n", len(files))

	validator := validate.New()
	for _, file := range files {
		validateFile(validator, file)
	}

	fmt.Print(validator.Summary())

	if c.Output != "" {
		report, err := validator.Report()
		if err != nil {
			return err
		}
		if err := os.WriteFile(c.Output, report, 0o644); err != nil {
			return apperrors.NewIO("write", c.Output, err)
		}
		fmt.Printf("\nDetailed report saved to: %s\n", c.Output)
	}

	if failed := validator.FilesFailed(); failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, validator.FilesValidated)
	}
	if c.Strict && len(validator.Warnings) > 0 {
		return fmt.Errorf("strict mode: %d warnings recorded", len(validator.Warnings))
	}
	return nil
}

// validateFile reads and validates one file, printing its status line.
func validateFile(v *validate.Validator, path string) {
	name := filepath.Base(path)

	data, err := fileutil.ReadDocument(path)
	if err != nil {
		v.RecordFailure(path, err)
		fmt.Fprintf(os.Stderr, "✗ FAIL: %s - %v\n", name, err)
		return
	}

	doc, err := inventory.Decode(data)
	if err != nil {
		parseErr := apperrors.NewParse("JSON", path, err.Error())
		v.RecordFailure(path, parseErr)
		fmt.Fprintf(os.Stderr, "✗ FAIL: %s - %v\n", name, parseErr)
		return
	}

	outcome := v.ValidateDocument(path, doc)
	if outcome.Valid {
		fmt.Printf("✓ PASS: %s\n", name)
		return
	}
	fmt.Printf("✗ FAIL (%d errors, %d warnings): %s\n", outcome.Errors, outcome.Warnings, name)
}

// VersionCmd prints the tool version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("lshwnorm version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lshwnorm"),
		kong.Description("lshw inventory JSON normalization toolkit"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
