// Package doctor provides environment preflight checks for tonegen.
package doctor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// Config holds injectable dependencies for each doctor check.
type Config struct {
	// OutputPath is the configured fixture destination.
	OutputPath string
	// CheckParams validates the configured tone parameters.
	CheckParams func() error
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- output directory -------------------------------------------------
	dir := filepath.Dir(cfg.OutputPath)
	if err := checkWritableDir(dir); err != nil {
		res.fail(fmt.Sprintf("output directory: %v", err))
		fmt.Fprintf(w, "%s output directory %s: %v\n", FailMark, dir, err)
	} else {
		fmt.Fprintf(w, "%s output directory %s: writable\n", PassMark, dir)
	}

	// ---- output path ------------------------------------------------------
	if fi, err := os.Stat(cfg.OutputPath); err == nil && fi.IsDir() {
		res.fail(fmt.Sprintf("output path %s is a directory", cfg.OutputPath))
		fmt.Fprintf(w, "%s output path %s: is a directory\n", FailMark, cfg.OutputPath)
	} else {
		fmt.Fprintf(w, "%s output path %s: ok\n", PassMark, cfg.OutputPath)
	}

	// ---- tone parameters --------------------------------------------------
	if cfg.CheckParams == nil {
		fmt.Fprintf(w, "%s tone parameters: skipped\n", PassMark)
	} else if err := cfg.CheckParams(); err != nil {
		res.fail(fmt.Sprintf("tone parameters: %v", err))
		fmt.Fprintf(w, "%s tone parameters: %v\n", FailMark, err)
	} else {
		fmt.Fprintf(w, "%s tone parameters: ok\n", PassMark)
	}

	return res
}

// checkWritableDir verifies the directory exists and accepts a new file by
// creating and removing a probe file.
func checkWritableDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	probe, err := os.CreateTemp(dir, ".tonegen-doctor-*")
	if err != nil {
		return fmt.Errorf("not writable: %w", err)
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)

	return nil
}
