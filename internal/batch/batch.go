package batch

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ironsheep/recolor/internal/imaging"
)

// Extension is the file suffix, compared case-insensitively, that selects input files.
const Extension = ".png"

var (
	// ErrDirectoryAccess is returned when the input folder cannot be listed or
	// the output folder cannot be created.
	ErrDirectoryAccess = errors.New("directory access failed")

	// ErrIncomplete is returned when one or more files in a run failed.
	ErrIncomplete = errors.New("batch incomplete")
)

// Job holds the parameters of a single run.
type Job struct {
	InputDir  string
	OutputDir string
	From      imaging.RGBColor
	To        imaging.RGBColor

	// Debug logs the number of substituted pixels for each file.
	Debug bool
}

// FileError records why a single file could not be processed.
type FileError struct {
	Name string
	Err  error
}

func (e FileError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Report summarizes a run.
type Report struct {
	// Processed lists the files written to the output folder, in processing order.
	Processed []string

	// Failed lists the files that were skipped because of an error.
	Failed []FileError
}

// ListImages returns the names of the PNG files directly inside dir.
//
// Parameters:
//   - dir: Folder to list. It is not traversed recursively.
//
// Returns:
//   - []string: Base names ending in ".png", compared case-insensitively,
//     in lexical order. Subdirectories are never included, even ones whose
//     name ends in ".png".
//   - error: Non-nil if dir cannot be listed.
//
// # Errors
//
//   - Wraps ErrDirectoryAccess if dir does not exist or cannot be read
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirectoryAccess, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), Extension) {
			continue
		}
		names = append(names, e.Name())
	}
	// Lexical order, independent of the filesystem.
	sort.Strings(names)

	return names, nil
}

// Run applies job to every PNG file in job.InputDir and writes the results
// to job.OutputDir under the same names.
//
// Parameters:
//   - job: Folders and colors for the run. job.OutputDir and any missing
//     parents are created; an existing folder is reused.
//   - out: Receives one "Processed <name>" line per file written.
//
// Returns:
//   - *Report: The files written and the files skipped, in processing order.
//     Nil only when the run aborted before processing any file.
//   - error: Non-nil if the run aborted or any file was skipped.
//
// # Errors
//
//   - Wraps ErrDirectoryAccess if the output folder cannot be created or the
//     input folder cannot be listed; no file is processed
//   - Wraps ErrIncomplete if any file failed; the error also joins each
//     FileError, so errors.Is matches imaging.ErrImageDecode or
//     imaging.ErrImageEncode as appropriate
//
// A failed file does not stop the run, and files already written stay in
// place.
func Run(job Job, out io.Writer) (*Report, error) {
	if err := os.MkdirAll(job.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create output folder: %w", ErrDirectoryAccess, err)
	}

	names, err := ListImages(job.InputDir)
	if err != nil {
		return nil, err
	}

	report := &Report{Processed: make([]string, 0, len(names))}
	for _, name := range names {
		if err := processFile(job, name); err != nil {
			log.Printf("Skipping %s: %v", name, err)
			report.Failed = append(report.Failed, FileError{Name: name, Err: err})
			continue
		}
		report.Processed = append(report.Processed, name)
		fmt.Fprintf(out, "Processed %s\n", name)
	}

	if len(report.Failed) > 0 {
		errs := make([]error, 0, len(report.Failed)+1)
		errs = append(errs, fmt.Errorf("%w: %d of %d files failed", ErrIncomplete, len(report.Failed), len(names)))
		for _, fe := range report.Failed {
			errs = append(errs, fe)
		}
		return report, errors.Join(errs...)
	}

	return report, nil
}

func processFile(job Job, name string) error {
	img, err := imaging.Load(filepath.Join(job.InputDir, name))
	if err != nil {
		return err
	}

	recolored, replaced := imaging.ReplaceColor(img, job.From, job.To)
	if job.Debug {
		log.Printf("%s: %d pixels %s -> %s", name, replaced, job.From, job.To)
	}

	return imaging.Save(filepath.Join(job.OutputDir, name), recolored)
}
