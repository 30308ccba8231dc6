package output

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Mode names a redistribution.
type Mode string

const (
	ModeHalves Mode = "halves"
	ModeSplit  Mode = "split"
	ModeSample Mode = "sample"
)

// FileReport describes one written output file.
type FileReport struct {
	Path  string `json:"path" yaml:"path"`
	Count int    `json:"count" yaml:"count"`
}

// Report is the record of one redistribution run.
type Report struct {
	RunID     string       `json:"run_id" yaml:"run_id"`
	Mode      Mode         `json:"mode" yaml:"mode"`
	Input     string       `json:"input" yaml:"input"`
	OutputDir string       `json:"output_dir" yaml:"output_dir"`
	Seed      int64        `json:"seed,omitempty" yaml:"seed,omitempty"`
	Total     int          `json:"total" yaml:"total"`
	Files     []FileReport `json:"files" yaml:"files"`
}

// NewReport starts a report with a fresh run ID.
func NewReport(mode Mode, input, outputDir string) *Report {
	return &Report{
		RunID:     uuid.New().String(),
		Mode:      mode,
		Input:     input,
		OutputDir: outputDir,
		Files:     []FileReport{},
	}
}

// Add records a written file.
func (r *Report) Add(path string, count int) {
	r.Files = append(r.Files, FileReport{Path: path, Count: count})
}

// Written returns the total number of prompts across all written files.
func (r *Report) Written() int {
	n := 0
	for _, f := range r.Files {
		n += f.Count
	}
	return n
}

// Render writes the report in the given format. Text output is one
// confirmation line per file.
func Render(w io.Writer, format Format, r *Report) error {
	if format.IsStructured() {
		return Encode(w, format, r)
	}
	for _, f := range r.Files {
		var err error
		if r.Mode == ModeSample {
			_, err = fmt.Fprintf(w, "File '%s' created with %d randomly selected prompts.\n", f.Path, f.Count)
		} else {
			_, err = fmt.Fprintf(w, "File '%s' created with %d prompts.\n", f.Path, f.Count)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
