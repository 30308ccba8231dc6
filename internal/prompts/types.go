// Package prompts redistributes a collection of blank-line separated prompts.
//
// A prompt file is plain text where each prompt is separated from the next by
// a single blank line ("\n\n"). The package supports three redistributions:
//   - Halves: shuffle and split into two near-equal files
//   - SplitN: shuffle and split into N near-equal files, earlier files
//     absorbing the remainder
//   - Sample: draw K prompts without replacement into a single file
//
// The partitioning functions are pure and take an explicit *rand.Rand so runs
// are reproducible under a fixed seed. Runner ties them to the filesystem.
package prompts

import (
	"errors"
	"fmt"

	"github.com/jackzampolin/promptsplit/internal/output"
)

// Delimiter separates prompts in both input and output files.
const Delimiter = "\n\n"

var (
	// ErrMissingSelection is returned when an input path, output directory or
	// count was not supplied. Callers treat it as a silent abort.
	ErrMissingSelection = errors.New("missing selection")

	// ErrOverRequest is returned when a sample asks for more prompts than exist.
	ErrOverRequest = errors.New("requested more prompts than available")

	// ErrTooFewFiles is returned when a split asks for fewer than two files.
	ErrTooFewFiles = errors.New("at least 2 output files are required")

	// ErrInvalidCount is returned when a sample size is less than one.
	ErrInvalidCount = errors.New("count must be at least 1")
)

// OverRequestError carries the counts behind an ErrOverRequest.
type OverRequestError struct {
	Requested int
	Available int
}

func (e *OverRequestError) Error() string {
	return fmt.Sprintf("the number of prompts requested (%d) exceeds the total number of prompts available (%d)",
		e.Requested, e.Available)
}

// Is reports whether target is ErrOverRequest.
func (e *OverRequestError) Is(target error) bool {
	return target == ErrOverRequest
}

// Names controls the file names written into the output directory.
type Names struct {
	// SplitPattern is a fmt pattern with a single %d receiving the 1-indexed
	// file number, used by both halves and N-way splits.
	SplitPattern string
	// SampleName is the file written by a random sample.
	SampleName string
}

// DefaultNames returns output1.txt..outputN.txt and randomly_selected_prompts.txt.
func DefaultNames() Names {
	return Names{
		SplitPattern: "output%d.txt",
		SampleName:   "randomly_selected_prompts.txt",
	}
}

// SplitFile returns the name of the i-th (1-indexed) split file.
func (n Names) SplitFile(i int) string {
	return fmt.Sprintf(n.SplitPattern, i)
}

// Outputs returns the names a redistribution writes. numFiles is only used
// by ModeSplit; a split with fewer than two files writes nothing.
func (n Names) Outputs(mode output.Mode, numFiles int) []string {
	switch mode {
	case output.ModeHalves:
		return []string{n.SplitFile(1), n.SplitFile(2)}
	case output.ModeSplit:
		if numFiles < 2 {
			return nil
		}
		names := make([]string, numFiles)
		for i := range names {
			names[i] = n.SplitFile(i + 1)
		}
		return names
	case output.ModeSample:
		return []string{n.SampleName}
	default:
		return nil
	}
}
