package prompts

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"path/filepath"

	"github.com/jackzampolin/promptsplit/internal/output"
)

// FileWriter replaces a file's content in one operation.
type FileWriter interface {
	WriteFile(path string, data []byte) error
}

// Runner reads a prompt file, redistributes it and writes the result.
// Every run re-reads the input; nothing is cached between runs.
type Runner struct {
	Writer FileWriter
	Rand   *rand.Rand
	Names  Names
	Logger *slog.Logger
	// Seed is recorded in reports when non-zero.
	Seed int64
}

// RunHalves writes the two halves of input to outDir.
func (r *Runner) RunHalves(ctx context.Context, input, outDir string) (*output.Report, error) {
	if input == "" || outDir == "" {
		return nil, ErrMissingSelection
	}
	prompts, err := r.read(ctx, input)
	if err != nil {
		return nil, err
	}

	a, b := Halves(r.Rand, prompts)
	report := r.newReport(output.ModeHalves, input, outDir, len(prompts))
	files := []file{
		{name: r.Names.SplitFile(1), prompts: a},
		{name: r.Names.SplitFile(2), prompts: b},
	}
	return report, r.write(ctx, report, files)
}

// RunSplit writes numFiles near-equal parts of input to outDir.
func (r *Runner) RunSplit(ctx context.Context, input, outDir string, numFiles int) (*output.Report, error) {
	if input == "" || outDir == "" {
		return nil, ErrMissingSelection
	}
	if numFiles < 2 {
		return nil, ErrTooFewFiles
	}
	prompts, err := r.read(ctx, input)
	if err != nil {
		return nil, err
	}

	parts, err := SplitN(r.Rand, prompts, numFiles)
	if err != nil {
		return nil, err
	}
	report := r.newReport(output.ModeSplit, input, outDir, len(prompts))
	files := make([]file, len(parts))
	for i, p := range parts {
		files[i] = file{name: r.Names.SplitFile(i + 1), prompts: p}
	}
	return report, r.write(ctx, report, files)
}

// RunSample writes k randomly selected prompts of input to outDir.
// An over-request returns an *OverRequestError and writes nothing.
func (r *Runner) RunSample(ctx context.Context, input, outDir string, k int) (*output.Report, error) {
	if input == "" || outDir == "" {
		return nil, ErrMissingSelection
	}
	if k < 1 {
		return nil, ErrInvalidCount
	}
	prompts, err := r.read(ctx, input)
	if err != nil {
		return nil, err
	}

	selected, err := Sample(r.Rand, prompts, k)
	if err != nil {
		return nil, err
	}
	report := r.newReport(output.ModeSample, input, outDir, len(prompts))
	return report, r.write(ctx, report, []file{{name: r.Names.SampleName, prompts: selected}})
}

// IsOutput reports whether input resolves to one of names inside outDir.
func IsOutput(input, outDir string, names []string) bool {
	in, err := filepath.Abs(input)
	if err != nil {
		return false
	}
	dir, err := filepath.Abs(outDir)
	if err != nil {
		return false
	}
	for _, name := range names {
		if filepath.Join(dir, name) == in {
			return true
		}
	}
	return false
}

type file struct {
	name    string
	prompts []string
}

func (r *Runner) read(ctx context.Context, input string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prompts, err := ReadFile(input)
	if err != nil {
		return nil, err
	}
	r.logger().Debug("parsed prompts", "input", input, "count", len(prompts))
	return prompts, nil
}

func (r *Runner) newReport(mode output.Mode, input, outDir string, total int) *output.Report {
	report := output.NewReport(mode, input, outDir)
	report.Seed = r.Seed
	report.Total = total
	return report
}

// write renders every file before touching the filesystem, then writes them in order.
func (r *Runner) write(ctx context.Context, report *output.Report, files []file) error {
	contents := make([][]byte, len(files))
	for i, f := range files {
		contents[i] = []byte(Join(f.prompts))
	}

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(report.OutputDir, f.name)
		if err := r.Writer.WriteFile(path, contents[i]); err != nil {
			return err
		}
		report.Add(path, len(f.prompts))
		r.logger().Debug("wrote prompts", "run_id", report.RunID, "path", path, "count", len(f.prompts))
	}
	return nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}
