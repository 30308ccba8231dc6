package config

import (
	"fmt"
	"io/fs"
	"strconv"
	"time"
)

// Config is the complete promptsplit configuration.
type Config struct {
	// Seed fixes the shuffle/sample source. Zero means unseeded.
	Seed     int64    `mapstructure:"seed" yaml:"seed" json:"seed"`
	LogLevel string   `mapstructure:"log_level" yaml:"log_level" json:"log_level"` // debug, info, warn, error
	Output   string   `mapstructure:"output" yaml:"output" json:"output"`          // text, yaml, json
	Files    FilesCfg `mapstructure:"files" yaml:"files" json:"files"`
	Watch    WatchCfg `mapstructure:"watch" yaml:"watch" json:"watch"`
}

// FilesCfg controls output file naming and permissions.
type FilesCfg struct {
	// SplitPattern names halves and N-way outputs; exactly one %d (1-indexed).
	SplitPattern string `mapstructure:"split_pattern" yaml:"split_pattern" json:"split_pattern"`
	// SampleName names the random sample output.
	SampleName string `mapstructure:"sample_name" yaml:"sample_name" json:"sample_name"`
	// FileMode is an octal permission string such as "0644".
	FileMode string `mapstructure:"file_mode" yaml:"file_mode" json:"file_mode"`
}

// WatchCfg controls how watch mode waits for an edited input to settle.
type WatchCfg struct {
	// SettleAttempts bounds how often the input is re-checked after a change.
	SettleAttempts uint `mapstructure:"settle_attempts" yaml:"settle_attempts" json:"settle_attempts"`
	// SettleDelay is a Go duration string, e.g. "250ms".
	SettleDelay string `mapstructure:"settle_delay" yaml:"settle_delay" json:"settle_delay"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Seed:     0,
		LogLevel: "info",
		Output:   "text",
		Files: FilesCfg{
			SplitPattern: "output%d.txt",
			SampleName:   "randomly_selected_prompts.txt",
			FileMode:     "0644",
		},
		Watch: WatchCfg{
			SettleAttempts: 5,
			SettleDelay:    "250ms",
		},
	}
}

// Mode parses FileMode.
func (f FilesCfg) Mode() (fs.FileMode, error) {
	m, err := strconv.ParseUint(f.FileMode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file_mode %q: %w", f.FileMode, err)
	}
	return fs.FileMode(m).Perm(), nil
}

// Delay parses SettleDelay.
func (w WatchCfg) Delay() (time.Duration, error) {
	d, err := time.ParseDuration(w.SettleDelay)
	if err != nil {
		return 0, fmt.Errorf("invalid settle_delay %q: %w", w.SettleDelay, err)
	}
	return d, nil
}
