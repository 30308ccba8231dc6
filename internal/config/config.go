package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes environment overrides, e.g. PROMPTSPLIT_SEED or
// PROMPTSPLIT_FILES_SAMPLE_NAME.
const EnvPrefix = "PROMPTSPLIT"

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"seed":      "seed",
	"log-level": "log_level",
	"output":    "output",
}

// Options controls where a Manager looks for configuration.
type Options struct {
	// ConfigFile is an explicit config path. When empty, "config.yaml" is
	// searched for in SearchPaths and a missing file is not an error.
	ConfigFile  string
	SearchPaths []string
	// Flags, when set, override file and environment values for the keys in
	// flagKeys if the user set them.
	Flags *pflag.FlagSet
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	v         *viper.Viper
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
func NewManager(opts Options) (*Manager, error) {
	cm := &Manager{
		v:         viper.New(),
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(opts); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults, environment, flags and config file.
func (cm *Manager) initViper(opts Options) error {
	v := cm.v
	defaults := DefaultConfig()
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("files.split_pattern", defaults.Files.SplitPattern)
	v.SetDefault("files.sample_name", defaults.Files.SampleName)
	v.SetDefault("files.file_mode", defaults.Files.FileMode)
	v.SetDefault("watch.settle_attempts", defaults.Watch.SettleAttempts)
	v.SetDefault("watch.settle_delay", defaults.Watch.SettleDelay)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, p := range opts.SearchPaths {
			v.AddConfigPath(p)
		}
	}

	// Try to read config file (not required unless explicitly given)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses and validates the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := cm.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// ConfigFileUsed returns the path of the loaded config file, or "" if none.
func (cm *Manager) ConfigFileUsed() string {
	return cm.v.ConfigFileUsed()
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration. It reports false when
// no config file was loaded. Invalid edits are ignored and the previous
// configuration stays in effect.
func (cm *Manager) WatchConfig() bool {
	if cm.v.ConfigFileUsed() == "" {
		return false
	}
	cm.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	cm.v.WatchConfig()
	return true
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# promptsplit configuration
# Every key can be overridden with a PROMPTSPLIT_ environment variable,
# e.g. PROMPTSPLIT_SEED=42 or PROMPTSPLIT_FILES_SAMPLE_NAME=picked.txt
# seed: 0 draws a fresh shuffle on every run

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
