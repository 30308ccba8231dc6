package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// configSchema constrains the effective configuration after defaults, file,
// environment and flags have been merged.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["seed", "log_level", "output", "files", "watch"],
  "properties": {
    "seed": {"type": "integer"},
    "log_level": {"enum": ["debug", "info", "warn", "error"]},
    "output": {"enum": ["text", "yaml", "json"]},
    "files": {
      "type": "object",
      "required": ["split_pattern", "sample_name", "file_mode"],
      "properties": {
        "split_pattern": {"type": "string", "pattern": "^[^%/\\\\]*%d[^%/\\\\]*$"},
        "sample_name": {"type": "string", "minLength": 1, "pattern": "^[^/\\\\]+$"},
        "file_mode": {"type": "string", "pattern": "^0?[0-7]{3}$"}
      }
    },
    "watch": {
      "type": "object",
      "required": ["settle_attempts", "settle_delay"],
      "properties": {
        "settle_attempts": {"type": "integer", "minimum": 1},
        "settle_delay": {"type": "string", "minLength": 1}
      }
    }
  }
}`

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.json", strings.NewReader(configSchema)); err != nil {
		return nil, fmt.Errorf("failed to load config schema: %w", err)
	}
	schema, err := compiler.Compile("config.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile config schema: %w", err)
	}
	return schema, nil
})

// Validate checks cfg against the config schema and parses the fields that
// carry encoded values.
func Validate(cfg *Config) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config for validation: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode config for validation: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, err := cfg.Files.Mode(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := cfg.Watch.Delay(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
