package prompts

import (
	"fmt"
	"os"
	"strings"
)

// Parse splits a document into prompts.
//
// Leading and trailing whitespace of the whole document is removed, then the
// remainder is split on Delimiter. Individual prompts are not trimmed. An
// empty or whitespace-only document yields no prompts.
func Parse(document string) []string {
	trimmed := strings.TrimSpace(document)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, Delimiter)
}

// Join is the inverse of Parse: prompts joined by Delimiter, no trailing delimiter.
func Join(prompts []string) string {
	return strings.Join(prompts, Delimiter)
}

// ReadFile reads and parses a prompt file.
func ReadFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts %s: %w", path, err)
	}
	return Parse(string(b)), nil
}
