// Package prompts provides a loader for externalized LLM prompt templates.
// Prompts are stored as JSON files and embedded at compile time. A key holds
// either a single template string or an ordered list of instructions.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// cache stores parsed prompt files to avoid repeated JSON parsing
var (
	cache   = make(map[string]map[string]json.RawMessage)
	cacheMu sync.RWMutex
)

// Get retrieves a single prompt string by filename and key.
// The filename should not include the path (e.g., "email.json").
func Get(filename, key string) (string, error) {
	raw, err := lookup(filename, key)
	if err != nil {
		return "", err
	}

	var prompt string
	if err := json.Unmarshal(raw, &prompt); err != nil {
		return "", fmt.Errorf("prompt %q in %s is not a string: %w", key, filename, err)
	}
	return prompt, nil
}

// GetList retrieves an ordered list of prompt lines by filename and key.
func GetList(filename, key string) ([]string, error) {
	raw, err := lookup(filename, key)
	if err != nil {
		return nil, err
	}

	var lines []string
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("prompt %q in %s is not a list: %w", key, filename, err)
	}
	return lines, nil
}

// Format replaces template placeholders in the form {{.Key}} with values from data.
// Replacement is a single pass: placeholders inside inserted values are left as is.
func Format(template string, data map[string]string) string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("{{.%s}}", key), data[key])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func lookup(filename, key string) (json.RawMessage, error) {
	prompts, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	raw, exists := prompts[key]
	if !exists {
		return nil, fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return raw, nil
}

// loadFile loads and caches a prompt file.
func loadFile(filename string) (map[string]json.RawMessage, error) {
	cacheMu.RLock()
	if prompts, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return prompts, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var prompts map[string]json.RawMessage
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = prompts
	cacheMu.Unlock()

	return prompts, nil
}

// ClearCache clears the prompt cache. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string]map[string]json.RawMessage)
	cacheMu.Unlock()
}
