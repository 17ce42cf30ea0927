// Package prompts holds the interactive prompt texts shown to the user.
// Prompts are stored as JSON files and embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// CollectorFile holds every prompt used by the input collector
const CollectorFile = "collector.json"

//go:embed *.json
var promptFiles embed.FS

// Catalog maps prompt keys to their text
type Catalog map[string]string

var collectorCatalog = sync.OnceValues(func() (Catalog, error) {
	return Load(CollectorFile)
})

// Load parses one embedded prompt file
func Load(filename string) (Catalog, error) {
	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}
	return c, nil
}

// Get returns the prompt stored under key
func (c Catalog) Get(key string) (string, error) {
	prompt, ok := c[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return prompt, nil
}

// Collector returns a collector prompt. The catalog is embedded, so an unknown
// key is a programming error and panics.
func Collector(key string) string {
	c, err := collectorCatalog()
	if err == nil {
		var prompt string
		if prompt, err = c.Get(key); err == nil {
			return prompt
		}
	}
	panic(fmt.Sprintf("failed to load prompt: %v", err))
}

// Format replaces placeholders in the form {{.Key}} with values from data.
// Placeholders without a value are left as they are.
func Format(template string, data map[string]string) string {
	pairs := make([]string, 0, 2*len(data))
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
