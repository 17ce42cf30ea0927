// Package bundle loads resume bundles from JSON or YAML files.
package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"gopkg.in/yaml.v3"
)

// IsYAML reports whether path names a YAML file
func IsYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads a bundle from a JSON or YAML file, validates it against the bundle
// schema and normalizes it
func Load(path string) (*types.Bundle, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	if IsYAML(path) {
		content, err = yamlToJSON(content)
		if err != nil {
			return nil, err
		}
	}

	if err := schemas.ValidateBundle(content); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("bundle %s does not match schema", path),
			Cause:   err,
		}
	}

	var b types.Bundle
	if err := json.Unmarshal(content, &b); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := Normalize(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// yamlToJSON converts a YAML document to JSON so one schema covers both formats.
// Scalars keep their source text since every bundle leaf is free text, and keys
// left empty in YAML are dropped.
func yamlToJSON(content []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal YAML",
			Cause:   err,
		}
	}

	var tree interface{} = map[string]interface{}{}
	if len(doc.Content) > 0 && !isNull(doc.Content[0]) {
		tree = nodeValue(doc.Content[0])
	}

	out, err := json.Marshal(tree)
	if err != nil {
		return nil, &LoadError{
			Message: "failed to convert YAML to JSON",
			Cause:   err,
		}
	}
	return out, nil
}

// nodeValue turns a YAML node into maps, slices and strings without resolving
// scalar tags, so 0123 stays "0123" and 2020-01-01 stays a date string
func nodeValue(n *yaml.Node) interface{} {
	switch n.Kind {
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]interface{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			if isNull(value) {
				continue
			}
			m[key.Value] = nodeValue(value)
		}
		return m
	case yaml.SequenceNode:
		items := make([]interface{}, 0, len(n.Content))
		for _, item := range n.Content {
			if isNull(item) {
				items = append(items, nil)
				continue
			}
			items = append(items, nodeValue(item))
		}
		return items
	default:
		return n.Value
	}
}

func isNull(n *yaml.Node) bool {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return isNull(n.Alias)
	}
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
