package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// legacyKeys maps pre-version key names to their current spelling.
var legacyKeys = map[string]string{
	"customConfigs": "custom",
}

// MigrateToLatest takes raw YAML data and migrates it to the current schema version.
// Returns the migrated YAML bytes ready for writing.
//
// Migration chain:
//   version 0 (unversioned) → 1: stamp version, rename legacy keys
//   version 1 → current (no-op, already latest)
func MigrateToLatest(data []byte) ([]byte, error) {
	ver, err := peekVersion(data)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	switch ver {
	case 1:
		return data, nil
	case 0:
		return migrateUnversioned(data)
	default:
		return nil, fmt.Errorf("migrate: unknown config version %d (latest supported: 1)", ver)
	}
}

// peekVersion extracts the version field from raw YAML without full parsing.
// Returns 0 if no version field is present.
func peekVersion(data []byte) (int, error) {
	var head struct {
		Version int `yaml:"version"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return 0, fmt.Errorf("reading version: %w", err)
	}
	return head.Version, nil
}

// migrateUnversioned edits the document tree so comments and key order survive.
func migrateUnversioned(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var root *yaml.Node
	switch {
	case doc.Kind == yaml.DocumentNode && len(doc.Content) > 0:
		root = doc.Content[0]
	case doc.Kind == 0:
		// Empty input: start a fresh mapping.
		root = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
	default:
		return nil, fmt.Errorf("migrate: unexpected document kind %d", doc.Kind)
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("migrate: top level must be a mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		if renamed, ok := legacyKeys[key.Value]; ok {
			key.Value = renamed
		}
	}

	version := []*yaml.Node{
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: "version"},
		{Kind: yaml.ScalarNode, Tag: "!!int", Value: "1"},
	}
	root.Content = append(version, root.Content...)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return buf.Bytes(), nil
}
