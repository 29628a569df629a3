package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadParams reads a parameter record in the shape chromakey.ParseUpdate
// expects. JSON files parse too, since YAML is a superset.
//
//	backgroundPath: beach.webp
//	colour: [0, 255, 0]
//	hueRange: [0.25, 0.45]
//	sensitivity: 0.4
//	smoothing: 0.1
func loadParams(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fields, nil
}
