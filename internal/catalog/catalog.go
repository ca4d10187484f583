// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

// Package catalog loads the course catalog. The default catalog ships
// embedded in the binary; deployments can substitute their own with a
// JSON file of the same shape.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/neoastra303/learning-path-advisor-pro/internal/graph"
)

//go:embed seed.json
var seedData []byte

// file is the on-disk and embedded catalog shape.
type file struct {
	Courses []graph.Course `json:"courses"`
}

// Load returns the embedded seed catalog.
func Load() ([]graph.Course, error) {
	return parse(seedData, "embedded seed")
}

// LoadFile reads a catalog from a JSON file. An empty path falls back to
// the embedded seed.
func LoadFile(path string) ([]graph.Course, error) {
	if path == "" {
		return Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, source string) ([]graph.Course, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", source, err)
	}
	if len(f.Courses) == 0 {
		return nil, fmt.Errorf("catalog %s contains no courses", source)
	}
	return f.Courses, nil
}
