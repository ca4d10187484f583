// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/neoastra303/learning-path-advisor-pro/internal/graph"
)

func TestLoadSeed(t *testing.T) {
	courses, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(courses) < 100 {
		t.Fatalf("seed catalog has %d courses, expected well over 100", len(courses))
	}

	// The seed must survive full graph validation: every prerequisite
	// resolves, no cycles, all attributes in range.
	g, err := graph.Build(courses)
	if err != nil {
		t.Fatalf("Build(seed) error = %v", err)
	}
	if g.Len() != len(courses) {
		t.Errorf("graph has %d courses, catalog has %d", g.Len(), len(courses))
	}
	if len(g.Categories()) == 0 {
		t.Error("seed catalog has no categories")
	}
}

func TestLoadFileFallsBackToSeed(t *testing.T) {
	fromFile, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile(\"\") error = %v", err)
	}
	seed, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(fromFile) != len(seed) {
		t.Errorf("LoadFile(\"\") returned %d courses, seed has %d", len(fromFile), len(seed))
	}
}

func TestLoadFileCustomCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	payload := `{"courses":[
		{"name":"Intro","category":"Core","difficulty":1,"time_hours":10,"utility":5,"prerequisites":[]},
		{"name":"Advanced","category":"Core","difficulty":7,"time_hours":30,"utility":9,"prerequisites":["Intro"]}
	]}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	courses, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("got %d courses, want 2", len(courses))
	}
	if courses[1].Prerequisites[0] != "Intro" {
		t.Errorf("prerequisites = %v, want [Intro]", courses[1].Prerequisites)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile("/nonexistent/catalog.json"); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected error for malformed JSON")
	}

	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(empty, []byte(`{"courses":[]}`), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadFile(empty); err == nil {
		t.Error("expected error for empty catalog")
	}
}
