// Package motif implements JSON persistence for the CountDict.
package motif

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// File names used by DumpJSON and LoadJSON.
const (
	orbitCountsFile  = "orbit_counts.json"
	localCountsFile  = "local_counts.json"
	globalCountsFile = "global_counts.json"
)

// DumpJSON writes the three count maps into dir as orbit_counts.json,
// local_counts.json and global_counts.json. Edge ids become decimal
// string keys; values are integers.
func (c *CountDict) DumpJSON(dir string) error {
	if err := writeJSON(filepath.Join(dir, orbitCountsFile), c.OrbitCount); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, localCountsFile), c.LocalCount); err != nil {
		return err
	}

	return writeJSON(filepath.Join(dir, globalCountsFile), c.GlobalCount)
}

// LoadJSON reads a CountDict previously written by DumpJSON from dir.
func LoadJSON(dir string) (*CountDict, error) {
	c := NewCountDict()
	if err := readJSON(filepath.Join(dir, orbitCountsFile), &c.OrbitCount); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, localCountsFile), &c.LocalCount); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, globalCountsFile), &c.GlobalCount); err != nil {
		return nil, err
	}

	return c, nil
}

// writeJSON marshals v and writes it to path in one shot.
func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("motif: encode %s: %w", filepath.Base(path), err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("motif: write %s: %w", filepath.Base(path), err)
	}

	return nil
}

// readJSON reads path and unmarshals it into v.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("motif: read %s: %w", filepath.Base(path), err)
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("motif: decode %s: %w", filepath.Base(path), err)
	}

	return nil
}
