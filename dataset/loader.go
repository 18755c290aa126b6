// Package dataset implements CSV ingestion of HIN datasets.
package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/hinmotif/hin"
)

// Load reads nodes.csv and edges.csv from dir and builds a validated HIN.
//
// Returns ErrMissingFile for absent files, ErrBadNodeLine/ErrBadEdgeLine
// for malformed content (with the offending line number), or a hin
// construction error for self-loops, duplicates and out-of-range ids.
func Load(dir string) (*hin.HIN, error) {
	types, err := loadNodes(filepath.Join(dir, NodesFile))
	if err != nil {
		return nil, err
	}

	edges, err := loadEdges(filepath.Join(dir, EdgesFile))
	if err != nil {
		return nil, err
	}

	return hin.New(types, edges)
}

// loadNodes reads one type label per line; the line index is the node id.
func loadNodes(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFile, err)
	}
	defer f.Close()

	var types []string
	sc := bufio.NewScanner(f)
	for line := 0; sc.Scan(); line++ {
		label := strings.TrimSpace(sc.Text())
		if label == "" {
			return nil, fmt.Errorf("%w: %s line %d is empty", ErrBadNodeLine, NodesFile, line)
		}
		types = append(types, label)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFile, err)
	}

	return types, nil
}

// loadEdges reads one edge per line, taking field 0 as source and field 2
// as destination. Field 1 is ignored (see package docs).
func loadEdges(path string) ([][2]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFile, err)
	}
	defer f.Close()

	var edges [][2]int
	sc := bufio.NewScanner(f)
	for line := 0; sc.Scan(); line++ {
		fields := strings.Split(strings.TrimSpace(sc.Text()), ",")
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: %s line %d has %d fields, want at least 3",
				ErrBadEdgeLine, EdgesFile, line, len(fields))
		}
		src, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: bad source id %q",
				ErrBadEdgeLine, EdgesFile, line, fields[0])
		}
		dst, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: bad destination id %q",
				ErrBadEdgeLine, EdgesFile, line, fields[2])
		}
		edges = append(edges, [2]int{src, dst})
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFile, err)
	}

	return edges, nil
}
