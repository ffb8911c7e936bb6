// Package spec loads the declarative folder layout specification that
// doctor and init work from.
package spec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Node is a required path, optionally with required children beneath it.
type Node struct {
	Path     string `json:"path"`
	Children []Node `json:"children,omitempty"`
}

// Area is a named tree of required paths under a root directory.
type Area struct {
	Name     string `json:"name"`
	Root     string `json:"root"` // absolute or "~/" prefixed
	Required []Node `json:"required"`
}

// File is the parsed layout specification.
type File struct {
	Version int    `json:"version"`
	Areas   []Area `json:"areas"`
}

// Load reads and parses the spec file at path. A missing or malformed
// file is an error: doctor and init cannot run without a spec.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse spec file %s: %w", path, err)
	}

	for _, area := range f.Areas {
		if area.Root == "" {
			return nil, fmt.Errorf("spec area %q has no root", area.Name)
		}
	}
	return &f, nil
}

// ExpandRoot resolves a "~/" prefixed area root against home. Other
// roots pass through unchanged.
func ExpandRoot(root, home string) string {
	if rest, ok := strings.CutPrefix(root, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return root
}

// CountNodes returns the number of required paths in the tree, children
// included.
func CountNodes(nodes []Node) int {
	total := 0
	for _, n := range nodes {
		total += 1 + CountNodes(n.Children)
	}
	return total
}
