package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lvogt/lifeos/internal/spec"
)

// Ensure creates every declared path that does not exist yet, area
// roots included, and returns the created paths in creation order. An
// already satisfied spec yields none; creation is recursive and
// idempotent.
func Ensure(f *spec.File, home string) ([]string, error) {
	var created []string

	for _, area := range f.Areas {
		root := spec.ExpandRoot(area.Root, home)
		if err := ensureDir(root, &created); err != nil {
			return created, fmt.Errorf("failed ensuring root for area %s: %w", area.Name, err)
		}
		if err := ensureTree(root, area.Required, &created); err != nil {
			return created, err
		}
	}
	return created, nil
}

func ensureTree(base string, nodes []spec.Node, created *[]string) error {
	for _, node := range nodes {
		path := filepath.Join(base, node.Path)
		if err := ensureDir(path, created); err != nil {
			return err
		}
		if len(node.Children) > 0 {
			if err := ensureTree(path, node.Children, created); err != nil {
				return err
			}
		}
	}
	return nil
}

// ensureDir creates path if absent. An already existing directory is
// not an error and records nothing.
func ensureDir(path string, created *[]string) error {
	if exists(path) {
		return nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	*created = append(*created, path)
	return nil
}
