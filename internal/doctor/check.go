package doctor

import (
	"os"
	"path/filepath"

	"github.com/lvogt/lifeos/internal/spec"
)

// Check walks every area of the spec and records missing paths. A
// missing area root is reported once and its subtree is not descended;
// within an existing root, a missing node is recorded and its declared
// children are still checked individually.
func Check(f *spec.File, home string) *Report {
	report := &Report{Areas: len(f.Areas)}

	for _, area := range f.Areas {
		root := spec.ExpandRoot(area.Root, home)
		report.Roots = append(report.Roots, root)
		report.Required += spec.CountNodes(area.Required)

		if !exists(root) {
			report.Missing = append(report.Missing, root)
			continue
		}
		checkTree(root, area.Required, &report.Missing)
	}
	return report
}

func checkTree(base string, nodes []spec.Node, missing *[]string) {
	for _, node := range nodes {
		path := filepath.Join(base, node.Path)
		if !exists(path) {
			*missing = append(*missing, path)
		}
		if len(node.Children) > 0 {
			checkTree(path, node.Children, missing)
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
