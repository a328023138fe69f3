package printer

import (
	"fmt"
	"strings"

	"github.com/ddddddO/gtree"
)

// PrintOutputTree renders the generated file set as a tree rooted at the
// destination directory. Duplicate names (identifier collisions) collapse
// into one node, matching what is actually on disk.
func PrintOutputTree(dest string, fileNames []string) (string, error) {
	root := gtree.NewRoot(dest)

	seen := make(map[string]bool)
	for _, fileName := range fileNames {
		if seen[fileName] {
			continue
		}
		seen[fileName] = true
		root.Add(fileName)
	}

	var builder strings.Builder
	if err := gtree.OutputProgrammably(&builder, root); err != nil {
		return "", fmt.Errorf("unable to render output tree: %w", err)
	}

	return builder.String(), nil
}
