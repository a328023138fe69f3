package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"go.scnd.dev/open/glyph/util"
)

// Enumerate lists the regular files in dir carrying the svg extension,
// case-insensitively. Subdirectories and other file types are skipped. An
// empty result is a value, not an error; callers decide whether emptiness
// matters for their use case. Order is whatever the underlying listing
// yields.
func Enumerate(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to list %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), util.SvgExtension) {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

// EnumerateSorted returns the same listing ordered by locale-aware string
// comparison, for display use cases where a stable human ordering matters.
func EnumerateSorted(dir string) ([]string, error) {
	names, err := Enumerate(dir)
	if err != nil {
		return nil, err
	}

	collate.New(language.English).SortStrings(names)
	return names, nil
}
