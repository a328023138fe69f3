package browse

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.scnd.dev/open/glyph/command/glyph/procedure/pipeline"
	"go.scnd.dev/open/glyph/command/glyph/template"
	"go.scnd.dev/open/glyph/util"
)

const iconsPlaceholder = "__GLYPH_ICONS__"

// Entry is one icon on the browse page: derived component name, source
// filename, and the inline markup that renders it.
type Entry struct {
	Name   *string `json:"name"`
	File   *string `json:"file"`
	Markup *string `json:"markup"`
}

// Collect reads every svg file in source and returns entries in
// locale-aware filename order.
func Collect(source string) ([]*Entry, error) {
	fileNames, err := pipeline.EnumerateSorted(source)
	if err != nil {
		return nil, err
	}

	var entries []*Entry
	for _, fileName := range fileNames {
		content, err := os.ReadFile(filepath.Join(source, fileName))
		if err != nil {
			return nil, fmt.Errorf("unable to read %s: %w", fileName, err)
		}

		markup := string(content)
		name := util.DeriveIdentifier(fileName)
		entries = append(entries, &Entry{
			Name:   &name,
			File:   &fileName,
			Markup: &markup,
		})
	}

	return entries, nil
}

// BuildPage renders the self-contained browse document with the entries
// embedded as literal data. An empty icon set is an explicit error here,
// unlike in the transform step.
func BuildPage(entries []*Entry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("no icons discovered, refusing to build an empty browse page")
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("unable to encode icon entries: %w", err)
	}

	page := string(template.BrowsePage)
	if !strings.Contains(page, iconsPlaceholder) {
		return "", fmt.Errorf("browse template is missing the %s placeholder", iconsPlaceholder)
	}

	return strings.Replace(page, iconsPlaceholder, string(data), 1), nil
}

// WritePage builds the page from source and writes it to path.
func WritePage(source string, path string) error {
	entries, err := Collect(source)
	if err != nil {
		return err
	}

	page, err := BuildPage(entries)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return fmt.Errorf("unable to write browse page %s: %w", path, err)
	}

	return nil
}
