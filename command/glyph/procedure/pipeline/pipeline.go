package pipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.scnd.dev/open/glyph/command/glyph/procedure/transform"
	"go.scnd.dev/open/glyph/util"
)

// Rebuild clears the destination directory and recreates it empty. Removal
// of an absent directory is a no-op.
func Rebuild(dest string) error {
	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("unable to clear %s: %w", dest, err)
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("unable to create %s: %w", dest, err)
	}
	return nil
}

// Transform converts every svg file in source into one component file in
// dest, named after the derived identifier. The destination is rebuilt once
// before the batch; with an empty input set it is left untouched and the
// run is a logged no-op. Processing is sequential and all-or-nothing: the
// first failure aborts the run, files already written stay on disk.
//
// Two sources deriving the same identifier silently overwrite in
// enumeration order; the later file wins.
func Transform(source string, dest string, extension string, transformer transform.Transformer) ([]string, error) {
	fileNames, err := Enumerate(source)
	if err != nil {
		return nil, err
	}

	if len(fileNames) == 0 {
		log.Printf("no svg files found in %s, nothing to do", source)
		return nil, nil
	}

	// * rebuild destination once, only when there is content to write
	if err := Rebuild(dest); err != nil {
		return nil, err
	}

	options := transform.DefaultOptions()
	var written []string

	for _, fileName := range fileNames {
		content, err := os.ReadFile(filepath.Join(source, fileName))
		if err != nil {
			return nil, fmt.Errorf("unable to read %s: %w", fileName, err)
		}

		name := util.DeriveIdentifier(fileName)
		output, err := transformer.Transform(string(content), options, name)
		if err != nil {
			return nil, fmt.Errorf("unable to transform %s: %w", fileName, err)
		}

		target := name + "." + extension
		if err := os.WriteFile(filepath.Join(dest, target), []byte(output), 0o644); err != nil {
			return nil, fmt.Errorf("unable to write %s: %w", target, err)
		}

		written = append(written, target)
	}

	return written, nil
}
