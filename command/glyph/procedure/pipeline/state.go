package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// PathState is the three-way result of probing a filesystem path. Callers
// branch on the enumerated outcome instead of catching not-found errors.
type PathState int

const (
	StateMissing PathState = iota
	StateFile
	StateDirectory
)

func (r PathState) String() string {
	switch r {
	case StateMissing:
		return "missing"
	case StateFile:
		return "file"
	case StateDirectory:
		return "directory"
	}
	return "unknown"
}

// Probe classifies path as missing, file, or directory. Absence is a normal
// result; only unexpected stat failures propagate.
func Probe(path string) (PathState, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return StateMissing, nil
	}
	if err != nil {
		return StateMissing, fmt.Errorf("unable to probe %s: %w", path, err)
	}

	if info.IsDir() {
		return StateDirectory, nil
	}
	return StateFile, nil
}
