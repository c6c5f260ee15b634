// Package gitrepo locates the root of the enclosing git repository.
package gitrepo

import (
	"errors"
	"os"
	"path/filepath"
)

// markerDir is the directory whose presence identifies a repository root.
const markerDir = ".git"

// ErrNotRepository is returned when no repository marker is found between the
// start directory and the filesystem root.
var ErrNotRepository = errors.New("not inside a git repository")

// FindRoot walks upward from start until it reaches a directory that contains
// a .git directory and returns that directory. Only metadata checks are
// performed; the repository itself is never opened.
func FindRoot(start string) (string, error) {
	dir := start
	for {
		info, err := os.Stat(filepath.Join(dir, markerDir))
		if err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotRepository
		}
		dir = parent
	}
}
