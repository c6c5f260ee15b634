package authors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the author list file kept at the repository root.
const FileName = "author.txt"

// Path returns the author file location for a repository root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads the author file at root. A missing file yields an empty set.
// Contents are split on any whitespace and empty tokens are dropped.
func Load(root string) (*Set, error) {
	data, err := os.ReadFile(Path(root))
	if os.IsNotExist(err) {
		return NewSet(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return NewSet(strings.Fields(string(data))...), nil
}

// Save writes the canonical serialization of set to the author file at root,
// replacing prior contents: sorted logins joined by single spaces with one
// trailing newline. Equal sets always produce byte-identical files.
func Save(root string, set *Set) error {
	line := strings.Join(set.Sorted(), " ") + "\n"
	if err := os.WriteFile(Path(root), []byte(line), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return nil
}
