// Package filesystem implements host filesystem artifact checks.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ArtifactStore checks for durable artifacts on the host filesystem.
// The bootstrap flow only cares whether its artifact exists; the file's
// contents belong to the certificate tooling that wrote it.
type ArtifactStore struct{}

// NewArtifactStore creates a new filesystem artifact store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{}
}

// Exists reports whether the artifact at path exists.
func (s *ArtifactStore) Exists(path string) (bool, error) {
	_, err := os.Stat(ExpandTilde(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat artifact %s: %w", path, err)
	}
	return true, nil
}

// ExpandTilde replaces a leading "~/" with the user's home directory.
func ExpandTilde(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
