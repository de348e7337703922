package server

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var errInvalidPath = errors.New("invalid path")

// resolve maps a request path beneath the configured root. Without a root
// the cleaned path is used as given.
func (h *handlers) resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path: %w", errInvalidPath)
	}
	clean := filepath.Clean(path)
	if h.root == "" {
		return clean, nil
	}
	// Reject traversal out of the root.
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s escapes root: %w", path, errInvalidPath)
	}
	return filepath.Join(h.root, clean), nil
}
