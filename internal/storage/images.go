package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// loadBanner resolves a banner name strictly inside the configured
// banner directory. Names come from HTTP requests, so absolute paths
// and anything escaping the directory are rejected before any read.
func loadBanner(dir, name string) ([]byte, error) {
	if dir == "" {
		return nil, errors.New("banner directory not configured")
	}
	if name == "" || !filepath.IsLocal(name) {
		return nil, fmt.Errorf("invalid banner name %q", name)
	}
	return os.ReadFile(filepath.Join(dir, name))
}
