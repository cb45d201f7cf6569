package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// defaultHead is written to HEAD by Init. It is never parsed here.
const defaultHead = "ref: refs/heads/master\n"

// Init creates a new repository at path: <meta>/objects, <meta>/refs and
// <meta>/HEAD. Returns ErrRepositoryExists if the metadata directory is
// already present.
func Init(path string, cfg *Config, log *zap.Logger) (*Repo, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("init: mkdir %s: %w", path, err)
	}
	root, err := canonicalize(path)
	if err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}
	metaDir := filepath.Join(root, cfg.MetadataDir)

	if _, err := os.Stat(metaDir); err == nil {
		return nil, fmt.Errorf("init: %w at %s", ErrRepositoryExists, metaDir)
	}

	for _, d := range []string{
		filepath.Join(metaDir, "objects"),
		filepath.Join(metaDir, "refs"),
	} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("init: mkdir %s: %w", d, err)
		}
	}

	headPath := filepath.Join(metaDir, "HEAD")
	if err := os.WriteFile(headPath, []byte(defaultHead), 0o644); err != nil {
		return nil, fmt.Errorf("init: write HEAD: %w", err)
	}

	r := newRepo(root, cfg, log)
	r.Log.Info("repository initialized", zap.String("meta", metaDir))
	return r, nil
}
