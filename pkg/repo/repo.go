package repo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/odvcencio/mgit/pkg/object"
	"go.uber.org/zap"
)

// Repo is an opened repository. RootDir is located once and threaded
// through every operation that needs a storage path.
type Repo struct {
	RootDir string        // working directory root (canonical)
	MetaDir string        // <root>/<metadata_dir>
	Config  *Config       // settings the repository was opened with
	Store   *object.Store // content-addressed object store
	Log     *zap.Logger
}

func newRepo(root string, cfg *Config, log *zap.Logger) *Repo {
	if log == nil {
		log = zap.NewNop()
	}
	metaDir := filepath.Join(root, cfg.MetadataDir)
	return &Repo{
		RootDir: root,
		MetaDir: metaDir,
		Config:  cfg,
		Store:   object.NewStore(metaDir, cfg.StoreOptions(log)...),
		Log:     log,
	}
}

// Open locates the repository enclosing path and opens it. A nil cfg
// means DefaultConfig; a nil log discards output.
func Open(path string, cfg *Config, log *zap.Logger) (*Repo, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	root, err := Locate(path, cfg.MetadataDir)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	r := newRepo(root, cfg, log)
	r.Log.Debug("repository opened", zap.String("root", root))
	return r, nil
}

// Locate canonicalizes start and walks up its ancestors until it finds a
// directory containing a metaName subdirectory, returning that directory.
// It fails with ErrRepositoryNotFound at the filesystem root.
func Locate(start, metaName string) (string, error) {
	cur, err := canonicalize(start)
	if err != nil {
		return "", fmt.Errorf("locate: %w", err)
	}

	for {
		info, err := os.Stat(filepath.Join(cur, metaName))
		switch {
		case err == nil && info.IsDir():
			return cur, nil
		case err != nil && errors.Is(err, fs.ErrPermission):
			return "", fmt.Errorf("locate: %w", err)
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", fmt.Errorf("locate %s: %w", start, ErrRepositoryNotFound)
		}
		cur = parent
	}
}

// canonicalize returns the absolute path with all symlinks resolved. The
// path must exist.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
