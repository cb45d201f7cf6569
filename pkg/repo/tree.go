package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/odvcencio/mgit/pkg/object"
	"go.uber.org/zap"
)

// WriteTree stores the directory dir as a tree object, recursively storing
// every file as a blob and every subdirectory as a subtree, and returns
// the root tree hash.
//
// Ignore rules are loaded once from the repository root, so the same
// paths are excluded whichever subdirectory the build starts from. Empty
// and fully ignored directories still produce an (empty) stored tree.
func (r *Repo) WriteTree(dir string) (object.Hash, error) {
	ic, err := r.IgnoreChecker()
	if err != nil {
		return "", fmt.Errorf("write tree: %w", err)
	}
	abs, err := canonicalize(dir)
	if err != nil {
		return "", fmt.Errorf("write tree: %w", err)
	}
	return r.writeTreeDir(ic, abs)
}

// writeTreeDir builds the tree for one directory after its children
// (post-order).
func (r *Repo) writeTreeDir(ic *IgnoreChecker, dir string) (object.Hash, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("write tree: read dir: %w", err)
	}

	entries := make([]object.TreeEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		path := filepath.Join(dir, name)

		if ic.IsIgnored(path) {
			r.Log.Debug("ignored", zap.String("path", path))
			continue
		}
		if !utf8.ValidString(name) {
			return "", fmt.Errorf("write tree: %w: %q in %s", ErrInvalidFilename, name, dir)
		}

		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("write tree: %w", err)
		}
		mode, err := rawMode(path)
		if err != nil {
			return "", fmt.Errorf("write tree: %w", err)
		}

		var h object.Hash
		if info.IsDir() {
			h, err = r.writeTreeDir(ic, path)
		} else {
			h, err = r.writeFileBlob(path)
		}
		if err != nil {
			return "", err
		}
		entries = append(entries, object.TreeEntry{Mode: mode, Name: name, Hash: h})
	}

	sortTreeEntries(entries)
	h, err := r.Store.WriteTree(entries)
	if err != nil {
		return "", fmt.Errorf("write tree %s: %w", dir, err)
	}
	r.Log.Debug("tree written", zap.String("dir", dir), zap.String("hash", string(h)), zap.Int("entries", len(entries)))
	return h, nil
}

// sortTreeEntries orders entries by byte-wise ascending name, which makes
// the tree hash independent of directory enumeration order.
func sortTreeEntries(entries []object.TreeEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

// writeFileBlob reads a UTF-8 text file and stores it as a blob.
func (r *Repo) writeFileBlob(path string) (object.Hash, error) {
	data, err := readTextFile(path)
	if err != nil {
		return "", err
	}
	h, err := r.Store.WriteBlob(data)
	if err != nil {
		return "", fmt.Errorf("write blob %s: %w", path, err)
	}
	return h, nil
}

// HashFile computes the blob hash of a file and, when write is set,
// stores the blob.
func (r *Repo) HashFile(path string, write bool) (object.Hash, error) {
	if !write {
		return BlobHash(path, r.Store.Format())
	}
	data, err := readTextFile(path)
	if err != nil {
		return "", err
	}
	h, err := r.Store.WriteBlob(data)
	if err != nil {
		return "", fmt.Errorf("hash object %s: %w", path, err)
	}
	return h, nil
}

// BlobHash computes the blob hash of a UTF-8 text file without a
// repository.
func BlobHash(path string, format object.Format) (object.Hash, error) {
	data, err := readTextFile(path)
	if err != nil {
		return "", err
	}
	return format.HashObject(object.NewBlob(data)), nil
}

func readTextFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedContent)
	}
	return data, nil
}

// ListTree returns the entries of a stored tree in stored order.
func (r *Repo) ListTree(h object.Hash) ([]object.TreeEntry, error) {
	entries, err := r.Store.ReadTree(h)
	if err != nil {
		return nil, fmt.Errorf("ls-tree: %w", err)
	}
	return entries, nil
}
