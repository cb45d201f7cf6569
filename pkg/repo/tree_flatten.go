package repo

import (
	"fmt"
	"strconv"

	"github.com/odvcencio/mgit/pkg/object"
)

// TreeFileEntry is one leaf of a flattened tree.
type TreeFileEntry struct {
	Path string // slash-separated, relative to the flattened root
	Mode string
	Hash object.Hash
}

// IsDirMode reports whether a stored mode has the directory type bits
// (octal 040000).
func IsDirMode(mode string) bool {
	bits, err := strconv.ParseUint(mode, 8, 32)
	if err != nil {
		return false
	}
	return bits&0o170000 == 0o040000
}

// FlattenTree walks a tree recursively, returning every non-directory
// entry with its full path, depth-first in stored order.
func (r *Repo) FlattenTree(h object.Hash) ([]TreeFileEntry, error) {
	return r.flattenTreeRec(h, "")
}

func (r *Repo) flattenTreeRec(h object.Hash, prefix string) ([]TreeFileEntry, error) {
	entries, err := r.Store.ReadTree(h)
	if err != nil {
		return nil, fmt.Errorf("flatten tree: read %s: %w", h, err)
	}

	var result []TreeFileEntry
	for _, entry := range entries {
		fullPath := entry.Name
		if prefix != "" {
			fullPath = prefix + "/" + entry.Name
		}

		if IsDirMode(entry.Mode) {
			sub, err := r.flattenTreeRec(entry.Hash, fullPath)
			if err != nil {
				return nil, err
			}
			result = append(result, sub...)
			continue
		}
		result = append(result, TreeFileEntry{Path: fullPath, Mode: entry.Mode, Hash: entry.Hash})
	}
	return result, nil
}
