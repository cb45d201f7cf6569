package repo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// IgnoreChecker decides which paths are left out of tree construction.
// Patterns are plain paths relative to the repository root; globs are not
// supported. The metadata directory is always ignored.
type IgnoreChecker struct {
	metaName string
	patterns []string // canonical absolute paths
	log      *zap.Logger
}

// NewIgnoreChecker loads <root>/<ignoreFile>. A missing file yields a
// checker that only excludes the metadata directory. Patterns that do not
// resolve to an existing path are dropped.
func NewIgnoreChecker(root, metaName, ignoreFile string, log *zap.Logger) (*IgnoreChecker, error) {
	if log == nil {
		log = zap.NewNop()
	}
	ic := &IgnoreChecker{metaName: metaName, log: log}

	data, err := os.ReadFile(filepath.Join(root, ignoreFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ic, nil
		}
		return nil, fmt.Errorf("load ignore file: %w", err)
	}

	for _, line := range parseIgnoreLines(string(data)) {
		p, err := canonicalize(filepath.Join(root, line))
		if err != nil {
			log.Debug("ignore pattern does not resolve", zap.String("pattern", line))
			continue
		}
		ic.patterns = append(ic.patterns, p)
	}
	return ic, nil
}

// parseIgnoreLines extracts the usable pattern lines from an ignore file.
//
// Inline comments are cut together with the character just before the
// '#', so "build # output" becomes "build" but "build#output" becomes
// "buil". Lines that end up empty after the cut are dropped rather than
// resolving to the root itself.
func parseIgnoreLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, "#") {
			line = cutInlineComment(line)
			if line == "" {
				continue
			}
		}
		if strings.Contains(line, "*") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// cutInlineComment keeps the characters before the one preceding the
// first '#'. Callers guarantee '#' is not the first character.
func cutInlineComment(line string) string {
	runes := []rune(line)
	for i, r := range runes {
		if r == '#' {
			return string(runes[:i-1])
		}
	}
	return line
}

// Patterns returns the resolved pattern paths.
func (ic *IgnoreChecker) Patterns() []string {
	out := make([]string, len(ic.patterns))
	copy(out, ic.patterns)
	return out
}

// IsIgnored reports whether path is the metadata directory or lies at or
// under any pattern path. A path that cannot be canonicalized is not
// ignored.
func (ic *IgnoreChecker) IsIgnored(path string) bool {
	if filepath.Base(path) == ic.metaName {
		return true
	}
	if len(ic.patterns) == 0 {
		return false
	}

	canon, err := canonicalize(path)
	if err != nil {
		return false
	}
	for _, p := range ic.patterns {
		if withinDir(p, canon) {
			return true
		}
	}
	return false
}

// withinDir reports whether path equals dir or is nested under it,
// comparing whole path components.
func withinDir(dir, path string) bool {
	if path == dir {
		return true
	}
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return strings.HasPrefix(path, dir)
}

// IgnoreChecker loads the root-scoped ignore rules for this repository.
func (r *Repo) IgnoreChecker() (*IgnoreChecker, error) {
	return NewIgnoreChecker(r.RootDir, r.Config.MetadataDir, r.Config.IgnoreFile, r.Log)
}
