package object

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// DefaultCacheSize is the number of decoded objects kept in memory.
const DefaultCacheSize = 256

// Store is a content-addressed object store with a 2-character fan-out
// directory layout: objects/ab/cdef0123...
//
// Objects are written zlib-compressed and never rewritten once present.
type Store struct {
	root   string
	format Format
	level  int
	cache  *lru.Cache[Hash, *Object]
	log    *zap.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithFormat selects the digest algorithm.
func WithFormat(f Format) StoreOption {
	return func(s *Store) { s.format = f }
}

// WithCompressionLevel sets the zlib level used for new objects.
func WithCompressionLevel(level int) StoreOption {
	return func(s *Store) { s.level = level }
}

// WithCacheSize bounds the decoded-object cache. Zero disables it.
func WithCacheSize(n int) StoreOption {
	return func(s *Store) {
		if n <= 0 {
			s.cache = nil
			return
		}
		c, err := lru.New[Hash, *Object](n)
		if err == nil {
			s.cache = c
		}
	}
}

// WithLogger attaches a logger for write and cache events.
func WithLogger(l *zap.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// NewStore creates a Store rooted at the repository metadata directory.
// The objects/ subdirectory is created lazily on first write.
func NewStore(root string, opts ...StoreOption) *Store {
	s := &Store{
		root:   root,
		format: FormatSHA1,
		level:  DefaultCompressionLevel,
		log:    zap.NewNop(),
	}
	WithCacheSize(DefaultCacheSize)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Format reports the digest algorithm in use.
func (s *Store) Format() Format {
	return s.format
}

// Path returns the filesystem path for a given hash.
func (s *Store) Path(h Hash) string {
	return filepath.Join(s.root, "objects", string(h[:2]), string(h[2:]))
}

// Has reports whether the store contains an object with the given hash.
func (s *Store) Has(h Hash) bool {
	if _, err := h.Bytes(); err != nil {
		return false
	}
	_, err := os.Stat(s.Path(h))
	return err == nil
}

// Hash computes the address an object would be stored under, without
// writing it.
func (s *Store) Hash(o *Object) Hash {
	return s.format.HashObject(o)
}

// Write stores an object and returns its content hash. If a file already
// exists at the object's path it is left untouched. New objects are
// written to a temp file and renamed into place.
func (s *Store) Write(o *Object) (Hash, error) {
	raw := Encode(o)
	h := s.format.HashBytes(raw)
	dest := s.Path(h)

	// Same bytes, same path: nothing to do.
	if _, err := os.Stat(dest); err == nil {
		s.log.Debug("object exists", zap.String("hash", string(h)), zap.Stringer("kind", o.Kind))
		return h, nil
	}

	compressed, err := compressZlib(raw, s.level)
	if err != nil {
		return "", fmt.Errorf("object write compress: %w", err)
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("object write mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("object write tmpfile: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(compressed); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("object write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("object write close: %w", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("object write rename: %w", err)
	}

	s.log.Debug("object written",
		zap.String("hash", string(h)),
		zap.Stringer("kind", o.Kind),
		zap.Int("size", len(o.Content)),
		zap.Int("compressed", len(compressed)),
	)
	return h, nil
}

// Read retrieves and decodes an object. The returned object may be shared
// with the cache and must not be modified.
func (s *Store) Read(h Hash) (*Object, error) {
	if _, err := h.Bytes(); err != nil {
		return nil, fmt.Errorf("object read: %w", err)
	}
	if s.cache != nil {
		if o, ok := s.cache.Get(h); ok {
			s.log.Debug("object cache hit", zap.String("hash", string(h)))
			return o, nil
		}
	}

	compressed, err := os.ReadFile(s.Path(h))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("object read %s: %w", h, ErrObjectNotFound)
		}
		return nil, fmt.Errorf("object read %s: %w", h, err)
	}
	raw, err := decompressZlib(compressed)
	if err != nil {
		return nil, fmt.Errorf("object read %s: %w: %v", h, ErrCorruptObject, err)
	}
	o, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("object read %s: %w", h, err)
	}

	if s.cache != nil {
		s.cache.Add(h, o)
	}
	return o, nil
}

// ---------------------------------------------------------------------------
// Typed convenience methods
// ---------------------------------------------------------------------------

// WriteBlob stores raw bytes as a blob.
func (s *Store) WriteBlob(data []byte) (Hash, error) {
	return s.Write(NewBlob(data))
}

// WriteTree encodes entries in the given order and stores the tree.
func (s *Store) WriteTree(entries []TreeEntry) (Hash, error) {
	o, err := NewTree(entries)
	if err != nil {
		return "", err
	}
	return s.Write(o)
}

// ReadTree reads a tree object and decodes its entries.
func (s *Store) ReadTree(h Hash) ([]TreeEntry, error) {
	o, err := s.Read(h)
	if err != nil {
		return nil, err
	}
	if o.Kind != KindTree {
		return nil, fmt.Errorf("object %s: %w: got %s, want %s", h, ErrTypeMismatch, o.Kind, KindTree)
	}
	entries, err := DecodeTree(o.Content)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", h, err)
	}
	return entries, nil
}
