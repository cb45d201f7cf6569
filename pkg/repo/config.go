package repo

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/zlib"
	"github.com/odvcencio/mgit/pkg/object"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds settings that shape how a repository is located, filtered
// and stored. It is read from a TOML file; missing keys keep their
// defaults.
type Config struct {
	MetadataDir      string `toml:"metadata_dir"`
	IgnoreFile       string `toml:"ignore_file"`
	ObjectFormat     string `toml:"object_format"`
	CompressionLevel int    `toml:"compression_level"`
	CacheSize        int    `toml:"cache_size"`
	LogLevel         string `toml:"log_level"`
}

// DefaultConfig matches the reference on-disk layout: .git metadata,
// .gitignore, SHA-1 digests and fast zlib compression.
func DefaultConfig() *Config {
	return &Config{
		MetadataDir:      ".git",
		IgnoreFile:       ".gitignore",
		ObjectFormat:     string(object.FormatSHA1),
		CompressionLevel: object.DefaultCompressionLevel,
		CacheSize:        object.DefaultCacheSize,
		LogLevel:         "warn",
	}
}

// LoadConfig reads a TOML config file over the defaults. An empty path
// returns DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("read config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field for a usable value.
func (c *Config) Validate() error {
	if c.MetadataDir == "" || strings.ContainsAny(c.MetadataDir, `/\`) || c.MetadataDir == "." || c.MetadataDir == ".." {
		return fmt.Errorf("config: metadata_dir %q must be a single directory name", c.MetadataDir)
	}
	if c.IgnoreFile == "" {
		return fmt.Errorf("config: ignore_file must not be empty")
	}
	if _, err := object.ParseFormat(c.ObjectFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.CompressionLevel < zlib.HuffmanOnly || c.CompressionLevel > zlib.BestCompression {
		return fmt.Errorf("config: compression_level %d out of range [%d, %d]", c.CompressionLevel, zlib.HuffmanOnly, zlib.BestCompression)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config: cache_size must not be negative")
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// StoreOptions translates the config into object store options.
func (c *Config) StoreOptions(log *zap.Logger) []object.StoreOption {
	format, _ := object.ParseFormat(c.ObjectFormat)
	return []object.StoreOption{
		object.WithFormat(format),
		object.WithCompressionLevel(c.CompressionLevel),
		object.WithCacheSize(c.CacheSize),
		object.WithLogger(log),
	}
}
