package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/seitarof/jswift-types/internal/javatype"
)

// DefaultCacheSize bounds the number of memoized class-name resolutions.
const DefaultCacheSize = 256

// Configuration is the project configuration read from a TOML file.
type Configuration struct {
	// UnsignedNumbersMode is nil when the file does not set it.
	UnsignedNumbersMode *UnsignedNumbersMode `toml:"unsignedNumbersMode,omitempty"`
	StringIsValueType   bool                 `toml:"stringIsValueType"`
	// Classes maps fully qualified Java class names to Swift type names.
	Classes map[string]string `toml:"classes,omitempty"`
	// Packages maps a Java package to the Swift module whose types share the
	// Java simple names. An empty module leaves names unqualified.
	Packages  map[string]string `toml:"packages,omitempty"`
	CacheSize int               `toml:"cacheSize,omitempty"`
}

// Load reads configuration from a TOML file.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML configuration. Unknown keys are rejected.
func Parse(data []byte) (*Configuration, error) {
	cfg := &Configuration{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("cacheSize must not be negative, got %d", cfg.CacheSize)
	}
	return cfg, nil
}

// EffectiveUnsignedNumbersMode returns the configured selector or Annotate.
func (c *Configuration) EffectiveUnsignedNumbersMode() UnsignedNumbersMode {
	if c == nil || c.UnsignedNumbersMode == nil {
		return Annotate
	}
	return *c.UnsignedNumbersMode
}

// EffectiveUnsignedNumericsMode projects the selector onto the type-conversion
// policy. It is recomputed on every call.
func (c *Configuration) EffectiveUnsignedNumericsMode() javatype.UnsignedNumericsMode {
	return ProjectUnsignedNumericsMode(c.EffectiveUnsignedNumbersMode())
}

// EffectiveCacheSize returns CacheSize or DefaultCacheSize when unset.
func (c *Configuration) EffectiveCacheSize() int {
	if c == nil || c.CacheSize == 0 {
		return DefaultCacheSize
	}
	return c.CacheSize
}

// Loader loads project configuration.
type Loader interface {
	Load(path string) (*Configuration, error)
}

type fileLoader struct{}

// NewFileLoader returns a Loader reading TOML files from disk.
func NewFileLoader() Loader {
	return &fileLoader{}
}

func (l *fileLoader) Load(path string) (*Configuration, error) {
	return Load(path)
}
