package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/kayz/gptautocli/internal/errors"
)

// Recognized keys.
const (
	KeyAPIKey      = "OpenAI_API_Key"
	KeyCommandRisk = "Command_Risk"
)

// FileName is the dotfile created in the user's home directory.
const FileName = ".gptautocli.config"

// Values are taken verbatim up to the end of the line: "#" and ";" only
// start a comment at the beginning of a line, and a trailing backslash does
// not continue the value.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
	IgnoreContinuation:  true,
}

// valueQuote wraps values the parser would otherwise trim or unquote.
const valueQuote = `"""`

// DefaultPath returns <home>/.gptautocli.config.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// Config is a flat key/value configuration held in one default section.
// Keys are case-sensitive. A Config is owned by its caller and is not safe
// for concurrent mutation.
type Config struct {
	file *ini.File
}

// NewMemory returns an empty configuration that is not backed by any file.
func NewMemory() *Config {
	return &Config{file: ini.Empty(loadOptions)}
}

func (c *Config) section() *ini.Section {
	return c.file.Section(ini.DefaultSection)
}

// Has reports whether key is present, regardless of its value.
func (c *Config) Has(key string) bool {
	return c.section().HasKey(key)
}

// Get returns the raw value stored under key.
func (c *Config) Get(key string) (string, bool) {
	if !c.Has(key) {
		return "", false
	}
	return c.section().Key(key).String(), true
}

// Set stores value under key in memory only. Keys must be usable on the
// left of "=" and values must fit on one line.
func (c *Config) Set(key, value string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("set %q: value must not contain line breaks", key)
	}
	if _, err := c.section().NewKey(key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key from memory. Deleting a missing key is a no-op.
func (c *Config) Delete(key string) {
	c.section().DeleteKey(key)
}

// Keys returns the stored keys in sorted order.
func (c *Config) Keys() []string {
	keys := c.section().KeyStrings()
	sort.Strings(keys)
	return keys
}

// Values returns a copy of every entry.
func (c *Config) Values() map[string]string {
	return c.section().KeysHash()
}

func validKey(key string) error {
	switch {
	case key == "":
		return fmt.Errorf("empty key name")
	case strings.TrimSpace(key) != key:
		return fmt.Errorf("key %q has surrounding whitespace", key)
	case strings.ContainsAny(key, "=:\r\n"):
		return fmt.Errorf("key %q contains a delimiter or line break", key)
	case strings.ContainsAny(key[:1], "[#;\"`"):
		return fmt.Errorf("key %q starts with a reserved character", key)
	}
	return nil
}

// Encode renders the configuration in its on-disk format, one
// "key = value" line per entry in insertion order under [DEFAULT].
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[" + ini.DefaultSection + "]\n")
	for _, key := range c.section().Keys() {
		if err := validKey(key.Name()); err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%s = %s\n", key.Name(), quoteValue(key.Value()))
	}
	return buf.Bytes(), nil
}

// quoteValue returns v as written to disk. Plain values are written as they
// are so other INI readers see the same text. Values with surrounding
// whitespace or a leading or trailing quote character are wrapped in triple
// quotes; the parser reads up to the last triple quote on the line, so any
// single-line value survives unchanged.
func quoteValue(v string) string {
	if v == "" {
		return v
	}
	if strings.TrimSpace(v) != v ||
		strings.ContainsAny(v[:1], "\"'`") ||
		strings.ContainsAny(v[len(v)-1:], "\"'`") {
		return valueQuote + v + valueQuote
	}
	return v
}

// Decode parses data in the on-disk format.
func Decode(data []byte) (*Config, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &Config{file: f}, nil
}

// Store persists a Config to a single file.
type Store struct {
	path string
}

// NewStore returns a store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file. A missing file yields an empty Config.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewMemory(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return cfg, nil
}

// Save rewrites the whole backing file from cfg. There is no atomic
// rename: a failed write leaves the previous file state unspecified.
func (s *Store) Save(cfg *Config) error {
	data, err := cfg.Encode()
	if err != nil {
		return errors.NewStoreUnwritable(s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return errors.NewStoreUnwritable(s.path, err)
	}
	return nil
}

// SetAndPersist updates key in cfg and immediately rewrites the file.
func (s *Store) SetAndPersist(cfg *Config, key, value string) error {
	if err := cfg.Set(key, value); err != nil {
		return errors.NewStoreUnwritable(s.path, err)
	}
	return s.Save(cfg)
}
