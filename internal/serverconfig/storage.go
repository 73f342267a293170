// Package serverconfig holds service-wide defaults: the Formatting
// applied when a request does not specify its own, and the catalog
// source directory. It follows the teacher's ConfigStore shape — a
// mutex-guarded, optionally JSON-persisted value loaded from an
// environment variable path.
package serverconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chordrgo/chordr/internal/chords"
	"github.com/chordrgo/chordr/internal/converter"
)

// EnvFilePath is the environment variable naming the JSON file a Store
// persists to. An empty value (the default) means in-memory only.
const EnvFilePath = "CONFIG_FILE"

// Config is the persisted service configuration.
type Config struct {
	BNotation        chords.BNotation        `json:"b_notation"`
	SemitoneNotation chords.SemitoneNotation `json:"semitone_notation"`
	CatalogDir       string                  `json:"catalog_dir"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// Formatting projects Config's notation fields into a converter.Formatting,
// defaulting Format to FormatHTML since Config carries no per-request
// output format.
func (c Config) Formatting() converter.Formatting {
	return converter.Formatting{
		BNotation:        c.BNotation,
		SemitoneNotation: c.SemitoneNotation,
		Format:           converter.FormatHTML,
	}
}

// Store manages Config with thread-safe read/update and optional
// persistence to a JSON file.
type Store struct {
	mu         sync.RWMutex
	config     Config
	filePath   string
	persistent bool
}

// NewStore creates a Store. If filePath is non-empty, an existing file is
// loaded immediately and every Save persists back to it.
func NewStore(filePath string) *Store {
	s := &Store{
		filePath:   filePath,
		persistent: filePath != "",
		config: Config{
			BNotation:        chords.BNotationB,
			SemitoneNotation: chords.Sharp,
		},
	}
	if s.persistent {
		_ = s.loadFromFile()
	}
	return s
}

// NewStoreFromEnv builds a Store using the file path named by EnvFilePath,
// or an in-memory-only Store if the variable is unset.
func NewStoreFromEnv() *Store {
	return NewStore(os.Getenv(EnvFilePath))
}

// Get returns a copy of the current configuration.
func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Save replaces the configuration, stamping UpdatedAt, and persists it if
// the Store was constructed with a file path.
func (s *Store) Save(config Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	config.UpdatedAt = time.Now()
	s.config = config

	if s.persistent {
		return s.persistToFile()
	}
	return nil
}

func (s *Store) persistToFile() error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("serverconfig: creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.config, "", "  ")
	if err != nil {
		return fmt.Errorf("serverconfig: marshaling config: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0o644); err != nil {
		return fmt.Errorf("serverconfig: writing config file: %w", err)
	}
	return nil
}

func (s *Store) loadFromFile() error {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("serverconfig: reading config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("serverconfig: unmarshaling config: %w", err)
	}
	s.config = config
	return nil
}
