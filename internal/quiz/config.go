package quiz

import (
	"strings"
	"time"

	"elementquiz/internal/catalog"
)

// Config configures a Controller.
// Use DefaultConfig() to get the element catalog with a time-seeded shuffler.
type Config struct {
	Catalog  []catalog.Item // Items in their fixed flashcard order
	Shuffler Shuffler       // Source of quiz permutations
}

// DefaultConfig returns the compiled-in element catalog and a shuffler
// seeded from the clock.
func DefaultConfig() Config {
	return Config{
		Catalog:  catalog.Elements(),
		Shuffler: NewRandShuffler(uint64(time.Now().UnixNano())),
	}
}

// WithSeed returns a copy of the config whose quiz order is reproducible.
func (c Config) WithSeed(seed uint64) Config {
	c.Shuffler = NewRandShuffler(seed)
	return c
}

// WithShuffler returns a copy of the config using s for quiz order.
func (c Config) WithShuffler(s Shuffler) Config {
	c.Shuffler = s
	return c
}

// WithCatalog returns a copy of the config using items as the catalog.
func (c Config) WithCatalog(items []catalog.Item) Config {
	c.Catalog = items
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if len(c.Catalog) == 0 {
		return &ConfigError{Field: "Catalog", Message: "must not be empty"}
	}
	seen := make(map[string]bool, len(c.Catalog))
	for _, it := range c.Catalog {
		if it.Name == "" {
			return &ConfigError{Field: "Catalog", Message: "item names must not be empty"}
		}
		key := strings.ToLower(it.Name)
		if seen[key] {
			return &ConfigError{Field: "Catalog", Message: "duplicate item " + it.Name}
		}
		seen[key] = true
	}
	if c.Shuffler == nil {
		return &ConfigError{Field: "Shuffler", Message: "must not be nil"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
