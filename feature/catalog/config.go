package catalog

import (
	"fmt"
	"time"
)

const (
	ProviderSimulated = "simulated"
	ProviderDatabase  = "database"
	ProviderStorage   = "storage"
)

// Config selects and tunes the collection provider.
type Config struct {
	// Provider is one of simulated, database or storage.
	Provider string `mapstructure:"provider" default:"simulated"`
	// Table is the movies table read by the database provider.
	Table string `mapstructure:"table" default:"movies"`
	// Object is the catalog document read by the storage provider.
	Object string `mapstructure:"object" default:"catalog/movies.json"`
	// CacheTTLSeconds keeps remote loads for this long. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30"`
	// PollSeconds reloads the provider periodically. Zero loads once.
	PollSeconds int `mapstructure:"poll_seconds" default:"2"`
	// SimulatedTotal is the number of ids the simulated provider hands out.
	SimulatedTotal int `mapstructure:"simulated_total" default:"20"`
	// SimulatedBatch is the size of each simulated batch.
	SimulatedBatch int `mapstructure:"simulated_batch" default:"4"`
}

// Validate checks the provider selection and its settings.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderSimulated:
		if c.SimulatedBatch <= 0 {
			return fmt.Errorf("simulated_batch must be positive, got %d", c.SimulatedBatch)
		}
	case ProviderDatabase:
		if c.Table == "" {
			return fmt.Errorf("table is required for the %s provider", c.Provider)
		}
	case ProviderStorage:
		if c.Object == "" {
			return fmt.Errorf("object is required for the %s provider", c.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("cache_ttl_seconds must not be negative, got %d", c.CacheTTLSeconds)
	}
	return nil
}

// CacheTTL returns the cache lifetime.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// PollInterval returns the reload interval, zero when polling is off.
func (c Config) PollInterval() time.Duration {
	if c.PollSeconds <= 0 {
		return 0
	}
	return time.Duration(c.PollSeconds) * time.Second
}
