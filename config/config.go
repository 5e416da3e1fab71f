package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/go-pg/pg/v10"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
		// Storage is either "postgres" or "memory".
		Storage    string
		LogQueries bool
	}
	News struct {
		HomePageCount int
	}
	Auth struct {
		SessionTTL   time.Duration
		SecureCookie bool
	}
}

// UseMemory reports whether the in-memory store is selected.
func (c Config) UseMemory() bool {
	return c.App.Storage == StorageMemory
}

// ApplyDatabaseURL overrides the database options with a postgres:// url.
func (c *Config) ApplyDatabaseURL(databaseURL string) error {
	if databaseURL == "" {
		return nil
	}

	opt, err := pg.ParseURL(databaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	c.Database = *opt
	return nil
}

// DatabaseURL renders the database options as a url for the migrator.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Addr,
		Path:     "/" + c.Database.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
