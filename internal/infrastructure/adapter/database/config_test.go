package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPostgres() *Config {
	c := DefaultConfig()
	c.Host = "localhost"
	c.Username = "ledger"
	c.Database = "club"
	return c
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid postgres", func(c *Config) {}, ""},
		{"valid sqlite", func(c *Config) { c.Driver = DriverSQLite; c.Host = "" }, ""},
		{"unknown driver", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver"},
		{"missing host", func(c *Config) { c.Host = "" }, "host is required"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "invalid port"},
		{"missing user", func(c *Config) { c.Username = "" }, "username is required"},
		{"missing database", func(c *Config) { c.Database = "" }, "name is required"},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode"},
		{"empty sqlite path", func(c *Config) { c.Driver = DriverSQLite; c.Path = "" }, "sqlite path is required"},
		{"no open conns", func(c *Config) { c.MaxOpenConns = 0 }, "max open connections"},
		{"no idle conns", func(c *Config) { c.MaxIdleConns = 0 }, "max idle connections"},
		{"no query timeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout"},
		{"negative tx retries", func(c *Config) { c.TxRetryAttempts = -1 }, "transaction retry attempts"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validPostgres()
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	c := validPostgres()
	c.Password = "secret"

	assert.Equal(t, "host=localhost port=5432 user=ledger password=secret dbname=club sslmode=disable", c.DSN())

	c.Driver = DriverSQLite
	c.Path = "/tmp/ledger.db"
	assert.Equal(t, "/tmp/ledger.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", c.DSN())
}

func TestConfig_WithQueryTimeout(t *testing.T) {
	c := validPostgres()

	updated := c.WithQueryTimeout(time.Second)

	assert.Equal(t, time.Second, updated.QueryTimeout)
	assert.Equal(t, 10*time.Second, c.QueryTimeout)
}
