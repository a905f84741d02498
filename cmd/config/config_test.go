package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PORT", "")
	t.Setenv("RATE_LIMIT_WINDOW", "")

	cfg := Load()
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Buyer.DefaultPerPage)
	assert.Equal(t, 200, cfg.Buyer.ImportMaxRows)
	assert.Equal(t, 1000, cfg.Buyer.ExportMaxRows)
	assert.Equal(t, int64(10), cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "leads")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "crm")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("RABBITMQ_ENABLED", "false")
	t.Setenv("BUYER_MAX_PER_PAGE", "not-a-number")

	cfg := Load()
	assert.Equal(t, "leads:secret@tcp(db:3307)/crm?parseTime=true&loc=UTC&multiStatements=true", cfg.GetDSN())
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, 100, cfg.Buyer.MaxPerPage)
}
