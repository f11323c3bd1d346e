package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "logistics")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.GDEXTimeout)
	assert.Equal(t, "0 8 1 * *", cfg.ReportCron)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "host=localhost port=5432 user=app password= dbname=logistics sslmode=disable", cfg.DSN())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("GDEX_TIMEOUT", "5s")
	t.Setenv("GDEX_USE_SANDBOX", "False")
	t.Setenv("REPORT_RECIPIENT", "qa@example.com")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.GDEXTimeout)
	assert.Equal(t, "False", cfg.GDEXUseSandbox)
	assert.Equal(t, "qa@example.com", cfg.ReportRecipient)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("SMTP_PORT", "smtp")

	_, err := LoadConfig()

	assert.Error(t, err)
}
