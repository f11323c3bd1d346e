package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"console"`
	LogDirectory string `env:"LOG_DIRECTORY"`

	// GDEX_* values are copied into the settings store at startup unless a
	// value is already stored.
	GDEXAPIToken        string        `env:"GDEX_API_TOKEN"`
	GDEXAccountNo       string        `env:"GDEX_ACCOUNT_NO"`
	GDEXSubscriptionKey string        `env:"GDEX_SUBSCRIPTION_KEY"`
	GDEXUseSandbox      string        `env:"GDEX_USE_SANDBOX"`
	GDEXBaseURL         string        `env:"GDEX_BASE_URL"`
	GDEXTimeout         time.Duration `env:"GDEX_TIMEOUT" envDefault:"30s"`

	SMTPHost      string `env:"SMTP_HOST" envDefault:"localhost"`
	SMTPPort      int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername  string `env:"SMTP_USERNAME"`
	SMTPPassword  string `env:"SMTP_PASSWORD"`
	SMTPFrom      string `env:"SMTP_FROM" envDefault:"no-reply@localhost"`
	SMTPTLSPolicy string `env:"SMTP_TLS_POLICY" envDefault:"opportunistic"`

	ReportCron      string `env:"REPORT_CRON" envDefault:"0 8 1 * *"`
	ReportRecipient string `env:"REPORT_RECIPIENT"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
