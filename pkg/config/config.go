package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// Default endpoints per environment. The production hosts are the deployed
	// platform; development values match the local backend compose setup.
	devAPIBaseURL  = "http://localhost:5000/api"
	prodAPIBaseURL = "https://api.fanhub.app/api"
	devSocketURL   = "ws://localhost:5001/socket"
	prodSocketURL  = "wss://realtime.fanhub.app/socket"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	API struct {
		BaseURL   string `env:"FANHUB_API_URL"`
		SocketURL string `env:"FANHUB_SOCKET_URL"`
		TimeoutMS int    `env:"FANHUB_API_TIMEOUT_MS" env-default:"15000"`
	}
	Session struct {
		TokenPath string `env:"FANHUB_TOKEN_PATH" env-default:"./fanhub-session"`
	}
	Player struct {
		ItemBudgetMS int `env:"PLAYER_ITEM_BUDGET_MS" env-default:"5000"`
		TickMS       int `env:"PLAYER_TICK_MS" env-default:"50"`
	}
	Notifications struct {
		PollSeconds int `env:"NOTIFICATIONS_POLL_SECONDS" env-default:"60"`
	}
	History struct {
		RetentionDays int `env:"HISTORY_RETENTION_DAYS" env-default:"90"`
		CleanupHours  int `env:"HISTORY_CLEANUP_HOURS" env-default:"12"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}

		applyEnvDefaults(cfg)
	})
	return cfg, nil
}

// applyEnvDefaults fills the endpoint URLs that depend on APP_ENV, which
// cleanenv's static env-default tags cannot express.
func applyEnvDefaults(c *Config) {
	prod := c.App.Env == "production"

	if c.API.BaseURL == "" {
		if prod {
			c.API.BaseURL = prodAPIBaseURL
		} else {
			c.API.BaseURL = devAPIBaseURL
		}
	}

	if c.API.SocketURL == "" {
		if prod {
			c.API.SocketURL = prodSocketURL
		} else {
			c.API.SocketURL = devSocketURL
		}
	}
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}
