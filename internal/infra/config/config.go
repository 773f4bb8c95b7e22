package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Режимы получения обновлений
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

var ErrInvalidConfig = errors.New("invalid config")

// Font шрифт в списке приоритетов грамоты
type Font struct {
	Path        string `yaml:"path"`
	Description string `yaml:"description"`
}

type Config struct {
	TelegramBot struct {
		Token       string        `yaml:"token"`
		Mode        string        `yaml:"mode"`
		WebhookURL  string        `yaml:"webhook_url"`
		ListenAddr  string        `yaml:"listen_addr"`
		PollTimeout time.Duration `yaml:"poll_timeout"`
	} `yaml:"telegram_bot"`
	Server struct {
		Addr       string `yaml:"addr"`
		AdminToken string `yaml:"admin_token"`
	} `yaml:"server"`
	Database struct {
		URL      string `yaml:"url"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"dbname"`
	} `yaml:"database"`
	Channel struct {
		Username                 string `yaml:"username"`
		Link                     string `yaml:"link"`
		Name                     string `yaml:"name"`
		DisableSubscriptionCheck bool   `yaml:"disable_subscription_check"`
	} `yaml:"channel"`
	Sessions struct {
		Backend       string        `yaml:"backend"`
		TTL           time.Duration `yaml:"ttl"`
		SweepInterval time.Duration `yaml:"sweep_interval"`
		RedisURL      string        `yaml:"redis_url"`
	} `yaml:"sessions"`
	Stats struct {
		Path string `yaml:"path"`
	} `yaml:"stats"`
	Certificate struct {
		Template string `yaml:"template"`
		Fonts    []Font `yaml:"fonts"`
	} `yaml:"certificate"`
	Messages struct {
		ReloadInterval time.Duration `yaml:"reload_interval"`
	} `yaml:"messages"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	AdminIDs []int64 `yaml:"admin_ids"`
	Debug    bool    `yaml:"debug"`
}

// Default конфигурация по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.TelegramBot.Mode = ModePolling
	cfg.TelegramBot.ListenAddr = ":8443"
	cfg.TelegramBot.PollTimeout = 10 * time.Second
	cfg.Channel.Username = "burnout_channel"
	cfg.Channel.Link = "https://t.me/burnout_channel"
	cfg.Channel.Name = "Канал про выгорание"
	cfg.Sessions.Backend = "memory"
	cfg.Sessions.TTL = 24 * time.Hour
	cfg.Sessions.SweepInterval = 10 * time.Minute
	cfg.Stats.Path = "bot_stats.json"
	cfg.Certificate.Template = "certificate_template.png"
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	return cfg
}

// LoadConfig читает YAML (если путь задан), затем .env и переменные окружения.
// Переменные окружения важнее значений из файла.
func LoadConfig(filename string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}

		defer func(f *os.File) {
			_ = f.Close()
		}(f)

		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
		}
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.TelegramBot.Token, "TELEGRAM_BOT_TOKEN")
	setString(&cfg.TelegramBot.Mode, "BOT_MODE")
	setString(&cfg.TelegramBot.WebhookURL, "WEBHOOK_URL")
	setString(&cfg.TelegramBot.ListenAddr, "LISTEN_ADDR")
	setString(&cfg.Server.Addr, "HTTP_ADDR")
	setString(&cfg.Server.AdminToken, "ADMIN_API_TOKEN")
	setString(&cfg.Database.URL, "DATABASE_URL")
	setString(&cfg.Channel.Username, "CHANNEL_USERNAME")
	setString(&cfg.Channel.Link, "CHANNEL_LINK")
	setString(&cfg.Channel.Name, "CHANNEL_NAME")
	setString(&cfg.Sessions.Backend, "SESSION_BACKEND")
	setString(&cfg.Sessions.RedisURL, "REDIS_URL")
	setString(&cfg.Stats.Path, "STATS_PATH")
	setString(&cfg.Certificate.Template, "CERTIFICATE_TEMPLATE")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")

	if err := setBool(&cfg.Channel.DisableSubscriptionCheck, "DISABLE_SUBSCRIPTION_CHECK"); err != nil {
		return err
	}
	if err := setBool(&cfg.Debug, "DEBUG"); err != nil {
		return err
	}
	if err := setDuration(&cfg.TelegramBot.PollTimeout, "POLL_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.Sessions.TTL, "SESSION_TTL"); err != nil {
		return err
	}

	// Список Telegram ID администраторов через запятую
	if v, ok := os.LookupEnv("ADMIN_IDS"); ok {
		ids, err := ParseAdminIDs(v)
		if err != nil {
			return err
		}
		cfg.AdminIDs = ids
	}

	return nil
}

// ParseAdminIDs разбирает список идентификаторов через запятую
func ParseAdminIDs(v string) ([]int64, error) {
	var ids []int64
	for _, s := range strings.Split(v, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: ADMIN_IDS: %q is not a number", ErrInvalidConfig, s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Validate проверяет параметры, нужные для запуска бота
func (c *Config) Validate() error {
	if c.TelegramBot.Token == "" {
		return fmt.Errorf("%w: TELEGRAM_BOT_TOKEN is required", ErrInvalidConfig)
	}
	switch c.TelegramBot.Mode {
	case ModePolling:
	case ModeWebhook:
		if c.TelegramBot.WebhookURL == "" {
			return fmt.Errorf("%w: WEBHOOK_URL is required in webhook mode", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown BOT_MODE %q", ErrInvalidConfig, c.TelegramBot.Mode)
	}
	if c.Sessions.Backend == "redis" && c.Sessions.RedisURL == "" {
		return fmt.Errorf("%w: REDIS_URL is required for redis sessions", ErrInvalidConfig)
	}
	if !c.Channel.DisableSubscriptionCheck && c.Channel.Username == "" {
		return fmt.Errorf("%w: CHANNEL_USERNAME is required when subscription check is enabled", ErrInvalidConfig)
	}
	if c.Stats.Path == "" {
		return fmt.Errorf("%w: STATS_PATH is empty", ErrInvalidConfig)
	}
	return nil
}

// DatabaseDSN строка подключения к PostgreSQL. Пустая строка: база не настроена.
func (c *Config) DatabaseDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	if c.Database.Host == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(v)))
	if err != nil {
		return fmt.Errorf("%w: %s: %q is not a boolean", ErrInvalidConfig, key, v)
	}
	*dst = b
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	*dst = d
	return nil
}
