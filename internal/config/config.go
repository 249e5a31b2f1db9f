package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"

	"github.com/sadopc/moodwheel/internal/store"
)

const (
	AppName = "moodwheel"

	// keyringUser is the account the Telegram bot token is filed under.
	keyringUser = "telegram-bot-token"
)

// Reminder sender names.
const (
	SenderLog      = "log"
	SenderTelegram = "telegram"
)

var ErrMissingTelegramToken = errors.New("telegram sender selected but no bot token configured")

type Config struct {
	// DatabasePath defaults to <config dir>/moodwheel.db.
	DatabasePath string `yaml:"database_path"`
	Debug        bool   `yaml:"debug"`

	Reminder ReminderConfig `yaml:"reminder"`
}

type ReminderConfig struct {
	Sender   string         `yaml:"sender"` // log, telegram
	Bell     bool           `yaml:"bell"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type TelegramConfig struct {
	// Token is normally left empty and read from the OS keyring.
	Token  string `yaml:"token,omitempty"`
	ChatID int64  `yaml:"chat_id"`
}

// Dir returns ~/.config/moodwheel (or the platform equivalent).
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// DefaultPath returns the config file location inside Dir.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Default() *Config {
	cfg := &Config{
		Reminder: ReminderConfig{Sender: SenderLog, Bell: true},
	}
	if path, err := store.DefaultDBPath(); err == nil {
		cfg.DatabasePath = path
	}
	return cfg
}

// Load reads path over the defaults. A missing file is not an error.
// Environment variables win over the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("MOODWHEEL_DB"); path != "" {
		c.DatabasePath = path
	}
	if v := os.Getenv("MOODWHEEL_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
	if sender := os.Getenv("MOODWHEEL_REMINDER_SENDER"); sender != "" {
		c.Reminder.Sender = sender
	}
	if token := os.Getenv("MOODWHEEL_TG_TOKEN"); token != "" {
		c.Reminder.Telegram.Token = token
	}
	if v := os.Getenv("MOODWHEEL_TG_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Reminder.Telegram.ChatID = id
		}
	}
}

func (c *Config) Validate() error {
	switch c.Reminder.Sender {
	case SenderLog, SenderTelegram:
	default:
		return fmt.Errorf("unknown reminder sender %q", c.Reminder.Sender)
	}
	if c.DatabasePath == "" {
		return errors.New("database path is empty")
	}
	return nil
}

// TelegramToken returns the configured bot token, falling back to the OS
// keyring when neither the file nor the environment sets one.
func (c *Config) TelegramToken() (string, error) {
	if c.Reminder.Telegram.Token != "" {
		return c.Reminder.Telegram.Token, nil
	}
	token, err := keyring.Get(AppName, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) || (err == nil && token == "") {
		return "", ErrMissingTelegramToken
	}
	if err != nil {
		return "", fmt.Errorf("read keyring: %w", err)
	}
	return token, nil
}

// StoreTelegramToken files token in the OS keyring.
func StoreTelegramToken(token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if err := keyring.Set(AppName, keyringUser, token); err != nil {
		return fmt.Errorf("store token in keyring: %w", err)
	}
	return nil
}
