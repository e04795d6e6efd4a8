package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// Mode is the gin mode: debug, release or test
	Mode string `yaml:"mode"`
}

type DatabaseConfig struct {
	// Driver is postgres or sqlite
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type AssistantConfig struct {
	APIKey   string        `yaml:"api_key"`
	Model    string        `yaml:"model"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"-"`
}

type SessionConfig struct {
	TTL           time.Duration `yaml:"-"`
	SweepSchedule string        `yaml:"sweep_schedule"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type FeedSource struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type FeedConfig struct {
	Enabled  bool         `yaml:"enabled"`
	Schedule string       `yaml:"schedule"`
	Sources  []FeedSource `yaml:"sources"`
}

// Config 服务配置
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Assistant AssistantConfig `yaml:"assistant"`
	Sessions  SessionConfig   `yaml:"sessions"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Feeds     FeedConfig      `yaml:"feeds"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
		Database: DatabaseConfig{
			Driver: "postgres",
			DSN:    "host=localhost user=postgres password=postgres dbname=care_companion port=5432 sslmode=disable",
		},
		Assistant: AssistantConfig{
			Model:    "gemini-2.0-flash",
			Endpoint: "https://generativelanguage.googleapis.com",
			Timeout:  30 * time.Second,
		},
		Sessions: SessionConfig{
			TTL:           2 * time.Hour,
			SweepSchedule: "@every 10m",
		},
		RateLimit: RateLimitConfig{
			RPS:   20,
			Burst: 40,
		},
		Feeds: FeedConfig{
			Enabled:  true,
			Schedule: "@every 6h",
			Sources: []FeedSource{
				{Name: "NIH News", URL: "https://www.nih.gov/news-releases/feed.xml"},
			},
		},
	}
}

// LoadConfig reads path on top of the defaults, then applies environment overrides.
// A missing file is not an error; a malformed one is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// 时长字段以字符串形式解析
	type yamlAssistant struct {
		APIKey   string `yaml:"api_key"`
		Model    string `yaml:"model"`
		Endpoint string `yaml:"endpoint"`
		Timeout  string `yaml:"timeout"`
	}
	type yamlSessions struct {
		TTL           string `yaml:"ttl"`
		SweepSchedule string `yaml:"sweep_schedule"`
	}
	type yamlConfig struct {
		Server    ServerConfig    `yaml:"server"`
		Database  DatabaseConfig  `yaml:"database"`
		Assistant yamlAssistant   `yaml:"assistant"`
		Sessions  yamlSessions    `yaml:"sessions"`
		RateLimit RateLimitConfig `yaml:"rate_limit"`
		Feeds     FeedConfig      `yaml:"feeds"`
	}

	raw := yamlConfig{
		Server:   c.Server,
		Database: c.Database,
		Assistant: yamlAssistant{
			APIKey:   c.Assistant.APIKey,
			Model:    c.Assistant.Model,
			Endpoint: c.Assistant.Endpoint,
		},
		Sessions:  yamlSessions{SweepSchedule: c.Sessions.SweepSchedule},
		RateLimit: c.RateLimit,
		Feeds:     c.Feeds,
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	c.Server = raw.Server
	c.Database = raw.Database
	c.Assistant.APIKey = raw.Assistant.APIKey
	c.Assistant.Model = raw.Assistant.Model
	c.Assistant.Endpoint = raw.Assistant.Endpoint
	c.Sessions.SweepSchedule = raw.Sessions.SweepSchedule
	c.RateLimit = raw.RateLimit
	c.Feeds = raw.Feeds
	if raw.Assistant.Timeout != "" {
		d, err := time.ParseDuration(raw.Assistant.Timeout)
		if err != nil {
			return fmt.Errorf("invalid assistant.timeout %q: %w", raw.Assistant.Timeout, err)
		}
		c.Assistant.Timeout = d
	}
	if raw.Sessions.TTL != "" {
		d, err := time.ParseDuration(raw.Sessions.TTL)
		if err != nil {
			return fmt.Errorf("invalid sessions.ttl %q: %w", raw.Sessions.TTL, err)
		}
		c.Sessions.TTL = d
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.Server.Mode = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Assistant.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Assistant.Model = v
	}
	if v := os.Getenv("GEMINI_API_ENDPOINT"); v != "" {
		c.Assistant.Endpoint = v
	}
	if v := os.Getenv("FEEDS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid FEEDS_ENABLED %q: %w", v, err)
		}
		c.Feeds.Enabled = enabled
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database dsn is required")
	}
	// rps 为 0 时令牌永不补充，桶耗尽后会永久拒绝请求
	if c.RateLimit.RPS <= 0 {
		return fmt.Errorf("rate_limit.rps must be positive, got %v", c.RateLimit.RPS)
	}
	if c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate_limit.burst must be at least 1, got %d", c.RateLimit.Burst)
	}
	for i, src := range c.Feeds.Sources {
		if src.URL == "" {
			return fmt.Errorf("feed source %d: url is required", i)
		}
	}
	return nil
}
