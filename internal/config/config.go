package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Archive   ArchiveConfig
	Catalog   CatalogConfig
	App       AppConfig
	Reminder  ReminderConfig
	Line      LineConfig
	Auth      AuthConfig
	Log       LogConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 配置文件所在目录（运行时设置，用于热加载）
	Dir string `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// StorageConfig 选择保存用户状态的键值存储
type StorageConfig struct {
	Driver   string `mapstructure:"driver"` // badger | sql | redis | memory
	Path     string `mapstructure:"path"`
	StateKey string `mapstructure:"state_key"`
}

type DatabaseConfig struct {
	Driver    string `mapstructure:"driver"` // mysql | sqlite
	DSN       string `mapstructure:"dsn"`
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool `mapstructure:"parse_time"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ArchiveConfig 导出备份文件的存放位置
type ArchiveConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

type AppConfig struct {
	Timezone           string `mapstructure:"timezone"`
	MinReadingSeconds  int    `mapstructure:"min_reading_seconds"`
	SessionIdleMinutes int    `mapstructure:"session_idle_minutes"`
}

type ReminderConfig struct {
	PollIntervalSeconds int `mapstructure:"poll_interval_seconds"`
}

type LineConfig struct {
	ChannelSecret string `mapstructure:"channel_secret"`
	ChannelToken  string `mapstructure:"channel_token"`
	UserID        string `mapstructure:"user_id"`
}

type AuthConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Secret       string        `mapstructure:"secret"`
	PasscodeHash string        `mapstructure:"passcode_hash"`
	ExpireTime   time.Duration `mapstructure:"expire_hours"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

// CORSConfig 头部列表为空时使用 security 包的默认值
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	ExposedHeaders []string `mapstructure:"exposed_headers"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	MaxAgeSeconds  int      `mapstructure:"max_age_seconds"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("storage.driver", "badger")
	v.SetDefault("storage.path", "data/state")
	v.SetDefault("storage.state_key", "mindset-journeys-state")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "data/mindset.db")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parse_time", true)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)

	v.SetDefault("archive.type", "local")
	v.SetDefault("archive.local_path", "data/exports")

	v.SetDefault("app.timezone", "Local")
	v.SetDefault("app.min_reading_seconds", 300)
	v.SetDefault("app.session_idle_minutes", 30)

	v.SetDefault("reminder.poll_interval_seconds", 60)

	v.SetDefault("auth.expire_hours", 24*30)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "logs/app.log")

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("cors.max_age_seconds", 600)
	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)
}

// LoadConfig 从目录 path 读取 config.yaml，文件不存在时使用默认值
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("MINDSET")
	v.AutomaticEnv()

	setDefaults(v)

	// Storage
	v.BindEnv("storage.driver", "STORAGE_DRIVER")
	v.BindEnv("storage.path", "STORAGE_PATH")

	// Database
	v.BindEnv("database.dsn", "DATABASE_DSN")
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.password", "DATABASE_PASSWORD")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Archive
	v.BindEnv("archive.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("archive.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("archive.oss_access_key", "OSS_ACCESS_KEY")
	v.BindEnv("archive.oss_secret_key", "OSS_SECRET_KEY")

	// LINE
	v.BindEnv("line.channel_secret", "LINE_CHANNEL_SECRET")
	v.BindEnv("line.channel_token", "LINE_CHANNEL_TOKEN")

	// Auth
	v.BindEnv("auth.secret", "AUTH_SECRET")

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.Dir = path

	cfg.Auth.ExpireTime = cfg.Auth.ExpireTime * time.Hour

	if cfg.Auth.Enabled && len(cfg.Auth.Secret) < 32 {
		return nil, fmt.Errorf("auth secret is too short (%d chars), must be at least 32 characters when auth is enabled", len(cfg.Auth.Secret))
	}

	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("invalid app.timezone %q: %w", cfg.App.Timezone, err)
	}

	if cfg.Archive.Type == "local" {
		if _, err := os.Stat(cfg.Archive.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Archive.LocalPath, 0755)
		}
	}

	return &cfg, nil
}

// Location 返回用于计算日历日的时区
func (c *Config) Location() (*time.Location, error) {
	if c.App.Timezone == "" || c.App.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.App.Timezone)
}

func (c *Config) ReminderPollInterval() time.Duration {
	if c.Reminder.PollIntervalSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.Reminder.PollIntervalSeconds) * time.Second
}

func (c *Config) SessionIdleTimeout() time.Duration {
	if c.App.SessionIdleMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.App.SessionIdleMinutes) * time.Minute
}
