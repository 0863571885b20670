package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/picdesk"
	"github.com/hupe1980/picdesk/section"
	"github.com/spf13/viper"
)

// Config holds CLI configuration.
type Config struct {
	Backend string
	Dir     string
	Local   LocalConfig
	MinIO   MinIOConfig `mapstructure:"minio"`
	S3      S3Config    `mapstructure:"s3"`
	Index   IndexConfig
	Log     LogConfig
}

// LocalConfig holds file system backend settings.
type LocalConfig struct {
	Root string
}

// MinIOConfig holds MinIO backend settings.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Secure    bool
	Bucket    string
	Prefix    string
}

// S3Config holds S3 backend settings. Credentials come from the default
// AWS configuration chain.
type S3Config struct {
	Region string
	Bucket string
	Prefix string
}

// IndexConfig holds section layout and loading settings.
type IndexConfig struct {
	SingleSection  bool  `mapstructure:"single_section"`
	SectionLengths []int `mapstructure:"section_lengths"`
	Remainder      string
	Concurrency    int
	CacheSize      int     `mapstructure:"cache_size"`
	RateLimit      float64 `mapstructure:"rate_limit"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// LoadConfig reads configuration from file and env. Env var overrides use
// prefix PICDESK_. An empty path falls back to PICDESK_CONFIG and then to
// $HOME/.config/picdesk/config.toml; a missing default file is not an error.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("backend", "local")
	v.SetDefault("dir", "")
	v.SetDefault("local.root", ".")
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.secure", false)
	v.SetDefault("minio.bucket", "")
	v.SetDefault("minio.prefix", "")
	v.SetDefault("s3.region", "")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.prefix", "")
	v.SetDefault("index.single_section", true)
	v.SetDefault("index.section_lengths", picdesk.DefaultSectionLengths)
	v.SetDefault("index.remainder", section.AbsorbRemainder.String())
	v.SetDefault("index.concurrency", 0)
	v.SetDefault("index.cache_size", 0)
	v.SetDefault("index.rate_limit", 0.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("PICDESK_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "picdesk"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PICDESK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// IndexOptions translates the index settings into picdesk options.
func (c Config) IndexOptions() ([]picdesk.Option, error) {
	mode, err := section.ParseRemainderMode(c.Index.Remainder)
	if err != nil {
		return nil, err
	}
	cfg := picdesk.Config{
		SingleSection:  c.Index.SingleSection,
		SectionLengths: c.Index.SectionLengths,
		Remainder:      mode,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := c.Log.Logger()
	if err != nil {
		return nil, err
	}

	return []picdesk.Option{
		picdesk.WithConfig(cfg),
		picdesk.WithConcurrency(c.Index.Concurrency),
		picdesk.WithLogger(logger),
	}, nil
}

// Logger builds the configured logger.
func (c LogConfig) Logger() (*picdesk.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	switch strings.ToLower(c.Format) {
	case "", "text":
		return picdesk.NewTextLogger(level), nil
	case "json":
		return picdesk.NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("log format %q: want text or json", c.Format)
	}
}
