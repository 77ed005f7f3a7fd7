package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type GameConfig struct {
	MinWordSize    int    `mapstructure:"min_word_size"`
	MaxWordSize    int    `mapstructure:"max_word_size"`
	ChanceLimit    int    `mapstructure:"chance_limit"`
	DictionaryPath string `mapstructure:"dictionary_path"`
}

type StorageConfig struct {
	Driver     string         `mapstructure:"driver"`
	SQLitePath string         `mapstructure:"sqlite_path"`
	Postgres   PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN renders the key/value connection string understood by lib/pq and pgx.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

type LogConfig struct {
	Level       string   `mapstructure:"level"`
	OutputPaths []string `mapstructure:"output_paths"`
}

type MetricsConfig struct {
	Address string `mapstructure:"address"`
}

// Storage drivers accepted by storage.driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverGorm     = "gorm"
	DriverMemory   = "memory"
)

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("game.min_word_size", 5)
	v.SetDefault("game.max_word_size", 12)
	v.SetDefault("game.chance_limit", 7)
	v.SetDefault("game.dictionary_path", "google-10000-english-no-swears.txt")

	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.sqlite_path", "hangman.db")
	v.SetDefault("storage.postgres.host", "localhost")
	v.SetDefault("storage.postgres.port", 5432)
	v.SetDefault("storage.postgres.user", "hangman")
	v.SetDefault("storage.postgres.password", "")
	v.SetDefault("storage.postgres.dbname", "hangman")
	v.SetDefault("storage.postgres.sslmode", "disable")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output_paths", []string{"stderr"})

	v.SetDefault("metrics.address", "")
}

// LoadConfig reads config.yaml from path on top of the defaults. A missing
// file is not an error. HANGMAN_* environment variables override both, e.g.
// HANGMAN_GAME_CHANCE_LIMIT=5.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("hangman")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	g := c.Game
	if g.MinWordSize < 1 {
		return fmt.Errorf("game.min_word_size must be at least 1, got %d", g.MinWordSize)
	}
	if g.MaxWordSize < g.MinWordSize {
		return fmt.Errorf("game.max_word_size (%d) is below game.min_word_size (%d)", g.MaxWordSize, g.MinWordSize)
	}
	if g.ChanceLimit < 1 {
		return fmt.Errorf("game.chance_limit must be at least 1, got %d", g.ChanceLimit)
	}

	switch c.Storage.Driver {
	case DriverSQLite, DriverPostgres, DriverGorm, DriverMemory:
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	return nil
}
