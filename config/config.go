package config

import (
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"

	"devplatform/logutils"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath = "./etc/config.yaml"
	configPathEnv     = "DEVPLATFORM_CONFIG"
	passwordEnv       = "POSTGRES_PASSWORD"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server struct {
		Addr       string `yaml:"addr"`
		Mode       string `yaml:"mode"`
		CORSOrigin string `yaml:"corsOrigin"`
	} `yaml:"server"`
	Database struct {
		Driver        string        `yaml:"driver"`
		AutoMigrate   bool          `yaml:"autoMigrate"`
		SlowThreshold time.Duration `yaml:"slowThreshold"`
		SQLite        struct {
			Path string `yaml:"path"`
		} `yaml:"sqlite"`
		Pool struct {
			MaxIdleConns    int           `yaml:"maxIdleConns"`
			MaxOpenConns    int           `yaml:"maxOpenConns"`
			ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
			ConnMaxIdleTime time.Duration `yaml:"connMaxIdleTime"`
		} `yaml:"pool"`
	} `yaml:"database"`
	Postgres struct {
		Host           string `yaml:"host"`
		Port           string `yaml:"port"`
		DBName         string `yaml:"dbname"`
		User           string `yaml:"user"`
		Password       string `yaml:"password"`
		SSLMode        string `yaml:"sslmode"`
		TimeZone       string `yaml:"TimeZone"`
		ConnectTimeout int    `yaml:"connectTimeout"`
	} `yaml:"postgres"`
	Log struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		MaxSize    int    `yaml:"maxSize"`
		MaxBackups int    `yaml:"maxBackups"`
		MaxAge     int    `yaml:"maxAge"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"log"`
}

var (
	once   sync.Once
	config *Config
)

// GetConfig returns the process-wide configuration, reading it on first use.
func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

// SetConfig replaces the process-wide configuration. It is meant for the
// command line, which may load a file passed with --config.
func SetConfig(c *Config) {
	once.Do(func() {})
	config = c
}

func initConfig() *Config {
	configPath := os.Getenv(configPathEnv)
	if configPath == "" {
		configPath = defaultConfigPath
	}
	c, err := Load(configPath)
	if err != nil {
		logutils.Log.Error("init config", err)
		panic(err)
	}
	return c
}

// Load reads .env (if any), then the YAML file at filePath, and applies
// defaults and environment overrides. A missing YAML file is not an error:
// defaults plus environment are enough to run against a local sqlite file.
func Load(filePath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	c := Default()
	if err := readConfig(filePath, c); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if password := os.Getenv(passwordEnv); password != "" {
		c.Postgres.Password = password
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns a configuration that runs without a config file.
func Default() *Config {
	c := &Config{}
	c.Server.Addr = ":7320"
	c.Server.Mode = "release"
	c.Server.CORSOrigin = "*"
	c.Database.Driver = DriverPostgres
	c.Database.AutoMigrate = true
	c.Database.SlowThreshold = 200 * time.Millisecond
	c.Database.SQLite.Path = "./data/platform.db"
	c.Database.Pool.MaxIdleConns = 5
	c.Database.Pool.MaxOpenConns = 10
	c.Database.Pool.ConnMaxLifetime = time.Hour
	c.Database.Pool.ConnMaxIdleTime = 10 * time.Minute
	c.Postgres.Host = "localhost"
	c.Postgres.Port = "5432"
	c.Postgres.DBName = "devplatform"
	c.Postgres.User = "postgres"
	c.Postgres.SSLMode = "disable"
	c.Postgres.TimeZone = "Asia/Jerusalem"
	c.Postgres.ConnectTimeout = 10
	c.Log.Level = "info"
	c.Log.MaxSize = 10
	c.Log.MaxBackups = 3
	c.Log.MaxAge = 28
	return c
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return errors.New("database.driver must be postgres or sqlite")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return errors.New("server.mode must be debug, release or test")
	}
	if c.Database.Pool.MaxOpenConns < 0 || c.Database.Pool.MaxIdleConns < 0 {
		return errors.New("database.pool sizes must not be negative")
	}
	return nil
}

// LogOptions converts the log section for logutils.Configure.
func (c *Config) LogOptions() logutils.Options {
	return logutils.Options{
		Level:      c.Log.Level,
		File:       c.Log.File,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
		Compress:   c.Log.Compress,
	}
}

func readConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}
