package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Artifacts ArtifactsConfig
	Redis     RedisConfig
	Database  DatabaseConfig
	Cache     CacheConfig
	Pipeline  PipelineConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// DataConfig - пути к исходным данным, загружаемым при старте
type DataConfig struct {
	BoundariesPath  string
	RegistryPath    string
	RegistryCP4Path string
	AddressFeedPath string
}

// ArtifactsConfig - корень шардированного дерева артефактов
type ArtifactsConfig struct {
	Root string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// DatabaseConfig - необязательная база для истории пакетных запусков
type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type CacheConfig struct {
	GPSCacheTTL    time.Duration
	PostalCacheTTL time.Duration
}

// PipelineConfig - настройки офлайн-конвейера сборки артефактов
type PipelineConfig struct {
	Workers int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Data: DataConfig{
			BoundariesPath:  viper.GetString("DATA_BOUNDARIES_PATH"),
			RegistryPath:    viper.GetString("DATA_REGISTRY_PATH"),
			RegistryCP4Path: viper.GetString("DATA_REGISTRY_CP4_PATH"),
			AddressFeedPath: viper.GetString("DATA_ADDRESS_FEED_PATH"),
		},
		Artifacts: ArtifactsConfig{
			Root: viper.GetString("ARTIFACTS_ROOT"),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Database: DatabaseConfig{
			Enabled:         viper.GetBool("DB_ENABLED"),
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
		},
		Cache: CacheConfig{
			GPSCacheTTL:    time.Duration(viper.GetInt("GPS_CACHE_TTL")) * time.Second,
			PostalCacheTTL: time.Duration(viper.GetInt("POSTAL_CACHE_TTL")) * time.Second,
		},
		Pipeline: PipelineConfig{
			Workers: viper.GetInt("PIPELINE_WORKERS"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Artifacts.Root == "" {
		cfg.Artifacts.Root = "./data/artifacts"
	}
	if cfg.Cache.GPSCacheTTL == 0 {
		cfg.Cache.GPSCacheTTL = time.Hour
	}
	if cfg.Cache.PostalCacheTTL == 0 {
		cfg.Cache.PostalCacheTTL = 24 * time.Hour
	}
	if cfg.Pipeline.Workers == 0 {
		cfg.Pipeline.Workers = 8
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
