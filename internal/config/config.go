package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Storage backends selectable through STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendMySQL    = "mysql"
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

type Config struct {
	Storage StorageConfig

	// MySQL
	Database DatabaseConfig

	MongoDB  MongoDBConfig
	Postgres PostgresConfig

	Chat         ChatConfig
	Notification NotificationConfig
	Logging      LoggingConfig
}

type StorageConfig struct {
	Backend string `env:"STORAGE_BACKEND" env-default:"memory"`
	// Only honoured by the memory backend. Zero disables the limit.
	QuotaBytes int `env:"STORAGE_QUOTA_BYTES" env-default:"5242880"`
}

type DatabaseConfig struct {
	Host         string `env:"MYSQL_HOST" env-default:"localhost"`
	Port         string `env:"MYSQL_PORT" env-default:"3306"`
	Username     string `env:"MYSQL_USERNAME" env-default:"campusbuzz"`
	Password     string `env:"MYSQL_PASSWORD" env-default:"campusbuzz123"`
	DatabaseName string `env:"MYSQL_DATABASE" env-default:"campusbuzz"`
	MaxOpenConns int    `env:"MYSQL_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns int    `env:"MYSQL_MAX_IDLE_CONNS" env-default:"5"`
}

type MongoDBConfig struct {
	Host           string        `env:"MONGO_HOST" env-default:"localhost"`
	Port           string        `env:"MONGO_PORT" env-default:"27017"`
	Username       string        `env:"MONGO_USERNAME"`
	Password       string        `env:"MONGO_PASSWORD"`
	Database       string        `env:"MONGO_DATABASE" env-default:"campusbuzz"`
	Collection     string        `env:"MONGO_COLLECTION" env-default:"kv_entries"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
	User     string `env:"POSTGRES_USER" env-default:"campusbuzz"`
	Password string `env:"POSTGRES_PASSWORD" env-default:"campusbuzz123"`
	Database string `env:"POSTGRES_DB" env-default:"campusbuzz"`
	SSLMode  string `env:"POSTGRES_SSLMODE" env-default:"disable"`
}

type ChatConfig struct {
	// Demo history for rooms that have never been opened.
	SeedDemoMessages bool `env:"CHAT_SEED_DEMO" env-default:"true"`
	// Go layout used for the display timestamp of new messages.
	TimestampLayout string `env:"CHAT_TIMESTAMP_LAYOUT" env-default:"03:04 PM"`
}

type NotificationConfig struct {
	SeedDemo     bool `env:"NOTIF_SEED_DEMO" env-default:"true"`
	PreviewLimit int  `env:"NOTIF_PREVIEW_LIMIT" env-default:"3"`
}

type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`  // debug, info, warn, error
	Format string `env:"LOG_FORMAT" env-default:"text"` // json, text
}

// LoadConfig reads the given .env files (".env" when none are given) and
// then the process environment. Variables already set in the environment
// win over the files. Missing files are ignored.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) Validate() error {
	switch cfg.Storage.Backend {
	case BackendMemory, BackendMySQL, BackendMongo, BackendPostgres:
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.Storage.QuotaBytes < 0 {
		return fmt.Errorf("storage quota cannot be negative")
	}
	return nil
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username != "" && cfg.MongoDB.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
			cfg.MongoDB.Username,
			cfg.MongoDB.Password,
			cfg.MongoDB.Host,
			cfg.MongoDB.Port,
			cfg.MongoDB.Database,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", cfg.MongoDB.Host, cfg.MongoDB.Port, cfg.MongoDB.Database)
}

func (cfg *Config) PostgresDSN() string {
	sslMode := cfg.Postgres.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		sslMode,
	)
}
