package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "resto"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App  AppConfig
	DB   DBConfig
	CORS CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RESTO_APP_ENV" default:"dev"`
	Port         string `envconfig:"RESTO_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"RESTO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RESTO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DBConfig selects the backing store. The default is a single-file SQLite
// database next to the binary; postgres is available for shared deployments.
type DBConfig struct {
	Driver string `envconfig:"RESTO_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"RESTO_DB_DSN" default:"restaurant.db"`

	AutoMigrate bool `envconfig:"RESTO_DB_AUTO_MIGRATE" default:"true"`

	MaxOpenConns    int           `envconfig:"RESTO_DB_MAX_OPEN_CONNS" default:"0"`
	MaxIdleConns    int           `envconfig:"RESTO_DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"RESTO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RESTO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db *DBConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(db.Driver)) {
	case DriverSQLite:
		db.Driver = DriverSQLite
	case DriverPostgres:
		db.Driver = DriverPostgres
	default:
		return fmt.Errorf("unsupported db driver %q (want %s or %s)", db.Driver, DriverSQLite, DriverPostgres)
	}
	if db.DSN == "" {
		return fmt.Errorf("RESTO_DB_DSN is required")
	}
	return nil
}

type CORSConfig struct {
	Origins []string `envconfig:"RESTO_CORS_ORIGINS" default:"http://localhost:3000"`
}
