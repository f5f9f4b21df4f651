package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable consumed by the platform.
const EnvPrefix = "PEDEAQUI"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Catalog CatalogConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PEDEAQUI_APP_ENV" required:"true"`
	Port         string `envconfig:"PEDEAQUI_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PEDEAQUI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PEDEAQUI_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"PEDEAQUI_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"PEDEAQUI_DB_DSN"`

	Host     string `envconfig:"PEDEAQUI_DB_HOST"`
	Port     int    `envconfig:"PEDEAQUI_DB_PORT" default:"5432"`
	User     string `envconfig:"PEDEAQUI_DB_USER"`
	Password string `envconfig:"PEDEAQUI_DB_PASSWORD"`
	Name     string `envconfig:"PEDEAQUI_DB_NAME"`
	SSLMode  string `envconfig:"PEDEAQUI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PEDEAQUI_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PEDEAQUI_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PEDEAQUI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PEDEAQUI_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PEDEAQUI_REDIS_URL"`
	Address      string        `envconfig:"PEDEAQUI_REDIS_ADDR"`
	Password     string        `envconfig:"PEDEAQUI_REDIS_PASSWORD"`
	DB           int           `envconfig:"PEDEAQUI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PEDEAQUI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PEDEAQUI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PEDEAQUI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PEDEAQUI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PEDEAQUI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CatalogConfig struct {
	ViewCacheTTL time.Duration `envconfig:"PEDEAQUI_CATALOG_VIEW_CACHE_TTL" default:"5m"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"PEDEAQUI_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	if db.Host == "" {
		missing = append(missing, "PEDEAQUI_DB_HOST")
	}
	if db.User == "" {
		missing = append(missing, "PEDEAQUI_DB_USER")
	}
	if db.Name == "" {
		missing = append(missing, "PEDEAQUI_DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("either PEDEAQUI_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}
	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
