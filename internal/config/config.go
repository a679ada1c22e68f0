package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"loandesk-backend/internal/domain/tasktemplate"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppPort string

	DBDriver string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	PostgresDSN string
	SQLitePath  string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	LogLevel  string
	LogFormat string

	TemplateSeedPolicy tasktemplate.SeedPolicy
}

func defaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("MYSQL_HOST", "mysql")
	v.SetDefault("MYSQL_PORT", "3306")
	v.SetDefault("MYSQL_DB", "loandesk")
	v.SetDefault("MYSQL_USER", "loandesk")
	v.SetDefault("MYSQL_PASS", "loandesk")
	v.SetDefault("POSTGRES_DSN", "")
	v.SetDefault("SQLITE_PATH", "loandesk.db")
	v.SetDefault("REDIS_ADDR", "redis:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("IDEMPOTENCY_TTL_SECONDS", 300)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("TEMPLATE_SEED_POLICY", string(tasktemplate.SeedOnce))
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	defaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppPort:            v.GetString("APP_PORT"),
		DBDriver:           strings.ToLower(v.GetString("DB_DRIVER")),
		MySQLHost:          v.GetString("MYSQL_HOST"),
		MySQLPort:          v.GetString("MYSQL_PORT"),
		MySQLDB:            v.GetString("MYSQL_DB"),
		MySQLUser:          v.GetString("MYSQL_USER"),
		MySQLPass:          v.GetString("MYSQL_PASS"),
		PostgresDSN:        v.GetString("POSTGRES_DSN"),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisDB:            v.GetInt("REDIS_DB"),
		IdempTTLSecs:       v.GetInt("IDEMPOTENCY_TTL_SECONDS"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		TemplateSeedPolicy: tasktemplate.SeedPolicy(strings.ToLower(v.GetString("TEMPLATE_SEED_POLICY"))),
	}
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case DriverPostgres:
		if c.PostgresDSN == "" {
			return errors.New("missing POSTGRES_DSN")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if !c.TemplateSeedPolicy.Valid() {
		return fmt.Errorf("invalid TEMPLATE_SEED_POLICY %q (want %s or %s)", c.TemplateSeedPolicy, tasktemplate.SeedOnce, tasktemplate.SeedWhenEmpty)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverPostgres:
		return c.PostgresDSN
	case DriverSQLite:
		return c.SQLitePath
	default:
		return c.MySQLDSN()
	}
}
