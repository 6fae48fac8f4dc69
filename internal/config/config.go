package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// Database drivers accepted in DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	AppPort string

	DBDriver   string
	SQLitePath string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	PostgresDSN string

	// empty disables redis: no idempotency, no dashboard cache
	RedisAddr string
	RedisDB   int

	IdempTTLSecs          int
	DashboardCacheTTLSecs int
	// 0 disables the background sweeper
	SweepIntervalSecs int

	BaseRate float64
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:    getenv("APP_PORT", "8080"),
		DBDriver:   getenv("DB_DRIVER", DriverSQLite),
		SQLitePath: getenv("SQLITE_PATH", "ledger.db"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "ledger"),
		MySQLUser: getenv("MYSQL_USER", "ledger"),
		MySQLPass: getenv("MYSQL_PASS", "ledger"),

		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisDB:   getint("REDIS_DB", 0),

		IdempTTLSecs:          getint("IDEMPOTENCY_TTL_SECONDS", 300),
		DashboardCacheTTLSecs: getint("DASHBOARD_CACHE_TTL_SECONDS", 30),
		SweepIntervalSecs:     getint("SWEEP_INTERVAL_SECONDS", 0),

		BaseRate: 0.15,
	}
	if v := os.Getenv("BASE_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.BaseRate = f
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
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
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (sqlite|mysql|postgres)", c.DBDriver)
	}
	if c.BaseRate <= 0 || c.BaseRate > 1 {
		return fmt.Errorf("BASE_RATE must be in (0, 1], got %v", c.BaseRate)
	}
	if c.IdempTTLSecs <= 0 {
		return errors.New("IDEMPOTENCY_TTL_SECONDS must be positive")
	}
	if c.DashboardCacheTTLSecs < 0 || c.SweepIntervalSecs < 0 {
		return errors.New("DASHBOARD_CACHE_TTL_SECONDS and SWEEP_INTERVAL_SECONDS must not be negative")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

func (c *Config) SQLiteDSN() string {
	return "file:" + c.SQLitePath + "?_busy_timeout=5000&_foreign_keys=on"
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverMySQL:
		return c.MySQLDSN()
	case DriverPostgres:
		return c.PostgresDSN
	default:
		return c.SQLiteDSN()
	}
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) DashboardCacheTTL() time.Duration {
	return time.Duration(c.DashboardCacheTTLSecs) * time.Second
}

func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSecs) * time.Second
}
