package core

import (
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

type (
	Config struct {
		AppName            string
		Env                string
		Build              string
		Debug              bool
		TestMode           bool
		SecretKey          string
		RollbarToken       string
		Locale             string
		JWTExpirationDelta time.Duration

		Server   ServerConfig
		Database DatabaseConfig
	}

	ServerConfig struct {
		Host            string
		Address         string
		DebugHost       string // pprof & expvar; "" disables the debug server
		DisableReqLogs  bool
		ShutdownTimeout time.Duration
	}

	DatabaseConfig struct {
		Engine        string // postgres | sqlite
		Host          string
		Port          string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		DisableTLS    bool
		Path          string // sqlite file; ":memory:" for an ephemeral DB
	}
)

// Address returns the database "host:port".
func (dc DatabaseConfig) Address() string {
	return net.JoinHostPort(dc.Host, dc.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "E-Dashboard Laporan Homeroom")
	v.SetDefault("build", "dev")
	v.SetDefault("secretKey", "k9$2v!x7q-mrsm-ranau-hr&0pz4w^e8c1)n5")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("locale", "ms-MY")
	v.SetDefault("jwtExpirationDelta", 12*time.Hour)

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.debugHost", "localhost:4000")
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("server.shutdownTimeout", 10*time.Second)

	v.SetDefault("database.engine", EngineSQLite)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "ehomeroom")
	v.SetDefault("database.user", "ehomeroom")
	v.SetDefault("database.password", "")
	v.SetDefault("database.adminUser", "")
	v.SetDefault("database.adminPassword", "")
	v.SetDefault("database.disableTLS", true)
	v.SetDefault("database.path", "ehomeroom.db")
}

// NewConfig loads the configuration for the current environment.
// ENV selects the environment: DEV (local; default), TEST, QA, PROD.
// Values are read from `config/.env.<env>` (if it exists) and the process environment,
// prefixed with the environment name, e.g. PROD_DATABASE_ENGINE=postgres.
func NewConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
		v.SetDefault("database.path", ":memory:")
	case "PROD":
		v.SetDefault("debug", false)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	if wd, err := os.Getwd(); err == nil {
		dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
		}
	}
	v.AutomaticEnv()

	conf := &Config{
		AppName:            v.GetString("appName"),
		Env:                env,
		Build:              v.GetString("build"),
		Debug:              v.GetBool("debug"),
		TestMode:           v.GetBool("testMode"),
		SecretKey:          v.GetString("secretKey"),
		RollbarToken:       v.GetString("rollbarToken"),
		Locale:             v.GetString("locale"),
		JWTExpirationDelta: v.GetDuration("jwtExpirationDelta"),
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Address:         v.GetString("server.address"),
			DebugHost:       v.GetString("server.debugHost"),
			DisableReqLogs:  v.GetBool("server.disableReqLogs"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
		},
		Database: DatabaseConfig{
			Engine:        strings.ToLower(v.GetString("database.engine")),
			Host:          v.GetString("database.host"),
			Port:          v.GetString("database.port"),
			Name:          v.GetString("database.name"),
			User:          v.GetString("database.user"),
			Password:      v.GetString("database.password"),
			AdminUser:     v.GetString("database.adminUser"),
			AdminPassword: v.GetString("database.adminPassword"),
			DisableTLS:    v.GetBool("database.disableTLS"),
			Path:          v.GetString("database.path"),
		},
	}
	if err := conf.check(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) check() error {
	switch c.Database.Engine {
	case EnginePostgres, EngineSQLite:
	default:
		return errors.Errorf("unsupported database engine %q", c.Database.Engine)
	}
	if c.SecretKey == "" {
		return errors.New("secretKey must not be empty")
	}
	if c.JWTExpirationDelta <= 0 {
		return errors.New("jwtExpirationDelta must be positive")
	}
	return nil
}

// NewTestConfig returns a Config suited for tests: debug off, in-memory SQLite.
func NewTestConfig() *Config {
	return &Config{
		AppName:            "E-Dashboard Laporan Homeroom",
		Env:                "TEST",
		Build:              "test",
		TestMode:           true,
		SecretKey:          "test-secret",
		Locale:             "ms-MY",
		JWTExpirationDelta: time.Hour,
		Server:             ServerConfig{Host: "localhost", DisableReqLogs: true, ShutdownTimeout: time.Second},
		Database:           DatabaseConfig{Engine: EngineSQLite, Path: ":memory:"},
	}
}
