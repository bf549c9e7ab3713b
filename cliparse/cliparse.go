package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port            int           `envconfig:"PORT"             default:"3001"`
	DatabaseURL     string        `envconfig:"DATABASE_URL"     default:"file:voting.db"`
	DatabaseType    string        `envconfig:"DATABASE_TYPE"    default:"sqlite"`
	AdminKey        string        `envconfig:"ADMIN_KEY"`
	PublicDir       string        `envconfig:"PUBLIC_DIR"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	Debug           bool          `envconfig:"DEBUG"`

	// GenAdminKey prints a fresh admin key and exits
	GenAdminKey bool `ignored:"true"`
}

// ParseFlags builds the config from .env, the environment, then CLI flags (highest precedence)
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	flags := flag.NewFlagSet("quickvote", flag.ContinueOnError)

	// Env values become flag defaults so unset flags keep them
	flags.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	flags.StringVar(&cfg.AdminKey, "admin-key", cfg.AdminKey, "Admin key for roster and audit endpoints (prefer env)")
	flags.StringVar(&cfg.PublicDir, "public", cfg.PublicDir, "Directory of static ballot/admin pages")
	flags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")
	flags.BoolVar(&cfg.GenAdminKey, "gen-admin-key", false, "Print a new admin key and exit")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q (sqlite or postgres)", cfg.DatabaseType)
	}

	return cfg, nil
}
