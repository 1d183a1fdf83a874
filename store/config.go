package store

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// DefaultTable is the table used when no WithTable option is given.
const DefaultTable = "uns_columns"

// Config holds the settings of a SQLiteStore.
type Config struct {
	// Table is the name of the columns table. It is interpolated into SQL,
	// hence the identifier check.
	Table string `validate:"required,max=64,sqlident"`

	Logger *slog.Logger `validate:"-"`
}

// Option configures a SQLiteStore.
type Option func(*Config)

// WithTable overrides the columns table name.
func WithTable(table string) Option {
	return func(c *Config) { c.Table = table }
}

// WithLogger sets the logger used for store operations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validate is a package-level singleton; validators cache struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("sqlident", func(fl validator.FieldLevel) bool {
		return identifierPattern.MatchString(fl.Field().String())
	})
	return v
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{Table: DefaultTable}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("store: config validation failed: %w", err)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg, nil
}
