package config

import (
	"errors"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
)

const (
	DefaultFormat  = "json"
	DefaultIndent  = 4
	DefaultTimeout = 30 * time.Second
)

func Formats() []string {
	return []string{"json", "yaml", "table", "markdown", "html"}
}

type Config struct {
	Output    string        `koanf:"output"`
	Format    string        `koanf:"format"  validate:"omitempty,oneof=json yaml table markdown html"`
	Indent    int           `koanf:"indent"  validate:"gte=0,lte=8"`
	Strict    bool          `koanf:"strict"`
	Exclude   []string      `koanf:"exclude" validate:"dive,required,glob_pattern"`
	Timeout   time.Duration `koanf:"timeout" validate:"gte=0"`
	ConfigDir string        `koanf:"-"`
}

// Default returns the settings used when no config file is found.
func Default() *Config {
	return &Config{
		Format:  DefaultFormat,
		Indent:  DefaultIndent,
		Timeout: DefaultTimeout,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("glob_pattern", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	})

	return v
}

func (c *Config) ApplyDefaults() {
	if c.Format == "" {
		c.Format = DefaultFormat
	}

	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
}

func (c *Config) Validate() error {
	valErr := newValidator().Struct(c)
	if valErr == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(valErr, &validationErrors) {
		return oops.
			Code("CONFIG_INVALID").
			Wrapf(valErr, "validating config")
	}

	return mapValidationError(c, validationErrors[0])
}

func mapValidationError(c *Config, fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())

	switch {
	case fe.Tag() == "oneof" && field == "format":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "format").
			With("value", c.Format).
			Hint("Supported formats: " + strings.Join(Formats(), ", ")).
			Errorf("unknown output format %q", c.Format)

	case field == "indent":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "indent").
			With("value", c.Indent).
			Hint("Set indent between 0 and 8").
			Errorf("invalid indent %d", c.Indent)

	case fe.Tag() == "glob_pattern" || strings.HasPrefix(field, "exclude"):
		return oops.
			Code("CONFIG_INVALID").
			With("field", "exclude").
			With("value", fe.Value()).
			Hint("Exclude entries must be valid glob patterns").
			Errorf("invalid exclude pattern %q", fe.Value())

	case field == "timeout":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "timeout").
			Hint(`Use a non-negative duration such as "30s"`).
			Errorf("invalid timeout %s", c.Timeout)

	default:
		return oops.
			Code("CONFIG_INVALID").
			With("field", field).
			With("tag", fe.Tag()).
			Errorf("validation failed for field %q", field)
	}
}
