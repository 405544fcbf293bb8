package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrUsage marks configuration failures caused by the command invocation
// shape rather than by file contents or I/O.
var ErrUsage = errors.New("usage error")

// Config holds the runtime configuration for a single invocation.
type Config struct {
	// Common flags
	KeyFile string `mapstructure:"key-file" validate:"required"`
	Over    bool
	Quiet   bool
	Stats   bool

	// Positional arguments
	Input  string `validate:"required"`
	Output string
}

// Validate validates the configuration against the struct tags and the
// destination-mode shape: an output path is required exactly when not
// overwriting in place.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	switch {
	case c.Over && c.Output != "":
		return fmt.Errorf("%w: replace-in-place mode takes no output file", ErrUsage)
	case !c.Over && c.Output == "":
		return fmt.Errorf("%w: an output file is required unless --over is given", ErrUsage)
	}

	return nil
}
