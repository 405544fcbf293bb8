package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gopad/internal/config"
	"github.com/idelchi/gopad/internal/logic"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "gopad [flags] input [output]",
		Short: "One-time-pad file utility",
		Long: `A one-time-pad utility that XORs a file with a key file.
Writes the result to a new file, or replaces the input atomically with --over.`,
		Version: version,
		Args:    shapeArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The argument shape has been validated by now; later failures are
			// runtime errors and should not be drowned in usage text.
			cmd.SilenceUsage = true

			viper.SetEnvPrefix("gopad")
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()

			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(_ *cobra.Command, args []string) error {
			// Unmarshal all config (from env vars and flags) into struct
			var cfg config.Config
			if err := viper.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("parsing config: %w", err)
			}

			cfg.Input = args[0]
			if len(args) > 1 {
				cfg.Output = args[1]
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return logic.Run(&cfg)
		},
	}

	root.Flags().BoolP("over", "o", false, "Replace the input file in place instead of writing a new file")
	root.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.Flags().Bool("stats", false, "Print bytes written and elapsed time")

	root.Flags().StringP("key-file", "f", "key.key", "Path to the key file (raw bytes, at least as long as the input)")

	return root
}

// shapeArgs enforces the two recognized invocation shapes before any file is
// touched: exactly one positional argument with --over, exactly two without.
// Rejections surface through cobra as a usage error with a non-zero exit.
func shapeArgs(cmd *cobra.Command, args []string) error {
	over, err := cmd.Flags().GetBool("over")
	if err != nil {
		return fmt.Errorf("reading --over flag: %w", err)
	}

	if over {
		if len(args) != 1 {
			return fmt.Errorf("%w: --over takes exactly one file, got %d arguments", config.ErrUsage, len(args))
		}

		return nil
	}

	if len(args) != 2 { //nolint:mnd
		return fmt.Errorf("%w: expected input and output files, got %d arguments", config.ErrUsage, len(args))
	}

	return nil
}
