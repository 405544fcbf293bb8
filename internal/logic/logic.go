// Package logic implements the core flow: read input and key, combine,
// and persist through the selected write strategy.
package logic

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/gopad/internal/config"
	"github.com/idelchi/gopad/internal/fileutil"
	"github.com/idelchi/gopad/internal/pad"
)

// Run is the main logic of the application.
//
// Both the input and the key are buffered in full before combining, so peak
// memory is roughly input size plus key size. Fine for the pad-sized files
// this tool targets.
func Run(cfg *config.Config) error {
	start := time.Now()

	input, err := fileutil.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	key, err := fileutil.ReadFile(cfg.KeyFile)
	if err != nil {
		return fmt.Errorf("reading key: %w", err)
	}

	combined, err := pad.Combine(input, key)
	if err != nil {
		return fmt.Errorf("combining %q with key %q: %w", cfg.Input, cfg.KeyFile, err)
	}

	outPath := cfg.Output

	if cfg.Over {
		outPath = cfg.Input
		err = fileutil.ReplaceInPlace(cfg.Input, combined)
	} else {
		err = fileutil.WriteFile(cfg.Output, combined)
	}

	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if !cfg.Quiet {
		fmt.Printf("Processed %q -> %q\n", cfg.Input, outPath) //nolint:forbidigo
	}

	if cfg.Stats {
		printStats(len(combined), time.Since(start))
	}

	return nil
}

// printStats prints the processed byte count and elapsed time.
func printStats(written int, elapsed time.Duration) {
	fmt.Printf("Wrote %s in %s\n", humanize.Bytes(uint64(written)), elapsed.Round(time.Microsecond)) //nolint:forbidigo,gosec
}
