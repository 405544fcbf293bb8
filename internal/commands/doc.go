// Package commands provides the command-line interface for the gopad tool.
//
// A single root command covers both invocation shapes:
//   - gopad input output: combine and write to a new file
//   - gopad --over input: combine and atomically replace the input
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands
