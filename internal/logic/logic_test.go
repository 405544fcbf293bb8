package logic_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gopad/internal/config"
	"github.com/idelchi/gopad/internal/fileutil"
	"github.com/idelchi/gopad/internal/logic"
	"github.com/idelchi/gopad/internal/pad"
)

// writeFixtures creates an input and a key file in dir and returns their paths.
func writeFixtures(t *testing.T, dir string, input, key []byte) (string, string) {
	t.Helper()

	inputPath := filepath.Join(dir, "input.bin")
	keyPath := filepath.Join(dir, "key.key")

	require.NoError(t, os.WriteFile(inputPath, input, 0o600))
	require.NoError(t, os.WriteFile(keyPath, key, 0o600))

	return inputPath, keyPath
}

func TestRunNewFileMode(t *testing.T) {
	dir := t.TempDir()

	input := []byte("plain content")
	key := []byte("a key comfortably longer than the input")
	inputPath, keyPath := writeFixtures(t, dir, input, key)
	outputPath := filepath.Join(dir, "output.bin")

	cfg := &config.Config{
		KeyFile: keyPath,
		Input:   inputPath,
		Output:  outputPath,
		Quiet:   true,
	}

	require.NoError(t, logic.Run(cfg))

	expected, err := pad.Combine(input, key)
	require.NoError(t, err)

	got, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, expected, got)

	// The input file is only read in this mode.
	original, err := os.ReadFile(inputPath)
	require.NoError(t, err)
	assert.Equal(t, input, original)
}

func TestRunReplaceInPlaceRoundTrip(t *testing.T) {
	dir := t.TempDir()

	input := []byte("replace me in place")
	key := []byte("pad key that covers the whole input easily")
	inputPath, keyPath := writeFixtures(t, dir, input, key)

	cfg := &config.Config{
		KeyFile: keyPath,
		Input:   inputPath,
		Over:    true,
		Quiet:   true,
	}

	require.NoError(t, logic.Run(cfg))

	expected, err := pad.Combine(input, key)
	require.NoError(t, err)

	got, err := os.ReadFile(inputPath)
	require.NoError(t, err)
	assert.Equal(t, expected, got)

	// A second run with the same key restores the original.
	require.NoError(t, logic.Run(cfg))

	restored, err := os.ReadFile(inputPath)
	require.NoError(t, err)
	assert.Equal(t, input, restored)
}

func TestRunKeyTooShort(t *testing.T) {
	dir := t.TempDir()

	input := []byte("an input longer than its key")
	key := []byte("tiny")
	inputPath, keyPath := writeFixtures(t, dir, input, key)
	outputPath := filepath.Join(dir, "output.bin")

	cfg := &config.Config{
		KeyFile: keyPath,
		Input:   inputPath,
		Output:  outputPath,
		Quiet:   true,
	}

	err := logic.Run(cfg)

	var keyErr *pad.KeyTooShortError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, len(key), keyErr.KeyLen)
	assert.Equal(t, len(input), keyErr.InputLen)

	_, statErr := os.Stat(outputPath)
	assert.ErrorIs(t, statErr, os.ErrNotExist, "no write may happen after a short-key rejection")
}

func TestRunMissingKeyFile(t *testing.T) {
	dir := t.TempDir()

	inputPath := filepath.Join(dir, "input.bin")
	require.NoError(t, os.WriteFile(inputPath, []byte("content"), 0o600))

	keyPath := filepath.Join(dir, "missing.key")

	cfg := &config.Config{
		KeyFile: keyPath,
		Input:   inputPath,
		Output:  filepath.Join(dir, "output.bin"),
		Quiet:   true,
	}

	err := logic.Run(cfg)

	var readErr *fileutil.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, keyPath, readErr.Path)
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()

	keyPath := filepath.Join(dir, "key.key")
	require.NoError(t, os.WriteFile(keyPath, []byte("key"), 0o600))

	inputPath := filepath.Join(dir, "missing.bin")

	cfg := &config.Config{
		KeyFile: keyPath,
		Input:   inputPath,
		Output:  filepath.Join(dir, "output.bin"),
		Quiet:   true,
	}

	err := logic.Run(cfg)

	var readErr *fileutil.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, inputPath, readErr.Path)
}
