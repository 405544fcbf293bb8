// Package fileutil provides the file read/write helpers, including the
// atomic replace-in-place path used when overwriting a file with its
// combined content.
package fileutil

import (
	"os"
	"path/filepath"
)

// defaultMode is used for files created in new-file mode, matching the
// restrictive permissions of freshly written output.
const defaultMode = os.FileMode(0o600)

// syncFile is the durability barrier. Tests replace it to simulate a crash
// between writing the staging file and committing it to stable storage.
var syncFile = func(f *os.File) error { return f.Sync() }

// ReadFile reads path in full, wrapping failures in *ReadError.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the CLI invocation
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return data, nil
}

// WriteFile creates or truncates path and writes data in full.
// It is not atomic: a failure may leave path partially written, which is
// acceptable only because no prior content is being protected.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, defaultMode); err != nil {
		return &WriteError{Path: path, Step: "writing", Err: err}
	}

	return nil
}

// StagingPath returns the staging file path for target: same directory,
// hidden name derived from the base name. Keeping it in the target's
// directory guarantees the same filesystem, which the final rename needs
// to be atomic.
func StagingPath(target string) string {
	return filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+".gopad-tmp")
}

// ReplaceInPlace atomically replaces target's content with data.
//
// The new content is written to a staging file in the target's directory,
// synced to stable storage, and then renamed onto target. Until the rename,
// target is untouched; the rename itself is a single atomic filesystem
// operation, so any observer of target sees either the old content in full
// or the new content in full.
//
// On failure the staging file is never renamed. It may be left behind; a
// leftover from a crashed run is truncated on the next attempt because the
// staging path is deterministic and opened with O_TRUNC.
func ReplaceInPlace(target string, data []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return &WriteError{Path: target, Step: "stat target", Err: err}
	}

	staging := StagingPath(target)

	f, err := os.OpenFile(staging, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaultMode) //nolint:gosec // sibling of target
	if err != nil {
		return &WriteError{Path: staging, Step: "create staging", Err: err}
	}

	if _, err := f.Write(data); err != nil {
		f.Close() //nolint:errcheck,gosec // write error takes precedence

		return &WriteError{Path: staging, Step: "write staging", Err: err}
	}

	// Without the barrier the rename below could become durable while the
	// staged data is not, leaving a committed but empty target after a crash.
	if err := syncFile(f); err != nil {
		f.Close() //nolint:errcheck,gosec // sync error takes precedence

		return &WriteError{Path: staging, Step: "sync staging", Err: err}
	}

	if err := f.Close(); err != nil {
		return &WriteError{Path: staging, Step: "close staging", Err: err}
	}

	// Carry the target's permissions over so the replace is invisible
	// beyond the content change.
	if err := os.Chmod(staging, info.Mode().Perm()); err != nil {
		return &WriteError{Path: staging, Step: "chmod staging", Err: err}
	}

	if err := os.Rename(staging, target); err != nil {
		return &WriteError{Path: target, Step: "rename staging onto", Err: err}
	}

	return nil
}
