// Package pad implements the one-time-pad combiner: a positional XOR of an
// input buffer against a key buffer that must cover it entirely.
// The operation is its own inverse, so the same call encrypts and decrypts.
package pad
