package pad

// Combine XORs input against the first len(input) bytes of key and returns
// the result as a new slice. Excess key bytes are ignored; a key shorter than
// the input fails with *KeyTooShortError before any work is done.
//
// Combine is pure: it performs no I/O and never mutates its arguments.
func Combine(input, key []byte) ([]byte, error) {
	if len(key) < len(input) {
		return nil, &KeyTooShortError{KeyLen: len(key), InputLen: len(input)}
	}

	combined := make([]byte, len(input))

	for i, b := range input {
		combined[i] = b ^ key[i]
	}

	return combined, nil
}
