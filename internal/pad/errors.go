package pad

import "fmt"

// KeyTooShortError is returned when the key cannot cover the input.
// A pad key is consumed strictly by position and never wrapped around,
// so a short key is a hard failure rather than a truncation.
type KeyTooShortError struct {
	KeyLen   int
	InputLen int
}

func (e *KeyTooShortError) Error() string {
	return fmt.Sprintf("key too short: key is %d bytes, input is %d bytes", e.KeyLen, e.InputLen)
}
