package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedContent is returned when decrypted content cannot be
	// parsed into the typed payload its item_type promises.
	ErrMalformedContent = errors.New("malformed item content")

	// ErrUnknownItemType is returned for item_type tags outside the
	// supported tagged union. Unknown tags are rejected, never guessed.
	ErrUnknownItemType = errors.New("unknown item type")

	// ErrMissingItemKey is returned when encryption is attempted for a
	// decrypted item that carries no plaintext item key.
	ErrMissingItemKey = errors.New("decrypted item has no item key")
)

// ValidationError reports an EncryptedItem whose required ciphertext
// field is empty. It names the offending field so callers get a precise
// error instead of a generic decryption failure.
type ValidationError struct {
	// Field is the name of the missing encrypted field.
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid encrypted item: missing %s", e.Field)
}
