// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-vault-core/internal/crypto"
	"github.com/MKhiriev/go-vault-core/internal/logger"
	"github.com/MKhiriev/go-vault-core/models"
)

type itemCodec struct {
	keychain crypto.KeyChain
	logger   *logger.Logger
}

// NewItemCodec constructs an [ItemCodec] backed by the given keychain.
func NewItemCodec(keychain crypto.KeyChain, logger *logger.Logger) ItemCodec {
	return &itemCodec{keychain: keychain, logger: logger}
}

// ValidateEncrypted implements [ItemCodec].
func (c *itemCodec) ValidateEncrypted(item models.EncryptedItem) error {
	if item.ContentEncrypted == "" {
		return &ValidationError{Field: "content_encrypted"}
	}
	if item.ItemKeyEncrypted == "" {
		return &ValidationError{Field: "item_key_encrypted"}
	}
	if !item.Type.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownItemType, item.Type)
	}
	return nil
}

// EncryptItem implements [ItemCodec].
func (c *itemCodec) EncryptItem(secretKey []byte, item models.DecryptedItem) (models.EncryptedItem, error) {
	if len(item.ItemKey) == 0 {
		return models.EncryptedItem{}, ErrMissingItemKey
	}

	plaintext, err := marshalContent(item)
	if err != nil {
		return models.EncryptedItem{}, err
	}

	contentEncrypted, err := c.keychain.EncryptData(item.ItemKey, string(plaintext))
	if err != nil {
		return models.EncryptedItem{}, fmt.Errorf("encrypt content: %w", err)
	}

	// The item key itself travels base64-encoded inside its wrapping blob.
	itemKeyEncrypted, err := c.keychain.EncryptData(secretKey, base64.StdEncoding.EncodeToString(item.ItemKey))
	if err != nil {
		return models.EncryptedItem{}, fmt.Errorf("encrypt item key: %w", err)
	}

	return models.EncryptedItem{
		ID:               item.ID,
		Type:             item.Type,
		ContentEncrypted: contentEncrypted,
		ItemKeyEncrypted: itemKeyEncrypted,
		CreatedAt:        item.CreatedAt,
		LastUsedAt:       item.LastUsedAt,
	}, nil
}

// DecryptItem implements [ItemCodec].
func (c *itemCodec) DecryptItem(secretKey []byte, item models.EncryptedItem) (models.DecryptedItem, error) {
	if err := c.ValidateEncrypted(item); err != nil {
		return models.DecryptedItem{}, err
	}

	itemKeyB64, err := c.keychain.DecryptData(secretKey, item.ItemKeyEncrypted)
	if err != nil {
		return models.DecryptedItem{}, fmt.Errorf("unwrap item key: %w", err)
	}
	itemKey, err := base64.StdEncoding.DecodeString(itemKeyB64)
	if err != nil {
		return models.DecryptedItem{}, fmt.Errorf("%w: item key is not base64: %v", ErrMalformedContent, err)
	}

	contentJSON, err := c.keychain.DecryptData(itemKey, item.ContentEncrypted)
	if err != nil {
		return models.DecryptedItem{}, fmt.Errorf("decrypt content: %w", err)
	}

	decrypted := models.DecryptedItem{
		ID:         item.ID,
		Type:       item.Type,
		ItemKey:    itemKey,
		CreatedAt:  item.CreatedAt,
		LastUsedAt: item.LastUsedAt,
	}
	if err := unmarshalContent(contentJSON, &decrypted); err != nil {
		return models.DecryptedItem{}, err
	}

	return decrypted, nil
}

// DecryptAll implements [ItemCodec]. Failures are best-effort per item:
// a record that fails validation or decryption is logged and excluded
// from the result, and the rest of the batch proceeds.
func (c *itemCodec) DecryptAll(secretKey []byte, items []models.EncryptedItem) []models.DecryptedItem {
	decrypted := make([]models.DecryptedItem, 0, len(items))

	for _, item := range items {
		d, err := c.DecryptItem(secretKey, item)
		if err != nil {
			c.logger.Warn().
				Err(err).
				Str("item_id", item.ID).
				Str("item_type", string(item.Type)).
				Msg("skipping undecryptable vault item")
			continue
		}
		decrypted = append(decrypted, d)
	}

	return decrypted
}

// marshalContent serializes the typed content matching item.Type.
// The switch is exhaustive over the tagged union.
func marshalContent(item models.DecryptedItem) ([]byte, error) {
	switch item.Type {
	case models.Credential:
		if item.Credential == nil {
			return nil, fmt.Errorf("%w: credential content is nil", ErrMalformedContent)
		}
		return json.Marshal(item.Credential)
	case models.BankCard:
		if item.Card == nil {
			return nil, fmt.Errorf("%w: bank card content is nil", ErrMalformedContent)
		}
		return json.Marshal(item.Card)
	case models.SecureNote:
		if item.Note == nil {
			return nil, fmt.Errorf("%w: secure note content is nil", ErrMalformedContent)
		}
		return json.Marshal(item.Note)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemType, item.Type)
	}
}

// unmarshalContent parses contentJSON into the typed pointer matching
// target.Type.
func unmarshalContent(contentJSON string, target *models.DecryptedItem) error {
	switch target.Type {
	case models.Credential:
		var content models.CredentialContent
		if err := json.Unmarshal([]byte(contentJSON), &content); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedContent, err)
		}
		target.Credential = &content
	case models.BankCard:
		var content models.BankCardContent
		if err := json.Unmarshal([]byte(contentJSON), &content); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedContent, err)
		}
		target.Card = &content
	case models.SecureNote:
		var content models.SecureNoteContent
		if err := json.Unmarshal([]byte(contentJSON), &content); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedContent, err)
		}
		target.Note = &content
	default:
		return fmt.Errorf("%w: %q", ErrUnknownItemType, target.Type)
	}
	return nil
}
