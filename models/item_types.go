package models

// ItemType is the discriminant of the vault item tagged union.
// The value determines how the decrypted content JSON must be interpreted.
// Unknown tags are rejected explicitly rather than structurally guessed.
type ItemType string

const (
	// Credential represents website/application login credentials.
	Credential ItemType = "credential"

	// BankCard represents payment card information.
	// All fields are considered highly sensitive and always encrypted.
	BankCard ItemType = "bank_card"

	// SecureNote represents arbitrary secret free-form text.
	SecureNote ItemType = "secure_note"
)

// Known reports whether t is one of the supported item types.
func (t ItemType) Known() bool {
	switch t {
	case Credential, BankCard, SecureNote:
		return true
	default:
		return false
	}
}

// CredentialContent is the decrypted payload of a Credential item.
// It is serialized to JSON and stored encrypted under the item key.
type CredentialContent struct {
	// Title is the human-readable display name of the item.
	Title string `json:"title"`

	// Username is the login identifier used for authentication.
	Username string `json:"username"`

	// Password is the secret credential associated with the username.
	Password string `json:"password"`

	// URL is the resource where the credentials apply.
	URL string `json:"url,omitempty"`

	// Color is an optional UI accent color for the item.
	Color string `json:"color,omitempty"`
}

// BankCardContent is the decrypted payload of a BankCard item.
type BankCardContent struct {
	// Title is the human-readable display name of the item.
	Title string `json:"title"`

	// CardholderName is the name printed on the card.
	CardholderName string `json:"cardholderName"`

	// Number is the primary account number (PAN) of the card.
	Number string `json:"number"`

	// ExpMonth is the card expiration month.
	ExpMonth string `json:"expMonth"`

	// ExpYear is the card expiration year.
	ExpYear string `json:"expYear"`

	// Code is the card security code (CVV/CVC).
	Code string `json:"code"`

	// Color is an optional UI accent color for the item.
	Color string `json:"color,omitempty"`
}

// SecureNoteContent is the decrypted payload of a SecureNote item.
type SecureNoteContent struct {
	// Title is the human-readable display name of the item.
	Title string `json:"title"`

	// Text contains the note body.
	Text string `json:"text"`

	// Color is an optional UI accent color for the item.
	Color string `json:"color,omitempty"`
}
