package mail

import "fmt"

const (
	// KeySMTP selects the SMTP sender.
	KeySMTP = "SMTP"
	// KeySendGrid selects the SendGrid sender.
	KeySendGrid = "SendGrid"
	// KeyMock selects the Mock sender.
	KeyMock = "Mock"
)

// Variant identifies one sender behavior from a closed set.
//
// The zero value is VariantMock so an unset variant behaves as the default.
type Variant int

const (
	// VariantMock reports the message as not sent.
	VariantMock Variant = iota
	// VariantSMTP reports delivery through SMTP.
	VariantSMTP
	// VariantSendGrid reports delivery through SendGrid.
	VariantSendGrid
)

// Variants lists every variant in declaration order.
var Variants = []Variant{VariantMock, VariantSMTP, VariantSendGrid}

// LookupVariant resolves a service key using exact, case-sensitive matching.
// The second result is false when the key is unknown and VariantMock is returned.
func LookupVariant(key string) (Variant, bool) {
	switch key {
	case KeySMTP:
		return VariantSMTP, true
	case KeySendGrid:
		return VariantSendGrid, true
	case KeyMock:
		return VariantMock, true
	default:
		return VariantMock, false
	}
}

// ParseVariant resolves a service key, defaulting to VariantMock.
func ParseVariant(key string) Variant {
	v, _ := LookupVariant(key)
	return v
}

// String returns the service key of the variant.
func (v Variant) String() string {
	switch v {
	case VariantSMTP:
		return KeySMTP
	case VariantSendGrid:
		return KeySendGrid
	default:
		return KeyMock
	}
}

// Format renders the diagnostic line reported for message, without a trailing newline.
func (v Variant) Format(message string) string {
	switch v {
	case VariantSMTP:
		return fmt.Sprintf("Sending email via SMTP: %s", message)
	case VariantSendGrid:
		return fmt.Sprintf("Sending email via SendGrid: %s", message)
	default:
		return fmt.Sprintf("Mock email (not sent): %s", message)
	}
}
