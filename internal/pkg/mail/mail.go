package mail

import (
	"fmt"
	"io"
	"os"
)

// Sender is the capability of sending a message.
type Sender interface {
	// Send reports the message through the underlying provider. It never fails.
	Send(message string)
}

// Resolver picks a Sender by service key.
type Resolver interface {
	// GetEmailService returns the sender for key, or the Mock sender for unknown keys.
	GetEmailService(key string) Sender
}

// Service is a Sender bound to one Variant.
//
// It writes one line per Send to its writer and holds no other state.
type Service struct {
	variant Variant
	out     io.Writer
}

// NewService returns a Service for variant. A nil out writes to standard output.
func NewService(variant Variant, out io.Writer) *Service {
	if out == nil {
		out = os.Stdout
	}

	return &Service{variant: variant, out: out}
}

// Send writes the variant's diagnostic line for message.
func (s *Service) Send(message string) {
	//nolint:errcheck // sending is total, a failed diagnostic write is dropped
	fmt.Fprintln(s.out, s.variant.Format(message))
}

// Variant returns the variant the service was built for.
func (s *Service) Variant() Variant {
	return s.variant
}
