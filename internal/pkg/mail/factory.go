package mail

import "io"

var _ Resolver = (*Factory)(nil)

// Factory builds a new sender on every lookup.
type Factory struct {
	out io.Writer
}

// NewFactory returns a Factory whose senders write to out.
func NewFactory(out io.Writer) *Factory {
	return &Factory{out: out}
}

// GetEmailService constructs the sender for key, or a Mock sender for unknown keys.
func (f *Factory) GetEmailService(key string) Sender {
	return f.Service(key)
}

// Service is GetEmailService returning the concrete type.
func (f *Factory) Service(key string) *Service {
	return NewService(ParseVariant(key), f.out)
}
