package mail

import (
	"io"
	"slices"

	"github.com/samber/lo"
)

var _ Resolver = (*Locator)(nil)

// Locator resolves senders from a table built once at construction.
//
// Every lookup of the same key returns the same *Service. The table is never
// written after NewLocator returns, so a Locator can be shared freely.
type Locator struct {
	services map[string]*Service
	fallback *Service
}

// NewLocator builds the SMTP, SendGrid and Mock senders, all writing to out.
func NewLocator(out io.Writer) *Locator {
	services := make(map[string]*Service, len(Variants))
	for _, v := range Variants {
		services[v.String()] = NewService(v, out)
	}

	return &Locator{
		services: services,
		fallback: services[KeyMock],
	}
}

// GetEmailService returns the registered sender for key or the Mock sender.
func (l *Locator) GetEmailService(key string) Sender {
	return l.Service(key)
}

// Service is GetEmailService returning the concrete type.
func (l *Locator) Service(key string) *Service {
	if svc, ok := l.services[key]; ok {
		return svc
	}

	return l.fallback
}

// Keys returns the registered service keys in sorted order.
func (l *Locator) Keys() []string {
	keys := lo.Keys(l.services)
	slices.Sort(keys)

	return keys
}
