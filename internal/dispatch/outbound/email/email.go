package email

import (
	"context"

	"github.com/shandysiswandi/gomailer/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailer/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Resolution is the outcome of one sender lookup.
type Resolution struct {
	Sender   mail.Sender
	Variant  mail.Variant
	Fallback bool
}

// Resolver records a span and a counter around a mail.Resolver lookup.
type Resolver struct {
	name        string
	client      mail.Resolver
	ins         instrument.Instrumentation
	resolutions metric.Int64Counter
}

// New wraps client; name identifies the strategy in telemetry.
func New(name string, client mail.Resolver, ins instrument.Instrumentation) (*Resolver, error) {
	counter, err := ins.Meter("dispatch.outbound.email").Int64Counter(
		"mail.resolutions",
		metric.WithDescription("Number of email sender lookups by strategy and variant."),
	)
	if err != nil {
		return nil, err
	}

	return &Resolver{name: name, client: client, ins: ins, resolutions: counter}, nil
}

// GetEmailService resolves the sender for key.
func (r *Resolver) GetEmailService(ctx context.Context, key string) Resolution {
	ctx, span := r.ins.Tracer("dispatch.outbound.email").Start(ctx, "GetEmailService")
	defer span.End()

	sender := r.client.GetEmailService(key)
	variant := mail.VariantMock
	if svc, ok := sender.(*mail.Service); ok {
		variant = svc.Variant()
	}
	fallback := variant.String() != key

	attrs := []attribute.KeyValue{
		attribute.String("mail.strategy", r.name),
		attribute.String("mail.variant", variant.String()),
		attribute.Bool("mail.fallback", fallback),
	}
	span.SetAttributes(append(attrs, attribute.String("mail.service_key", key))...)
	r.resolutions.Add(ctx, 1, metric.WithAttributes(attrs...))

	return Resolution{
		Sender:   sender,
		Variant:  variant,
		Fallback: fallback,
	}
}
