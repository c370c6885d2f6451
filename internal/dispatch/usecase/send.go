package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gomailer/internal/dispatch/entity"
	"github.com/shandysiswandi/gomailer/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailer/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailer/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type SendInput struct {
	Strategy   string `validate:"oneof=locator factory"`
	ServiceKey string
	Message    string
}

type SendOutput struct {
	CorrelationID string
	Variant       mail.Variant
	Fallback      bool
}

// Send resolves a sender for in.ServiceKey, binds it to a Mailer and sends
// in.Message once. Unknown service keys are served by the Mock sender.
func (s *Usecase) Send(ctx context.Context, in SendInput) (SendOutput, error) {
	cID := instrument.GetCorrelationID(ctx)
	if cID == "" {
		cID = s.uuid.Generate()
		ctx = instrument.SetCorrelationID(ctx, cID)
	}

	ctx, span := s.startSpan(ctx, "Send")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "validation failed", "strategy", in.Strategy, "error", err)
		span.SetStatus(codes.Error, err.Error())
		return SendOutput{}, goerror.NewInvalidInput(err)
	}

	strategy := entity.StrategyFromString(in.Strategy)
	resolver, ok := s.resolvers[strategy]
	if !ok || resolver == nil {
		slog.ErrorContext(ctx, "no resolver registered", "strategy", strategy.String())
		span.SetStatus(codes.Error, "no resolver registered")
		return SendOutput{}, goerror.NewServer(nil)
	}

	start := s.clock.Now()
	res := resolver.GetEmailService(ctx, in.ServiceKey)
	if res.Fallback {
		slog.WarnContext(ctx, "unknown service key, falling back to mock sender",
			"service_key", in.ServiceKey, "strategy", strategy.String())
	}

	mailer, err := mail.NewMailer(res.Sender)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build mailer", "strategy", strategy.String(), "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return SendOutput{}, goerror.NewServer(err)
	}

	mailer.SendMessage(in.Message)

	span.SetAttributes(
		attribute.String("mail.strategy", strategy.String()),
		attribute.String("mail.variant", res.Variant.String()),
	)
	slog.InfoContext(ctx, "email dispatched",
		"strategy", strategy.String(),
		"service_key", in.ServiceKey,
		"variant", res.Variant.String(),
		"fallback", res.Fallback,
		"elapsed", s.clock.Since(start).String(),
	)

	return SendOutput{
		CorrelationID: cID,
		Variant:       res.Variant,
		Fallback:      res.Fallback,
	}, nil
}
