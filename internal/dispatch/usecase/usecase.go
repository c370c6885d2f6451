package usecase

import (
	"context"

	"github.com/shandysiswandi/gomailer/internal/dispatch/entity"
	"github.com/shandysiswandi/gomailer/internal/dispatch/outbound/email"
	"github.com/shandysiswandi/gomailer/internal/pkg/clock"
	"github.com/shandysiswandi/gomailer/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailer/internal/pkg/uid"
	"github.com/shandysiswandi/gomailer/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoMail interface {
	GetEmailService(ctx context.Context, key string) email.Resolution
}

type Usecase struct {
	resolvers map[entity.Strategy]repoMail
	uuid      uid.StringID
	clock     clock.Clocker
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	Locator    repoMail
	Factory    repoMail
	UUID       uid.StringID
	Clock      clock.Clocker
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func NewDispatch(dep Dependency) *Usecase {
	return &Usecase{
		resolvers: map[entity.Strategy]repoMail{
			entity.StrategyLocator: dep.Locator,
			entity.StrategyFactory: dep.Factory,
		},
		uuid:      dep.UUID,
		clock:     dep.Clock,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("dispatch.usecase").Start(ctx, name)
}
