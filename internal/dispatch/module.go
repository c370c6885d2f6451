package dispatch

import (
	"github.com/shandysiswandi/gomailer/internal/dispatch/inbound"
	"github.com/shandysiswandi/gomailer/internal/dispatch/outbound/email"
	"github.com/shandysiswandi/gomailer/internal/dispatch/usecase"
	"github.com/shandysiswandi/gomailer/internal/pkg/clock"
	"github.com/shandysiswandi/gomailer/internal/pkg/config"
	"github.com/shandysiswandi/gomailer/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailer/internal/pkg/mail"
	"github.com/shandysiswandi/gomailer/internal/pkg/uid"
	"github.com/shandysiswandi/gomailer/internal/pkg/validator"
)

type Dependency struct {
	Config     config.Config
	Instrument instrument.Instrumentation
	UUID       uid.StringID
	Clock      clock.Clocker
	Validator  validator.Validator
	Locator    *mail.Locator
	Factory    *mail.Factory
}

func New(dep Dependency) (*inbound.Runner, error) {
	repoLocator, err := email.New("locator", dep.Locator, dep.Instrument)
	if err != nil {
		return nil, err
	}

	repoFactory, err := email.New("factory", dep.Factory, dep.Instrument)
	if err != nil {
		return nil, err
	}

	uc := usecase.NewDispatch(usecase.Dependency{
		Locator:    repoLocator,
		Factory:    repoFactory,
		UUID:       dep.UUID,
		Clock:      dep.Clock,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	})

	return inbound.NewRunner(dep.Config, uc), nil
}
