package app

import (
	"github.com/shandysiswandi/gomailer/internal/dispatch"
)

func (a *App) initModules() error {
	runner, err := dispatch.New(dispatch.Dependency{
		Config:     a.config,
		Instrument: a.ins,
		UUID:       a.uuid,
		Clock:      a.clock,
		Validator:  a.validator,
		Locator:    a.locator,
		Factory:    a.factory,
	})
	if err != nil {
		return err
	}

	a.runner = runner
	return nil
}
