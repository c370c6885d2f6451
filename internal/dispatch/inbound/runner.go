package inbound

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gomailer/internal/dispatch/entity"
	"github.com/shandysiswandi/gomailer/internal/dispatch/usecase"
	"github.com/shandysiswandi/gomailer/internal/pkg/config"
)

// Runner sends the dispatches declared under the "mail" configuration block.
type Runner struct {
	cfg config.Config
	uc  uc
}

func NewRunner(cfg config.Config, uc uc) *Runner {
	return &Runner{cfg: cfg, uc: uc}
}

// Run executes the locator dispatch and then the factory dispatch, skipping
// the ones whose enabled flag is off. It stops at the first failure.
func (r *Runner) Run(ctx context.Context) error {
	dispatches := []struct {
		strategy entity.Strategy
		prefix   string // configuration block
	}{
		{strategy: entity.StrategyLocator, prefix: "mail.locator"},
		{strategy: entity.StrategyFactory, prefix: "mail.factory"},
	}

	for _, d := range dispatches {
		if !r.cfg.GetBool(d.prefix + ".enabled") {
			slog.DebugContext(ctx, "dispatch disabled", "strategy", d.strategy.String())
			continue
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := r.uc.Send(ctx, usecase.SendInput{
			Strategy:   d.strategy.String(),
			ServiceKey: r.cfg.GetString(d.prefix + ".service_key"),
			Message:    r.cfg.GetString(d.prefix + ".message"),
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to run dispatch", "strategy", d.strategy.String(), "error", err)
			return err
		}

		slog.DebugContext(ctx, "dispatch finished", "strategy", d.strategy.String(), "cid", out.CorrelationID)
	}

	return nil
}
