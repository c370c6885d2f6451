package inbound

import (
	"context"

	"github.com/shandysiswandi/gomailer/internal/dispatch/usecase"
)

type uc interface {
	Send(ctx context.Context, in usecase.SendInput) (usecase.SendOutput, error)
}
