package main

import (
	"context"
	"os"
	"time"

	"github.com/shandysiswandi/gomailer/internal/app"
)

func main() {
	application := app.New()
	runErr := application.Run()

	// Flush telemetry and close resources before exiting.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	application.Stop(ctx)
	cancel()

	if code := app.ExitCode(runErr); code != 0 {
		os.Exit(code)
	}
}
