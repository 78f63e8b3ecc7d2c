package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

type Runner func(ctx context.Context) error

// Run executes a service body under a signal-aware context and maps its
// outcome to a process exit code. The runner is expected to finish its own
// graceful shutdown before returning once the context is cancelled.
func Run(serviceName string, run Runner) int {
	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", serviceName).Logger()
	log.Info().Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Error().Err(err).Msg("failed")
		return 1
	}
	log.Info().Msg("stopped")
	return 0
}
