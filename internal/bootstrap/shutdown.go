package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ItemRandomizer_Go/internal/randomizer"
	"github.com/osse101/ItemRandomizer_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	Service *randomizer.Service
}

// GracefulShutdown stops the diagnostics server, then disables every
// randomizer so late host callbacks pass items through unchanged.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Service != nil {
		components.Service.DisableAll(ctx)
		slog.Info(LogMsgRandomizersDisabled)
	}

	slog.Info(LogMsgServerStopped)
}
