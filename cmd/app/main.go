package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/osse101/ItemRandomizer_Go/internal/bootstrap"
	"github.com/osse101/ItemRandomizer_Go/internal/config"
	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/randomizer"
	"github.com/osse101/ItemRandomizer_Go/internal/server"
)

func main() {
	previewScenario := flag.String("preview", "", "Print what -strategy does to this scenario's pool and exit")
	previewStrategy := flag.String("strategy", string(randomizer.KindDefaultWorld), "Strategy used by -preview")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment validation failed, continuing with defaults", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.InitializeApp(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize", "error", err)
		os.Exit(1)
	}

	if *previewScenario != "" {
		if err := runPreview(ctx, os.Stdout, app.Service, *previewScenario, *previewStrategy); err != nil {
			slog.Error("Preview failed", "error", err)
			os.Exit(1)
		}
		return
	}

	srv := server.NewServer(cfg.Addr(), cfg.Version, app.Service)
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Service: app.Service,
	})
}

// runPreview prints one row per pool slot
func runPreview(ctx context.Context, out io.Writer, svc *randomizer.Service, scenario, strategy string) error {
	kind, err := randomizer.ParseKind(strategy)
	if err != nil {
		return err
	}

	preview, err := svc.Preview(ctx, domain.Scenario(scenario), kind)
	if err != nil {
		return err
	}

	catalog := svc.Catalog()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tSOURCE\tRESULT\t")
	for _, slot := range preview.Slots {
		marker := ""
		if slot.Source != slot.Result {
			marker = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", slot.Position, catalog.Describe(slot.Source), catalog.Describe(slot.Result), marker)
	}
	fmt.Fprintf(tw, "\n%s / %s: %d of %d slots changed\n", preview.Scenario, preview.Strategy, preview.Changed, len(preview.Slots))
	return tw.Flush()
}
