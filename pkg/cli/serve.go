package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/partner-agent/invitecheck/pkg/cli/config"
	controller "github.com/partner-agent/invitecheck/pkg/controller/http"
	"github.com/partner-agent/invitecheck/pkg/service/metrics"
	"github.com/partner-agent/invitecheck/pkg/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		resolverCfg  config.Resolver
		slackCfg     config.Slack
		firestoreCfg config.Firestore
	)

	flags := collectFlags(
		&serverCfg,
		&resolverCfg,
		&slackCfg,
		&firestoreCfg,
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting invitecheck server",
				slog.Any("server", serverCfg),
				slog.Any("resolver", resolverCfg),
				slog.Any("slack", slackCfg),
				slog.Any("firestore", firestoreCfg),
			)

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			m, err := metrics.New(registry)
			if err != nil {
				return err
			}

			dispatcher := usecase.NewDispatcher()
			notifier, err := slackCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Slack notifier")
			}
			if notifier != nil {
				dispatcher.Subscribe(notifier)
			}

			invitationUC := usecase.NewInvitation(repo, resolverCfg.Configure(), usecase.NewInvitationConfig(
				usecase.WithDispatcher(dispatcher),
				usecase.WithMetrics(m),
			))

			server := controller.NewServer(ctx, serverCfg.Addr, invitationUC, registry)

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}
			if err := dispatcher.Wait(shutdownCtx); err != nil {
				logger.Warn("Pending invitation events were dropped", "error", err)
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
