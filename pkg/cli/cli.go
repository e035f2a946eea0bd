package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/partner-agent/invitecheck/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=..."
var Version = "dev"

const description = `Resolves connection invitation URLs (c_i, d_m or oob query
parameters, or one redirect hop from a short link), decodes the invitation
block and reports whether it can be used to establish a connection.

Logs are written to stderr; "check" prints its result to stdout.`

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger

	app := &cli.Command{
		Name:        "invitecheck",
		Usage:       "Resolve and validate agent connection invitation URLs",
		Description: description,
		Version:     Version,
		Flags:       loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, goerr.Wrap(err, "invalid logger configuration")
			}

			slog.SetDefault(logger)
			logger.Debug("invitecheck starting",
				slog.String("version", Version),
				slog.Any("logger", loggerCfg),
			)
			return ctxlog.With(ctx, logger), nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdCheck(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
