package config

import (
	"log/slog"
	"time"

	"github.com/partner-agent/invitecheck/pkg/service/invitation"
	"github.com/urfave/cli/v3"
)

// Resolver holds configuration of the invitation redirect probe
type Resolver struct {
	HTTPTimeout time.Duration
}

// Flags returns CLI flags for Resolver configuration
func (r *Resolver) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "http-timeout",
			Usage:       "Timeout of the single redirect lookup for invitation URLs",
			Category:    "Resolver",
			Value:       invitation.DefaultHTTPTimeout,
			Sources:     cli.EnvVars("INVITECHECK_HTTP_TIMEOUT"),
			Destination: &r.HTTPTimeout,
		},
	}
}

// Configure creates the invitation locator
func (r *Resolver) Configure() *invitation.Locator {
	return invitation.NewLocator(invitation.NewHTTPClient(r.HTTPTimeout))
}

// LogValue returns structured log value
func (r Resolver) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("http_timeout", r.HTTPTimeout),
	)
}
