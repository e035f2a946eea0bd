package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	slackSvc "github.com/partner-agent/invitecheck/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack notification configuration
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for posting invitation events",
			Category:    "Slack",
			Sources:     cli.EnvVars("INVITECHECK_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID that receives invitation events",
			Category:    "Slack",
			Sources:     cli.EnvVars("INVITECHECK_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// Configure creates the Slack notifier. It returns nil when Slack is not
// configured.
func (s *Slack) Configure(ctx context.Context) (*slackSvc.Notifier, error) {
	logger := ctxlog.From(ctx)

	if s.OAuthToken == "" && s.ChannelID == "" {
		logger.Info("Slack not configured, invitation events will not be posted")
		return nil, nil
	}
	if !s.IsConfigured() {
		return nil, goerr.New("both --slack-oauth-token and --slack-channel are required for Slack notifications",
			goerr.V("has_oauth_token", s.OAuthToken != ""),
			goerr.V("has_channel", s.ChannelID != ""),
		)
	}

	svc := slackSvc.New(s.OAuthToken)
	auth, err := svc.AuthTestContext(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("Slack notifier configured",
		"team", auth.Team,
		"bot_user", auth.User,
		"channel", s.ChannelID,
	)

	return slackSvc.NewNotifier(svc, s.ChannelID), nil
}

// IsConfigured checks if Slack notifications are configured
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
