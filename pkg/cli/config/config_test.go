package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/partner-agent/invitecheck/pkg/cli/config"
	"github.com/partner-agent/invitecheck/pkg/repository"
	"github.com/urfave/cli/v3"
)

func TestLogger(t *testing.T) {
	cfg := config.Logger{Level: "debug", Format: "json"}
	logger, err := cfg.Configure()
	gt.NoError(t, err)
	gt.V(t, logger).NotNil()

	cfg = config.Logger{Level: "loud", Format: "json"}
	_, err = cfg.Configure()
	gt.Error(t, err)

	cfg = config.Logger{Level: "info", Format: "xml"}
	_, err = cfg.Configure()
	gt.Error(t, err)
}

func TestSlack(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		cfg := config.Slack{}
		notifier, err := cfg.Configure(ctx)
		gt.NoError(t, err)
		gt.Nil(t, notifier)
		gt.False(t, cfg.IsConfigured())
	})

	t.Run("token without channel", func(t *testing.T) {
		cfg := config.Slack{OAuthToken: "xoxb-test"}
		_, err := cfg.Configure(ctx)
		gt.Error(t, err)
	})

	t.Run("channel without token", func(t *testing.T) {
		cfg := config.Slack{ChannelID: "C0123456"}
		_, err := cfg.Configure(ctx)
		gt.Error(t, err)
	})
}

func TestFirestoreFallsBackToMemory(t *testing.T) {
	cfg := config.Firestore{}
	repo, err := cfg.Configure(context.Background())
	gt.NoError(t, err).Required()
	defer repo.Close()

	records, err := repo.ListChecks(context.Background(), 1)
	gt.NoError(t, err)
	gt.A(t, records).Length(0)
}

func TestFirestoreFlags(t *testing.T) {
	run := func(t *testing.T, args ...string) config.Firestore {
		t.Helper()
		var cfg config.Firestore
		cmd := &cli.Command{
			Name:   "test",
			Flags:  cfg.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error { return nil },
		}
		gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...))).Required()
		return cfg
	}

	t.Run("defaults", func(t *testing.T) {
		cfg := run(t)
		gt.False(t, cfg.IsConfigured())
		gt.Equal(t, cfg.DatabaseID, "(default)")
		gt.Equal(t, cfg.Collection, repository.DefaultChecksCollection)
		attrs := cfg.LogValue().Group()
		gt.A(t, attrs).Length(1)
		gt.Equal(t, attrs[0].Key, "backend")
		gt.Equal(t, attrs[0].Value.String(), "memory")
	})

	t.Run("collection override", func(t *testing.T) {
		cfg := run(t, "--firestore-project", "my-project", "--firestore-collection", "staging_checks")
		gt.True(t, cfg.IsConfigured())
		gt.Equal(t, cfg.Collection, "staging_checks")

		attrs := cfg.LogValue().Group()
		gt.A(t, attrs).Length(4)
		gt.Equal(t, attrs[3].Key, "collection")
		gt.Equal(t, attrs[3].Value.String(), "staging_checks")
	})
}

func TestResolver(t *testing.T) {
	cfg := config.Resolver{HTTPTimeout: 3 * time.Second}
	gt.V(t, cfg.Configure()).NotNil()
}
