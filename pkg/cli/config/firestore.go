package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/partner-agent/invitecheck/pkg/domain/interfaces"
	"github.com/partner-agent/invitecheck/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Firestore selects where check history is kept
type Firestore struct {
	ProjectID  string
	DatabaseID string
	Collection string
}

// Flags returns CLI flags for the check history store
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore check history (memory when empty)",
			Category:    "History",
			Sources:     cli.EnvVars("INVITECHECK_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "History",
			Value:       "(default)",
			Sources:     cli.EnvVars("INVITECHECK_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Firestore collection for check records",
			Category:    "History",
			Value:       repository.DefaultChecksCollection,
			Sources:     cli.EnvVars("INVITECHECK_FIRESTORE_COLLECTION"),
			Destination: &f.Collection,
		},
	}
}

// Configure opens the check history repository. Without a project, history
// lives in memory and is lost on shutdown.
func (f *Firestore) Configure(ctx context.Context) (interfaces.Repository, error) {
	if !f.IsConfigured() {
		ctxlog.From(ctx).Warn("Check history is kept in memory; set --firestore-project to persist it")
		return repository.NewMemory(), nil
	}

	repo, err := repository.NewFirestore(ctx, f.ProjectID, f.DatabaseID,
		repository.WithCollection(f.Collection),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open check history",
			goerr.V("project", f.ProjectID),
			goerr.V("database", f.DatabaseID),
			goerr.V("collection", f.Collection),
		)
	}
	return repo, nil
}

// IsConfigured reports whether history goes to Firestore
func (f *Firestore) IsConfigured() bool {
	return f.ProjectID != ""
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	if !f.IsConfigured() {
		return slog.GroupValue(slog.String("backend", "memory"))
	}
	return slog.GroupValue(
		slog.String("backend", "firestore"),
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
		slog.String("collection", f.Collection),
	)
}
