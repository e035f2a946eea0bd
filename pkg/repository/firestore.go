package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/partner-agent/invitecheck/pkg/domain/interfaces"
	"github.com/partner-agent/invitecheck/pkg/domain/model"
	"github.com/partner-agent/invitecheck/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// DefaultChecksCollection is the collection check records are stored in
	DefaultChecksCollection = "invitation_checks"

	fieldCheckedAt = "checked_at"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client     *firestore.Client
	collection string
}

// FirestoreOption configures a Firestore repository
type FirestoreOption func(*Firestore)

// WithCollection stores check records in the named collection
func WithCollection(name string) FirestoreOption {
	return func(f *Firestore) {
		if name != "" {
			f.collection = name
		}
	}
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string, opts ...FirestoreOption) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	repo := &Firestore{collection: DefaultChecksCollection}
	for _, opt := range opts {
		opt(repo)
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on bad credentials or project; an empty collection is fine
	_, err = client.Collection(repo.collection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
		"collection", repo.collection,
	)

	repo.client = client
	return repo, nil
}

// SaveCheck saves a check record to Firestore
func (f *Firestore) SaveCheck(ctx context.Context, record *model.CheckRecord) error {
	if record == nil {
		return goerr.New("check record is nil")
	}
	if err := record.Validate(); err != nil {
		return goerr.Wrap(err, "invalid check record")
	}

	_, err := f.client.Collection(f.collection).Doc(record.ID.String()).Set(ctx, record)
	if err != nil {
		return goerr.Wrap(err, "failed to save check to firestore", goerr.V("id", record.ID))
	}
	return nil
}

// GetCheck retrieves a check record by ID
func (f *Firestore) GetCheck(ctx context.Context, id types.CheckID) (*model.CheckRecord, error) {
	if id == "" {
		return nil, goerr.New("check ID is empty")
	}

	doc, err := f.client.Collection(f.collection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrCheckNotFound, "check not in firestore",
				goerr.T(model.ErrTagNotFound),
				goerr.V("id", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get check from firestore", goerr.V("id", id))
	}

	var record model.CheckRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode check", goerr.V("id", id))
	}
	return &record, nil
}

// ListChecks lists check records, newest first
func (f *Firestore) ListChecks(ctx context.Context, limit int) ([]*model.CheckRecord, error) {
	query := f.client.Collection(f.collection).OrderBy(fieldCheckedAt, firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	records := []*model.CheckRecord{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate checks")
		}

		var record model.CheckRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, goerr.Wrap(err, "failed to decode check", goerr.V("docID", doc.Ref.ID))
		}
		records = append(records, &record)
	}
	return records, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}
