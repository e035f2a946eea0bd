package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/partner-agent/invitecheck/pkg/domain/model"
	"github.com/partner-agent/invitecheck/pkg/domain/types"
)

// Repository defines the interface for check history persistence
type Repository interface {
	// SaveCheck stores a check record, replacing any record with the same ID
	SaveCheck(ctx context.Context, record *model.CheckRecord) error
	// GetCheck returns model.ErrCheckNotFound when the record does not exist
	GetCheck(ctx context.Context, id types.CheckID) (*model.CheckRecord, error)
	// ListChecks returns the newest records first. limit <= 0 means no limit.
	ListChecks(ctx context.Context, limit int) ([]*model.CheckRecord, error)

	// Close closes the repository connection
	Close() error
}
