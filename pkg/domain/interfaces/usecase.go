package interfaces

import (
	"context"

	"github.com/partner-agent/invitecheck/pkg/domain/model"
	"github.com/partner-agent/invitecheck/pkg/domain/types"
)

// Invitation defines invitation check operations
type Invitation interface {
	// CheckInvitation resolves and classifies the invitation behind a URL.
	// It returns (nil, nil) when the URL holds no usable invitation and no error.
	CheckInvitation(ctx context.Context, invitationURL string) (*model.CheckInvitationResult, error)

	// GetCheck returns a recorded check
	GetCheck(ctx context.Context, id types.CheckID) (*model.CheckRecord, error)

	// ListChecks returns recent checks, newest first
	ListChecks(ctx context.Context, limit int) ([]*model.CheckRecord, error)
}

// Notifier delivers invitation events to an outside channel
type Notifier interface {
	Notify(ctx context.Context, event model.Event) error
}
