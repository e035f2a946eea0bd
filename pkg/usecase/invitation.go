package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/partner-agent/invitecheck/pkg/domain/interfaces"
	"github.com/partner-agent/invitecheck/pkg/domain/model"
	"github.com/partner-agent/invitecheck/pkg/domain/types"
	"github.com/partner-agent/invitecheck/pkg/service/invitation"
	"github.com/partner-agent/invitecheck/pkg/service/metrics"
)

// MsgInvalidInvitationURL is reported when the invitation URL itself is unusable
const MsgInvalidInvitationURL = "Invitation Url could not be decoded. Cannot determine invitation details."

const (
	// DefaultListLimit is used when a list request does not give a limit
	DefaultListLimit = 20
	// MaxListLimit caps the number of records a list request can return
	MaxListLimit = 100
)

// InvitationConfig holds optional collaborators of the Invitation use case
type InvitationConfig struct {
	dispatcher *Dispatcher
	metrics    *metrics.Metrics
	now        func() time.Time
}

// InvitationOption is a functional option for configuring Invitation
type InvitationOption func(*InvitationConfig)

// WithDispatcher publishes an event for every finished check
func WithDispatcher(dispatcher *Dispatcher) InvitationOption {
	return func(c *InvitationConfig) {
		c.dispatcher = dispatcher
	}
}

// WithMetrics records check outcomes
func WithMetrics(m *metrics.Metrics) InvitationOption {
	return func(c *InvitationConfig) {
		c.metrics = m
	}
}

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) InvitationOption {
	return func(c *InvitationConfig) {
		c.now = now
	}
}

// NewInvitationConfig creates an InvitationConfig with default values and optional settings
func NewInvitationConfig(opts ...InvitationOption) *InvitationConfig {
	config := &InvitationConfig{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// Invitation implements interfaces.Invitation
type Invitation struct {
	repo    interfaces.Repository
	locator *invitation.Locator
	config  *InvitationConfig
}

var _ interfaces.Invitation = (*Invitation)(nil)

// NewInvitation creates a new Invitation use case. A nil config uses the defaults.
func NewInvitation(repo interfaces.Repository, locator *invitation.Locator, config *InvitationConfig) *Invitation {
	if config == nil {
		config = NewInvitationConfig()
	}
	if locator == nil {
		locator = invitation.NewLocator(nil)
	}
	return &Invitation{
		repo:    repo,
		locator: locator,
		config:  config,
	}
}

// CheckInvitation resolves the invitation behind invitationURL. It returns an
// error tagged model.ErrTagInvalidURL when the URL is unusable and
// model.ErrTagInvitation when an invitation was found but rejected. (nil, nil)
// means the URL carries no usable invitation.
func (u *Invitation) CheckInvitation(ctx context.Context, invitationURL string) (*model.CheckInvitationResult, error) {
	logger := ctxlog.From(ctx)
	startedAt := u.config.now()

	parsedURL, err := invitation.ParseURL(invitationURL)
	if err != nil {
		logger.Error(MsgInvalidInvitationURL, "url", invitationURL, "error", err)
		record := model.NewCheckRecord(invitationURL, nil, startedAt).WithError(MsgInvalidInvitationURL)
		u.finish(ctx, record, startedAt)

		return nil, goerr.New(MsgInvalidInvitationURL,
			goerr.T(model.ErrTagInvalidURL),
			goerr.V("url", invitationURL),
			goerr.V("cause", err.Error()),
		)
	}

	block, source := u.locator.Locate(ctx, parsedURL)
	u.config.metrics.ObserveBlockLookup(source.String())

	inv := invitation.ParseInvitation(ctx, block)
	record := model.NewCheckRecord(invitationURL, inv, startedAt)
	u.finish(ctx, record, startedAt)

	if inv.HasError() {
		return nil, goerr.New(inv.Error,
			goerr.T(model.ErrTagInvitation),
			goerr.V("url", invitationURL),
			goerr.V("stage", inv.Stage),
			goerr.V("check_id", record.ID),
		)
	}

	result := model.NewCheckInvitationResult(inv)
	if result == nil {
		logger.Info("No usable invitation found", "url", invitationURL, "check_id", record.ID)
		return nil, nil
	}

	logger.Info("Invitation accepted",
		"check_id", record.ID,
		"label", result.Label,
		"source", source,
	)
	return result, nil
}

// finish stores the record, publishes its event and records metrics. None of
// these can fail the check.
func (u *Invitation) finish(ctx context.Context, record *model.CheckRecord, startedAt time.Time) {
	if u.repo != nil {
		if err := u.repo.SaveCheck(ctx, record); err != nil {
			ctxlog.From(ctx).Warn("Failed to save invitation check",
				"check_id", record.ID,
				"error", err,
			)
		}
	}

	u.config.dispatcher.Publish(ctx, model.NewEventFromRecord(record))
	u.config.metrics.ObserveCheck(record.Stage, u.config.now().Sub(startedAt))
}

// GetCheck returns a recorded check
func (u *Invitation) GetCheck(ctx context.Context, id types.CheckID) (*model.CheckRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid check ID", goerr.T(model.ErrTagNotFound), goerr.V("id", id))
	}
	if u.repo == nil {
		return nil, model.ErrCheckNotFound
	}

	record, err := u.repo.GetCheck(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get invitation check", goerr.V("id", id))
	}
	return record, nil
}

// ListChecks returns recent checks, newest first. limit is clamped to
// [1, MaxListLimit]; zero or negative means DefaultListLimit.
func (u *Invitation) ListChecks(ctx context.Context, limit int) ([]*model.CheckRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	if u.repo == nil {
		return []*model.CheckRecord{}, nil
	}

	records, err := u.repo.ListChecks(ctx, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list invitation checks", goerr.V("limit", limit))
	}
	return records, nil
}
