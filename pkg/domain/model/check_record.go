package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/partner-agent/invitecheck/pkg/domain/types"
)

// CheckRecord is the audit entry kept for one invitation check
type CheckRecord struct {
	ID              types.CheckID    `json:"id" firestore:"id"`
	URL             string           `json:"url" firestore:"url"`
	Stage           types.CheckStage `json:"stage" firestore:"stage"`
	Kind            string           `json:"kind" firestore:"kind"`
	Label           string           `json:"label,omitempty" firestore:"label"`
	Error           string           `json:"error,omitempty" firestore:"error"`
	InvitationBlock string           `json:"invitationBlock,omitempty" firestore:"invitation_block"`
	CheckedAt       time.Time        `json:"checkedAt" firestore:"checked_at"`
}

// NewCheckRecord creates a record from the outcome of a check. inv may be nil
// when the URL could not be parsed.
func NewCheckRecord(rawURL string, inv *Invitation, checkedAt time.Time) *CheckRecord {
	record := &CheckRecord{
		ID:        types.NewCheckID(),
		URL:       rawURL,
		Stage:     types.CheckStageInvalidURL,
		Kind:      KindUnknown.String(),
		CheckedAt: checkedAt,
	}
	if inv == nil {
		return record
	}

	record.Stage = inv.Stage
	record.Kind = inv.Kind.String()
	record.Error = inv.Error
	record.InvitationBlock = inv.InvitationBlock
	if inv.InvitationRequest != nil {
		record.Label = inv.InvitationRequest.Label
	}
	return record
}

// WithError overrides the record error, used when the URL itself was rejected
func (r *CheckRecord) WithError(msg string) *CheckRecord {
	r.Error = msg
	return r
}

// Validate validates the record
func (r *CheckRecord) Validate() error {
	if err := r.ID.Validate(); err != nil {
		return err
	}
	if !r.Stage.IsValid() {
		return goerr.New("invalid check stage", goerr.V("stage", r.Stage))
	}
	if r.CheckedAt.IsZero() {
		return goerr.New("check time is required", goerr.V("id", r.ID))
	}
	return nil
}

// Accepted reports whether the check produced a usable invitation
func (r *CheckRecord) Accepted() bool {
	return !r.Stage.IsFailure()
}
