package model

import (
	"time"

	"github.com/partner-agent/invitecheck/pkg/domain/types"
)

// EventKind identifies what happened to an invitation
type EventKind string

const (
	EventInvitationChecked  EventKind = "invitation_checked"
	EventInvitationRejected EventKind = "invitation_rejected"
)

// String returns the string representation
func (k EventKind) String() string {
	return string(k)
}

// Event is published after every invitation check. It is built from the
// CheckRecord only.
type Event struct {
	Kind       EventKind
	CheckID    types.CheckID
	Stage      types.CheckStage
	Label      string
	Error      string
	OccurredAt time.Time
}

// NewEventFromRecord derives the event for a stored check record
func NewEventFromRecord(record *CheckRecord) Event {
	kind := EventInvitationChecked
	if !record.Accepted() {
		kind = EventInvitationRejected
	}
	return Event{
		Kind:       kind,
		CheckID:    record.ID,
		Stage:      record.Stage,
		Label:      record.Label,
		Error:      record.Error,
		OccurredAt: record.CheckedAt,
	}
}
