package model

import (
	"github.com/partner-agent/invitecheck/pkg/domain/types"
)

// InvitationKind is the closed set of invitation variants recognized by the
// "@type" discriminator. Adding a variant means adding a constant here and a
// case in every switch over InvitationKind.
type InvitationKind int

const (
	// KindUnknown is any "@type" value that is not recognized, including a missing one
	KindUnknown InvitationKind = iota
	// KindConnection is the legacy pairwise connection invitation
	KindConnection
	// KindOutOfBand is the out-of-band invitation, recognized but not supported
	KindOutOfBand
)

// String returns the string representation of the kind
func (k InvitationKind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindOutOfBand:
		return "out-of-band"
	case KindUnknown:
		return "unknown"
	}
	return "unknown"
}

// ClassifyInvitationType maps a raw "@type" value to an InvitationKind.
// Matching is exact; non-string values are always unknown.
func ClassifyInvitationType(value any) InvitationKind {
	s, ok := value.(string)
	if !ok {
		return KindUnknown
	}

	switch types.InvitationType(s) {
	case types.InvitationTypeConnection:
		return KindConnection
	case types.InvitationTypeOutOfBand:
		return KindOutOfBand
	default:
		return KindUnknown
	}
}

// ReceiveInvitationRequest is the connection invitation shaped for the
// connection establishment client
type ReceiveInvitationRequest struct {
	ID              string   `json:"@id,omitempty" yaml:"id,omitempty"`
	Type            string   `json:"@type,omitempty" yaml:"type,omitempty"`
	Label           string   `json:"label,omitempty" yaml:"label,omitempty"`
	DID             string   `json:"did,omitempty" yaml:"did,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	RecipientKeys   []string `json:"recipientKeys,omitempty" yaml:"recipientKeys,omitempty"`
	RoutingKeys     []string `json:"routingKeys,omitempty" yaml:"routingKeys,omitempty"`
	ServiceEndpoint string   `json:"serviceEndpoint,omitempty" yaml:"serviceEndpoint,omitempty"`
}

// Invitation is the outcome of decoding and classifying one invitation block.
// Callers must check Error before InvitationRequest: the two are exclusive in
// practice but the type does not enforce it.
type Invitation struct {
	Kind              InvitationKind
	OOB               bool
	Parsed            bool
	InvitationRequest *ReceiveInvitationRequest
	Error             string
	Stage             types.CheckStage
	InvitationBlock   string
	Invitation        map[string]any
}

// HasError reports whether any stage failed or the variant is unsupported
func (i *Invitation) HasError() bool {
	return i.Error != ""
}

// IsUsable reports whether the invitation can be handed to the connection client
func (i *Invitation) IsUsable() bool {
	return !i.HasError() && i.Parsed && i.InvitationRequest != nil
}

// TypeValue returns the raw "@type" value of the parsed document, if any
func (i *Invitation) TypeValue() (any, bool) {
	if i.Invitation == nil {
		return nil, false
	}
	v, ok := i.Invitation["@type"]
	return v, ok
}

// CheckInvitationResult is the caller-facing projection of a usable invitation
type CheckInvitationResult struct {
	Label           string         `json:"label" yaml:"label"`
	Invitation      map[string]any `json:"invitation" yaml:"invitation"`
	InvitationBlock string         `json:"invitationBlock" yaml:"invitationBlock"`
}

// NewCheckInvitationResult builds the projection. It returns nil unless the
// invitation is usable.
func NewCheckInvitationResult(inv *Invitation) *CheckInvitationResult {
	if inv == nil || !inv.IsUsable() {
		return nil
	}
	return &CheckInvitationResult{
		Label:           inv.InvitationRequest.Label,
		Invitation:      inv.Invitation,
		InvitationBlock: inv.InvitationBlock,
	}
}
