package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// CheckID represents an invitation check record identifier
type CheckID string

// String returns the string representation
func (id CheckID) String() string {
	return string(id)
}

// Validate checks if the check ID is non-empty
func (id CheckID) Validate() error {
	if id == "" {
		return goerr.New("check ID cannot be empty")
	}
	return nil
}

// NewCheckID creates a new CheckID using UUID v7 so that IDs sort by creation time
func NewCheckID() CheckID {
	id, err := uuid.NewV7()
	if err != nil {
		return CheckID(uuid.New().String())
	}
	return CheckID(id.String())
}

// InvitationType is the value of the "@type" discriminator of an invitation document
type InvitationType string

const (
	InvitationTypeConnection InvitationType = "did:sov:BzCbsNYhMrjHiqZDTUASHg;spec/connections/1.0/invitation"
	InvitationTypeOutOfBand  InvitationType = "did:sov:BzCbsNYhMrjHiqZDTUASHg;spec/out-of-band/1.0/invitation"
)

// String returns the string representation
func (t InvitationType) String() string {
	return string(t)
}

// QueryParam is the name of a URL query parameter that may carry an invitation block
type QueryParam string

const (
	QueryParamConnection    QueryParam = "c_i"
	QueryParamDirectMessage QueryParam = "d_m"
	QueryParamOutOfBand     QueryParam = "oob"
)

// String returns the string representation
func (p QueryParam) String() string {
	return string(p)
}

// InvitationQueryParams returns the invitation parameters in lookup order.
// The order is significant: the first non-empty parameter wins.
func InvitationQueryParams() []QueryParam {
	return []QueryParam{
		QueryParamConnection,
		QueryParamDirectMessage,
		QueryParamOutOfBand,
	}
}
