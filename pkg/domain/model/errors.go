package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for categorization
var (
	// ErrTagInvalidURL marks an invitation URL that cannot be percent-decoded or parsed
	ErrTagInvalidURL = goerr.NewTag("invalid_url")
	// ErrTagInvitation marks an invitation that was located but is not usable
	ErrTagInvitation = goerr.NewTag("invitation")
	// ErrTagInvalidRequest marks a malformed API request
	ErrTagInvalidRequest = goerr.NewTag("invalid_request")
	// ErrTagNotFound marks a lookup of a record that does not exist
	ErrTagNotFound = goerr.NewTag("not_found")
)

// Sentinel errors for domain operations
var (
	ErrCheckNotFound = goerr.New("invitation check not found", goerr.T(ErrTagNotFound))
)
