package apperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/partner-agent/invitecheck/pkg/domain/model"
)

// Handle logs err at a level matching its HTTP status: client errors are
// warnings, everything else is an error.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if status := HTTPStatus(err); status < http.StatusInternalServerError {
		logger.Warn("request rejected", "error", err, "status", status)
		return
	}
	logger.Error("application error", "error", err)
}

// HTTPStatus maps an error to the HTTP status reported to API clients
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case HasTag(err, model.ErrTagInvalidURL), HasTag(err, model.ErrTagInvitation), HasTag(err, model.ErrTagInvalidRequest):
		return http.StatusBadRequest
	case HasTag(err, model.ErrTagNotFound), errors.Is(err, model.ErrCheckNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// HasTag reports whether err or any error it wraps carries tag
func HasTag(err error, tag goerr.Tag) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if goerr.HasTag(e, tag) {
			return true
		}
	}
	return false
}
