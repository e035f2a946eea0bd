package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/partner-agent/invitecheck/pkg/domain/interfaces"
	"github.com/partner-agent/invitecheck/pkg/domain/model"
	"github.com/partner-agent/invitecheck/pkg/domain/types"
)

// maxRequestBytes bounds the check request body
const maxRequestBytes = 64 << 10

// CheckInvitationRequest is the body of POST /api/invitations/check
type CheckInvitationRequest struct {
	InvitationURI string `json:"invitationUri"`
}

// InvitationHandler serves the invitation check API
type InvitationHandler struct {
	invitationUC interfaces.Invitation
}

// NewInvitationHandler creates a new InvitationHandler
func NewInvitationHandler(invitationUC interfaces.Invitation) *InvitationHandler {
	return &InvitationHandler{
		invitationUC: invitationUC,
	}
}

// HandleCheck resolves the invitation behind the posted URI. It answers 200
// with the invitation, 204 when the URI carries no usable invitation, and 400
// when the URI or the invitation is rejected.
func (h *InvitationHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckInvitationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeError(ctx, w, goerr.Wrap(err, "invalid request body", goerr.T(model.ErrTagInvalidRequest)))
		return
	}
	if req.InvitationURI == "" {
		writeError(ctx, w, goerr.New("invitationUri is required", goerr.T(model.ErrTagInvalidRequest)))
		return
	}

	result, err := h.invitationUC.CheckInvitation(ctx, req.InvitationURI)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

// HandleListChecks returns recent checks, newest first
func (h *InvitationHandler) HandleListChecks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, goerr.Wrap(err, "limit must be an integer",
				goerr.T(model.ErrTagInvalidRequest),
				goerr.V("limit", raw),
			))
			return
		}
		limit = n
	}

	records, err := h.invitationUC.ListChecks(ctx, limit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"checks": records,
	})
}

// HandleGetCheck returns one recorded check
func (h *InvitationHandler) HandleGetCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.CheckID(chi.URLParam(r, "id"))

	record, err := h.invitationUC.GetCheck(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, record)
}
