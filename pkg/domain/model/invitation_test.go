package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/partner-agent/invitecheck/pkg/domain/model"
	"github.com/partner-agent/invitecheck/pkg/domain/types"
)

func TestClassifyInvitationType(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected model.InvitationKind
	}{
		{"legacy connection", "did:sov:BzCbsNYhMrjHiqZDTUASHg;spec/connections/1.0/invitation", model.KindConnection},
		{"out-of-band", "did:sov:BzCbsNYhMrjHiqZDTUASHg;spec/out-of-band/1.0/invitation", model.KindOutOfBand},
		{"https connection form is not matched", "https://didcomm.org/connections/1.0/invitation", model.KindUnknown},
		{"trailing space is not matched", "did:sov:BzCbsNYhMrjHiqZDTUASHg;spec/connections/1.0/invitation ", model.KindUnknown},
		{"missing", nil, model.KindUnknown},
		{"non-string", 42.0, model.KindUnknown},
		{"empty", "", model.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, model.ClassifyInvitationType(tt.value), tt.expected)
		})
	}
}

func TestInvitationKindString(t *testing.T) {
	gt.Equal(t, model.KindConnection.String(), "connection")
	gt.Equal(t, model.KindOutOfBand.String(), "out-of-band")
	gt.Equal(t, model.KindUnknown.String(), "unknown")
	gt.Equal(t, model.InvitationKind(99).String(), "unknown")
}

func TestNewCheckInvitationResult(t *testing.T) {
	doc := map[string]any{"@type": types.InvitationTypeConnection.String(), "label": "Alice"}

	t.Run("usable invitation is projected", func(t *testing.T) {
		inv := &model.Invitation{
			Kind:              model.KindConnection,
			Parsed:            true,
			InvitationRequest: &model.ReceiveInvitationRequest{Label: "Alice"},
			InvitationBlock:   "block",
			Invitation:        doc,
		}

		result := model.NewCheckInvitationResult(inv)
		gt.V(t, result).NotNil()
		gt.Equal(t, result.Label, "Alice")
		gt.Equal(t, result.InvitationBlock, "block")
		gt.Equal(t, result.Invitation["label"], any("Alice"))
	})

	t.Run("error wins over request", func(t *testing.T) {
		inv := &model.Invitation{
			Parsed:            true,
			InvitationRequest: &model.ReceiveInvitationRequest{Label: "Alice"},
			Error:             "broken",
		}
		gt.Nil(t, model.NewCheckInvitationResult(inv))
	})

	t.Run("parsed without request yields nothing", func(t *testing.T) {
		inv := &model.Invitation{Parsed: true, Invitation: doc}
		gt.Nil(t, model.NewCheckInvitationResult(inv))
	})

	t.Run("nil invitation", func(t *testing.T) {
		gt.Nil(t, model.NewCheckInvitationResult(nil))
	})
}

func TestInvitationTypeValue(t *testing.T) {
	inv := &model.Invitation{}
	_, ok := inv.TypeValue()
	gt.False(t, ok)

	inv.Invitation = map[string]any{"label": "x"}
	_, ok = inv.TypeValue()
	gt.False(t, ok)

	inv.Invitation["@type"] = "foo"
	v, ok := inv.TypeValue()
	gt.True(t, ok)
	gt.Equal(t, v, any("foo"))
}

func TestCheckRecord(t *testing.T) {
	now := time.Now()

	t.Run("accepted invitation", func(t *testing.T) {
		inv := &model.Invitation{
			Kind:              model.KindConnection,
			Parsed:            true,
			Stage:             types.CheckStageAccepted,
			InvitationRequest: &model.ReceiveInvitationRequest{Label: "Alice"},
			InvitationBlock:   "block",
		}
		record := model.NewCheckRecord("https://example.org/?c_i=block", inv, now)
		gt.NoError(t, record.Validate())
		gt.True(t, record.Accepted())
		gt.Equal(t, record.Label, "Alice")
		gt.Equal(t, record.Kind, "connection")
		gt.Equal(t, record.InvitationBlock, "block")

		event := model.NewEventFromRecord(record)
		gt.Equal(t, event.Kind, model.EventInvitationChecked)
		gt.Equal(t, event.CheckID, record.ID)
		gt.Equal(t, event.Label, "Alice")
	})

	t.Run("rejected invitation", func(t *testing.T) {
		inv := &model.Invitation{
			Kind:   model.KindOutOfBand,
			OOB:    true,
			Parsed: true,
			Stage:  types.CheckStageOutOfBand,
			Error:  "Out of band Invitations are currently not supported",
		}
		record := model.NewCheckRecord("https://example.org/?oob=x", inv, now)
		gt.NoError(t, record.Validate())
		gt.False(t, record.Accepted())
		gt.Equal(t, record.Kind, "out-of-band")

		event := model.NewEventFromRecord(record)
		gt.Equal(t, event.Kind, model.EventInvitationRejected)
		gt.S(t, event.Error).Contains("not supported")
	})

	t.Run("invalid URL has no invitation", func(t *testing.T) {
		record := model.NewCheckRecord("::", nil, now).WithError("bad url")
		gt.NoError(t, record.Validate())
		gt.Equal(t, record.Stage, types.CheckStageInvalidURL)
		gt.Equal(t, record.Error, "bad url")
	})

	t.Run("zero time is rejected", func(t *testing.T) {
		record := model.NewCheckRecord("x", nil, time.Time{})
		gt.Error(t, record.Validate())
	})

	t.Run("unknown stage is rejected", func(t *testing.T) {
		record := model.NewCheckRecord("x", nil, now)
		record.Stage = types.CheckStage("bogus")
		gt.Error(t, record.Validate())
	})
}
