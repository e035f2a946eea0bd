package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/partner-agent/invitecheck/pkg/domain/types"
)

func TestCheckStageValidation(t *testing.T) {
	tests := []struct {
		name     string
		stage    types.CheckStage
		expected bool
	}{
		{"Valid accepted", types.CheckStageAccepted, true},
		{"Valid oob", types.CheckStageOutOfBand, true},
		{"Valid decode", types.CheckStageDecode, true},
		{"Valid invalid_url", types.CheckStageInvalidURL, true},
		{"Invalid empty string", types.CheckStage(""), false},
		{"Invalid mixed case", types.CheckStage("Accepted"), false},
		{"Invalid unknown value", types.CheckStage("redirected"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.stage.IsValid()
			if result != tt.expected {
				t.Errorf("CheckStage(%q).IsValid() = %v, want %v", tt.stage, result, tt.expected)
			}
		})
	}
}

func TestCheckStageIsFailure(t *testing.T) {
	for _, stage := range types.AllCheckStages() {
		t.Run(stage.String(), func(t *testing.T) {
			gt.Equal(t, stage.IsFailure(), stage != types.CheckStageAccepted)
		})
	}
}

func TestInvitationQueryParamsOrder(t *testing.T) {
	params := types.InvitationQueryParams()
	gt.A(t, params).Length(3)
	gt.Equal(t, params[0], types.QueryParamConnection)
	gt.Equal(t, params[1], types.QueryParamDirectMessage)
	gt.Equal(t, params[2], types.QueryParamOutOfBand)

	gt.Equal(t, params[0].String(), "c_i")
	gt.Equal(t, params[1].String(), "d_m")
	gt.Equal(t, params[2].String(), "oob")
}

func TestNewCheckID(t *testing.T) {
	t.Run("generates unique non-empty IDs", func(t *testing.T) {
		seen := make(map[types.CheckID]bool)
		for i := 0; i < 100; i++ {
			id := types.NewCheckID()
			gt.NoError(t, id.Validate())
			gt.False(t, seen[id])
			seen[id] = true
		}
	})

	t.Run("empty ID is invalid", func(t *testing.T) {
		gt.Error(t, types.CheckID("").Validate())
	})
}
