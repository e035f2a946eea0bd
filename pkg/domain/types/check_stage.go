package types

// CheckStage names the pipeline stage at which an invitation check ended
type CheckStage string

const (
	CheckStageInvalidURL CheckStage = "invalid_url"
	CheckStageEmpty      CheckStage = "empty"
	CheckStageDecode     CheckStage = "decode"
	CheckStageParse      CheckStage = "parse"
	CheckStageOutOfBand  CheckStage = "oob"
	CheckStageUnknown    CheckStage = "unknown"
	CheckStageAccepted   CheckStage = "accepted"
)

// String returns the string representation of the stage
func (s CheckStage) String() string {
	return string(s)
}

// IsValid checks if the stage is one of the known stages
func (s CheckStage) IsValid() bool {
	switch s {
	case CheckStageInvalidURL, CheckStageEmpty, CheckStageDecode, CheckStageParse,
		CheckStageOutOfBand, CheckStageUnknown, CheckStageAccepted:
		return true
	default:
		return false
	}
}

// IsFailure reports whether the check ended without a usable invitation
func (s CheckStage) IsFailure() bool {
	return s != CheckStageAccepted
}

// AllCheckStages returns every known stage
func AllCheckStages() []CheckStage {
	return []CheckStage{
		CheckStageInvalidURL,
		CheckStageEmpty,
		CheckStageDecode,
		CheckStageParse,
		CheckStageOutOfBand,
		CheckStageUnknown,
		CheckStageAccepted,
	}
}
