package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AttemptStatePlaceholder = "placeholder"
	AttemptStateFinalized   = "finalized"
)

// SubmittedAtSentinel is the instant stored in SubmittedAt while an attempt
// is still a placeholder. State is the authoritative discriminator; the
// sentinel is mirrored into SubmittedAt so that exports and older readers
// that compare against the epoch keep working.
var SubmittedAtSentinel = time.Unix(0, 0).UTC()

// AttemptRecord is one participant's work on one assessment. The composite
// unique index on (assessment_id, participant_id) is what prevents a second
// finalized attempt for the same pair; see AttemptRepository.
type AttemptRecord struct {
	ID                uint              `gorm:"primarykey" json:"id"`
	AssessmentID      uint              `json:"assessment_id" gorm:"not null;uniqueIndex:idx_attempt_assessment_participant"`
	Assessment        Assessment        `json:"-" gorm:"foreignKey:AssessmentID"`
	ParticipantID     string            `json:"participant_id" gorm:"not null;uniqueIndex:idx_attempt_assessment_participant"`
	ParticipantName   string            `json:"participant_name"`
	State             string            `json:"state" gorm:"not null;default:'placeholder'"` // "placeholder", "finalized"
	Answers           datatypes.JSONMap `json:"answers,omitempty"`
	Score             float64           `json:"score"`
	IPAddress         string            `json:"ip_address,omitempty"`
	StartedAt         time.Time         `json:"started_at"`
	SubmittedAt       time.Time         `json:"submitted_at"`
	TotalTimeSeconds  int               `json:"total_time_seconds"`
	AnalysisSessionID *string           `json:"analysis_session_id,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// NewPlaceholderAttempt builds the record created when a participant starts
// an assessment before any answers exist, e.g. during analysis-session
// bootstrap.
func NewPlaceholderAttempt(assessmentID uint, participantID, participantName, ipAddress string, startedAt time.Time) *AttemptRecord {
	return &AttemptRecord{
		AssessmentID:    assessmentID,
		ParticipantID:   participantID,
		ParticipantName: participantName,
		State:           AttemptStatePlaceholder,
		IPAddress:       ipAddress,
		StartedAt:       startedAt.UTC(),
		SubmittedAt:     SubmittedAtSentinel,
	}
}

// NewFinalizedAttempt builds an already-finalized record for the direct
// submission path, when no placeholder was ever created for the pair.
func NewFinalizedAttempt(assessmentID uint, participantID, participantName, ipAddress string, answers datatypes.JSONMap, score float64, startedAt, submittedAt time.Time) *AttemptRecord {
	return &AttemptRecord{
		AssessmentID:     assessmentID,
		ParticipantID:    participantID,
		ParticipantName:  participantName,
		State:            AttemptStateFinalized,
		Answers:          answers,
		Score:            score,
		IPAddress:        ipAddress,
		StartedAt:        startedAt.UTC(),
		SubmittedAt:      submittedAt.UTC(),
		TotalTimeSeconds: ElapsedSeconds(startedAt, submittedAt),
	}
}

// Finalized reports whether the attempt is terminal. Callers must use this
// instead of comparing SubmittedAt against the sentinel.
func (a *AttemptRecord) Finalized() bool {
	return a.State == AttemptStateFinalized
}

// HasValidStartedAt reports whether StartedAt carries a usable instant, i.e.
// it is neither the zero value nor the placeholder sentinel.
func (a *AttemptRecord) HasValidStartedAt() bool {
	return !a.StartedAt.IsZero() && !a.StartedAt.Equal(SubmittedAtSentinel)
}

// ElapsedSeconds returns the whole seconds between start and end, clamped
// at zero so clock skew never produces a negative duration.
func ElapsedSeconds(start, end time.Time) int {
	secs := int(end.Sub(start) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}
