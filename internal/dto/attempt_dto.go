package dto

import (
	"encoding/json"
	"time"
)

// TimelineEventDTO is one client-reported interaction event. Kind is
// free-form ("focus", "blur", "question_enter", ...); Detail carries any
// event-specific payload untouched.
type TimelineEventDTO struct {
	Kind       string          `json:"kind" binding:"required"`
	QuestionID *uint           `json:"question_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at" binding:"required"`
	DurationMs int64           `json:"duration_ms,omitempty"`
	Detail     json.RawMessage `json:"detail,omitempty"`
}

// SubmitAttemptRequest carries a participant's finished work. Answers maps
// the question ID (as a decimal string) to the raw client value; lists,
// numbers and booleans are normalized server-side. The client-reported
// timestamps are advisory: SubmittedAt is capped at the server clock and
// StartedAt falls back to the placeholder's recorded start.
type SubmitAttemptRequest struct {
	ParticipantID   string                 `json:"participant_id" binding:"required"`
	ParticipantName string                 `json:"participant_name"`
	Answers         map[string]interface{} `json:"answers" binding:"required"`
	StartedAt       *time.Time             `json:"started_at,omitempty"`
	SubmittedAt     *time.Time             `json:"submitted_at,omitempty"`
	Timeline        []TimelineEventDTO     `json:"timeline,omitempty"`
	VoiceLog        json.RawMessage        `json:"voice_log,omitempty"`
	DeviceTest      json.RawMessage        `json:"device_test,omitempty"`
}

// SubmissionResultDTO confirms a finalized attempt. Warning is set when a
// non-fatal side effect failed, e.g. the analysis session could not be
// closed.
type SubmissionResultDTO struct {
	AttemptID        uint      `json:"attempt_id"`
	Score            float64   `json:"score"`
	SubmittedAt      time.Time `json:"submitted_at"`
	TotalTimeSeconds int       `json:"total_time_seconds"`
	Warning          string    `json:"warning,omitempty"`
}

// CanSubmitResponse answers the pre-flight submission check.
type CanSubmitResponse struct {
	CanSubmit bool   `json:"can_submit"`
	Reason    string `json:"reason,omitempty"`
}

// BootstrapSessionRequest opens an analysis session before the participant
// starts answering.
type BootstrapSessionRequest struct {
	ParticipantID   string     `json:"participant_id" binding:"required"`
	ParticipantName string     `json:"participant_name"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
}

// SessionBootstrapDTO reports the placeholder attempt and, when the analysis
// service cooperated, the external session handle.
type SessionBootstrapDTO struct {
	AttemptID uint    `json:"attempt_id"`
	SessionID *string `json:"session_id,omitempty"`
	Message   string  `json:"message"`
	Warning   string  `json:"warning,omitempty"`
}

// AttemptDetailDTO is the full view of a single attempt.
type AttemptDetailDTO struct {
	ID                uint                   `json:"id"`
	AssessmentID      uint                   `json:"assessment_id"`
	AssessmentTitle   string                 `json:"assessment_title,omitempty"`
	ParticipantID     string                 `json:"participant_id"`
	ParticipantName   string                 `json:"participant_name,omitempty"`
	State             string                 `json:"state"`
	Answers           map[string]interface{} `json:"answers,omitempty"`
	Score             float64                `json:"score"`
	StartedAt         time.Time              `json:"started_at"`
	SubmittedAt       time.Time              `json:"submitted_at"`
	TotalTimeSeconds  int                    `json:"total_time_seconds"`
	AnalysisSessionID *string                `json:"analysis_session_id,omitempty"`
	TimelineSummary   map[string]int         `json:"timeline_summary,omitempty"`
}

// AttemptSummaryDTO is one row in the admin listing of finalized attempts.
type AttemptSummaryDTO struct {
	ID                uint      `json:"id"`
	ParticipantID     string    `json:"participant_id"`
	ParticipantName   string    `json:"participant_name,omitempty"`
	Score             float64   `json:"score"`
	StartedAt         time.Time `json:"started_at"`
	SubmittedAt       time.Time `json:"submitted_at"`
	TotalTimeSeconds  int       `json:"total_time_seconds"`
	AnalysisSessionID *string   `json:"analysis_session_id,omitempty"`
}
