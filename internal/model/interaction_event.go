package model

import (
	"time"

	"gorm.io/datatypes"
)

// InteractionEvent is one structured row derived from a raw timeline entry,
// produced after finalization for per-question behavior reporting.
type InteractionEvent struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	AttemptRecordID uint           `json:"attempt_record_id" gorm:"not null;index"`
	QuestionID      *uint          `json:"question_id,omitempty"`
	Kind            string         `json:"kind" gorm:"not null"` // "enter_question", "leave_question", "answer_change", ...
	OccurredAt      time.Time      `json:"occurred_at"`
	DurationMs      int64          `json:"duration_ms,omitempty"`
	Detail          datatypes.JSON `json:"detail,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}
