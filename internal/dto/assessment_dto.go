package dto

import "time"

// QuestionOptionDTO is the participant-facing view of an answer option.
// Scores are deliberately absent so clients cannot derive the answer key.
type QuestionOptionDTO struct {
	ID              uint   `json:"id"`
	Key             string `json:"key"`
	Label           string `json:"label"`
	OrderInQuestion int    `json:"order_in_question"`
}

// QuestionDTO is the participant-facing view of a question.
type QuestionDTO struct {
	ID                uint                `json:"id"`
	Title             string              `json:"title"`
	Type              string              `json:"type"`
	OrderInAssessment int                 `json:"order_in_assessment"`
	IsRequired        bool                `json:"is_required"`
	Options           []QuestionOptionDTO `json:"options,omitempty"`
}

// AssessmentDetailDTO is returned when a participant opens an assessment.
type AssessmentDetailDTO struct {
	PublicID                 string        `json:"public_id"`
	Title                    string        `json:"title"`
	Description              string        `json:"description,omitempty"`
	Status                   string        `json:"status"`
	DurationMinutes          int           `json:"duration_minutes"`
	OpensAt                  *time.Time    `json:"opens_at,omitempty"`
	ClosesAt                 *time.Time    `json:"closes_at,omitempty"`
	AllowMultipleSubmissions bool          `json:"allow_multiple_submissions"`
	Questions                []QuestionDTO `json:"questions,omitempty"`
}

// AssessmentSummaryDTO is one row in the participant-facing listing.
type AssessmentSummaryDTO struct {
	PublicID        string     `json:"public_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
	OpensAt         *time.Time `json:"opens_at,omitempty"`
	ClosesAt        *time.Time `json:"closes_at,omitempty"`
	QuestionCount   int        `json:"question_count"`
	CreatedAt       time.Time  `json:"created_at"`
}
