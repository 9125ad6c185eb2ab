package dto

import "time"

// QuestionOptionCreateDTO is used within QuestionCreateDTO for admin
// assessment creation. Score is optional; options without one fall back to
// uniform scoring when no sibling carries a score either.
type QuestionOptionCreateDTO struct {
	Key             string   `json:"key" binding:"required"`
	Label           string   `json:"label"`
	Score           *float64 `json:"score"`
	OrderInQuestion int      `json:"order_in_question"`
}

// QuestionCreateDTO is used within AssessmentCreateDTO for admin assessment
// creation.
type QuestionCreateDTO struct {
	Title             string                    `json:"title" binding:"required"`
	Type              string                    `json:"type" binding:"required,oneof=single_choice multiple_choice text"`
	OrderInAssessment int                       `json:"order_in_assessment"`
	IsRequired        *bool                     `json:"is_required"`
	IsScored          *bool                     `json:"is_scored"`
	Options           []QuestionOptionCreateDTO `json:"options" binding:"dive"`
}

// AssessmentCreateDTO is for admins to create a new assessment with all its
// questions. Assessments are created as drafts and must be published before
// participants can see them.
type AssessmentCreateDTO struct {
	Title                    string              `json:"title" binding:"required"`
	Description              string              `json:"description,omitempty"`
	DurationMinutes          int                 `json:"duration_minutes" binding:"omitempty,min=0"`
	OpensAt                  *time.Time          `json:"opens_at"`
	ClosesAt                 *time.Time          `json:"closes_at"`
	AllowMultipleSubmissions bool                `json:"allow_multiple_submissions"`
	Questions                []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// AdminQuestionOptionDTO is the admin view of an option, scores included.
type AdminQuestionOptionDTO struct {
	ID              uint     `json:"id"`
	Key             string   `json:"key"`
	Label           string   `json:"label"`
	Score           *float64 `json:"score,omitempty"`
	OrderInQuestion int      `json:"order_in_question"`
}

// AdminQuestionDTO is the admin view of a question.
type AdminQuestionDTO struct {
	ID                uint                     `json:"id"`
	Title             string                   `json:"title"`
	Type              string                   `json:"type"`
	OrderInAssessment int                      `json:"order_in_assessment"`
	IsRequired        bool                     `json:"is_required"`
	IsScored          bool                     `json:"is_scored"`
	Options           []AdminQuestionOptionDTO `json:"options,omitempty"`
}

// AdminAssessmentDTO is the admin view of an assessment.
type AdminAssessmentDTO struct {
	ID                       uint               `json:"id"`
	PublicID                 string             `json:"public_id"`
	Title                    string             `json:"title"`
	Description              string             `json:"description,omitempty"`
	Status                   string             `json:"status"`
	DurationMinutes          int                `json:"duration_minutes"`
	OpensAt                  *time.Time         `json:"opens_at,omitempty"`
	ClosesAt                 *time.Time         `json:"closes_at,omitempty"`
	AllowMultipleSubmissions bool               `json:"allow_multiple_submissions"`
	Questions                []AdminQuestionDTO `json:"questions,omitempty"`
	CreatedAt                time.Time          `json:"created_at"`
	UpdatedAt                time.Time          `json:"updated_at"`
}

// AdminAssessmentSummaryDTO is one row in the admin listing.
type AdminAssessmentSummaryDTO struct {
	ID              uint      `json:"id"`
	PublicID        string    `json:"public_id"`
	Title           string    `json:"title"`
	Status          string    `json:"status"`
	DurationMinutes int       `json:"duration_minutes"`
	QuestionCount   int       `json:"question_count"`
	CreatedAt       time.Time `json:"created_at"`
}
