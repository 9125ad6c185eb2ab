package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeSingleChoice   = "single_choice"
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeText           = "text"
)

type Question struct {
	ID                uint             `gorm:"primarykey" json:"id"`
	AssessmentID      uint             `json:"assessment_id" gorm:"not null;index"`
	Title             string           `json:"title" gorm:"not null"`
	Type              string           `json:"type" gorm:"not null"` // "single_choice", "multiple_choice", "text"
	OrderInAssessment int              `json:"order_in_assessment" gorm:"not null"`
	IsRequired        bool             `json:"is_required" gorm:"default:true"`
	IsScored          bool             `json:"is_scored" gorm:"default:true"`
	Options           []QuestionOption `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `gorm:"index" json:"-"`
}
