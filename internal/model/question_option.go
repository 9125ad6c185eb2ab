package model

import (
	"time"

	"gorm.io/gorm"
)

type QuestionOption struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	QuestionID      uint           `json:"question_id" gorm:"not null;index"`
	Key             string         `json:"key" gorm:"not null"` // the value submitted answers reference, e.g. "A"
	Label           string         `json:"label"`
	Score           *float64       `json:"score,omitempty"` // nil means the option carries no explicit score
	OrderInQuestion int            `json:"order_in_question"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
