package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AssessmentStatusDraft     = "draft"
	AssessmentStatusPublished = "published"
	AssessmentStatusExpired   = "expired"
	AssessmentStatusFinished  = "finished"
	AssessmentStatusArchived  = "archived"
)

type Assessment struct {
	ID                       uint           `gorm:"primarykey" json:"id"`
	PublicID                 string         `json:"public_id" gorm:"type:uuid;not null;uniqueIndex"`
	Title                    string         `json:"title" gorm:"not null"`
	Description              string         `json:"description,omitempty"`
	Status                   string         `json:"status" gorm:"not null;default:'draft'"` // "draft", "published", "expired", "finished", "archived"
	OpensAt                  *time.Time     `json:"opens_at,omitempty"`
	ClosesAt                 *time.Time     `json:"closes_at,omitempty"`
	DurationMinutes          int            `json:"duration_minutes,omitempty"`
	AllowMultipleSubmissions bool           `json:"allow_multiple_submissions" gorm:"default:false"`
	Questions                []Question     `json:"questions,omitempty" gorm:"foreignKey:AssessmentID"`
	CreatedAt                time.Time      `json:"created_at"`
	UpdatedAt                time.Time      `json:"updated_at"`
	DeletedAt                gorm.DeletedAt `gorm:"index" json:"-"`
}

// AcceptingSubmissions reports whether an attempt may be started or finalized
// at the given instant. Only published assessments inside their open/close
// window accept submissions; a nil boundary leaves that side unbounded.
func (a *Assessment) AcceptingSubmissions(now time.Time) bool {
	if a.Status != AssessmentStatusPublished {
		return false
	}
	if a.OpensAt != nil && now.Before(*a.OpensAt) {
		return false
	}
	if a.ClosesAt != nil && now.After(*a.ClosesAt) {
		return false
	}
	return true
}
