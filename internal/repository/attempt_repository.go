package repository

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"examsense/internal/model"
)

// AttemptFinalization carries the fields written atomically when a
// placeholder transitions to finalized.
type AttemptFinalization struct {
	ParticipantName  string
	Answers          datatypes.JSONMap
	Score            float64
	IPAddress        string
	StartedAt        time.Time
	SubmittedAt      time.Time
	TotalTimeSeconds int
}

type AttemptRepository interface {
	Create(attempt *model.AttemptRecord) error
	FinalizePlaceholder(id uint, fin AttemptFinalization) error
	AttachAnalysisSession(id uint, sessionID string) error
	FindByID(id uint) (*model.AttemptRecord, error)
	FindByAssessmentAndParticipant(assessmentID uint, participantID string) (*model.AttemptRecord, error)
	FindFinalizedByAssessment(assessmentID uint) ([]model.AttemptRecord, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

// Create inserts either a placeholder or an already-finalized record; build
// them with model.NewPlaceholderAttempt / model.NewFinalizedAttempt. The
// composite unique index rejects a second row for the same pair, which
// translateError surfaces as model.ErrAlreadySubmitted.
func (r *attemptRepository) Create(attempt *model.AttemptRecord) error {
	return translateError(r.db.Create(attempt).Error)
}

// FinalizePlaceholder performs the placeholder -> finalized transition as a
// single conditional update. A zero row count means the record was already
// finalized by a concurrent request (or never existed), which counts as a
// duplicate submission; the caller has already confirmed the record existed.
func (r *attemptRepository) FinalizePlaceholder(id uint, fin AttemptFinalization) error {
	res := r.db.Model(&model.AttemptRecord{}).
		Where("id = ? AND state = ?", id, model.AttemptStatePlaceholder).
		Updates(map[string]interface{}{
			"state":              model.AttemptStateFinalized,
			"participant_name":   fin.ParticipantName,
			"answers":            fin.Answers,
			"score":              fin.Score,
			"ip_address":         fin.IPAddress,
			"started_at":         fin.StartedAt,
			"submitted_at":       fin.SubmittedAt,
			"total_time_seconds": fin.TotalTimeSeconds,
		})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrAlreadySubmitted
	}
	return nil
}

func (r *attemptRepository) AttachAnalysisSession(id uint, sessionID string) error {
	res := r.db.Model(&model.AttemptRecord{}).
		Where("id = ?", id).
		Update("analysis_session_id", sessionID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrAttemptNotFound
	}
	return nil
}

func (r *attemptRepository) FindByID(id uint) (*model.AttemptRecord, error) {
	var attempt model.AttemptRecord
	if err := r.db.First(&attempt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrAttemptNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByAssessmentAndParticipant(assessmentID uint, participantID string) (*model.AttemptRecord, error) {
	var attempt model.AttemptRecord
	err := r.db.
		Where("assessment_id = ? AND participant_id = ?", assessmentID, participantID).
		First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrAttemptNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindFinalizedByAssessment(assessmentID uint) ([]model.AttemptRecord, error) {
	var attempts []model.AttemptRecord
	err := r.db.
		Where("assessment_id = ? AND state = ?", assessmentID, model.AttemptStateFinalized).
		Order("submitted_at DESC").
		Find(&attempts).Error
	return attempts, err
}
