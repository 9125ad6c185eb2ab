package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"examsense/internal/model"
)

type SnapshotRepository interface {
	Upsert(snapshot *model.InteractionSnapshot) error
	FindByAttemptID(attemptID uint) (*model.InteractionSnapshot, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Upsert keeps exactly one snapshot per attempt; a resubmitted payload for
// the same attempt replaces the previous one.
func (r *snapshotRepository) Upsert(snapshot *model.InteractionSnapshot) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attempt_record_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"timeline", "voice_log", "device_test", "updated_at"}),
	}).Create(snapshot).Error
}

func (r *snapshotRepository) FindByAttemptID(attemptID uint) (*model.InteractionSnapshot, error) {
	var snapshot model.InteractionSnapshot
	err := r.db.Where("attempt_record_id = ?", attemptID).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrAttemptNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}
