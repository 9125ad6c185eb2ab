package repository

import (
	"gorm.io/gorm"

	"examsense/internal/model"
)

type InteractionEventRepository interface {
	CreateBatch(events []model.InteractionEvent) error
	FindByAttemptID(attemptID uint) ([]model.InteractionEvent, error)
}

type interactionEventRepository struct {
	db *gorm.DB
}

func NewInteractionEventRepository(db *gorm.DB) InteractionEventRepository {
	return &interactionEventRepository{db: db}
}

func (r *interactionEventRepository) CreateBatch(events []model.InteractionEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.CreateInBatches(events, 200).Error
}

func (r *interactionEventRepository) FindByAttemptID(attemptID uint) ([]model.InteractionEvent, error) {
	var events []model.InteractionEvent
	err := r.db.
		Where("attempt_record_id = ?", attemptID).
		Order("occurred_at ASC").
		Find(&events).Error
	return events, err
}
