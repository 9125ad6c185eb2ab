package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"examsense/internal/model"
)

// AutoMigrate creates or updates the tables for every persisted model,
// including the composite unique index that backs the one-attempt-per-
// participant guarantee.
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Assessment{},
		&model.Question{},
		&model.QuestionOption{},
		&model.AttemptRecord{},
		&model.InteractionSnapshot{},
		&model.InteractionEvent{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed")
	return nil
}
