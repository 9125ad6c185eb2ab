package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"examsense/internal/model"
)

const pgUniqueViolation = "23505"

// translateError classifies storage write failures. A unique-constraint
// violation on the (assessment_id, participant_id) pair is the mechanism
// that serializes concurrent finalizations, so it must surface as the typed
// duplicate-submission error and never as a generic write failure.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return model.ErrAlreadySubmitted
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return model.ErrAlreadySubmitted
	}
	// Driver-agnostic fallback, e.g. sqlite in local setups.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
		return model.ErrAlreadySubmitted
	}

	return err
}
