package model

import (
	"errors"
	"fmt"
)

var (
	ErrAssessmentNotFound  = errors.New("assessment not found")
	ErrAssessmentNotOpen   = errors.New("assessment is not open for submissions")
	ErrAttemptNotFound     = errors.New("attempt not found")
	ErrAlreadySubmitted    = errors.New("an attempt for this assessment has already been submitted")
	ErrInvalidTransition   = errors.New("invalid assessment status transition")
	ErrAnalysisUnavailable = errors.New("analysis service unavailable")
	ErrAnalysisTimeout     = errors.New("analysis service timed out")
)

// ValidationError is a client-input rejection. For finalization it carries
// the ids of snapshot questions that lack a present answer so the client can
// highlight them; elsewhere Message describes the problem.
type ValidationError struct {
	Message            string
	MissingQuestionIDs []uint
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%d question(s) unanswered", len(e.MissingQuestionIDs))
}

// NewValidationError builds a ValidationError from a plain message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
