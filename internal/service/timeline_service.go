package service

import (
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"examsense/internal/dto"
	"examsense/internal/model"
	"examsense/internal/repository"
)

// TimelineService persists the client-reported interaction timeline as
// queryable rows. Timeline data is diagnostic; storage failures are logged
// and never affect the submission outcome.
type TimelineService interface {
	RecordTimeline(attemptID uint, events []dto.TimelineEventDTO) int
	EventSummary(attemptID uint) (map[string]int, error)
}

type timelineService struct {
	eventRepo repository.InteractionEventRepository
}

func NewTimelineService(eventRepo repository.InteractionEventRepository) TimelineService {
	return &timelineService{eventRepo: eventRepo}
}

// RecordTimeline converts the raw events into rows and stores them in one
// batch, returning how many were written.
func (s *timelineService) RecordTimeline(attemptID uint, events []dto.TimelineEventDTO) int {
	if len(events) == 0 {
		return 0
	}

	rows := make([]model.InteractionEvent, 0, len(events))
	for _, ev := range events {
		if ev.Kind == "" {
			continue
		}
		rows = append(rows, model.InteractionEvent{
			AttemptRecordID: attemptID,
			QuestionID:      ev.QuestionID,
			Kind:            ev.Kind,
			OccurredAt:      ev.OccurredAt,
			DurationMs:      ev.DurationMs,
			Detail:          datatypes.JSON(ev.Detail),
		})
	}
	if len(rows) == 0 {
		return 0
	}

	if err := s.eventRepo.CreateBatch(rows); err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Int("events", len(rows)).Msg("RecordTimeline: failed to store interaction events")
		return 0
	}
	return len(rows)
}

// EventSummary counts the stored events per kind.
func (s *timelineService) EventSummary(attemptID uint) (map[string]int, error) {
	events, err := s.eventRepo.FindByAttemptID(attemptID)
	if err != nil {
		return nil, err
	}
	summary := make(map[string]int, len(events))
	for _, ev := range events {
		summary[ev.Kind]++
	}
	return summary, nil
}
