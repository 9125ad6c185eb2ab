package service

import (
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"examsense/internal/dto"
	"examsense/internal/model"
	"examsense/internal/repository"
)

// AssessmentService is the participant-facing read surface. It only ever
// exposes published assessments and never leaks option scores.
type AssessmentService interface {
	ListPublished() ([]dto.AssessmentSummaryDTO, error)
	GetByPublicID(publicID string) (*dto.AssessmentDetailDTO, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
}

func NewAssessmentService(assessmentRepo repository.AssessmentRepository) AssessmentService {
	return &assessmentService{assessmentRepo: assessmentRepo}
}

func (s *assessmentService) ListPublished() ([]dto.AssessmentSummaryDTO, error) {
	rows, err := s.assessmentRepo.FindAllWithQuestionCount(model.AssessmentStatusPublished)
	if err != nil {
		log.Error().Err(err).Msg("ListPublished: failed to list assessments")
		return nil, err
	}

	summaries := make([]dto.AssessmentSummaryDTO, 0, len(rows))
	for _, row := range rows {
		var summary dto.AssessmentSummaryDTO
		if err := copier.Copy(&summary, &row); err != nil {
			log.Error().Err(err).Uint("assessmentID", row.ID).Msg("ListPublished: failed to copy assessment to DTO")
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetByPublicID returns the full form for a published assessment. Drafts
// stay invisible; an assessment withdrawn after publication reads as closed.
func (s *assessmentService) GetByPublicID(publicID string) (*dto.AssessmentDetailDTO, error) {
	assessment, err := s.assessmentRepo.FindByPublicID(publicID)
	if err != nil {
		return nil, err
	}
	switch assessment.Status {
	case model.AssessmentStatusPublished:
	case model.AssessmentStatusDraft:
		return nil, model.ErrAssessmentNotFound
	default:
		return nil, model.ErrAssessmentNotOpen
	}

	var resp dto.AssessmentDetailDTO
	if err := copier.Copy(&resp, assessment); err != nil {
		log.Error().Err(err).Str("publicID", publicID).Msg("GetByPublicID: failed to copy assessment to DTO")
		return nil, err
	}
	return &resp, nil
}
