package service

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"examsense/internal/dto"
	"examsense/internal/model"
	"examsense/internal/repository"
)

// AdminAssessmentService is the organizer-facing surface: authoring,
// publishing, and reading back finalized attempts.
type AdminAssessmentService interface {
	CreateAssessment(req dto.AssessmentCreateDTO) (*dto.AdminAssessmentDTO, error)
	PublishAssessment(id uint) (*dto.AdminAssessmentDTO, error)
	ListAssessments() ([]dto.AdminAssessmentSummaryDTO, error)
	ListAttempts(assessmentID uint) ([]dto.AttemptSummaryDTO, error)
}

type adminAssessmentService struct {
	assessmentRepo repository.AssessmentRepository
	attemptRepo    repository.AttemptRepository
}

func NewAdminAssessmentService(assessmentRepo repository.AssessmentRepository, attemptRepo repository.AttemptRepository) AdminAssessmentService {
	return &adminAssessmentService{assessmentRepo: assessmentRepo, attemptRepo: attemptRepo}
}

// CreateAssessment stores a draft with its full question set. The draft must
// be published before participants can see it.
func (s *adminAssessmentService) CreateAssessment(req dto.AssessmentCreateDTO) (*dto.AdminAssessmentDTO, error) {
	if len(req.Questions) == 0 {
		return nil, model.NewValidationError("an assessment needs at least one question")
	}
	if req.OpensAt != nil && req.ClosesAt != nil && !req.ClosesAt.After(*req.OpensAt) {
		return nil, model.NewValidationError("closes_at must be after opens_at")
	}

	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	assessment := model.Assessment{
		PublicID:                 uuid.NewString(),
		Title:                    req.Title,
		Description:              req.Description,
		Status:                   model.AssessmentStatusDraft,
		DurationMinutes:          req.DurationMinutes,
		OpensAt:                  req.OpensAt,
		ClosesAt:                 req.ClosesAt,
		AllowMultipleSubmissions: req.AllowMultipleSubmissions,
		Questions:                questions,
	}

	if err := s.assessmentRepo.Create(&assessment); err != nil {
		log.Error().Err(err).Msg("CreateAssessment: failed to create assessment")
		return nil, err
	}
	return s.adminDetail(assessment.ID)
}

// PublishAssessment moves a draft to published. Any other starting status is
// rejected; publication is one-way.
func (s *adminAssessmentService) PublishAssessment(id uint) (*dto.AdminAssessmentDTO, error) {
	assessment, err := s.assessmentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if assessment.Status != model.AssessmentStatusDraft {
		return nil, model.ErrInvalidTransition
	}

	if err := s.assessmentRepo.UpdateStatus(id, model.AssessmentStatusPublished); err != nil {
		log.Error().Err(err).Uint("assessmentID", id).Msg("PublishAssessment: failed to update status")
		return nil, err
	}
	log.Info().Uint("assessmentID", id).Str("publicID", assessment.PublicID).Msg("PublishAssessment: assessment published")
	return s.adminDetail(id)
}

func (s *adminAssessmentService) ListAssessments() ([]dto.AdminAssessmentSummaryDTO, error) {
	rows, err := s.assessmentRepo.FindAllWithQuestionCount("")
	if err != nil {
		log.Error().Err(err).Msg("ListAssessments: failed to list assessments")
		return nil, err
	}

	summaries := make([]dto.AdminAssessmentSummaryDTO, 0, len(rows))
	for _, row := range rows {
		var summary dto.AdminAssessmentSummaryDTO
		if err := copier.Copy(&summary, &row); err != nil {
			log.Error().Err(err).Uint("assessmentID", row.ID).Msg("ListAssessments: failed to copy assessment to DTO")
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// ListAttempts returns the finalized attempts for one assessment, most
// recent first. Placeholders are excluded; they carry no answers yet.
func (s *adminAssessmentService) ListAttempts(assessmentID uint) ([]dto.AttemptSummaryDTO, error) {
	if _, err := s.assessmentRepo.FindByID(assessmentID); err != nil {
		return nil, err
	}

	attempts, err := s.attemptRepo.FindFinalizedByAssessment(assessmentID)
	if err != nil {
		log.Error().Err(err).Uint("assessmentID", assessmentID).Msg("ListAttempts: failed to list attempts")
		return nil, err
	}

	summaries := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.AttemptSummaryDTO
		if err := copier.Copy(&summary, &attempt); err != nil {
			log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("ListAttempts: failed to copy attempt to DTO")
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *adminAssessmentService) adminDetail(id uint) (*dto.AdminAssessmentDTO, error) {
	assessment, err := s.assessmentRepo.FindByIDWithQuestions(id)
	if err != nil {
		log.Error().Err(err).Uint("assessmentID", id).Msg("adminDetail: failed to reload assessment")
		return nil, err
	}
	var resp dto.AdminAssessmentDTO
	if err := copier.Copy(&resp, assessment); err != nil {
		log.Error().Err(err).Uint("assessmentID", id).Msg("adminDetail: failed to copy assessment to DTO")
		return nil, err
	}
	return &resp, nil
}

// buildQuestions validates and converts the authoring DTOs. Zero order
// values are assigned from the request order; required/scored default to
// true.
func buildQuestions(reqs []dto.QuestionCreateDTO) ([]model.Question, error) {
	questions := make([]model.Question, 0, len(reqs))
	seenOrder := make(map[int]bool, len(reqs))

	for i, qReq := range reqs {
		order := qReq.OrderInAssessment
		if order == 0 {
			order = i + 1
		}
		if seenOrder[order] {
			return nil, model.NewValidationError("duplicate question order %d", order)
		}
		seenOrder[order] = true

		needsOptions := qReq.Type == model.QuestionTypeSingleChoice || qReq.Type == model.QuestionTypeMultipleChoice
		if needsOptions && len(qReq.Options) == 0 {
			return nil, model.NewValidationError("question %q of type %s needs at least one option", qReq.Title, qReq.Type)
		}

		options := make([]model.QuestionOption, 0, len(qReq.Options))
		seenKeys := make(map[string]bool, len(qReq.Options))
		for j, oReq := range qReq.Options {
			if oReq.Key == "" {
				return nil, model.NewValidationError("question %q has an option with an empty key", qReq.Title)
			}
			if seenKeys[oReq.Key] {
				return nil, model.NewValidationError("question %q repeats option key %q", qReq.Title, oReq.Key)
			}
			seenKeys[oReq.Key] = true

			optionOrder := oReq.OrderInQuestion
			if optionOrder == 0 {
				optionOrder = j + 1
			}
			options = append(options, model.QuestionOption{
				Key:             oReq.Key,
				Label:           oReq.Label,
				Score:           oReq.Score,
				OrderInQuestion: optionOrder,
			})
		}

		question := model.Question{
			Title:             qReq.Title,
			Type:              qReq.Type,
			OrderInAssessment: order,
			IsRequired:        true,
			IsScored:          true,
			Options:           options,
		}
		if qReq.IsRequired != nil {
			question.IsRequired = *qReq.IsRequired
		}
		if qReq.IsScored != nil {
			question.IsScored = *qReq.IsScored
		}
		questions = append(questions, question)
	}
	return questions, nil
}
