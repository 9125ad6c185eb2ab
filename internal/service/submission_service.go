package service

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"examsense/internal/dto"
	"examsense/internal/model"
	"examsense/internal/repository"
	"examsense/internal/scoring"
)

// SubmissionService sequences a participant's submission: validate,
// normalize, score, commit the attempt, then run the best-effort side
// effects (closing the analysis session, persisting snapshot and timeline,
// stopping the stream consumer).
type SubmissionService interface {
	CanSubmit(assessmentPublicID, participantID string) (*dto.CanSubmitResponse, error)
	Submit(assessmentPublicID string, req dto.SubmitAttemptRequest, ipAddress string) (*dto.SubmissionResultDTO, error)
	GetAttempt(attemptID uint) (*dto.AttemptDetailDTO, error)
}

type submissionService struct {
	assessmentRepo  repository.AssessmentRepository
	attemptRepo     repository.AttemptRepository
	snapshotRepo    repository.SnapshotRepository
	analysisService AnalysisService
	timelineService TimelineService
	streams         StreamRegistry
}

// NewSubmissionService creates a new instance of SubmissionService.
func NewSubmissionService(
	assessmentRepo repository.AssessmentRepository,
	attemptRepo repository.AttemptRepository,
	snapshotRepo repository.SnapshotRepository,
	analysisService AnalysisService,
	timelineService TimelineService,
	streams StreamRegistry,
) SubmissionService {
	return &submissionService{
		assessmentRepo:  assessmentRepo,
		attemptRepo:     attemptRepo,
		snapshotRepo:    snapshotRepo,
		analysisService: analysisService,
		timelineService: timelineService,
		streams:         streams,
	}
}

// CanSubmit is the advisory pre-flight duplicate check. The storage unique
// index stays authoritative; a race after a true answer still conflicts at
// finalization.
func (s *submissionService) CanSubmit(assessmentPublicID, participantID string) (*dto.CanSubmitResponse, error) {
	assessment, err := s.assessmentRepo.FindByPublicID(assessmentPublicID)
	if err != nil {
		log.Error().Err(err).Str("publicID", assessmentPublicID).Msg("CanSubmit: assessment lookup failed")
		return nil, err
	}
	if assessment.AllowMultipleSubmissions {
		return &dto.CanSubmitResponse{CanSubmit: true}, nil
	}

	attempt, err := s.attemptRepo.FindByAssessmentAndParticipant(assessment.ID, participantID)
	if errors.Is(err, model.ErrAttemptNotFound) {
		return &dto.CanSubmitResponse{CanSubmit: true}, nil
	}
	if err != nil {
		log.Error().Err(err).Uint("assessmentID", assessment.ID).Msg("CanSubmit: attempt lookup failed")
		return nil, err
	}
	if attempt.Finalized() {
		return &dto.CanSubmitResponse{CanSubmit: false, Reason: "an attempt for this assessment has already been submitted"}, nil
	}
	return &dto.CanSubmitResponse{CanSubmit: true}, nil
}

// Submit validates and scores the participant's answers, finalizes the
// attempt exactly once, and reports the result. A placeholder created during
// analysis bootstrap is finalized in place; otherwise the record is created
// already finalized.
func (s *submissionService) Submit(assessmentPublicID string, req dto.SubmitAttemptRequest, ipAddress string) (*dto.SubmissionResultDTO, error) {
	assessment, err := s.assessmentRepo.FindByPublicID(assessmentPublicID)
	if err != nil {
		log.Error().Err(err).Str("publicID", assessmentPublicID).Msg("Submit: assessment lookup failed")
		return nil, err
	}
	if !assessment.AcceptingSubmissions(time.Now()) {
		return nil, model.ErrAssessmentNotOpen
	}

	if missing := scoring.MissingQuestions(assessment.Questions, req.Answers); len(missing) > 0 {
		return nil, &model.ValidationError{MissingQuestionIDs: missing}
	}
	answers := scoring.NormalizeAll(req.Answers)
	score := scoring.Score(assessment.Questions, answers)

	placeholder, err := s.attemptRepo.FindByAssessmentAndParticipant(assessment.ID, req.ParticipantID)
	if err != nil && !errors.Is(err, model.ErrAttemptNotFound) {
		log.Error().Err(err).Uint("assessmentID", assessment.ID).Msg("Submit: attempt lookup failed")
		return nil, err
	}
	if placeholder != nil && placeholder.Finalized() {
		return nil, model.ErrAlreadySubmitted
	}

	attempt, warning, err := s.finalize(assessment, placeholder, req, answers, score, ipAddress)
	if err != nil {
		return nil, err
	}

	log.Info().Uint("attemptID", attempt.ID).Uint("assessmentID", assessment.ID).Float64("score", attempt.Score).Msg("Submit: attempt finalized")
	return &dto.SubmissionResultDTO{
		AttemptID:        attempt.ID,
		Score:            attempt.Score,
		SubmittedAt:      attempt.SubmittedAt,
		TotalTimeSeconds: attempt.TotalTimeSeconds,
		Warning:          warning,
	}, nil
}

// GetAttempt returns the full view of one attempt.
func (s *submissionService) GetAttempt(attemptID uint) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetAttempt: attempt lookup failed")
		return nil, err
	}

	var resp dto.AttemptDetailDTO
	if err := copier.Copy(&resp, attempt); err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetAttempt: failed to copy attempt to DTO")
		return nil, err
	}

	if assessment, err := s.assessmentRepo.FindByID(attempt.AssessmentID); err == nil {
		resp.AssessmentTitle = assessment.Title
	} else {
		log.Warn().Err(err).Uint("assessmentID", attempt.AssessmentID).Msg("GetAttempt: could not resolve assessment title")
	}

	if summary, err := s.timelineService.EventSummary(attemptID); err == nil && len(summary) > 0 {
		resp.TimelineSummary = summary
	} else if err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("GetAttempt: could not summarize timeline")
	}
	return &resp, nil
}

// finalize commits the attempt through whichever storage path applies and
// then runs the side effects shared by both. By the time the side effects
// run the attempt is durable; none of them may fail the submission.
func (s *submissionService) finalize(assessment *model.Assessment, placeholder *model.AttemptRecord, req dto.SubmitAttemptRequest, answers map[string]string, score float64, ipAddress string) (*model.AttemptRecord, string, error) {
	submittedAt := resolveSubmittedAt(req.SubmittedAt, time.Now().UTC())
	stored := answersJSONMap(answers)

	var attempt *model.AttemptRecord
	if placeholder != nil {
		startedAt := resolveStartedAt(req.StartedAt, placeholder, submittedAt)
		name := req.ParticipantName
		if name == "" {
			name = placeholder.ParticipantName
		}
		fin := repository.AttemptFinalization{
			ParticipantName:  name,
			Answers:          stored,
			Score:            score,
			IPAddress:        ipAddress,
			StartedAt:        startedAt,
			SubmittedAt:      submittedAt,
			TotalTimeSeconds: model.ElapsedSeconds(startedAt, submittedAt),
		}
		if err := s.attemptRepo.FinalizePlaceholder(placeholder.ID, fin); err != nil {
			log.Error().Err(err).Uint("attemptID", placeholder.ID).Msg("Submit: failed to finalize placeholder attempt")
			return nil, "", err
		}
		attempt = placeholder
		attempt.State = model.AttemptStateFinalized
		attempt.ParticipantName = fin.ParticipantName
		attempt.Answers = fin.Answers
		attempt.Score = fin.Score
		attempt.IPAddress = fin.IPAddress
		attempt.StartedAt = fin.StartedAt
		attempt.SubmittedAt = fin.SubmittedAt
		attempt.TotalTimeSeconds = fin.TotalTimeSeconds
	} else {
		startedAt := resolveStartedAt(req.StartedAt, nil, submittedAt)
		attempt = model.NewFinalizedAttempt(assessment.ID, req.ParticipantID, req.ParticipantName, ipAddress, stored, score, startedAt, submittedAt)
		if err := s.attemptRepo.Create(attempt); err != nil {
			log.Error().Err(err).Uint("assessmentID", assessment.ID).Msg("Submit: failed to create finalized attempt")
			return nil, "", err
		}
	}

	warning := s.analysisService.EndSessionForAttempt(attempt)
	s.storeSnapshot(attempt.ID, req)
	if n := s.timelineService.RecordTimeline(attempt.ID, req.Timeline); n > 0 {
		log.Info().Uint("attemptID", attempt.ID).Int("events", n).Msg("Submit: stored interaction timeline")
	}
	go s.streams.Stop(attempt.ID)

	return attempt, warning, nil
}

// storeSnapshot keeps the raw interaction payloads alongside the attempt.
func (s *submissionService) storeSnapshot(attemptID uint, req dto.SubmitAttemptRequest) {
	if len(req.Timeline) == 0 && len(req.VoiceLog) == 0 && len(req.DeviceTest) == 0 {
		return
	}

	snapshot := &model.InteractionSnapshot{
		AttemptRecordID: attemptID,
		VoiceLog:        datatypes.JSON(req.VoiceLog),
		DeviceTest:      datatypes.JSON(req.DeviceTest),
	}
	if len(req.Timeline) > 0 {
		raw, err := json.Marshal(req.Timeline)
		if err != nil {
			log.Warn().Err(err).Uint("attemptID", attemptID).Msg("Submit: could not marshal timeline snapshot")
		} else {
			snapshot.Timeline = datatypes.JSON(raw)
		}
	}

	if err := s.snapshotRepo.Upsert(snapshot); err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Submit: failed to store interaction snapshot")
	}
}

// resolveSubmittedAt bounds the client-reported submission instant by the
// server clock. Absent, epoch, or future-dated reports collapse to the
// server time.
func resolveSubmittedAt(reported *time.Time, now time.Time) time.Time {
	if reported != nil && !reported.IsZero() && !reported.Equal(model.SubmittedAtSentinel) && !reported.After(now) {
		return reported.UTC()
	}
	return now
}

// resolveStartedAt picks the attempt start in order of trust: the
// client-reported instant, the placeholder's recorded start, then the
// finalization instant itself (elapsed time collapses to zero).
func resolveStartedAt(reported *time.Time, placeholder *model.AttemptRecord, submittedAt time.Time) time.Time {
	if reported != nil && !reported.IsZero() && !reported.Equal(model.SubmittedAtSentinel) {
		return reported.UTC()
	}
	if placeholder != nil && placeholder.HasValidStartedAt() {
		return placeholder.StartedAt
	}
	return submittedAt
}

func answersJSONMap(answers map[string]string) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(answers))
	for k, v := range answers {
		out[k] = v
	}
	return out
}
