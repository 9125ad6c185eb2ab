package service

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/rs/zerolog/log"

	"examsense/config"
	"examsense/internal/dto"
	"examsense/internal/model"
	"examsense/internal/repository"
)

// sessionRetryBackoff separates consecutive session-creation tries.
const sessionRetryBackoff = 200 * time.Millisecond

// AnalysisService orchestrates the optional behavioral-analysis session
// around an attempt: probe, create with retry, idempotent re-attach, and
// close-with-warning at finalization. Unless the operator configures the
// service as required, none of its failures may block the assessment flow.
type AnalysisService interface {
	CheckHealth() bool
	BootstrapSession(assessmentPublicID string, req dto.BootstrapSessionRequest, ipAddress string) (*dto.SessionBootstrapDTO, error)
	RetrySession(assessmentPublicID string, req dto.BootstrapSessionRequest) (*dto.SessionBootstrapDTO, error)
	EndSessionForAttempt(attempt *model.AttemptRecord) string
}

type analysisService struct {
	client         AnalysisClient
	assessmentRepo repository.AssessmentRepository
	attemptRepo    repository.AttemptRepository
	cfg            *config.Config
}

// NewAnalysisService creates a new instance of AnalysisService.
func NewAnalysisService(
	client AnalysisClient,
	assessmentRepo repository.AssessmentRepository,
	attemptRepo repository.AttemptRepository,
	cfg *config.Config,
) AnalysisService {
	return &analysisService{
		client:         client,
		assessmentRepo: assessmentRepo,
		attemptRepo:    attemptRepo,
		cfg:            cfg,
	}
}

// CheckHealth probes the analysis service with a short timeout. Probe
// failures are logged and reported as unavailable, never raised.
func (s *analysisService) CheckHealth() bool {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Analysis.HealthTimeout)
	defer cancel()

	healthy, err := s.client.Health(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("CheckHealth: analysis service probe failed")
		return false
	}
	return healthy
}

// BootstrapSession registers the participant's attempt before any answers
// exist and tries to attach an analysis session to it. When the analysis
// service is down the outcome depends on the required/optional policy: with
// ANALYSIS_REQUIRED the call fails and no placeholder is created, otherwise
// the placeholder is created anyway and the response carries a warning.
func (s *analysisService) BootstrapSession(assessmentPublicID string, req dto.BootstrapSessionRequest, ipAddress string) (*dto.SessionBootstrapDTO, error) {
	assessment, err := s.assessmentRepo.FindByPublicID(assessmentPublicID)
	if err != nil {
		log.Error().Err(err).Str("publicID", assessmentPublicID).Msg("BootstrapSession: assessment lookup failed")
		return nil, err
	}
	if !assessment.AcceptingSubmissions(time.Now()) {
		return nil, model.ErrAssessmentNotOpen
	}

	existing, err := s.attemptRepo.FindByAssessmentAndParticipant(assessment.ID, req.ParticipantID)
	if err != nil && !errors.Is(err, model.ErrAttemptNotFound) {
		log.Error().Err(err).Uint("assessmentID", assessment.ID).Msg("BootstrapSession: attempt lookup failed")
		return nil, err
	}
	if existing != nil {
		if existing.Finalized() {
			return nil, model.ErrAlreadySubmitted
		}
		return s.ensureSession(existing, req.ParticipantID, assessmentPublicID)
	}

	sessionID, sessionErr := s.openSession(req.ParticipantID, assessmentPublicID)
	if sessionErr != nil && s.cfg.Analysis.Required {
		log.Error().Err(sessionErr).Str("participantID", req.ParticipantID).Msg("BootstrapSession: analysis session is required but could not be created")
		return nil, sessionErr
	}

	startedAt := time.Now()
	if req.StartedAt != nil && !req.StartedAt.IsZero() {
		startedAt = *req.StartedAt
	}

	placeholder := model.NewPlaceholderAttempt(assessment.ID, req.ParticipantID, req.ParticipantName, ipAddress, startedAt)
	if sessionErr == nil {
		placeholder.AnalysisSessionID = &sessionID
	}

	if createErr := s.attemptRepo.Create(placeholder); createErr != nil {
		if errors.Is(createErr, model.ErrAlreadySubmitted) {
			// Lost a create race for the same pair; fall back to the row that won.
			if sessionErr == nil {
				s.closeSession(sessionID)
			}
			survivor, findErr := s.attemptRepo.FindByAssessmentAndParticipant(assessment.ID, req.ParticipantID)
			if findErr != nil {
				return nil, createErr
			}
			if survivor.Finalized() {
				return nil, model.ErrAlreadySubmitted
			}
			return s.ensureSession(survivor, req.ParticipantID, assessmentPublicID)
		}
		log.Error().Err(createErr).Uint("assessmentID", assessment.ID).Msg("BootstrapSession: failed to create placeholder attempt")
		return nil, createErr
	}

	resp := &dto.SessionBootstrapDTO{AttemptID: placeholder.ID, Message: "attempt registered"}
	if sessionErr == nil {
		resp.SessionID = &sessionID
		resp.Message = "analysis session created"
	} else {
		resp.Warning = analysisWarning(sessionErr)
	}
	return resp, nil
}

// RetrySession re-attempts session creation for an existing placeholder.
// With a session already attached it returns that id without touching the
// external service again.
func (s *analysisService) RetrySession(assessmentPublicID string, req dto.BootstrapSessionRequest) (*dto.SessionBootstrapDTO, error) {
	assessment, err := s.assessmentRepo.FindByPublicID(assessmentPublicID)
	if err != nil {
		log.Error().Err(err).Str("publicID", assessmentPublicID).Msg("RetrySession: assessment lookup failed")
		return nil, err
	}
	if !assessment.AcceptingSubmissions(time.Now()) {
		return nil, model.ErrAssessmentNotOpen
	}

	attempt, err := s.attemptRepo.FindByAssessmentAndParticipant(assessment.ID, req.ParticipantID)
	if err != nil {
		return nil, err
	}
	if attempt.Finalized() {
		return nil, model.ErrAlreadySubmitted
	}
	return s.ensureSession(attempt, req.ParticipantID, assessmentPublicID)
}

// EndSessionForAttempt closes the attempt's analysis session if one is
// attached. The attempt is already durably finalized when this runs, so any
// failure is downgraded to a warning for the response and never propagated.
func (s *analysisService) EndSessionForAttempt(attempt *model.AttemptRecord) string {
	if attempt.AnalysisSessionID == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Analysis.CallTimeout)
	defer cancel()

	if err := s.client.EndSession(ctx, *attempt.AnalysisSessionID); err != nil {
		log.Warn().Err(err).Uint("attemptID", attempt.ID).Str("sessionID", *attempt.AnalysisSessionID).Msg("EndSessionForAttempt: failed to close analysis session")
		return "analysis session could not be closed"
	}
	return ""
}

// ensureSession reuses the placeholder's session when one is attached,
// otherwise opens a new one and attaches it.
func (s *analysisService) ensureSession(attempt *model.AttemptRecord, participantID, assessmentPublicID string) (*dto.SessionBootstrapDTO, error) {
	if attempt.AnalysisSessionID != nil {
		return &dto.SessionBootstrapDTO{
			AttemptID: attempt.ID,
			SessionID: attempt.AnalysisSessionID,
			Message:   "analysis session already active",
		}, nil
	}

	sessionID, err := s.openSession(participantID, assessmentPublicID)
	if err != nil {
		if s.cfg.Analysis.Required {
			return nil, err
		}
		return &dto.SessionBootstrapDTO{
			AttemptID: attempt.ID,
			Message:   "attempt registered",
			Warning:   analysisWarning(err),
		}, nil
	}

	if err := s.attemptRepo.AttachAnalysisSession(attempt.ID, sessionID); err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("ensureSession: failed to attach analysis session")
		s.closeSession(sessionID)
		return nil, err
	}
	return &dto.SessionBootstrapDTO{
		AttemptID: attempt.ID,
		SessionID: &sessionID,
		Message:   "analysis session created",
	}, nil
}

// openSession health-checks the analysis service and then creates a session,
// retrying the creation a configured number of times.
func (s *analysisService) openSession(participantID, assessmentPublicID string) (string, error) {
	if !s.CheckHealth() {
		return "", model.ErrAnalysisUnavailable
	}

	var lastErr error
	for try := 0; try <= s.cfg.Analysis.Retries; try++ {
		if try > 0 {
			time.Sleep(sessionRetryBackoff)
		}

		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Analysis.CallTimeout)
		sessionID, err := s.client.StartSession(ctx, participantID, assessmentPublicID)
		cancel()
		if err == nil {
			return sessionID, nil
		}
		lastErr = err
		log.Warn().Err(err).Int("try", try+1).Str("participantID", participantID).Msg("openSession: analysis session creation failed")
	}
	return "", classifyAnalysisError(lastErr)
}

// closeSession discards a session that never made it onto an attempt.
func (s *analysisService) closeSession(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Analysis.CallTimeout)
	defer cancel()
	if err := s.client.EndSession(ctx, sessionID); err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("closeSession: failed to discard orphaned analysis session")
	}
}

func classifyAnalysisError(err error) error {
	if err == nil {
		return model.ErrAnalysisUnavailable
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return model.ErrAnalysisTimeout
	}
	return model.ErrAnalysisUnavailable
}

func analysisWarning(err error) string {
	if errors.Is(err, model.ErrAnalysisTimeout) {
		return "analysis service timed out; continuing without behavioral analysis"
	}
	return "analysis service unavailable; continuing without behavioral analysis"
}
