package participant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"examsense/internal/dto"
	"examsense/internal/model"
	"examsense/internal/service"
)

type ParticipantController struct {
	assessmentService service.AssessmentService
	submissionService service.SubmissionService
	analysisService   service.AnalysisService
}

func NewParticipantController(
	assessmentService service.AssessmentService,
	submissionService service.SubmissionService,
	analysisService service.AnalysisService,
) *ParticipantController {
	return &ParticipantController{
		assessmentService: assessmentService,
		submissionService: submissionService,
		analysisService:   analysisService,
	}
}

// RegisterRoutes mounts the participant-facing endpoints on the given group.
func (c *ParticipantController) RegisterRoutes(api *gin.RouterGroup) {
	assessments := api.Group("/assessments")
	assessments.GET("", c.ListAssessments)
	assessments.GET("/:public_id", c.GetAssessment)
	assessments.POST("/:public_id/analysis-sessions", c.BootstrapSession)
	assessments.POST("/:public_id/analysis-sessions/retry", c.RetrySession)
	assessments.GET("/:public_id/can-submit", c.CanSubmit)
	assessments.POST("/:public_id/submissions", c.Submit)

	api.GET("/attempts/:attempt_id", c.GetAttempt)
}

// ListAssessments godoc
// @Summary List published assessments
// @Description Returns summaries of all assessments currently visible to participants.
// @Tags Participant - Assessments
// @Produce json
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments [get]
func (c *ParticipantController) ListAssessments(ctx *gin.Context) {
	assessments, err := c.assessmentService.ListPublished()
	if err != nil {
		log.Error().Err(err).Msg("ListAssessments: Service error")
		respondError(ctx, err, "Failed to retrieve assessments")
		return
	}
	ctx.JSON(http.StatusOK, assessments)
}

// GetAssessment godoc
// @Summary Get an assessment form
// @Description Returns the assessment with its ordered questions and options. Option scores are never included.
// @Tags Participant - Assessments
// @Produce json
// @Param public_id path string true "Assessment public ID"
// @Success 200 {object} dto.AssessmentDetailDTO
// @Failure 403 {object} dto.ErrorResponse "Assessment is closed or archived"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{public_id} [get]
func (c *ParticipantController) GetAssessment(ctx *gin.Context) {
	publicID := ctx.Param("public_id")

	assessment, err := c.assessmentService.GetByPublicID(publicID)
	if err != nil {
		log.Error().Err(err).Str("publicID", publicID).Msg("GetAssessment: Service error")
		respondError(ctx, err, "Failed to retrieve assessment")
		return
	}
	ctx.JSON(http.StatusOK, assessment)
}

// BootstrapSession godoc
// @Summary Register an attempt and open an analysis session
// @Description Creates a placeholder attempt for the participant and asks the behavioral
// @Description analysis service for a session. When the analysis service is optional and
// @Description unavailable the attempt is still registered and the response carries a warning.
// @Tags Participant - Analysis
// @Accept json
// @Produce json
// @Param public_id path string true "Assessment public ID"
// @Param request body dto.BootstrapSessionRequest true "Participant identity"
// @Success 200 {object} dto.SessionBootstrapDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Assessment is not open for submissions"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already submitted"
// @Failure 503 {object} dto.ErrorResponse "Analysis service required but unavailable"
// @Failure 504 {object} dto.ErrorResponse "Analysis service timed out"
// @Router /assessments/{public_id}/analysis-sessions [post]
func (c *ParticipantController) BootstrapSession(ctx *gin.Context) {
	publicID := ctx.Param("public_id")

	var req dto.BootstrapSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("BootstrapSession: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.analysisService.BootstrapSession(publicID, req, ctx.ClientIP())
	if err != nil {
		log.Error().Err(err).Str("publicID", publicID).Str("participantID", req.ParticipantID).Msg("BootstrapSession: Service error")
		respondError(ctx, err, "Failed to bootstrap analysis session")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// RetrySession godoc
// @Summary Retry opening an analysis session for an existing attempt
// @Description Re-attempts session creation after an earlier degraded bootstrap. Returns the
// @Description existing session untouched when one is already attached.
// @Tags Participant - Analysis
// @Accept json
// @Produce json
// @Param public_id path string true "Assessment public ID"
// @Param request body dto.BootstrapSessionRequest true "Participant identity"
// @Success 200 {object} dto.SessionBootstrapDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Assessment is not open for submissions"
// @Failure 404 {object} dto.ErrorResponse "No attempt registered for this participant"
// @Failure 409 {object} dto.ErrorResponse "Attempt already submitted"
// @Failure 503 {object} dto.ErrorResponse "Analysis service required but unavailable"
// @Failure 504 {object} dto.ErrorResponse "Analysis service timed out"
// @Router /assessments/{public_id}/analysis-sessions/retry [post]
func (c *ParticipantController) RetrySession(ctx *gin.Context) {
	publicID := ctx.Param("public_id")

	var req dto.BootstrapSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("RetrySession: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.analysisService.RetrySession(publicID, req)
	if err != nil {
		log.Error().Err(err).Str("publicID", publicID).Str("participantID", req.ParticipantID).Msg("RetrySession: Service error")
		respondError(ctx, err, "Failed to retry analysis session")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// CanSubmit godoc
// @Summary Check whether a participant may still submit
// @Description Advisory pre-flight check. The storage-level uniqueness guarantee remains
// @Description authoritative at submission time.
// @Tags Participant - Submissions
// @Produce json
// @Param public_id path string true "Assessment public ID"
// @Param participant_id query string true "Participant identifier"
// @Success 200 {object} dto.CanSubmitResponse
// @Failure 400 {object} dto.ErrorResponse "Missing participant_id"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{public_id}/can-submit [get]
func (c *ParticipantController) CanSubmit(ctx *gin.Context) {
	publicID := ctx.Param("public_id")
	participantID := ctx.Query("participant_id")
	if participantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "participant_id query parameter is required"})
		return
	}

	result, err := c.submissionService.CanSubmit(publicID, participantID)
	if err != nil {
		log.Error().Err(err).Str("publicID", publicID).Str("participantID", participantID).Msg("CanSubmit: Service error")
		respondError(ctx, err, "Failed to check submission eligibility")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Submit godoc
// @Summary Submit answers for an assessment
// @Description Scores the answers and finalizes the participant's attempt. The attempt
// @Description created at bootstrap is finalized in place; without one a finalized attempt
// @Description is created directly. A repeat submission returns 409.
// @Tags Participant - Submissions
// @Accept json
// @Produce json
// @Param public_id path string true "Assessment public ID"
// @Param submission body dto.SubmitAttemptRequest true "Answers plus optional interaction telemetry"
// @Success 201 {object} dto.SubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or unanswered questions"
// @Failure 403 {object} dto.ErrorResponse "Assessment is not open for submissions"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already submitted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{public_id}/submissions [post]
func (c *ParticipantController) Submit(ctx *gin.Context) {
	publicID := ctx.Param("public_id")

	var req dto.SubmitAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Submit: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.submissionService.Submit(publicID, req, ctx.ClientIP())
	if err != nil {
		log.Error().Err(err).Str("publicID", publicID).Str("participantID", req.ParticipantID).Msg("Submit: Service error")
		respondError(ctx, err, "Failed to submit attempt")
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetAttempt godoc
// @Summary Get a finalized or in-progress attempt
// @Description Returns the attempt with score, timing, stored answers, and a summary of
// @Description recorded interaction events.
// @Tags Participant - Submissions
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/{attempt_id} [get]
func (c *ParticipantController) GetAttempt(ctx *gin.Context) {
	idStr := ctx.Param("attempt_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid attempt ID format"})
		return
	}

	attempt, err := c.submissionService.GetAttempt(uint(id))
	if err != nil {
		log.Error().Err(err).Uint64("attemptID", id).Msg("GetAttempt: Service error")
		respondError(ctx, err, "Failed to retrieve attempt")
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// respondError maps service errors onto HTTP statuses. Unrecognized errors
// become a 500 with the fallback message so internals never leak verbatim.
func respondError(ctx *gin.Context, err error, fallback string) {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		resp := dto.ErrorResponse{Message: vErr.Error()}
		for _, id := range vErr.MissingQuestionIDs {
			resp.Details = append(resp.Details, fmt.Sprintf("question %d requires an answer", id))
		}
		ctx.JSON(http.StatusBadRequest, resp)
		return
	}

	switch {
	case errors.Is(err, model.ErrAssessmentNotFound), errors.Is(err, model.ErrAttemptNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrAssessmentNotOpen):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrAlreadySubmitted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrAnalysisUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrAnalysisTimeout), errors.Is(err, context.DeadlineExceeded):
		ctx.JSON(http.StatusGatewayTimeout, dto.ErrorResponse{Message: err.Error()})
	default:
		// Already logged with full context at the call site; the caller only
		// gets the generic retryable message.
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback})
	}
}
