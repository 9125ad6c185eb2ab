package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"examsense/internal/dto"
	"examsense/internal/model"
	"examsense/internal/service"
)

type AdminAssessmentController struct {
	adminService service.AdminAssessmentService
}

func NewAdminAssessmentController(adminService service.AdminAssessmentService) *AdminAssessmentController {
	return &AdminAssessmentController{adminService: adminService}
}

// RegisterRoutes mounts the organizer endpoints on the given group,
// conventionally /api/v1/admin.
func (c *AdminAssessmentController) RegisterRoutes(api *gin.RouterGroup) {
	assessments := api.Group("/assessments")
	assessments.POST("", c.CreateAssessment)
	assessments.GET("", c.ListAssessments)
	assessments.POST("/:id/publish", c.PublishAssessment)
	assessments.GET("/:id/attempts", c.ListAttempts)
}

// CreateAssessment godoc
// @Summary (Admin) Create a new assessment draft
// @Description Creates an assessment with its full question and option set. The draft is
// @Description invisible to participants until published.
// @Tags Admin - Assessments
// @Accept json
// @Produce json
// @Param assessment body dto.AssessmentCreateDTO true "Assessment with questions and options"
// @Success 201 {object} dto.AdminAssessmentDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/assessments [post]
func (c *AdminAssessmentController) CreateAssessment(ctx *gin.Context) {
	var req dto.AssessmentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateAssessment: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	assessment, err := c.adminService.CreateAssessment(req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Admin CreateAssessment: Service error")
		respondError(ctx, err, "Failed to create assessment")
		return
	}
	ctx.JSON(http.StatusCreated, assessment)
}

// PublishAssessment godoc
// @Summary (Admin) Publish a draft assessment
// @Description Moves a draft to published, making it visible to participants. Only drafts
// @Description can be published.
// @Tags Admin - Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.AdminAssessmentDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Assessment is not a draft"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/assessments/{id}/publish [post]
func (c *AdminAssessmentController) PublishAssessment(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid assessment ID format"})
		return
	}

	assessment, err := c.adminService.PublishAssessment(uint(id))
	if err != nil {
		log.Error().Err(err).Uint64("assessmentID", id).Msg("Admin PublishAssessment: Service error")
		respondError(ctx, err, "Failed to publish assessment")
		return
	}
	ctx.JSON(http.StatusOK, assessment)
}

// ListAssessments godoc
// @Summary (Admin) List all assessments
// @Description Returns every assessment regardless of status, with question counts.
// @Tags Admin - Assessments
// @Produce json
// @Success 200 {array} dto.AdminAssessmentSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/assessments [get]
func (c *AdminAssessmentController) ListAssessments(ctx *gin.Context) {
	assessments, err := c.adminService.ListAssessments()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListAssessments: Service error")
		respondError(ctx, err, "Failed to retrieve assessments")
		return
	}
	ctx.JSON(http.StatusOK, assessments)
}

// ListAttempts godoc
// @Summary (Admin) List finalized attempts for an assessment
// @Description Returns finalized attempt summaries ordered by submission time, newest first.
// @Description Placeholder attempts are excluded.
// @Tags Admin - Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/assessments/{id}/attempts [get]
func (c *AdminAssessmentController) ListAttempts(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid assessment ID format"})
		return
	}

	attempts, err := c.adminService.ListAttempts(uint(id))
	if err != nil {
		log.Error().Err(err).Uint64("assessmentID", id).Msg("Admin ListAttempts: Service error")
		respondError(ctx, err, "Failed to retrieve attempts")
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

func respondError(ctx *gin.Context, err error, fallback string) {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: vErr.Error()})
		return
	}

	switch {
	case errors.Is(err, model.ErrAssessmentNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrInvalidTransition):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		// Already logged with full context at the call site; the caller only
		// gets the generic retryable message.
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback})
	}
}
