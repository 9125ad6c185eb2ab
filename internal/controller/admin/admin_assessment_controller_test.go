package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"examsense/internal/dto"
	"examsense/internal/model"
)

type stubAdminService struct {
	detail    *dto.AdminAssessmentDTO
	summaries []dto.AdminAssessmentSummaryDTO
	attempts  []dto.AttemptSummaryDTO
	err       error
}

func (s *stubAdminService) CreateAssessment(req dto.AssessmentCreateDTO) (*dto.AdminAssessmentDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

func (s *stubAdminService) PublishAssessment(id uint) (*dto.AdminAssessmentDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

func (s *stubAdminService) ListAssessments() ([]dto.AdminAssessmentSummaryDTO, error) {
	return s.summaries, s.err
}

func (s *stubAdminService) ListAttempts(assessmentID uint) ([]dto.AttemptSummaryDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.attempts, nil
}

func newTestRouter(svc *stubAdminService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewAdminAssessmentController(svc)
	ctrl.RegisterRoutes(router.Group("/api/v1/admin"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

const validCreateBody = `{
	"title": "Safety briefing check",
	"duration_minutes": 15,
	"questions": [
		{"title": "Pick one", "type": "single_choice", "options": [{"key": "A", "label": "Yes", "score": 100}]}
	]
}`

func TestCreateAssessment(t *testing.T) {
	svc := &stubAdminService{detail: &dto.AdminAssessmentDTO{ID: 1, Title: "Safety briefing check", Status: "draft"}}
	router := newTestRouter(svc)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/admin/assessments", validCreateBody)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out dto.AdminAssessmentDTO
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Status != "draft" {
		t.Fatalf("status=%q", out.Status)
	}
}

func TestCreateAssessmentRejectsBadInput(t *testing.T) {
	// Binding: questions requires min=1.
	router := newTestRouter(&stubAdminService{})
	rr := doJSON(t, router, http.MethodPost, "/api/v1/admin/assessments", `{"title":"Empty","questions":[]}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("empty questions: status=%d body=%s", rr.Code, rr.Body.String())
	}

	// Service-level validation maps to 400 as well.
	router = newTestRouter(&stubAdminService{err: model.NewValidationError("duplicate question order 1")})
	rr = doJSON(t, router, http.MethodPost, "/api/v1/admin/assessments", validCreateBody)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("service validation: status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out dto.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Message != "duplicate question order 1" {
		t.Fatalf("message=%q", out.Message)
	}
}

func TestPublishAssessment(t *testing.T) {
	svc := &stubAdminService{detail: &dto.AdminAssessmentDTO{ID: 1, Status: "published"}}
	router := newTestRouter(svc)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/admin/assessments/1/publish", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, router, http.MethodPost, "/api/v1/admin/assessments/one/publish", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id: status=%d", rr.Code)
	}

	router = newTestRouter(&stubAdminService{err: model.ErrInvalidTransition})
	rr = doJSON(t, router, http.MethodPost, "/api/v1/admin/assessments/1/publish", "")
	if rr.Code != http.StatusConflict {
		t.Fatalf("republish: status=%d body=%s", rr.Code, rr.Body.String())
	}

	router = newTestRouter(&stubAdminService{err: model.ErrAssessmentNotFound})
	rr = doJSON(t, router, http.MethodPost, "/api/v1/admin/assessments/999/publish", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("missing: status=%d", rr.Code)
	}
}

func TestListAttempts(t *testing.T) {
	svc := &stubAdminService{attempts: []dto.AttemptSummaryDTO{
		{ID: 2, ParticipantID: "p-1", Score: 80},
	}}
	router := newTestRouter(svc)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/admin/assessments/1/attempts", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out []dto.AttemptSummaryDTO
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].ParticipantID != "p-1" {
		t.Fatalf("unexpected attempts: %+v", out)
	}

	router = newTestRouter(&stubAdminService{err: model.ErrAssessmentNotFound})
	rr = doJSON(t, router, http.MethodGet, "/api/v1/admin/assessments/999/attempts", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("missing assessment: status=%d", rr.Code)
	}
}

func TestListAssessments(t *testing.T) {
	svc := &stubAdminService{summaries: []dto.AdminAssessmentSummaryDTO{
		{ID: 1, Title: "Safety briefing check", Status: "draft"},
		{ID: 2, Title: "Onboarding quiz", Status: "published"},
	}}
	router := newTestRouter(svc)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/admin/assessments", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out []dto.AdminAssessmentSummaryDTO
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("unexpected summaries: %+v", out)
	}
}

func TestAdminInternalErrorResponseStaysGeneric(t *testing.T) {
	svc := &stubAdminService{err: errors.New("dial tcp 10.0.0.5:5432: connection refused")}
	router := newTestRouter(svc)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/admin/assessments", "")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out dto.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Message != "Failed to retrieve assessments" {
		t.Fatalf("message=%q, want the generic fallback", out.Message)
	}
	if len(out.Details) != 0 {
		t.Fatalf("details=%v, internal error text must not reach the caller", out.Details)
	}
}
