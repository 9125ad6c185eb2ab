package participant

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"examsense/internal/dto"
	"examsense/internal/model"
)

type stubAssessmentService struct {
	summaries []dto.AssessmentSummaryDTO
	detail    *dto.AssessmentDetailDTO
	err       error
}

func (s *stubAssessmentService) ListPublished() ([]dto.AssessmentSummaryDTO, error) {
	return s.summaries, s.err
}

func (s *stubAssessmentService) GetByPublicID(publicID string) (*dto.AssessmentDetailDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

type stubSubmissionService struct {
	canSubmit *dto.CanSubmitResponse
	result    *dto.SubmissionResultDTO
	attempt   *dto.AttemptDetailDTO
	err       error

	submitted dto.SubmitAttemptRequest
}

func (s *stubSubmissionService) CanSubmit(assessmentPublicID, participantID string) (*dto.CanSubmitResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.canSubmit, nil
}

func (s *stubSubmissionService) Submit(assessmentPublicID string, req dto.SubmitAttemptRequest, ipAddress string) (*dto.SubmissionResultDTO, error) {
	s.submitted = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubSubmissionService) GetAttempt(attemptID uint) (*dto.AttemptDetailDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.attempt, nil
}

type stubAnalysisService struct {
	bootstrap *dto.SessionBootstrapDTO
	err       error
}

func (s *stubAnalysisService) CheckHealth() bool { return true }

func (s *stubAnalysisService) BootstrapSession(assessmentPublicID string, req dto.BootstrapSessionRequest, ipAddress string) (*dto.SessionBootstrapDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bootstrap, nil
}

func (s *stubAnalysisService) RetrySession(assessmentPublicID string, req dto.BootstrapSessionRequest) (*dto.SessionBootstrapDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bootstrap, nil
}

func (s *stubAnalysisService) EndSessionForAttempt(attempt *model.AttemptRecord) string { return "" }

func newTestRouter(asvc *stubAssessmentService, ssvc *stubSubmissionService, ansvc *stubAnalysisService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewParticipantController(asvc, ssvc, ansvc)
	ctrl.RegisterRoutes(router.Group("/api/v1"))
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

func TestSubmitReturnsCreated(t *testing.T) {
	submittedAt := time.Date(2024, 5, 10, 9, 31, 30, 0, time.UTC)
	ssvc := &stubSubmissionService{result: &dto.SubmissionResultDTO{
		AttemptID:        7,
		Score:            85,
		SubmittedAt:      submittedAt,
		TotalTimeSeconds: 90,
	}}
	router := newTestRouter(&stubAssessmentService{}, ssvc, &stubAnalysisService{})

	rr := doJSON(t, router, http.MethodPost, "/api/v1/assessments/pub-1/submissions",
		`{"participant_id":"p-1","participant_name":"Dana","answers":{"1":"A"}}`)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out dto.SubmissionResultDTO
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.AttemptID != 7 || out.Score != 85 {
		t.Fatalf("unexpected result: %+v", out)
	}
	if ssvc.submitted.ParticipantID != "p-1" {
		t.Fatalf("service received participant %q", ssvc.submitted.ParticipantID)
	}
}

func TestSubmitRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(&stubAssessmentService{}, &stubSubmissionService{}, &stubAnalysisService{})

	// participant_id and answers are required bindings.
	rr := doJSON(t, router, http.MethodPost, "/api/v1/assessments/pub-1/submissions",
		`{"participant_name":"Dana"}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out dto.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Message != "Invalid request body" {
		t.Fatalf("message=%q", out.Message)
	}
}

func TestSubmitErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &model.ValidationError{MissingQuestionIDs: []uint{2}}, http.StatusBadRequest},
		{"not found", model.ErrAssessmentNotFound, http.StatusNotFound},
		{"not open", model.ErrAssessmentNotOpen, http.StatusForbidden},
		{"already submitted", model.ErrAlreadySubmitted, http.StatusConflict},
		{"unexpected", errors.New("write failed"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&stubAssessmentService{}, &stubSubmissionService{err: tc.err}, &stubAnalysisService{})

			rr := doJSON(t, router, http.MethodPost, "/api/v1/assessments/pub-1/submissions",
				`{"participant_id":"p-1","answers":{"1":"A"}}`)

			if rr.Code != tc.want {
				t.Fatalf("status=%d want %d body=%s", rr.Code, tc.want, rr.Body.String())
			}
		})
	}
}

func TestSubmitValidationDetailsListQuestions(t *testing.T) {
	ssvc := &stubSubmissionService{err: &model.ValidationError{MissingQuestionIDs: []uint{2, 5}}}
	router := newTestRouter(&stubAssessmentService{}, ssvc, &stubAnalysisService{})

	rr := doJSON(t, router, http.MethodPost, "/api/v1/assessments/pub-1/submissions",
		`{"participant_id":"p-1","answers":{"1":"A"}}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out dto.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Details) != 2 || out.Details[0] != "question 2 requires an answer" {
		t.Fatalf("details=%v", out.Details)
	}
}

func TestBootstrapSessionStatusCodes(t *testing.T) {
	sessionID := "sess-9"
	cases := []struct {
		name string
		svc  *stubAnalysisService
		want int
	}{
		{"created", &stubAnalysisService{bootstrap: &dto.SessionBootstrapDTO{AttemptID: 3, SessionID: &sessionID, Message: "analysis session created"}}, http.StatusOK},
		{"degraded required", &stubAnalysisService{err: model.ErrAnalysisUnavailable}, http.StatusServiceUnavailable},
		{"timeout", &stubAnalysisService{err: model.ErrAnalysisTimeout}, http.StatusGatewayTimeout},
		{"already submitted", &stubAnalysisService{err: model.ErrAlreadySubmitted}, http.StatusConflict},
		{"closed window", &stubAnalysisService{err: model.ErrAssessmentNotOpen}, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&stubAssessmentService{}, &stubSubmissionService{}, tc.svc)

			rr := doJSON(t, router, http.MethodPost, "/api/v1/assessments/pub-1/analysis-sessions",
				`{"participant_id":"p-1"}`)

			if rr.Code != tc.want {
				t.Fatalf("status=%d want %d body=%s", rr.Code, tc.want, rr.Body.String())
			}
			if tc.want == http.StatusOK {
				var out dto.SessionBootstrapDTO
				if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if out.SessionID == nil || *out.SessionID != "sess-9" {
					t.Fatalf("session=%v", out.SessionID)
				}
			}
		})
	}
}

func TestRetrySessionWithoutAttemptIsNotFound(t *testing.T) {
	router := newTestRouter(&stubAssessmentService{}, &stubSubmissionService{}, &stubAnalysisService{err: model.ErrAttemptNotFound})

	rr := doJSON(t, router, http.MethodPost, "/api/v1/assessments/pub-1/analysis-sessions/retry",
		`{"participant_id":"p-1"}`)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCanSubmitRequiresParticipantID(t *testing.T) {
	ssvc := &stubSubmissionService{canSubmit: &dto.CanSubmitResponse{CanSubmit: true}}
	router := newTestRouter(&stubAssessmentService{}, ssvc, &stubAnalysisService{})

	rr := doJSON(t, router, http.MethodGet, "/api/v1/assessments/pub-1/can-submit", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("missing participant_id: status=%d", rr.Code)
	}

	rr = doJSON(t, router, http.MethodGet, "/api/v1/assessments/pub-1/can-submit?participant_id=p-1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out dto.CanSubmitResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.CanSubmit {
		t.Fatalf("expected can_submit=true, body=%s", rr.Body.String())
	}
}

func TestGetAssessmentVisibility(t *testing.T) {
	detail := &dto.AssessmentDetailDTO{PublicID: "pub-1", Title: "Safety briefing check"}

	router := newTestRouter(&stubAssessmentService{detail: detail}, &stubSubmissionService{}, &stubAnalysisService{})
	rr := doJSON(t, router, http.MethodGet, "/api/v1/assessments/pub-1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	router = newTestRouter(&stubAssessmentService{err: model.ErrAssessmentNotFound}, &stubSubmissionService{}, &stubAnalysisService{})
	rr = doJSON(t, router, http.MethodGet, "/api/v1/assessments/draft-1", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("draft: status=%d", rr.Code)
	}

	router = newTestRouter(&stubAssessmentService{err: model.ErrAssessmentNotOpen}, &stubSubmissionService{}, &stubAnalysisService{})
	rr = doJSON(t, router, http.MethodGet, "/api/v1/assessments/archived-1", "")
	if rr.Code != http.StatusForbidden {
		t.Fatalf("archived: status=%d", rr.Code)
	}
}

func TestGetAttemptPathValidation(t *testing.T) {
	ssvc := &stubSubmissionService{attempt: &dto.AttemptDetailDTO{ID: 7, State: "finalized"}}
	router := newTestRouter(&stubAssessmentService{}, ssvc, &stubAnalysisService{})

	rr := doJSON(t, router, http.MethodGet, "/api/v1/attempts/seven", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id: status=%d", rr.Code)
	}

	rr = doJSON(t, router, http.MethodGet, "/api/v1/attempts/7", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	router = newTestRouter(&stubAssessmentService{}, &stubSubmissionService{err: model.ErrAttemptNotFound}, &stubAnalysisService{})
	rr = doJSON(t, router, http.MethodGet, "/api/v1/attempts/404", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("missing attempt: status=%d", rr.Code)
	}
}

func TestListAssessments(t *testing.T) {
	asvc := &stubAssessmentService{summaries: []dto.AssessmentSummaryDTO{
		{PublicID: "pub-1", Title: "Safety briefing check"},
		{PublicID: "pub-2", Title: "Onboarding quiz"},
	}}
	router := newTestRouter(asvc, &stubSubmissionService{}, &stubAnalysisService{})

	rr := doJSON(t, router, http.MethodGet, "/api/v1/assessments", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out []dto.AssessmentSummaryDTO
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 || out[0].PublicID != "pub-1" {
		t.Fatalf("unexpected summaries: %+v", out)
	}
}

func TestInternalErrorResponseStaysGeneric(t *testing.T) {
	ssvc := &stubSubmissionService{err: errors.New(`pq: connection "10.0.0.5:5432" reset by peer`)}
	router := newTestRouter(&stubAssessmentService{}, ssvc, &stubAnalysisService{})

	rr := doJSON(t, router, http.MethodPost, "/api/v1/assessments/pub-1/submissions",
		`{"participant_id":"p-1","answers":{"1":"A"}}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out dto.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Message != "Failed to submit attempt" {
		t.Fatalf("message=%q, want the generic fallback", out.Message)
	}
	if len(out.Details) != 0 {
		t.Fatalf("details=%v, internal error text must not reach the caller", out.Details)
	}
}
