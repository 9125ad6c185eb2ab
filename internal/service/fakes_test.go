package service

import (
	"context"
	"time"

	"examsense/config"
	"examsense/internal/model"
	"examsense/internal/repository"
)

func testConfig() *config.Config {
	return &config.Config{
		Analysis: config.Analysis{
			BaseURL:       "http://analysis.test",
			Required:      false,
			HealthTimeout: 50 * time.Millisecond,
			CallTimeout:   50 * time.Millisecond,
			Retries:       1,
		},
	}
}

func fptr(v float64) *float64 { return &v }

// scoredAssessment is a published two-question fixture worth 60+40 points.
func scoredAssessment() *model.Assessment {
	return &model.Assessment{
		ID:       1,
		PublicID: "8c7a2b9e-4f3d-4e4b-b2aa-91f55f0e2d11",
		Title:    "Safety briefing check",
		Status:   model.AssessmentStatusPublished,
		Questions: []model.Question{
			{
				ID: 1, Title: "Q1", Type: model.QuestionTypeSingleChoice, OrderInAssessment: 1, IsScored: true,
				Options: []model.QuestionOption{
					{Key: "A", Score: fptr(60)},
					{Key: "B", Score: fptr(0)},
				},
			},
			{
				ID: 2, Title: "Q2", Type: model.QuestionTypeMultipleChoice, OrderInAssessment: 2, IsScored: true,
				Options: []model.QuestionOption{
					{Key: "A", Score: fptr(25)},
					{Key: "B", Score: fptr(15)},
					{Key: "C"},
				},
			},
		},
	}
}

type fakeAssessmentRepo struct {
	assessment *model.Assessment
	statusSets []string
}

func (f *fakeAssessmentRepo) Create(assessment *model.Assessment) error {
	assessment.ID = 1
	f.assessment = assessment
	return nil
}

func (f *fakeAssessmentRepo) FindByID(id uint) (*model.Assessment, error) {
	if f.assessment == nil || f.assessment.ID != id {
		return nil, model.ErrAssessmentNotFound
	}
	return f.assessment, nil
}

func (f *fakeAssessmentRepo) FindByIDWithQuestions(id uint) (*model.Assessment, error) {
	return f.FindByID(id)
}

func (f *fakeAssessmentRepo) FindByPublicID(publicID string) (*model.Assessment, error) {
	if f.assessment == nil || f.assessment.PublicID != publicID {
		return nil, model.ErrAssessmentNotFound
	}
	return f.assessment, nil
}

func (f *fakeAssessmentRepo) FindAllWithQuestionCount(status string) ([]repository.AssessmentWithCount, error) {
	if f.assessment == nil || (status != "" && f.assessment.Status != status) {
		return nil, nil
	}
	return []repository.AssessmentWithCount{
		{Assessment: *f.assessment, QuestionCount: len(f.assessment.Questions)},
	}, nil
}

func (f *fakeAssessmentRepo) UpdateStatus(id uint, status string) error {
	if f.assessment == nil || f.assessment.ID != id {
		return model.ErrAssessmentNotFound
	}
	f.assessment.Status = status
	f.statusSets = append(f.statusSets, status)
	return nil
}

type fakeAttemptRepo struct {
	attempts map[uint]*model.AttemptRecord
	nextID   uint
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{attempts: make(map[uint]*model.AttemptRecord)}
}

func (f *fakeAttemptRepo) Create(attempt *model.AttemptRecord) error {
	for _, existing := range f.attempts {
		if existing.AssessmentID == attempt.AssessmentID && existing.ParticipantID == attempt.ParticipantID {
			return model.ErrAlreadySubmitted
		}
	}
	f.nextID++
	attempt.ID = f.nextID
	cp := *attempt
	f.attempts[attempt.ID] = &cp
	return nil
}

func (f *fakeAttemptRepo) FinalizePlaceholder(id uint, fin repository.AttemptFinalization) error {
	attempt, ok := f.attempts[id]
	if !ok || attempt.State != model.AttemptStatePlaceholder {
		return model.ErrAlreadySubmitted
	}
	attempt.State = model.AttemptStateFinalized
	attempt.ParticipantName = fin.ParticipantName
	attempt.Answers = fin.Answers
	attempt.Score = fin.Score
	attempt.IPAddress = fin.IPAddress
	attempt.StartedAt = fin.StartedAt
	attempt.SubmittedAt = fin.SubmittedAt
	attempt.TotalTimeSeconds = fin.TotalTimeSeconds
	return nil
}

func (f *fakeAttemptRepo) AttachAnalysisSession(id uint, sessionID string) error {
	attempt, ok := f.attempts[id]
	if !ok {
		return model.ErrAttemptNotFound
	}
	attempt.AnalysisSessionID = &sessionID
	return nil
}

func (f *fakeAttemptRepo) FindByID(id uint) (*model.AttemptRecord, error) {
	attempt, ok := f.attempts[id]
	if !ok {
		return nil, model.ErrAttemptNotFound
	}
	cp := *attempt
	return &cp, nil
}

func (f *fakeAttemptRepo) FindByAssessmentAndParticipant(assessmentID uint, participantID string) (*model.AttemptRecord, error) {
	for _, attempt := range f.attempts {
		if attempt.AssessmentID == assessmentID && attempt.ParticipantID == participantID {
			cp := *attempt
			return &cp, nil
		}
	}
	return nil, model.ErrAttemptNotFound
}

func (f *fakeAttemptRepo) FindFinalizedByAssessment(assessmentID uint) ([]model.AttemptRecord, error) {
	var out []model.AttemptRecord
	for _, attempt := range f.attempts {
		if attempt.AssessmentID == assessmentID && attempt.Finalized() {
			out = append(out, *attempt)
		}
	}
	return out, nil
}

type fakeSnapshotRepo struct {
	snapshots map[uint]*model.InteractionSnapshot
	upserts   int
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{snapshots: make(map[uint]*model.InteractionSnapshot)}
}

func (f *fakeSnapshotRepo) Upsert(snapshot *model.InteractionSnapshot) error {
	f.upserts++
	cp := *snapshot
	f.snapshots[snapshot.AttemptRecordID] = &cp
	return nil
}

func (f *fakeSnapshotRepo) FindByAttemptID(attemptID uint) (*model.InteractionSnapshot, error) {
	snapshot, ok := f.snapshots[attemptID]
	if !ok {
		return nil, model.ErrAttemptNotFound
	}
	return snapshot, nil
}

type fakeEventRepo struct {
	events   []model.InteractionEvent
	batchErr error
}

func (f *fakeEventRepo) CreateBatch(events []model.InteractionEvent) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.events = append(f.events, events...)
	return nil
}

func (f *fakeEventRepo) FindByAttemptID(attemptID uint) ([]model.InteractionEvent, error) {
	var out []model.InteractionEvent
	for _, ev := range f.events {
		if ev.AttemptRecordID == attemptID {
			out = append(out, ev)
		}
	}
	return out, nil
}

// fakeAnalysisClient counts calls and can be scripted to fail the first N
// session creations.
type fakeAnalysisClient struct {
	healthy   bool
	healthErr error
	sessionID string
	failFirst int
	endErr    error

	healthCalls int
	startCalls  int
	endCalls    int
	ended       []string
}

func (f *fakeAnalysisClient) Health(ctx context.Context) (bool, error) {
	f.healthCalls++
	return f.healthy, f.healthErr
}

func (f *fakeAnalysisClient) StartSession(ctx context.Context, participantID, assessmentPublicID string) (string, error) {
	f.startCalls++
	if f.startCalls <= f.failFirst {
		return "", context.DeadlineExceeded
	}
	return f.sessionID, nil
}

func (f *fakeAnalysisClient) EndSession(ctx context.Context, sessionID string) error {
	f.endCalls++
	if f.endErr != nil {
		return f.endErr
	}
	f.ended = append(f.ended, sessionID)
	return nil
}
