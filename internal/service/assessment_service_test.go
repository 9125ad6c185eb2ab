package service

import (
	"errors"
	"testing"

	"examsense/internal/model"
)

func TestListPublishedSummaries(t *testing.T) {
	repo := &fakeAssessmentRepo{assessment: scoredAssessment()}
	svc := NewAssessmentService(repo)

	rows, err := svc.ListPublished()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].QuestionCount != 2 {
		t.Fatalf("question count = %d, want 2", rows[0].QuestionCount)
	}
	if rows[0].PublicID != repo.assessment.PublicID {
		t.Fatalf("public id = %q", rows[0].PublicID)
	}

	repo.assessment.Status = model.AssessmentStatusDraft
	rows, err = svc.ListPublished()
	if err != nil {
		t.Fatalf("list drafts: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("draft leaked into the published listing: %+v", rows)
	}
}

func TestGetByPublicIDReturnsOrderedForm(t *testing.T) {
	repo := &fakeAssessmentRepo{assessment: scoredAssessment()}
	svc := NewAssessmentService(repo)

	detail, err := svc.GetByPublicID(repo.assessment.PublicID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(detail.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(detail.Questions))
	}
	if len(detail.Questions[0].Options) != 2 {
		t.Fatalf("options = %d, want 2", len(detail.Questions[0].Options))
	}
	if detail.Questions[0].Options[0].Key != "A" {
		t.Fatalf("first option key = %q", detail.Questions[0].Options[0].Key)
	}
}

func TestGetByPublicIDStatusRules(t *testing.T) {
	repo := &fakeAssessmentRepo{assessment: scoredAssessment()}
	svc := NewAssessmentService(repo)

	repo.assessment.Status = model.AssessmentStatusDraft
	if _, err := svc.GetByPublicID(repo.assessment.PublicID); !errors.Is(err, model.ErrAssessmentNotFound) {
		t.Fatalf("draft err = %v, want ErrAssessmentNotFound", err)
	}

	repo.assessment.Status = model.AssessmentStatusArchived
	if _, err := svc.GetByPublicID(repo.assessment.PublicID); !errors.Is(err, model.ErrAssessmentNotOpen) {
		t.Fatalf("archived err = %v, want ErrAssessmentNotOpen", err)
	}

	if _, err := svc.GetByPublicID("missing"); !errors.Is(err, model.ErrAssessmentNotFound) {
		t.Fatalf("missing err = %v, want ErrAssessmentNotFound", err)
	}
}
