package repository

import (
	"errors"

	"gorm.io/gorm"

	"examsense/internal/model"
)

type AssessmentRepository interface {
	Create(assessment *model.Assessment) error
	FindByID(id uint) (*model.Assessment, error)
	FindByIDWithQuestions(id uint) (*model.Assessment, error)
	FindByPublicID(publicID string) (*model.Assessment, error)
	FindAllWithQuestionCount(status string) ([]AssessmentWithCount, error)
	UpdateStatus(id uint, status string) error
}

// AssessmentWithCount is a listing row: the assessment plus how many
// questions its snapshot holds.
type AssessmentWithCount struct {
	model.Assessment
	QuestionCount int
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *model.Assessment) error {
	// Create with associations persists questions and their options in one
	// pass, the same way attempts reference them later.
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	if err := r.db.First(&assessment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrAssessmentNotFound
		}
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByIDWithQuestions(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_assessment ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.order_in_question ASC")
		}).
		First(&assessment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrAssessmentNotFound
		}
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByPublicID(publicID string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_assessment ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.order_in_question ASC")
		}).
		Where("public_id = ?", publicID).
		First(&assessment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrAssessmentNotFound
		}
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindAllWithQuestionCount(status string) ([]AssessmentWithCount, error) {
	var results []AssessmentWithCount
	query := r.db.Model(&model.Assessment{}).
		Select("assessments.*, (SELECT COUNT(*) FROM questions WHERE questions.assessment_id = assessments.id AND questions.deleted_at IS NULL) as question_count").
		Where("assessments.deleted_at IS NULL").
		Order("assessments.created_at DESC")
	if status != "" {
		query = query.Where("assessments.status = ?", status)
	}
	err := query.Scan(&results).Error
	return results, err
}

func (r *assessmentRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&model.Assessment{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrAssessmentNotFound
	}
	return nil
}
