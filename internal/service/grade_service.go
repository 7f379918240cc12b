package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/uav-academic-soa/internal/models"
	appErrors "github.com/noah-isme/uav-academic-soa/pkg/errors"
)

const gradesResource = "grades"

type gradeRepository interface {
	List(ctx context.Context) ([]models.Grade, error)
	Create(ctx context.Context, grade *models.Grade) error
}

// CreateGradeRequest holds payload for recording a grade. A grade of 0 is valid,
// so Grade is a pointer and only its absence is rejected.
type CreateGradeRequest struct {
	EnrollmentID int64    `json:"enrollment_id" validate:"required"`
	Grade        *float64 `json:"grade" validate:"required"`
}

// GradeService handles grade use-cases.
type GradeService struct {
	repo      gradeRepository
	validator *validator.Validate
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewGradeService constructs the grade service.
func NewGradeService(repo gradeRepository, validate *validator.Validate, opts Options) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	return &GradeService{repo: repo, validator: validate, cache: opts.Cache, metrics: opts.Metrics, logger: opts.logger()}
}

// List returns every grade.
func (s *GradeService) List(ctx context.Context) ([]models.Grade, error) {
	return listThroughCache(ctx, s.cache, gradesResource, func(ctx context.Context) ([]models.Grade, error) {
		defer observe(s.metrics, "grades.list", time.Now())
		grades, err := s.repo.List(ctx)
		if err != nil {
			return nil, dataAccessFailure(s.logger, "ListGrades", err)
		}
		return grades, nil
	})
}

// Create records a grade and returns its id.
func (s *GradeService) Create(ctx context.Context, req CreateGradeRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrMalformedRequest.Code, appErrors.ErrMalformedRequest.Status, "Missing enrollment_id or grade")
	}
	grade := &models.Grade{EnrollmentID: req.EnrollmentID, Grade: *req.Grade}
	start := time.Now()
	err := s.repo.Create(ctx, grade)
	observe(s.metrics, "grades.create", start)
	if err != nil {
		return 0, dataAccessFailure(s.logger, "CreateGrade", err)
	}
	_ = s.cache.Invalidate(ctx, ResourcePattern(gradesResource))
	return grade.ID, nil
}
