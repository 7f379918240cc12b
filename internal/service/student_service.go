package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/uav-academic-soa/internal/models"
	appErrors "github.com/noah-isme/uav-academic-soa/pkg/errors"
)

const studentsResource = "students"

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
}

// CreateStudentRequest holds payload for creating students.
type CreateStudentRequest struct {
	StudentNumber string  `json:"student_number" validate:"required"`
	FirstName     string  `json:"first_name" validate:"required"`
	LastName      string  `json:"last_name" validate:"required"`
	Email         *string `json:"email"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, opts Options) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	return &StudentService{repo: repo, validator: validate, cache: opts.Cache, metrics: opts.Metrics, logger: opts.logger()}
}

// List returns every student.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return listThroughCache(ctx, s.cache, studentsResource, func(ctx context.Context) ([]models.Student, error) {
		defer observe(s.metrics, "students.list", time.Now())
		students, err := s.repo.List(ctx)
		if err != nil {
			return nil, dataAccessFailure(s.logger, "ListStudents", err)
		}
		return students, nil
	})
}

// Create registers a new student and returns its id.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrMalformedRequest.Code, appErrors.ErrMalformedRequest.Status, "Missing required fields")
	}
	student := &models.Student{
		StudentNumber: req.StudentNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
	}
	start := time.Now()
	err := s.repo.Create(ctx, student)
	observe(s.metrics, "students.create", start)
	if err != nil {
		return 0, dataAccessFailure(s.logger, "CreateStudent", err)
	}
	_ = s.cache.Invalidate(ctx, ResourcePattern(studentsResource))
	return student.ID, nil
}
