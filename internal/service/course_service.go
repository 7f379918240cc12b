package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/uav-academic-soa/internal/models"
	appErrors "github.com/noah-isme/uav-academic-soa/pkg/errors"
)

const coursesResource = "courses"

type courseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	Create(ctx context.Context, course *models.Course) error
}

// CreateCourseRequest holds payload for creating courses. Credits defaults to
// models.DefaultCourseCredits when omitted.
type CreateCourseRequest struct {
	Code    string `json:"code" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Credits *int   `json:"credits"`
}

// CourseService handles course use-cases.
type CourseService struct {
	repo      courseRepository
	validator *validator.Validate
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, validate *validator.Validate, opts Options) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{repo: repo, validator: validate, cache: opts.Cache, metrics: opts.Metrics, logger: opts.logger()}
}

// List returns every course.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	return listThroughCache(ctx, s.cache, coursesResource, func(ctx context.Context) ([]models.Course, error) {
		defer observe(s.metrics, "courses.list", time.Now())
		courses, err := s.repo.List(ctx)
		if err != nil {
			return nil, dataAccessFailure(s.logger, "ListCourses", err)
		}
		return courses, nil
	})
}

// Create registers a new course and returns its id.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrMalformedRequest.Code, appErrors.ErrMalformedRequest.Status, "Missing code or name")
	}
	credits := models.DefaultCourseCredits
	if req.Credits != nil {
		credits = *req.Credits
	}
	course := &models.Course{Code: req.Code, Name: req.Name, Credits: credits}
	start := time.Now()
	err := s.repo.Create(ctx, course)
	observe(s.metrics, "courses.create", start)
	if err != nil {
		return 0, dataAccessFailure(s.logger, "CreateCourse", err)
	}
	_ = s.cache.Invalidate(ctx, ResourcePattern(coursesResource))
	return course.ID, nil
}
