package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/uav-academic-soa/internal/models"
	appErrors "github.com/noah-isme/uav-academic-soa/pkg/errors"
)

type enrollmentRepository interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
}

// CreateEnrollmentRequest carries the CreateEnrollment parameters. A blank Status
// falls back to models.EnrollmentStatusEnrolled.
type CreateEnrollmentRequest struct {
	StudentID int64
	CourseID  int64
	Status    string
}

// EnrollmentService backs the SOAP gateway operations.
type EnrollmentService struct {
	repo    enrollmentRepository
	metrics *MetricsService
	logger  *zap.Logger
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo enrollmentRepository, opts Options) *EnrollmentService {
	return &EnrollmentService{repo: repo, metrics: opts.Metrics, logger: opts.logger()}
}

// ListByStudent returns the enrollments of one student.
func (s *EnrollmentService) ListByStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error) {
	defer observe(s.metrics, "enrollments.list_by_student", time.Now())
	enrollments, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, dataAccessFailure(s.logger, "GetEnrollments", err)
	}
	return enrollments, nil
}

// Create inserts an enrollment and returns its id.
func (s *EnrollmentService) Create(ctx context.Context, req CreateEnrollmentRequest) (int64, error) {
	if req.StudentID == 0 || req.CourseID == 0 {
		return 0, appErrors.Clone(appErrors.ErrMalformedRequest, "Missing student_id or course_id")
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = models.EnrollmentStatusEnrolled
	}
	enrollment := &models.Enrollment{StudentID: req.StudentID, CourseID: req.CourseID, Status: status}
	start := time.Now()
	err := s.repo.Create(ctx, enrollment)
	observe(s.metrics, "enrollments.create", start)
	if err != nil {
		return 0, dataAccessFailure(s.logger, "CreateEnrollment", err)
	}
	return enrollment.ID, nil
}
