package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/uav-academic-soa/internal/models"
	"github.com/noah-isme/uav-academic-soa/internal/service"
	"github.com/noah-isme/uav-academic-soa/internal/soap"
	appErrors "github.com/noah-isme/uav-academic-soa/pkg/errors"
	"github.com/noah-isme/uav-academic-soa/pkg/response"
)

type enrollmentService interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error)
	Create(ctx context.Context, req service.CreateEnrollmentRequest) (int64, error)
}

// SOAPHandler serves the enrollment SOAP endpoint.
type SOAPHandler struct {
	enrollments enrollmentService
	metrics     *service.MetricsService
	logger      *zap.Logger
}

// NewSOAPHandler constructs SOAPHandler.
func NewSOAPHandler(enrollments enrollmentService, metrics *service.MetricsService, logger *zap.Logger) *SOAPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SOAPHandler{enrollments: enrollments, metrics: metrics, logger: logger}
}

// WSDL returns the static service description.
func (h *SOAPHandler) WSDL(c *gin.Context) {
	response.XML(c, http.StatusOK, []byte(soap.WSDL))
}

// Handle decodes one SOAP call and dispatches it by operation.
func (h *SOAPHandler) Handle(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.fail(c, "invalid", appErrors.Wrap(err, appErrors.ErrMalformedRequest.Code, appErrors.ErrMalformedRequest.Status, "Invalid SOAP"))
		return
	}
	req, err := soap.ParseRequest(body)
	if err != nil {
		h.fail(c, "invalid", err)
		return
	}

	var payload interface{}
	switch req.Operation {
	case soap.OperationGetEnrollments:
		payload, err = h.getEnrollments(c.Request.Context(), req)
	case soap.OperationCreateEnrollment:
		payload, err = h.createEnrollment(c.Request.Context(), req)
	default:
		err = appErrors.Clone(appErrors.ErrUnsupportedOperation, "Operation "+req.Name+" not supported")
	}
	if err != nil {
		h.fail(c, req.Operation.String(), err)
		return
	}

	doc, err := soap.Marshal(payload)
	if err != nil {
		h.fail(c, req.Operation.String(), appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, err.Error()))
		return
	}
	h.metrics.RecordSOAPOperation(req.Operation.String(), service.OutcomeSuccess)
	response.XML(c, http.StatusOK, doc)
}

func (h *SOAPHandler) getEnrollments(ctx context.Context, req *soap.Request) (interface{}, error) {
	studentID, ok, err := req.IntParam("student_id")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrMalformedRequest, "Missing student_id")
	}
	rows, err := h.enrollments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return soap.NewGetEnrollmentsResponse(rows), nil
}

func (h *SOAPHandler) createEnrollment(ctx context.Context, req *soap.Request) (interface{}, error) {
	studentID, _, err := req.IntParam("student_id")
	if err != nil {
		return nil, err
	}
	courseID, _, err := req.IntParam("course_id")
	if err != nil {
		return nil, err
	}
	status, _ := req.Param("status")

	id, err := h.enrollments.Create(ctx, service.CreateEnrollmentRequest{StudentID: studentID, CourseID: courseID, Status: status})
	if err != nil {
		return nil, err
	}
	return soap.CreateEnrollmentResponse{ID: id}, nil
}

// fail writes the plain-text error body. Server-side failures carry an "Error: " prefix.
func (h *SOAPHandler) fail(c *gin.Context, operation string, err error) {
	appErr := appErrors.FromError(err)
	message := appErr.Message
	outcome := service.OutcomeClientError
	if appErr.Status >= http.StatusInternalServerError {
		message = "Error: " + message
		outcome = service.OutcomeServerError
	}
	h.metrics.RecordSOAPOperation(operation, outcome)
	_ = c.Error(err)
	response.Text(c, appErr.Status, message)
}
