package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uav-academic-soa/internal/models"
	"github.com/noah-isme/uav-academic-soa/internal/service"
	appErrors "github.com/noah-isme/uav-academic-soa/pkg/errors"
)

type studentServiceMock struct {
	listResp   []models.Student
	listErr    error
	createID   int64
	createErr  error
	lastCreate service.CreateStudentRequest
	created    bool
}

func (m *studentServiceMock) List(ctx context.Context) ([]models.Student, error) {
	return m.listResp, m.listErr
}

func (m *studentServiceMock) Create(ctx context.Context, req service.CreateStudentRequest) (int64, error) {
	m.created = true
	m.lastCreate = req
	return m.createID, m.createErr
}

type courseServiceMock struct {
	lastCreate service.CreateCourseRequest
}

func (m *courseServiceMock) List(ctx context.Context) ([]models.Course, error) {
	return []models.Course{}, nil
}

func (m *courseServiceMock) Create(ctx context.Context, req service.CreateCourseRequest) (int64, error) {
	m.lastCreate = req
	return 3, nil
}

type gradeServiceMock struct {
	lastCreate service.CreateGradeRequest
}

func (m *gradeServiceMock) List(ctx context.Context) ([]models.Grade, error) {
	return []models.Grade{{ID: 1, EnrollmentID: 4, Grade: 92}}, nil
}

func (m *gradeServiceMock) Create(ctx context.Context, req service.CreateGradeRequest) (int64, error) {
	m.lastCreate = req
	return 9, nil
}

func newJSONContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *bytes.Buffer
	if body == "" {
		reader = &bytes.Buffer{}
	} else {
		reader = bytes.NewBufferString(body)
	}
	req, _ := http.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestStudentHandlerListReturnsBareArray(t *testing.T) {
	mockSvc := &studentServiceMock{listResp: []models.Student{{ID: 1, StudentNumber: "20230001", FirstName: "Juan", LastName: "Pérez"}}}
	handler := NewStudentHandler(mockSvc)

	c, w := newJSONContext(http.MethodGet, "/api/students", "")
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Juan", body[0]["first_name"])
	assert.Nil(t, body[0]["email"])
}

func TestStudentHandlerListFailure(t *testing.T) {
	mockSvc := &studentServiceMock{listErr: appErrors.DataAccess(errors.New("connection refused"))}
	handler := NewStudentHandler(mockSvc)

	c, w := newJSONContext(http.MethodGet, "/api/students", "")
	handler.List(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"connection refused"}`, w.Body.String())
}

func TestStudentHandlerCreate(t *testing.T) {
	mockSvc := &studentServiceMock{createID: 42}
	handler := NewStudentHandler(mockSvc)

	c, w := newJSONContext(http.MethodPost, "/api/students", `{"student_number":"20230001","first_name":"Juan","last_name":"Pérez","email":"juan@uav.edu.mx"}`)
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":42}`, w.Body.String())
	require.NotNil(t, mockSvc.lastCreate.Email)
	assert.Equal(t, "juan@uav.edu.mx", *mockSvc.lastCreate.Email)
}

func TestStudentHandlerCreateInvalidBody(t *testing.T) {
	mockSvc := &studentServiceMock{}
	handler := NewStudentHandler(mockSvc)

	c, w := newJSONContext(http.MethodPost, "/api/students", `{"student_number":`)
	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON body"}`, w.Body.String())
	assert.False(t, mockSvc.created)
}

func TestStudentHandlerCreateValidationError(t *testing.T) {
	mockSvc := &studentServiceMock{createErr: appErrors.Clone(appErrors.ErrMalformedRequest, "Missing required fields")}
	handler := NewStudentHandler(mockSvc)

	c, w := newJSONContext(http.MethodPost, "/api/students", `{"student_number":"20230001"}`)
	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
}

func TestCourseHandlerCreateWithoutCredits(t *testing.T) {
	mockSvc := &courseServiceMock{}
	handler := NewCourseHandler(mockSvc)

	c, w := newJSONContext(http.MethodPost, "/api/courses", `{"code":"MAT101","name":"Cálculo I"}`)
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, mockSvc.lastCreate.Credits)
}

func TestCourseHandlerListEmpty(t *testing.T) {
	handler := NewCourseHandler(&courseServiceMock{})

	c, w := newJSONContext(http.MethodGet, "/api/courses", "")
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGradeHandlerCreateZeroGrade(t *testing.T) {
	mockSvc := &gradeServiceMock{}
	handler := NewGradeHandler(mockSvc)

	c, w := newJSONContext(http.MethodPost, "/api/grades", `{"enrollment_id":4,"grade":0}`)
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mockSvc.lastCreate.Grade)
	assert.Zero(t, *mockSvc.lastCreate.Grade)
}

func TestGradeHandlerList(t *testing.T) {
	handler := NewGradeHandler(&gradeServiceMock{})

	c, w := newJSONContext(http.MethodGet, "/api/grades", "")
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"enrollment_id":4,"grade":92,"graded_at":null}]`, w.Body.String())
}
