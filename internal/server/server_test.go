package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/noah-isme/uav-academic-soa/internal/models"
	"github.com/noah-isme/uav-academic-soa/internal/service"
	"github.com/noah-isme/uav-academic-soa/pkg/config"
	"github.com/noah-isme/uav-academic-soa/pkg/database"
)

const sqliteSchema = `
CREATE TABLE students (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    student_number TEXT NOT NULL UNIQUE,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    email TEXT NULL
);
CREATE TABLE courses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    code TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    credits INTEGER NOT NULL DEFAULT 3
);
CREATE TABLE enrollments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    student_id INTEGER NOT NULL,
    course_id INTEGER NOT NULL,
    status TEXT NOT NULL DEFAULT 'enrolled'
);
CREATE TABLE grades (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    enrollment_id INTEGER NOT NULL,
    grade REAL NOT NULL,
    graded_at TIMESTAMP NULL
);
`

type gateways struct {
	db   *sqlx.DB
	rest *gin.Engine
	soap *gin.Engine
}

func newGateways(t *testing.T) *gateways {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlx.Open("sqlite", filepath.Join(t.TempDir(), "academic.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = database.ApplySchema(context.Background(), db, sqliteSchema)
	require.NoError(t, err)

	deps := Dependencies{
		Config:  &config.Config{Env: "test"},
		DB:      db,
		Metrics: service.NewMetricsService(),
	}
	return &gateways{db: db, rest: NewRESTRouter(deps), soap: NewSOAPRouter(deps)}
}

func (g *gateways) do(r *gin.Engine, method, target, contentType, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	r.ServeHTTP(w, req)
	return w
}

func (g *gateways) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, g.db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func (g *gateways) exec(t *testing.T, query string, args ...interface{}) {
	t.Helper()
	_, err := g.db.Exec(query, args...)
	require.NoError(t, err)
}

func envelope(inner string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:tns="urn:uav:enrollment">
  <soapenv:Body>` + inner + `</soapenv:Body>
</soapenv:Envelope>`
}

func TestCreateStudentThenList(t *testing.T) {
	g := newGateways(t)

	w := g.do(g.rest, http.MethodPost, "/api/students", "application/json",
		`{"student_number":"20230001","first_name":"Juan","last_name":"Pérez","email":"juan.perez@uav.edu.mx"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Positive(t, created["id"])

	w = g.do(g.rest, http.MethodGet, "/api/students", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var students []models.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &students))
	require.Len(t, students, 1)
	assert.Equal(t, created["id"], students[0].ID)
	assert.Equal(t, "20230001", students[0].StudentNumber)
	assert.Equal(t, "Juan", students[0].FirstName)
	assert.Equal(t, "Pérez", students[0].LastName)
	require.NotNil(t, students[0].Email)
	assert.Equal(t, "juan.perez@uav.edu.mx", *students[0].Email)
}

func TestCreateStudentMissingFieldInsertsNothing(t *testing.T) {
	g := newGateways(t)

	w := g.do(g.rest, http.MethodPost, "/api/students", "application/json",
		`{"student_number":"20230001","last_name":"Pérez"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
	assert.Equal(t, 0, g.count(t, "students"))
}

func TestCreateCourseDefaultsCredits(t *testing.T) {
	g := newGateways(t)

	w := g.do(g.rest, http.MethodPost, "/api/courses", "application/json", `{"code":"MAT101","name":"Cálculo I"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = g.do(g.rest, http.MethodGet, "/api/courses", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var courses []models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, models.DefaultCourseCredits, courses[0].Credits)
}

func TestCreateGradeThenList(t *testing.T) {
	g := newGateways(t)

	w := g.do(g.rest, http.MethodPost, "/api/grades", "application/json", `{"enrollment_id":4,"grade":92.0}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = g.do(g.rest, http.MethodGet, "/api/grades", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var grades []models.Grade
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grades))
	require.Len(t, grades, 1)
	assert.Equal(t, int64(4), grades[0].EnrollmentID)
	assert.InDelta(t, 92.0, grades[0].Grade, 0.0001)
}

func TestDuplicateStudentNumberIsDataAccessFailure(t *testing.T) {
	g := newGateways(t)
	body := `{"student_number":"20230001","first_name":"Juan","last_name":"Pérez"}`

	require.Equal(t, http.StatusCreated, g.do(g.rest, http.MethodPost, "/api/students", "application/json", body).Code)
	w := g.do(g.rest, http.MethodPost, "/api/students", "application/json", body)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var failure map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failure))
	assert.Contains(t, failure["error"], "UNIQUE")
	assert.Equal(t, 1, g.count(t, "students"))
}

func TestRepeatedListsAreStable(t *testing.T) {
	g := newGateways(t)
	g.exec(t, `INSERT INTO courses (code, name, credits) VALUES (?, ?, ?), (?, ?, ?)`,
		"MAT101", "Cálculo I", 4, "INF201", "Programación Orientada a Objetos", 3)

	first := g.do(g.rest, http.MethodGet, "/api/courses", "", "")
	second := g.do(g.rest, http.MethodGet, "/api/courses", "", "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestEmptyTableListsAsArray(t *testing.T) {
	g := newGateways(t)

	w := g.do(g.rest, http.MethodGet, "/api/grades", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestSOAPCreateEnrollmentDefaultsStatus(t *testing.T) {
	g := newGateways(t)

	w := g.do(g.soap, http.MethodPost, "/soap", "text/xml",
		envelope(`<tns:CreateEnrollment><tns:student_id>2</tns:student_id><tns:course_id>1</tns:course_id></tns:CreateEnrollment>`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/xml")

	var row models.Enrollment
	require.NoError(t, g.db.Get(&row, `SELECT id, student_id, course_id, status FROM enrollments`))
	assert.Equal(t, models.EnrollmentStatusEnrolled, row.Status)
	assert.Contains(t, w.Body.String(), "<CreateEnrollmentResponse>")
	assert.Contains(t, w.Body.String(), "<id>"+itoa(row.ID)+"</id>")
}

func TestSOAPGetEnrollmentsFiltersByStudent(t *testing.T) {
	g := newGateways(t)
	g.exec(t, `INSERT INTO enrollments (student_id, course_id, status) VALUES (1, 1, 'enrolled'), (1, 2, 'enrolled'), (2, 1, 'enrolled')`)

	w := g.do(g.soap, http.MethodPost, "/soap", "text/xml",
		envelope(`<tns:GetEnrollments><tns:student_id>1</tns:student_id></tns:GetEnrollments>`))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, `xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"`)
	assert.Equal(t, 2, strings.Count(body, "<enrollment>"))
	assert.NotContains(t, body, "<student_id>2</student_id>")
}

func TestSOAPUnsupportedOperationLeavesStoreUnchanged(t *testing.T) {
	g := newGateways(t)
	g.exec(t, `INSERT INTO enrollments (student_id, course_id, status) VALUES (1, 1, 'enrolled')`)

	w := g.do(g.soap, http.MethodPost, "/soap", "text/xml",
		envelope(`<tns:DeleteEnrollment><tns:id>1</tns:id></tns:DeleteEnrollment>`))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Operation DeleteEnrollment not supported", w.Body.String())
	assert.Equal(t, 1, g.count(t, "enrollments"))
}

func TestSOAPGetReturnsWSDL(t *testing.T) {
	g := newGateways(t)

	w := g.do(g.soap, http.MethodGet, "/soap", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EnrollmentService")
}

func TestSOAPStoreFailureIsReportedAsText(t *testing.T) {
	g := newGateways(t)
	g.exec(t, `DROP TABLE enrollments`)

	w := g.do(g.soap, http.MethodPost, "/soap", "text/xml",
		envelope(`<GetEnrollments><student_id>1</student_id></GetEnrollments>`))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "Error: "))
	assert.Contains(t, w.Body.String(), "enrollments")
}

func TestObservabilityEndpoints(t *testing.T) {
	g := newGateways(t)

	assert.Equal(t, http.StatusOK, g.do(g.rest, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, g.do(g.soap, http.MethodGet, "/ready", "", "").Code)

	g.do(g.rest, http.MethodGet, "/api/students", "", "")
	w := g.do(g.rest, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",path="/api/students",status="200"}`)
	assert.Contains(t, w.Body.String(), `db_query_duration_seconds_count{query="students.list"}`)
}

func TestNotFoundRoute(t *testing.T) {
	g := newGateways(t)

	assert.Equal(t, http.StatusNotFound, g.do(g.rest, http.MethodGet, "/soap", "", "").Code)
	assert.Equal(t, http.StatusNotFound, g.do(g.soap, http.MethodGet, "/api/students", "", "").Code)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func TestSwaggerDocsOutsideProduction(t *testing.T) {
	g := newGateways(t)

	w := g.do(g.rest, http.MethodGet, "/docs/doc.json", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/students")

	prod := NewRESTRouter(Dependencies{Config: &config.Config{Env: config.EnvProduction}, DB: g.db})
	assert.Equal(t, http.StatusNotFound, g.do(prod, http.MethodGet, "/docs/doc.json", "", "").Code)
}
