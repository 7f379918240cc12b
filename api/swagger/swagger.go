package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "UAV Academic REST Gateway",
        "description": "Students, courses and grades over JSON",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student registry"},
        {"name": "Courses", "description": "Course catalogue"},
        {"name": "Grades", "description": "Grades per enrollment"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check (pings the database)",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/api/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}},
                    "500": {"description": "Data access failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/IDBody"}},
                    "400": {"description": "Missing required fields", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Data access failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Course"}}},
                    "500": {"description": "Data access failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/IDBody"}},
                    "400": {"description": "Missing code or name", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Data access failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/grades": {
            "get": {
                "tags": ["Grades"],
                "summary": "List grades",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Grade"}}},
                    "500": {"description": "Data access failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Grades"],
                "summary": "Record grade",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateGradeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/IDBody"}},
                    "400": {"description": "Missing enrollment_id or grade", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Data access failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "student_number": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string", "x-nullable": true}
            }
        },
        "CreateStudentRequest": {
            "type": "object",
            "required": ["student_number", "first_name", "last_name"],
            "properties": {
                "student_number": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "code": {"type": "string"},
                "name": {"type": "string"},
                "credits": {"type": "integer"}
            }
        },
        "CreateCourseRequest": {
            "type": "object",
            "required": ["code", "name"],
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "credits": {"type": "integer", "default": 3}
            }
        },
        "Grade": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "enrollment_id": {"type": "integer"},
                "grade": {"type": "number"},
                "graded_at": {"type": "string", "format": "date-time", "x-nullable": true}
            }
        },
        "CreateGradeRequest": {
            "type": "object",
            "required": ["enrollment_id", "grade"],
            "properties": {
                "enrollment_id": {"type": "integer"},
                "grade": {"type": "number"}
            }
        },
        "IDBody": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
