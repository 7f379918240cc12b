// Package report holds the architecture design report rendered by cmd/report.
package report

import (
	"fmt"
	"time"

	"github.com/noah-isme/uav-academic-soa/pkg/export"
)

// DefaultFilename is where cmd/report writes when -out is not given.
const DefaultFilename = "ARQUITECTURA_SOA_INFORME.pdf"

var spanishMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

func spanishDate(t time.Time) string {
	return fmt.Sprintf("%s %d, %d", spanishMonths[t.Month()-1], t.Day(), t.Year())
}

func heading(text string) export.Block { return export.Block{Kind: export.BlockHeading, Text: text} }
func subheading(text string) export.Block {
	return export.Block{Kind: export.BlockSubheading, Text: text}
}
func paragraph(text string) export.Block {
	return export.Block{Kind: export.BlockParagraph, Text: text}
}

func bullets(lines ...string) []export.Block {
	blocks := make([]export.Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, export.Block{Kind: export.BlockBullet, Text: line})
	}
	return blocks
}

// DataModel is the table of the four shared tables.
func DataModel() *export.Dataset {
	data := &export.Dataset{Headers: []string{"Tabla", "Columnas", "Relación"}}
	data.Append("students", "id, student_number, first_name, last_name, email", "PK")
	data.Append("courses", "id, code, name, credits", "PK")
	data.Append("enrollments", "id, student_id (FK), course_id (FK), enrolled_at, status", "PK, FK")
	data.Append("grades", "id, enrollment_id (FK), grade, graded_at", "PK, FK")
	return data
}

// DesignReport builds the report; generatedAt dates the cover and footer.
func DesignReport(generatedAt time.Time) export.Document {
	var blocks []export.Block
	add := func(b ...export.Block) { blocks = append(blocks, b...) }

	add(heading("1. Introducción"),
		paragraph("La Universidad Autónoma Veracruzana enfrenta una crisis de integración tecnológica entre sus sistemas desacoplados. "+
			"Este informe presenta el diseño e implementación de la Fase 1 de una plataforma web unificada basada en arquitectura "+
			"orientada a servicios (SOA)."))

	add(heading("2. Análisis del Problema"), subheading("2.1 Sistemas Existentes"))
	add(bullets(
		"Sistema de Matrículas: SOAP parcialmente, base de datos MySQL local.",
		"Plataforma de Cursos Online: API REST aislada, sin integración.",
		"Sistema de Calificaciones: Base de datos independiente, exports manuales en múltiples formatos.",
		"Aplicación Móvil: Sin integración completa.",
	)...)
	add(subheading("2.2 Desafíos Identificados"))
	add(bullets(
		"Duplicación de datos entre sistemas",
		"Procesos manuales para sincronización",
		"Falta de interoperabilidad XML/JSON",
		"Escalabilidad limitada",
	)...)

	add(heading("3. Solución Propuesta: SOA"), subheading("3.1 Principios de Diseño"))
	add(bullets(
		"Independencia de Servicios: cada módulo es un servicio autónomo.",
		"Interoperabilidad: soporte de SOAP (XML) y REST (JSON).",
		"Escalabilidad: servicios sin estado que permiten crecimiento horizontal.",
		"Reutilización: APIs expuestas para múltiples consumidores.",
	)...)
	add(subheading("3.2 Componentes de la Arquitectura"), paragraph("Servicio SOAP - Enrollments (Matrículas)"))
	add(bullets(
		"Puerto: 5000",
		"Protocolo: SOAP 1.1 / XML",
		"Operaciones: GetEnrollments, CreateEnrollment",
		"Implementación: Go (gin + encoding/xml)",
	)...)
	add(paragraph("Servicio REST - Grades, Students, Courses"))
	add(bullets(
		"Puerto: 5001",
		"Protocolo: HTTP REST / JSON",
		"Endpoints: /api/grades, /api/students, /api/courses",
		"Implementación: Go (gin + sqlx)",
	)...)

	add(heading("4. Modelo de Datos"), subheading("Base de Datos MySQL"))
	add(bullets("Tablas: students, courses, enrollments, grades")...)
	add(export.Block{Kind: export.BlockTable, Table: DataModel()})

	add(export.Block{Kind: export.BlockPageBreak}, heading("5. Decisiones Técnicas"))
	add(bullets(
		"SOAP: Go + gin + encoding/xml (binario único, sin dependencias de sistema)",
		"REST: Go + gin (misma base de código que SOAP, simplicidad operacional)",
		"Base de Datos: MySQL (acceso remoto, escalabilidad, compatibilidad); PostgreSQL soportado",
		"Formatos: SOAP (XML) + REST (JSON) para interoperabilidad máxima",
		"Autenticación: Ninguna en Fase 1 (implementar en Fase 2)",
	)...)

	add(heading("6. Casos de Uso"), paragraph("UC1: Consultar Matrículas (SOAP)"))
	add(bullets(
		"Sistema envía petición SOAP con student_id",
		"Servicio consulta tabla enrollments",
		"Retorna XML con enrollments del estudiante",
	)...)
	add(paragraph("UC2: Registrar Calificación (REST)"))
	add(bullets(
		"Portal envía POST a /api/grades",
		"Servicio inserta en tabla grades",
		"Retorna JSON con ID de nueva calificación",
	)...)

	add(heading("7. Plan de Implementación Posterior"), paragraph("Fase 2: Mejoras"))
	add(bullets(
		"Autenticación y autorización (OAuth2, JWT)",
		"Validación de datos avanzada",
		"Rate limiting",
	)...)
	add(paragraph("Fase 3: Escalabilidad"))
	add(bullets(
		"Balanceador de carga",
		"Contenedores (Docker)",
		"Orquestación (Kubernetes)",
		"API Gateway",
	)...)

	add(heading("8. Conclusiones"),
		paragraph("La arquitectura propuesta cumple con los requisitos de interoperabilidad, escalabilidad e integración unificada. "+
			"La Fase 1 proporciona una base sólida para futuras expansiones sin necesidad de refactorización mayor."))

	return export.Document{
		Title:    "Informe de Diseño",
		Subtitle: "Plataforma Unificada de Servicios Académicos (SOA)",
		Cover: []string{
			"Universidad Autónoma Veracruzana",
			"Actividad: Arquitectura Orientada a Servicios",
			"Fecha: " + spanishDate(generatedAt),
			"Versión: 1.0",
		},
		Blocks: blocks,
		Footer: fmt.Sprintf("Documento generado automáticamente - Universidad Autónoma Veracruzana - %s %d",
			spanishMonths[generatedAt.Month()-1], generatedAt.Year()),
	}
}
