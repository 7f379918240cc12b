package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterWrite(t *testing.T) {
	data := Dataset{Headers: []string{"table", "rows"}}
	data.Append("students", "3")
	data.Append("grades", "4")

	var buf bytes.Buffer
	require.NoError(t, NewCSVExporter().Write(&buf, data))
	assert.Equal(t, "table,rows\nstudents,3\ngrades,4\n", buf.String())
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewCSVExporter().Write(&buf, Dataset{}))
}

func TestPDFExporterRender(t *testing.T) {
	table := Dataset{Headers: []string{"Tabla", "Columnas"}}
	table.Append("students", "id, student_number, first_name, last_name, email")

	doc := Document{
		Title:    "Informe de Diseño",
		Subtitle: "Plataforma Unificada de Servicios Académicos",
		Cover:    []string{"Versión: 1.0"},
		Blocks: []Block{
			{Kind: BlockHeading, Text: "1. Introducción"},
			{Kind: BlockParagraph, Text: "Texto con acentos: matrícula, calificación."},
			{Kind: BlockBullet, Text: "Servicio SOAP"},
			{Kind: BlockTable, Table: &table},
			{Kind: BlockPageBreak},
			{Kind: BlockSubheading, Text: "Fin"},
		},
		Footer: "generado",
	}
	out, err := NewPDFExporter().Render(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestPDFExporterValidation(t *testing.T) {
	_, err := NewPDFExporter().Render(Document{})
	assert.Error(t, err)

	_, err = NewPDFExporter().Render(Document{Title: "x", Blocks: []Block{{Kind: BlockTable}}})
	assert.Error(t, err)
}
