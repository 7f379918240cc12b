package soap

import (
	"encoding/xml"

	"github.com/noah-isme/uav-academic-soa/internal/models"
)

// EnrollmentElement is one <enrollment> entry of GetEnrollmentsResponse.
type EnrollmentElement struct {
	ID        int64  `xml:"id"`
	StudentID int64  `xml:"student_id"`
	CourseID  int64  `xml:"course_id"`
	Status    string `xml:"status"`
}

type GetEnrollmentsResponse struct {
	XMLName     xml.Name            `xml:"GetEnrollmentsResponse"`
	Enrollments []EnrollmentElement `xml:"enrollment"`
}

type CreateEnrollmentResponse struct {
	XMLName xml.Name `xml:"CreateEnrollmentResponse"`
	ID      int64    `xml:"id"`
}

// NewGetEnrollmentsResponse maps enrollment rows to the response payload.
func NewGetEnrollmentsResponse(rows []models.Enrollment) GetEnrollmentsResponse {
	resp := GetEnrollmentsResponse{Enrollments: make([]EnrollmentElement, 0, len(rows))}
	for _, row := range rows {
		resp.Enrollments = append(resp.Enrollments, EnrollmentElement{
			ID:        row.ID,
			StudentID: row.StudentID,
			CourseID:  row.CourseID,
			Status:    row.Status,
		})
	}
	return resp
}

type envelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	NS      string   `xml:"xmlns:soap,attr"`
	Body    envelopeBody
}

type envelopeBody struct {
	XMLName xml.Name `xml:"soap:Body"`
	Content interface{}
}

// Marshal wraps payload in a SOAP envelope and renders it with an XML declaration.
// payload must carry its own XMLName.
func Marshal(payload interface{}) ([]byte, error) {
	doc, err := xml.MarshalIndent(envelope{NS: EnvelopeNamespace, Body: envelopeBody{Content: payload}}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(doc, '\n')...), nil
}
