package soap

// WSDL is the static service description served on GET /soap. It names the
// operations and their parts only; it is not a complete contract.
const WSDL = `<?xml version="1.0" encoding="UTF-8"?>
<definitions xmlns="http://schemas.xmlsoap.org/wsdl/" xmlns:xsd="http://www.w3.org/2001/XMLSchema" name="EnrollmentService">
  <message name="GetEnrollmentsRequest">
    <part name="student_id" type="xsd:int"/>
  </message>
  <message name="CreateEnrollmentRequest">
    <part name="student_id" type="xsd:int"/>
    <part name="course_id" type="xsd:int"/>
    <part name="status" type="xsd:string"/>
  </message>
</definitions>
`
