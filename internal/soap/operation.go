package soap

// Operation is the closed set of operations the SOAP gateway dispatches.
type Operation int

const (
	OperationUnknown Operation = iota
	OperationGetEnrollments
	OperationCreateEnrollment
)

var operationNames = map[Operation]string{
	OperationGetEnrollments:   "GetEnrollments",
	OperationCreateEnrollment: "CreateEnrollment",
}

// ParseOperation maps an operation element's local name to an Operation.
// Matching is exact and case-sensitive.
func ParseOperation(localName string) Operation {
	for op, name := range operationNames {
		if name == localName {
			return op
		}
	}
	return OperationUnknown
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "Unknown"
}
