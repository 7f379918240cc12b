package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	appErrors "github.com/noah-isme/uav-academic-soa/pkg/errors"
)

// EnvelopeNamespace is the SOAP 1.1 envelope namespace.
const EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

// ErrMalformedEnvelope is returned when a POST body is not a usable SOAP envelope.
var ErrMalformedEnvelope = appErrors.Clone(appErrors.ErrMalformedRequest, "Invalid SOAP")

type node struct {
	name     xml.Name
	text     strings.Builder
	children []*node
}

func (n *node) find(match func(*node) bool) *node {
	for _, child := range n.children {
		if match(child) {
			return child
		}
		if found := child.find(match); found != nil {
			return found
		}
	}
	return nil
}

// Request is a decoded SOAP call: the operation element found first inside Body.
type Request struct {
	Operation Operation
	// Name is the operation element's local name as sent.
	Name string

	element *node
}

// ParseRequest decodes body and locates the operation element.
func ParseRequest(body []byte) (*Request, error) {
	root, err := decodeTree(body)
	if err != nil {
		return nil, appErrors.Wrap(err, ErrMalformedEnvelope.Code, ErrMalformedEnvelope.Status, ErrMalformedEnvelope.Message)
	}

	isBody := func(n *node) bool {
		return n.name.Space == EnvelopeNamespace && n.name.Local == "Body"
	}
	var soapBody *node
	if isBody(root) {
		soapBody = root
	} else {
		soapBody = root.find(isBody)
	}
	if soapBody == nil || len(soapBody.children) == 0 {
		return nil, ErrMalformedEnvelope
	}

	op := soapBody.children[0]
	return &Request{
		Operation: ParseOperation(op.name.Local),
		Name:      op.name.Local,
		element:   op,
	}, nil
}

// Param returns the trimmed text of the first descendant of the operation element
// whose local name is name.
func (r *Request) Param(name string) (string, bool) {
	if r == nil || r.element == nil {
		return "", false
	}
	found := r.element.find(func(n *node) bool { return n.name.Local == name })
	if found == nil {
		return "", false
	}
	return strings.TrimSpace(found.text.String()), true
}

// IntParam returns a parameter parsed as a base-10 integer. A missing parameter
// reports ok=false without error.
func (r *Request) IntParam(name string) (value int64, ok bool, err error) {
	raw, ok := r.Param(name)
	if !ok {
		return 0, false, nil
	}
	value, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, appErrors.Wrap(err, appErrors.ErrMalformedRequest.Code, appErrors.ErrMalformedRequest.Status, "Invalid "+name)
	}
	return value, true, nil
}

func decodeTree(body []byte) (*node, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	var (
		root  *node
		stack []*node
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{name: t.Name}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			} else if root == nil {
				root = n
			} else {
				return nil, errors.New("multiple root elements")
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}
	if root == nil {
		return nil, errors.New("empty document")
	}
	if len(stack) > 0 {
		return nil, errors.New("unexpected end of document")
	}
	return root, nil
}
