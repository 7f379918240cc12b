package main

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"
)

type comparison struct {
	Target         target
	LegacyStatus   int
	GoStatus       int
	StatusMatch    bool
	BodyMatch      bool
	Error          error
	DurationGo     time.Duration
	DurationLegacy time.Duration
}

func (c comparison) matches() bool {
	return c.StatusMatch && (c.BodyMatch || c.Target.IgnoreBody)
}

func compareTarget(client *http.Client, b bases, tgt target) comparison {
	comp := comparison{Target: tgt}
	goBase, legacyBase, err := b.pair(tgt.Gateway)
	if err != nil {
		comp.Error = err
		return comp
	}

	goStatus, goBody, goDur, goErr := performRequest(client, goBase, tgt)
	legacyStatus, legacyBody, legacyDur, legacyErr := performRequest(client, legacyBase, tgt)
	comp.DurationGo = goDur
	comp.DurationLegacy = legacyDur

	if goErr != nil {
		comp.Error = fmt.Errorf("go request failed: %w", goErr)
		return comp
	}
	if legacyErr != nil {
		comp.Error = fmt.Errorf("legacy request failed: %w", legacyErr)
		return comp
	}

	comp.GoStatus = goStatus
	comp.LegacyStatus = legacyStatus
	comp.StatusMatch = goStatus == legacyStatus
	comp.BodyMatch = bodiesEqual(goBody, legacyBody)
	return comp
}

func performRequest(client *http.Client, base string, tgt target) (int, []byte, time.Duration, error) {
	if client == nil {
		return 0, nil, 0, errors.New("nil client")
	}
	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	url := strings.TrimRight(base, "/") + path

	var body io.Reader
	if tgt.Body != "" {
		body = strings.NewReader(tgt.Body)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return 0, nil, 0, err
	}
	if tgt.ContentType != "" {
		req.Header.Set("Content-Type", tgt.ContentType)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, raw, time.Since(start), nil
}

// bodiesEqual compares bytes first, then as JSON, then as XML.
func bodiesEqual(a, b []byte) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}
	if equal, ok := jsonEqual(a, b); ok {
		return equal
	}
	if equal, ok := xmlEqual(a, b); ok {
		return equal
	}
	return false
}

func jsonEqual(a, b []byte) (equal, ok bool) {
	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false, false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false, false
	}
	normalize(&aj)
	normalize(&bj)
	return reflect.DeepEqual(aj, bj), true
}

func normalize(v *interface{}) {
	switch val := (*v).(type) {
	case map[string]interface{}:
		for k, v2 := range val {
			normalize(&v2)
			val[k] = v2
		}
	case []interface{}:
		for i, v2 := range val {
			normalize(&v2)
			val[i] = v2
		}
	case float64:
		if val == float64(int64(val)) {
			*v = int64(val)
		}
	}
}

// xmlEqual compares documents by resolved element names and trimmed text,
// ignoring prefixes, attributes order and indentation.
func xmlEqual(a, b []byte) (equal, ok bool) {
	at, err := xmlTokens(a)
	if err != nil {
		return false, false
	}
	bt, err := xmlTokens(b)
	if err != nil {
		return false, false
	}
	return reflect.DeepEqual(at, bt), true
}

func xmlTokens(doc []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(doc))
	var out []string
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
			out = append(out, "<"+t.Name.Space+" "+t.Name.Local)
		case xml.EndElement:
			out = append(out, ">"+t.Name.Space+" "+t.Name.Local)
		case xml.CharData:
			if text := strings.TrimSpace(string(t)); text != "" {
				out = append(out, "="+text)
			}
		}
	}
	if len(out) == 0 {
		return nil, errors.New("no elements")
	}
	return out, nil
}
