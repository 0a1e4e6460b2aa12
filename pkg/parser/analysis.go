package parser

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"google.golang.org/genai"

	"github.com/helmcode/nekotune/pkg/model"
	"github.com/helmcode/nekotune/pkg/schema"
)

// DecodeError reports why a response did not match the report schema.
// Field is a dotted path such as "fftData[3].raw"; it is empty when the
// payload is not JSON at all.
type DecodeError struct {
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return "decode analysis: " + e.Reason
	}
	return fmt.Sprintf("decode analysis: %s: %s", e.Field, e.Reason)
}

// ParseAnalysisResponse validates raw model output against the report schema
// and decodes it. Either the whole report is returned or an error is.
func ParseAnalysisResponse(raw string) (*model.AnalysisResult, error) {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return nil, &DecodeError{Reason: "empty response"}
	}

	var doc interface{}
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &DecodeError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if err := validate(doc, schema.AnalysisSchema(), ""); err != nil {
		return nil, err
	}

	var analysis model.AnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, &DecodeError{Reason: err.Error()}
	}
	return &analysis, nil
}

func validate(v interface{}, s *genai.Schema, path string) error {
	switch s.Type {
	case genai.TypeObject:
		obj, ok := v.(map[string]interface{})
		if !ok {
			return mismatch(path, "object", v)
		}
		for _, key := range s.Required {
			if val, ok := obj[key]; !ok || val == nil {
				return &DecodeError{Field: join(path, key), Reason: "missing required field"}
			}
		}
		keys := make([]string, 0, len(s.Properties))
		for k := range s.Properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			val, ok := obj[key]
			if !ok || val == nil {
				continue
			}
			if err := validate(val, s.Properties[key], join(path, key)); err != nil {
				return err
			}
		}
	case genai.TypeArray:
		arr, ok := v.([]interface{})
		if !ok {
			return mismatch(path, "array", v)
		}
		for i, item := range arr {
			if err := validate(item, s.Items, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case genai.TypeNumber:
		if _, ok := v.(float64); !ok {
			return mismatch(path, "number", v)
		}
	case genai.TypeInteger:
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) {
			return mismatch(path, "integer", v)
		}
	case genai.TypeString:
		if _, ok := v.(string); !ok {
			return mismatch(path, "string", v)
		}
	}
	return nil
}

func mismatch(path, want string, got interface{}) error {
	return &DecodeError{Field: path, Reason: fmt.Sprintf("expected %s, got %s", want, kind(got))}
}

func kind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

var (
	openFenceRe  = regexp.MustCompile("^```[a-zA-Z]*\\s*")
	closeFenceRe = regexp.MustCompile("\\s*```$")
)

// stripFences removes one markdown code fence wrapping the payload, such as
// ```json ... ```. Backticks inside the JSON are left alone.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = openFenceRe.ReplaceAllString(text, "")
	text = closeFenceRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
