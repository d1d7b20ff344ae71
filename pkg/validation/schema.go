package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
)

//go:embed directive.schema.json
var directiveSchema []byte

var (
	registerOnce sync.Once
	schemaOnce   sync.Once
	schema       *gojsonschema.Schema
	schemaErr    error
)

// hexColorChecker accepts anything ParseColor understands.
type hexColorChecker struct{}

func (hexColorChecker) IsFormat(input any) bool {
	s, ok := input.(string)
	if !ok {
		return false
	}
	_, ok = directive.ParseColor(s)
	return ok
}

func compiled() (*gojsonschema.Schema, error) {
	registerOnce.Do(func() {
		gojsonschema.FormatCheckers.Add("hex_color", hexColorChecker{})
	})
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(directiveSchema))
	})
	return schema, schemaErr
}

// ValidateSchema checks raw directive JSON against the directive schema.
// Malformed JSON is an error. Schema violations are warnings because the
// builder repairs or ignores every field it cannot use.
func ValidateSchema(data []byte) *Report {
	r := NewReport()

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		r.AddError(Result{
			Level:   LevelSchema,
			Message: fmt.Sprintf("directive is not valid JSON: %v", err),
			Path:    "$",
		})
		return r
	}

	s, err := compiled()
	if err != nil {
		r.AddError(Result{
			Level:   LevelSchema,
			Message: fmt.Sprintf("compiling directive schema: %v", err),
			Path:    "$",
		})
		return r
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		r.AddError(Result{
			Level:   LevelSchema,
			Message: fmt.Sprintf("validating directive: %v", err),
			Path:    "$",
		})
		return r
	}
	for _, desc := range result.Errors() {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     desc.Description(),
			Path:        schemaPath(desc.Field()),
			ActualValue: desc.Value(),
			Expected:    desc.Type(),
		})
	}
	return r
}

// schemaPath turns gojsonschema's "zones.0.w" into "zones[0].w".
func schemaPath(field string) string {
	if field == "(root)" || field == "" {
		return "$"
	}
	parts := strings.Split(field, ".")
	var b strings.Builder
	for i, p := range parts {
		if isIndex(p) {
			fmt.Fprintf(&b, "[%s]", p)
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
