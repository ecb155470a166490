// Package validate turns untrusted request input into typed, bounded values.
//
// A Schema wraps one input source (query string, path params or a decoded JSON
// body). Field builders read a key, coerce it, and apply rules in call order;
// the first failing rule records a field error and the remaining rules on that
// field are skipped. Malformed input never panics: Err returns a
// domain.ValidationError listing every failing field.
package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"strings"

	"ecommerce/internal/domain"
)

// Source yields raw values by key.
type Source interface {
	Lookup(key string) (any, bool)
}

// Query reads the first value of each query-string key.
type Query url.Values

func (q Query) Lookup(key string) (any, bool) {
	vals, ok := q[key]
	if !ok || len(vals) == 0 {
		return nil, false
	}
	return vals[0], true
}

// Params reads path parameters.
type Params map[string]string

func (p Params) Lookup(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// Body reads a JSON object decoded with UseNumber. JSON null counts as absent.
type Body map[string]any

func (b Body) Lookup(key string) (any, bool) {
	v, ok := b[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Schema collects field errors for one source.
type Schema struct {
	src    Source
	coerce bool
	prefix string
	errs   *[]domain.FieldError
}

func newSchema(src Source, coerce bool) *Schema {
	return &Schema{src: src, coerce: coerce, errs: &[]domain.FieldError{}}
}

// FromQuery validates query-string values; strings are coerced to the declared type.
func FromQuery(v url.Values) *Schema { return newSchema(Query(v), true) }

// FromParams validates path parameters; strings are coerced to the declared type.
func FromParams(p map[string]string) *Schema { return newSchema(Params(p), true) }

// FromBody validates a decoded JSON object; values must already have the declared JSON type.
func FromBody(b map[string]any) *Schema { return newSchema(Body(b), false) }

// DecodeBody reads a JSON object from r. An empty body is an empty object.
func DecodeBody(r io.Reader) (*Schema, error) {
	if r == nil {
		return FromBody(map[string]any{}), nil
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, domain.ValidationError{Msg: "No se pudo leer el cuerpo de la solicitud", Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return FromBody(map[string]any{}), nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, domain.ValidationError{Msg: "JSON inválido", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, domain.ValidationError{Msg: "JSON inválido"}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, domain.ValidationError{Msg: "El cuerpo de la solicitud debe ser un objeto JSON"}
	}
	return FromBody(obj), nil
}

// Fail records a message for field unless the field already failed.
func (s *Schema) Fail(field, msg string) {
	name := s.prefix + field
	for _, fe := range *s.errs {
		if fe.Field == name {
			return
		}
	}
	*s.errs = append(*s.errs, domain.FieldError{Field: name, Message: msg})
}

// Failed reports whether field has a recorded error.
func (s *Schema) Failed(field string) bool {
	name := s.prefix + field
	for _, fe := range *s.errs {
		if fe.Field == name {
			return true
		}
	}
	return false
}

// Err returns nil when every field passed, otherwise a domain.ValidationError.
func (s *Schema) Err() error {
	if len(*s.errs) == 0 {
		return nil
	}
	fields := make([]domain.FieldError, len(*s.errs))
	copy(fields, *s.errs)
	return domain.ValidationError{Fields: fields}
}

// Object returns a nested schema for a JSON object field. Errors inside it are
// reported as "name.child". ok is false when the field is absent or not an object.
func (s *Schema) Object(name string) (nested *Schema, ok bool) {
	raw, present := s.src.Lookup(name)
	if !present {
		return nil, false
	}
	obj, isObj := raw.(map[string]any)
	if !isObj {
		s.Fail(name, "debe ser un objeto")
		return nil, false
	}
	return &Schema{
		src:    Body(obj),
		coerce: s.coerce,
		prefix: s.prefix + name + ".",
		errs:   s.errs,
	}, true
}

func (s *Schema) lookupString(name string) (string, bool, bool) {
	raw, ok := s.src.Lookup(name)
	if !ok {
		return "", false, true
	}
	str, isStr := raw.(string)
	if !isStr {
		return "", true, false
	}
	return str, true, true
}

func joinOptions(opts []string) string {
	return strings.Join(opts, ", ")
}
