package validate

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var formats = validator.New()

// String is a string field. Rules are no-ops on an absent field unless noted.
type String struct {
	s       *Schema
	name    string
	val     string
	present bool
	failed  bool
}

func (s *Schema) String(name string) *String {
	f := &String{s: s, name: name}
	v, present, ok := s.lookupString(name)
	f.present = present
	if !ok {
		f.fail("debe ser un texto")
		return f
	}
	f.val = v
	return f
}

func (f *String) fail(msg string) {
	f.failed = true
	f.s.Fail(f.name, msg)
}

func (f *String) active() bool { return f.present && !f.failed }

func (f *String) Trim() *String {
	if f.active() {
		f.val = strings.TrimSpace(f.val)
	}
	return f
}

// OmitEmpty treats a present but empty value as absent.
func (f *String) OmitEmpty() *String {
	if f.active() && f.val == "" {
		f.present = false
	}
	return f
}

// Required fails when the field is absent or empty.
func (f *String) Required(msg string) *String {
	if f.failed {
		return f
	}
	if !f.present || f.val == "" {
		f.fail(msg)
	}
	return f
}

// Default supplies d when the field is absent.
func (f *String) Default(d string) *String {
	if !f.present && !f.failed {
		f.val = d
		f.present = true
	}
	return f
}

func (f *String) Min(n int, msg string) *String {
	if f.active() && utf8.RuneCountInString(f.val) < n {
		f.fail(msg)
	}
	return f
}

func (f *String) Max(n int, msg string) *String {
	if f.active() && utf8.RuneCountInString(f.val) > n {
		f.fail(msg)
	}
	return f
}

func (f *String) OneOf(opts []string, msg string) *String {
	if f.active() && !slices.Contains(opts, f.val) {
		if msg == "" {
			msg = "debe ser uno de: " + joinOptions(opts)
		}
		f.fail(msg)
	}
	return f
}

func (f *String) Email(msg string) *String {
	if f.active() && formats.Var(f.val, "email") != nil {
		f.fail(msg)
	}
	return f
}

func (f *String) Value() string {
	if f.failed {
		return ""
	}
	return f.val
}

// Ptr returns nil when the field is absent or failed.
func (f *String) Ptr() *string {
	if !f.active() {
		return nil
	}
	v := f.val
	return &v
}

// Int is an integer field.
type Int struct {
	s       *Schema
	name    string
	val     int
	present bool
	failed  bool
}

func (s *Schema) Int(name string) *Int {
	f := &Int{s: s, name: name}
	raw, ok := s.src.Lookup(name)
	if !ok {
		return f
	}
	f.present = true
	n, ok := s.toInt(raw)
	if !ok {
		f.fail("debe ser un número entero")
		return f
	}
	f.val = n
	return f
}

// IntOr is an integer field that falls back to def when absent, unparsable or zero.
// A parsed value outside the declared bounds is still rejected by later rules.
func (s *Schema) IntOr(name string, def int) *Int {
	f := &Int{s: s, name: name, val: def, present: true}
	raw, ok := s.src.Lookup(name)
	if !ok {
		return f
	}
	if n, ok := s.toInt(raw); ok && n != 0 {
		f.val = n
	}
	return f
}

func (s *Schema) toInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case string:
		if !s.coerce {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		return n, err == nil
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

func (f *Int) fail(msg string) {
	f.failed = true
	f.s.Fail(f.name, msg)
}

func (f *Int) active() bool { return f.present && !f.failed }

func (f *Int) Required(msg string) *Int {
	if !f.present && !f.failed {
		f.fail(msg)
	}
	return f
}

func (f *Int) Default(d int) *Int {
	if !f.present && !f.failed {
		f.val = d
		f.present = true
	}
	return f
}

func (f *Int) Min(n int, msg string) *Int {
	if f.active() && f.val < n {
		f.fail(msg)
	}
	return f
}

func (f *Int) Max(n int, msg string) *Int {
	if f.active() && f.val > n {
		f.fail(msg)
	}
	return f
}

func (f *Int) Positive(msg string) *Int {
	return f.Min(1, msg)
}

func (f *Int) Value() int {
	if f.failed {
		return 0
	}
	return f.val
}

func (f *Int) Ptr() *int {
	if !f.active() {
		return nil
	}
	v := f.val
	return &v
}

// Float is a decimal number field.
type Float struct {
	s       *Schema
	name    string
	val     float64
	present bool
	failed  bool
}

func (s *Schema) Float(name string) *Float {
	f := &Float{s: s, name: name}
	raw, ok := s.src.Lookup(name)
	if !ok {
		return f
	}
	f.present = true

	var (
		n   float64
		err error
	)
	switch v := raw.(type) {
	case string:
		if !s.coerce {
			f.fail("debe ser un número")
			return f
		}
		n, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	case json.Number:
		n, err = v.Float64()
	case float64:
		n = v
	default:
		f.fail("debe ser un número")
		return f
	}
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		f.fail("debe ser un número")
		return f
	}
	f.val = n
	return f
}

func (f *Float) fail(msg string) {
	f.failed = true
	f.s.Fail(f.name, msg)
}

func (f *Float) active() bool { return f.present && !f.failed }

func (f *Float) Required(msg string) *Float {
	if !f.present && !f.failed {
		f.fail(msg)
	}
	return f
}

func (f *Float) Min(n float64, msg string) *Float {
	if f.active() && f.val < n {
		f.fail(msg)
	}
	return f
}

func (f *Float) Max(n float64, msg string) *Float {
	if f.active() && f.val > n {
		f.fail(msg)
	}
	return f
}

// Positive fails unless the value is strictly greater than zero.
func (f *Float) Positive(msg string) *Float {
	if f.active() && f.val <= 0 {
		f.fail(msg)
	}
	return f
}

func (f *Float) Value() float64 {
	if f.failed {
		return 0
	}
	return f.val
}

func (f *Float) Ptr() *float64 {
	if !f.active() {
		return nil
	}
	v := f.val
	return &v
}

// Bool is a JSON boolean field.
type Bool struct {
	s       *Schema
	name    string
	val     bool
	present bool
	failed  bool
}

func (s *Schema) Bool(name string) *Bool {
	f := &Bool{s: s, name: name}
	raw, ok := s.src.Lookup(name)
	if !ok {
		return f
	}
	f.present = true
	b, ok := raw.(bool)
	if !ok {
		f.failed = true
		s.Fail(name, "debe ser verdadero o falso")
		return f
	}
	f.val = b
	return f
}

func (f *Bool) Default(d bool) *Bool {
	if !f.present && !f.failed {
		f.val = d
		f.present = true
	}
	return f
}

func (f *Bool) Value() bool { return f.val && !f.failed }

func (f *Bool) Ptr() *bool {
	if !f.present || f.failed {
		return nil
	}
	v := f.val
	return &v
}

// Flag reads a query-string boolean. Only the literal "true" is true; any other
// present value is false. An absent flag is nil (no constraint).
func (s *Schema) Flag(name string) *bool {
	raw, ok := s.src.Lookup(name)
	if !ok {
		return nil
	}
	v := false
	switch t := raw.(type) {
	case string:
		v = t == "true"
	case bool:
		v = t
	}
	return &v
}

// StringList is a JSON array of strings.
type StringList struct {
	s       *Schema
	name    string
	val     []string
	present bool
	failed  bool
}

func (s *Schema) Strings(name string) *StringList {
	f := &StringList{s: s, name: name}
	raw, ok := s.src.Lookup(name)
	if !ok {
		return f
	}
	f.present = true
	items, ok := raw.([]any)
	if !ok {
		f.fail("debe ser una lista de textos")
		return f
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		str, ok := it.(string)
		if !ok {
			f.fail("debe ser una lista de textos")
			return f
		}
		out = append(out, strings.TrimSpace(str))
	}
	f.val = out
	return f
}

func (f *StringList) fail(msg string) {
	f.failed = true
	f.s.Fail(f.name, msg)
}

func (f *StringList) active() bool { return f.present && !f.failed }

func (f *StringList) MaxItems(n int, msg string) *StringList {
	if f.active() && len(f.val) > n {
		f.fail(msg)
	}
	return f
}

// Items applies length bounds to every element.
func (f *StringList) Items(minLen, maxLen int, msg string) *StringList {
	if !f.active() {
		return f
	}
	for _, it := range f.val {
		n := utf8.RuneCountInString(it)
		if n < minLen || n > maxLen {
			f.fail(msg)
			return f
		}
	}
	return f
}

func (f *StringList) Value() []string {
	if !f.active() {
		return nil
	}
	return f.val
}

func (f *StringList) Ptr() *[]string {
	if !f.active() {
		return nil
	}
	v := f.val
	return &v
}
