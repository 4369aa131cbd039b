package envfile

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies which case of the closed Value union is populated.
type Kind int

const (
	// KindString is the fallback case for any text no other case accepts.
	KindString Kind = iota
	// KindBoolean holds a case-insensitive true/false literal.
	KindBoolean
	// KindInteger holds a base-10 integer literal.
	KindInteger
	// KindFloat holds a floating-point literal that is not also an integer literal.
	KindFloat
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Value is a typed configuration scalar. The type is inferred from the
// literal text it was constructed from; there is no cross-case coercion,
// so Integer(1) and Boolean(true) are distinct values.
//
// The zero Value is an empty string.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// BoolValue constructs a boolean Value.
func BoolValue(v bool) Value { return Value{kind: KindBoolean, b: v} }

// IntValue constructs an integer Value.
func IntValue(v int64) Value { return Value{kind: KindInteger, i: v} }

// FloatValue constructs a float Value.
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }

// StringValue constructs a string Value.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// Infer classifies raw text into a Value. It is total: text that parses as
// nothing else becomes a string. The check order matters:
//
//  1. case-insensitive "true"/"false" is a boolean
//  2. a float literal that is NOT also an integer literal is a float,
//     so "5" stays an integer while "5.5", "1.0" and "1e3" are floats
//  3. an integer literal is an integer
//  4. anything else is a string, with one leading and one trailing
//     double quote trimmed and \" unescaped
func Infer(text string) Value {
	if strings.EqualFold(text, "true") {
		return BoolValue(true)
	}
	if strings.EqualFold(text, "false") {
		return BoolValue(false)
	}
	i, intErr := strconv.ParseInt(text, 10, 64)
	if f, err := strconv.ParseFloat(text, 64); err == nil && intErr != nil {
		return FloatValue(f)
	}
	if intErr == nil {
		return IntValue(i)
	}
	return StringValue(unquote(text))
}

// unquote trims one leading and one trailing double quote, each
// independently of the other, and unescapes \" sequences.
func unquote(text string) string {
	text = strings.TrimPrefix(text, `"`)
	text = strings.TrimSuffix(text, `"`)
	return strings.ReplaceAll(text, `\"`, `"`)
}

// Kind reports which case the value holds.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. The second result is false for
// non-boolean values.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBoolean }

// Int returns the integer payload. The second result is false for
// non-integer values.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInteger }

// Float returns the float payload. The second result is false for
// non-float values.
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// Text returns the string payload. The second result is false for
// non-string values.
func (v Value) Text() (string, bool) { return v.s, v.kind == KindString }

// String renders the canonical textual representation used for
// serialization. String payloads render raw, without quotes or escapes.
func (v Value) String() string {
	switch v.kind {
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	default:
		return v.s
	}
}

// formatFloat renders a float so that it re-infers as a float: a rendering
// with no decimal point or exponent (e.g. 1e3 -> "1000") gets ".0" appended.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(f, 0) && !math.IsNaN(f) {
		s += ".0"
	}
	return s
}

// Equal reports whether two values hold the same case and the same payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBoolean:
		return v.b == other.b
	case KindInteger:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	default:
		return v.s == other.s
	}
}

// isEmpty reports whether the value is a string with an empty payload.
// Such values are rejected by store construction; the other cases cannot
// be empty.
func (v Value) isEmpty() bool {
	return v.kind == KindString && v.s == ""
}

// native returns the payload as its natural Go type, for export and decoding.
func (v Value) native() any {
	switch v.kind {
	case KindBoolean:
		return v.b
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	default:
		return v.s
	}
}
