package dsl

import (
	"context"
	"errors"
	"math"
	"net/url"

	sirisx "github.com/reoring/sirisx"
	"github.com/reoring/sirisx/i18n"
)

// String accepts JSON strings.
func String() Schema[string] { return stringSchema{} }

// Bool accepts JSON booleans, plus "true"/"false" text under XML projection.
func Bool() Schema[bool] { return boolSchema{} }

// Number accepts any finite JSON number, plus numeric text under XML projection.
func Number() Schema[float64] { return numberSchema{} }

// Integer accepts numbers without a fractional part.
func Integer() Schema[int] { return integerSchema{} }

// DateTime accepts RFC 3339 date-time strings in UTC (Z). Numeric offsets
// pass only under sirisx.WithDateTimeOffsets.
func DateTime() Schema[sirisx.DateTime] { return dateTimeSchema{} }

// URL accepts absolute URLs.
func URL() Schema[string] { return urlSchema{} }

// Literal accepts exactly the string lit.
func Literal(lit string) Schema[string] { return literalSchema{lit: lit} }

type stringSchema struct{}

func (stringSchema) Expect() string { return "string" }

func (stringSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", typeIssue("string", v)
	}
	return s, nil
}

type boolSchema struct{}

func (boolSchema) Expect() string { return "boolean" }

func (boolSchema) Parse(ctx context.Context, v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		if sirisx.IsXMLProjection(ctx) {
			switch b {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
		}
	}
	return false, typeIssue("boolean", v)
}

type numberSchema struct{}

func (numberSchema) Expect() string { return "number" }

func (numberSchema) Parse(ctx context.Context, v any) (float64, error) {
	if s, ok := v.(string); ok && sirisx.IsXMLProjection(ctx) {
		if f, ok := sirisx.TextToFloat(s); ok {
			return f, nil
		}
		return 0, typeIssue("number", v)
	}
	if _, isStr := v.(string); isStr {
		return 0, typeIssue("number", v)
	}
	f, ok := sirisx.ToFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, typeIssue("number", v)
	}
	return f, nil
}

type integerSchema struct{}

func (integerSchema) Expect() string { return "integer" }

func (integerSchema) Parse(ctx context.Context, v any) (int, error) {
	f, err := (numberSchema{}).Parse(ctx, v)
	if err != nil {
		return 0, typeIssue("integer", v)
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, typeIssue("integer", v)
	}
	return int(f), nil
}

type dateTimeSchema struct{}

func (dateTimeSchema) Expect() string { return "datetime" }

func (dateTimeSchema) Parse(ctx context.Context, v any) (sirisx.DateTime, error) {
	s, ok := v.(string)
	if !ok {
		return sirisx.DateTime{}, typeIssue("string", v)
	}
	parse := sirisx.ParseDateTime
	if sirisx.AllowsDateTimeOffsets(ctx) {
		parse = sirisx.ParseDateTimeOffset
	}
	dt, err := parse(s)
	if err != nil {
		return sirisx.DateTime{}, formatIssue("datetime", s, err)
	}
	return dt, nil
}

var errNotAbsolute = errors.New("url is not absolute")

type urlSchema struct{}

func (urlSchema) Expect() string { return "url" }

func (urlSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", typeIssue("string", v)
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", formatIssue("url", s, err)
	}
	if u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
		return "", formatIssue("url", s, errNotAbsolute)
	}
	return s, nil
}

type literalSchema struct{ lit string }

func (l literalSchema) Expect() string { return "literal " + quote(l.lit) }

func (l literalSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", typeIssue("string", v)
	}
	if s != l.lit {
		return "", sirisx.Issues{{
			Code:     sirisx.CodeInvalidLiteral,
			Message:  i18n.T(sirisx.CodeInvalidLiteral, map[string]string{"expected": quote(l.lit)}),
			Expected: quote(l.lit),
			Got:      quote(s),
			Params:   map[string]any{"expected": l.lit, "got": s},
		}}
	}
	return s, nil
}

func quote(s string) string { return `"` + s + `"` }
