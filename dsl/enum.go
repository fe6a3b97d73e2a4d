package dsl

import (
	"context"

	sirisx "github.com/reoring/sirisx"
	"github.com/reoring/sirisx/i18n"
)

// EnumSchema accepts one of a closed set of string values.
type EnumSchema[T ~string] struct {
	values []T
	set    map[T]struct{}
}

// Enum builds an EnumSchema over values, kept in declaration order.
func Enum[T ~string](values ...T) *EnumSchema[T] {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return &EnumSchema[T]{values: values, set: set}
}

// Values returns the allowed values in declaration order.
func (e *EnumSchema[T]) Values() []T { return append([]T(nil), e.values...) }

// Contains reports whether v is an allowed value.
func (e *EnumSchema[T]) Contains(v T) bool {
	_, ok := e.set[v]
	return ok
}

func (e *EnumSchema[T]) Expect() string { return "one of " + i18n.List(e.allowed()) }

func (e *EnumSchema[T]) allowed() []string {
	out := make([]string, len(e.values))
	for i, v := range e.values {
		out[i] = string(v)
	}
	return out
}

func (e *EnumSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	s, ok := v.(string)
	if !ok {
		var zero T
		return zero, typeIssue("string", v)
	}
	if !e.Contains(T(s)) {
		var zero T
		allowed := e.allowed()
		return zero, sirisx.Issues{{
			Code:     sirisx.CodeInvalidEnum,
			Message:  i18n.T(sirisx.CodeInvalidEnum, map[string]string{"allowed": i18n.List(allowed)}),
			Expected: e.Expect(),
			Got:      quote(s),
			Params:   map[string]any{"allowed": allowed, "got": s},
		}}
	}
	return T(s), nil
}
