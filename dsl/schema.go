package dsl

import (
	"context"

	sirisx "github.com/reoring/sirisx"
	"github.com/reoring/sirisx/i18n"
)

// Schema is re-exported so that schema-building code can stay inside this package's vocabulary.
type Schema[T any] = sirisx.Schema[T]

// SchemaFunc adapts a plain function to Schema.
type SchemaFunc[T any] func(ctx context.Context, v any) (T, error)

func (f SchemaFunc[T]) Parse(ctx context.Context, v any) (T, error) { return f(ctx, v) }

// described attaches a shape description to a schema.
type described[T any] struct {
	inner  Schema[T]
	expect string
}

func (d described[T]) Parse(ctx context.Context, v any) (T, error) { return d.inner.Parse(ctx, v) }
func (d described[T]) Expect() string                              { return d.expect }

// Describe sets the description reported in Issue.Expected when a required
// value of this schema is missing.
func Describe[T any](s Schema[T], expect string) Schema[T] {
	return described[T]{inner: s, expect: expect}
}

// Preprocess rewrites the raw value before s sees it.
func Preprocess[T any](fn func(ctx context.Context, v any) any, s Schema[T]) Schema[T] {
	return described[T]{
		inner: SchemaFunc[T](func(ctx context.Context, v any) (T, error) {
			return s.Parse(ctx, fn(ctx, v))
		}),
		expect: sirisx.ExpectOf(s),
	}
}

func typeIssue(expect string, v any) sirisx.Issues {
	return sirisx.Issues{{
		Code:     sirisx.CodeInvalidType,
		Message:  i18n.T(sirisx.CodeInvalidType, map[string]string{"expected": expect}),
		Expected: expect,
		Got:      sirisx.KindOf(v),
	}}
}

func formatIssue(expect string, got string, cause error) sirisx.Issues {
	it := sirisx.Issue{
		Code:     sirisx.CodeInvalidFormat,
		Message:  i18n.T(sirisx.CodeInvalidFormat, map[string]string{"expected": expect}),
		Expected: expect,
		Got:      got,
		Cause:    cause,
		Params:   map[string]any{"got": got},
	}
	return sirisx.Issues{it}
}
