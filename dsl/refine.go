package dsl

import (
	"context"

	sirisx "github.com/reoring/sirisx"
	"github.com/reoring/sirisx/i18n"
)

// Refine runs fn after s succeeded. fn may return sirisx.Issues with paths
// relative to the value; any other error becomes a refinement issue at the
// value itself.
func Refine[T any](s Schema[T], fn func(ctx context.Context, v T) error) Schema[T] {
	return refined[T]{inner: s, fn: fn}
}

type refined[T any] struct {
	inner Schema[T]
	fn    func(ctx context.Context, v T) error
}

func (r refined[T]) Expect() string { return sirisx.ExpectOf(r.inner) }

func (r refined[T]) Parse(ctx context.Context, v any) (T, error) {
	out, err := r.inner.Parse(ctx, v)
	if err != nil {
		return out, err
	}
	if err := sirisx.ApplyRefine[T](ctx, out, r); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (r refined[T]) Refine(ctx context.Context, v T) error {
	err := r.fn(ctx, v)
	if err == nil {
		return nil
	}
	if iss, ok := sirisx.AsIssues(err); ok {
		return iss
	}
	return sirisx.Issues{{
		Code:    sirisx.CodeRefinement,
		Message: i18n.T(sirisx.CodeRefinement, map[string]string{"detail": err.Error()}),
		Cause:   err,
	}}
}
