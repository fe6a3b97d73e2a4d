package dsl

import (
	"context"

	sirisx "github.com/reoring/sirisx"
)

// Array accepts a JSON array whose every element satisfies elem. Element order
// is preserved and an empty array yields an empty, non-nil slice.
//
// Under XML projection a lone object or text value stands for a one-element
// array, since the projection cannot tell a single repeated element from a
// non-repeated one.
func Array[T any](elem Schema[T]) Schema[[]T] { return arraySchema[T]{elem: elem} }

type arraySchema[T any] struct{ elem Schema[T] }

func (a arraySchema[T]) Expect() string {
	if e := sirisx.ExpectOf(a.elem); e != "" {
		return "array of " + e
	}
	return "array"
}

func (a arraySchema[T]) Parse(ctx context.Context, v any) ([]T, error) {
	arr, ok := v.([]any)
	if !ok {
		switch v.(type) {
		case map[string]any, string:
			if sirisx.IsXMLProjection(ctx) {
				arr, ok = []any{v}, true
			}
		}
	}
	if !ok {
		return nil, typeIssue("array", v)
	}
	failFast := sirisx.IsFailFast(ctx)
	out := make([]T, 0, len(arr))
	var iss sirisx.Issues
	for i, e := range arr {
		val, err := a.elem.Parse(ctx, e)
		if err != nil {
			iss = append(iss, sirisx.IssuesFromErr(sirisx.Root.At(i), err)...)
			if failFast {
				return nil, iss
			}
			continue
		}
		out = append(out, val)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}
