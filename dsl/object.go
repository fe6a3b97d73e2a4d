package dsl

import (
	"context"
	"sort"

	sirisx "github.com/reoring/sirisx"
	"github.com/reoring/sirisx/i18n"
)

// ObjectReader walks the keys of one decoded JSON object, collecting issues
// with paths relative to that object. It records which keys were consumed so
// that Done can apply the unknown-key policy.
type ObjectReader struct {
	ctx      context.Context
	m        map[string]any
	seen     map[string]struct{}
	issues   sirisx.Issues
	failFast bool
}

// Object starts reading v, which must be a JSON object.
func Object(ctx context.Context, v any) (*ObjectReader, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, typeIssue("object", v)
	}
	return &ObjectReader{
		ctx:      ctx,
		m:        m,
		seen:     make(map[string]struct{}, len(m)),
		failFast: sirisx.IsFailFast(ctx),
	}, nil
}

// Context returns the parse context the reader was opened with.
func (r *ObjectReader) Context() context.Context { return r.ctx }

// Has reports whether key is present, null values included.
func (r *ObjectReader) Has(key string) bool {
	_, ok := r.m[key]
	return ok
}

// Raw returns the undecoded value at key and marks it consumed.
func (r *ObjectReader) Raw(key string) (any, bool) {
	r.seen[key] = struct{}{}
	v, ok := r.m[key]
	return v, ok
}

// Mark records keys as consumed without reading them.
func (r *ObjectReader) Mark(keys ...string) {
	for _, k := range keys {
		r.seen[k] = struct{}{}
	}
}

// Report adds an issue whose path is relative to this object.
func (r *ObjectReader) Report(it sirisx.Issue) { r.issues = append(r.issues, it) }

// Stopped reports whether fail-fast mode has already seen an issue.
func (r *ObjectReader) Stopped() bool { return r.failFast && len(r.issues) > 0 }

// Failed reports whether any issue has been recorded.
func (r *ObjectReader) Failed() bool { return len(r.issues) > 0 }

// Issues returns the issues recorded so far.
func (r *ObjectReader) Issues() sirisx.Issues { return r.issues }

func (r *ObjectReader) absorb(key string, err error) {
	r.issues = append(r.issues, sirisx.IssuesFromErr(sirisx.Root.Field(key), err)...)
}

// Done applies the unknown-key policy and returns the collected issues, or nil.
func (r *ObjectReader) Done() error {
	if !r.Stopped() && sirisx.UnknownPolicyOf(r.ctx) == sirisx.UnknownStrict {
		var unknown []string
		for k := range r.m {
			if _, ok := r.seen[k]; !ok {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		for _, k := range unknown {
			r.Report(sirisx.Issue{
				Path:    sirisx.Root.Field(k),
				Code:    sirisx.CodeUnknownKey,
				Message: i18n.T(sirisx.CodeUnknownKey, nil),
				Params:  map[string]any{"key": k},
			})
			if r.failFast {
				break
			}
		}
	}
	if len(r.issues) == 0 {
		return nil
	}
	return r.issues
}

// Required reads key with s, reporting CodeRequired when it is absent.
// A present null is handed to s, which rejects it as invalid_type.
func Required[T any](r *ObjectReader, key string, s Schema[T]) T {
	var zero T
	r.Mark(key)
	if r.Stopped() {
		return zero
	}
	v, ok := r.m[key]
	if !ok {
		exp := sirisx.ExpectOf(s)
		r.Report(sirisx.Issue{
			Path:     sirisx.Root.Field(key),
			Code:     sirisx.CodeRequired,
			Message:  i18n.T(sirisx.CodeRequired, nil),
			Expected: exp,
			Got:      "missing",
		})
		return zero
	}
	val, err := s.Parse(r.ctx, v)
	if err != nil {
		r.absorb(key, err)
		return zero
	}
	return val
}

// Optional reads key with s, returning nil when it is absent.
func Optional[T any](r *ObjectReader, key string, s Schema[T]) *T {
	r.Mark(key)
	if r.Stopped() {
		return nil
	}
	v, ok := r.m[key]
	if !ok {
		return nil
	}
	val, err := s.Parse(r.ctx, v)
	if err != nil {
		r.absorb(key, err)
		return nil
	}
	return &val
}

// ObjectOf builds an object schema from a read function. The unknown-key
// policy is applied after read returns.
func ObjectOf[T any](name string, read func(r *ObjectReader) T) Schema[T] {
	return objectSchema[T]{name: name, read: read}
}

type objectSchema[T any] struct {
	name string
	read func(r *ObjectReader) T
}

func (o objectSchema[T]) Expect() string { return o.name }

func (o objectSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	r, err := Object(ctx, v)
	if err != nil {
		return zero, err
	}
	out := o.read(r)
	if err := r.Done(); err != nil {
		return zero, err
	}
	return out, nil
}
