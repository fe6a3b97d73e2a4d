package sirisx

import "context"

// Schema validates an untyped JSON-like value (map[string]any, []any, string,
// bool, numbers, nil) and produces T. On failure the error is Issues with paths
// relative to v.
type Schema[T any] interface {
	Parse(ctx context.Context, v any) (T, error)
}

// Expecter is implemented by schemas that can describe the shape they accept.
// The description lands in Issue.Expected.
type Expecter interface {
	Expect() string
}

// ExpectOf returns the shape description of s, or "" when s does not describe itself.
func ExpectOf(s any) string {
	if e, ok := s.(Expecter); ok {
		return e.Expect()
	}
	return ""
}

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is returns true if v conforms to the schema s.
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	_, err := s.Parse(ctx, v)
	return err == nil
}

// ---- Parse-time context options ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
	_ctxKeyUnknown
	_ctxKeyXMLProjection
	_ctxKeyGeoBounds
	_ctxKeyOffsets
)

// WithOptions projects the schema-relevant fields of opt onto ctx.
func WithOptions(ctx context.Context, opt ParseOpt) context.Context {
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	if opt.Unknown != UnknownStrip {
		ctx = WithUnknownPolicy(ctx, opt.Unknown)
	}
	if opt.XMLProjection {
		ctx = WithXMLProjection(ctx, true)
	}
	if opt.CheckGeoBounds {
		ctx = WithGeoBounds(ctx, true)
	}
	if opt.AllowOffsets {
		ctx = WithDateTimeOffsets(ctx, true)
	}
	return ctx
}

// WithFailFast returns a child context that marks fail-fast parsing behavior.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current parse should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	b, _ := ctx.Value(_ctxKeyFailFast).(bool)
	return b
}

// WithUnknownPolicy sets the unknown-key policy for object schemas.
func WithUnknownPolicy(ctx context.Context, p UnknownPolicy) context.Context {
	return context.WithValue(ctx, _ctxKeyUnknown, p)
}

// UnknownPolicyOf returns the unknown-key policy in effect (UnknownStrip by default).
func UnknownPolicyOf(ctx context.Context) UnknownPolicy {
	p, _ := ctx.Value(_ctxKeyUnknown).(UnknownPolicy)
	return p
}

// WithXMLProjection enables the lenient reading of XML-projected documents.
func WithXMLProjection(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyXMLProjection, enabled)
}

// IsXMLProjection reports whether singletons/text scalars should be accepted.
func IsXMLProjection(ctx context.Context) bool {
	b, _ := ctx.Value(_ctxKeyXMLProjection).(bool)
	return b
}

// WithGeoBounds enables longitude/latitude range checks.
func WithGeoBounds(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyGeoBounds, enabled)
}

// IsGeoBounds reports whether longitude/latitude range checks are enabled.
func IsGeoBounds(ctx context.Context) bool {
	b, _ := ctx.Value(_ctxKeyGeoBounds).(bool)
	return b
}

// WithDateTimeOffsets lets datetime schemas accept numeric offsets.
func WithDateTimeOffsets(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyOffsets, enabled)
}

// AllowsDateTimeOffsets reports whether numeric offsets are accepted.
func AllowsDateTimeOffsets(ctx context.Context) bool {
	b, _ := ctx.Value(_ctxKeyOffsets).(bool)
	return b
}
