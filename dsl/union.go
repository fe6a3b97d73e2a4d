package dsl

import (
	"context"

	sirisx "github.com/reoring/sirisx"
	"github.com/reoring/sirisx/i18n"
)

// Variant is one arm of a discriminated union: the discriminator value that
// selects it, the keys that only this arm carries, and its reader.
type Variant[T any] struct {
	Tag     string
	Payload []string
	Read    func(r *ObjectReader) T
}

// Union resolves the variant named by the discriminator key of r and runs
// its reader. Only the selected variant is evaluated, so a wrong tag produces
// one discriminator issue rather than one failure per variant.
//
// Payload keys of non-selected variants are reported as a mismatch: at the
// discriminator when the selected payload is absent altogether, otherwise at
// each stray key.
func Union[T any](r *ObjectReader, discriminator string, variants ...Variant[T]) (T, bool) {
	var zero T
	tags := make([]string, len(variants))
	for i, vr := range variants {
		tags[i] = vr.Tag
		r.Mark(vr.Payload...)
	}
	raw, ok := r.Raw(discriminator)
	if r.Stopped() {
		return zero, false
	}
	at := sirisx.Root.Field(discriminator)
	allowed := i18n.List(tags)
	if !ok {
		r.Report(sirisx.Issue{
			Path:     at,
			Code:     sirisx.CodeDiscriminatorMissing,
			Message:  i18n.T(sirisx.CodeDiscriminatorMissing, map[string]string{"allowed": allowed}),
			Expected: "one of " + allowed,
			Got:      "missing",
			Params:   map[string]any{"allowed": tags},
		})
		return zero, false
	}
	tag, isStr := raw.(string)
	if !isStr {
		r.absorb(discriminator, typeIssue("string", raw))
		return zero, false
	}
	sel := -1
	for i, vr := range variants {
		if vr.Tag == tag {
			sel = i
			break
		}
	}
	if sel < 0 {
		r.Report(sirisx.Issue{
			Path:     at,
			Code:     sirisx.CodeDiscriminatorUnknown,
			Message:  i18n.T(sirisx.CodeDiscriminatorUnknown, map[string]string{"allowed": allowed}),
			Expected: "one of " + allowed,
			Got:      quote(tag),
			Params:   map[string]any{"allowed": tags, "got": tag},
		})
		return zero, false
	}

	var stray []string
	for i, vr := range variants {
		if i == sel {
			continue
		}
		for _, k := range vr.Payload {
			if r.Has(k) {
				stray = append(stray, k)
			}
		}
	}
	selected := variants[sel]
	hasOwn := len(selected.Payload) == 0
	for _, k := range selected.Payload {
		if r.Has(k) {
			hasOwn = true
			break
		}
	}
	if !hasOwn && len(stray) > 0 {
		r.Report(mismatch(at, tag, stray[0]))
		return zero, false
	}
	out := selected.Read(r)
	for _, k := range stray {
		if r.Stopped() {
			break
		}
		r.Report(mismatch(sirisx.Root.Field(k), tag, k))
	}
	return out, !r.Failed()
}

func mismatch(at sirisx.Path, tag, key string) sirisx.Issue {
	return sirisx.Issue{
		Path:    at,
		Code:    sirisx.CodeDiscriminatorMismatch,
		Message: i18n.T(sirisx.CodeDiscriminatorMismatch, map[string]string{"detail": key + " is not allowed for " + quote(tag)}),
		Got:     key,
		Params:  map[string]any{"tag": tag, "key": key},
	}
}

// DiscriminatedUnion is the standalone schema form of Union.
func DiscriminatedUnion[T any](discriminator string, variants ...Variant[T]) Schema[T] {
	return SchemaFunc[T](func(ctx context.Context, v any) (T, error) {
		var zero T
		r, err := Object(ctx, v)
		if err != nil {
			return zero, err
		}
		out, _ := Union(r, discriminator, variants...)
		if err := r.Done(); err != nil {
			return zero, err
		}
		return out, nil
	})
}
