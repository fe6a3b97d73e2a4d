package siri

import (
	"context"
	"errors"
	"io"

	sirisx "github.com/reoring/sirisx"
	"github.com/reoring/sirisx/source/xmlsrc"
	"github.com/reoring/sirisx/source/yamlsrc"
)

// DecodeSituation validates an already decoded PtSituationElement.
func DecodeSituation(ctx context.Context, v any, opts ...sirisx.ParseOpt) (Situation, error) {
	return sirisx.Parse[Situation](ctx, situationSchema{}, v, opts...)
}

// DecodeSiri validates an already decoded Siri document.
func DecodeSiri(ctx context.Context, v any, opts ...sirisx.ParseOpt) (Siri, error) {
	return sirisx.Parse(ctx, siriSchema, v, opts...)
}

// DecodeSiriJSON tokenizes and validates a JSON document.
func DecodeSiriJSON(ctx context.Context, data []byte, opts ...sirisx.ParseOpt) (Siri, error) {
	return sirisx.ParseFrom(ctx, siriSchema, sirisx.JSONBytes(data), opts...)
}

// DecodeSiriReader reads and validates a JSON document, honoring MaxBytes.
func DecodeSiriReader(ctx context.Context, r io.Reader, opts ...sirisx.ParseOpt) (Siri, error) {
	return sirisx.StreamParse(ctx, siriSchema, r, opts...)
}

// DecodeSiriXML projects a SIRI XML document onto the JSON shape and validates
// it. XMLProjection is always enabled.
func DecodeSiriXML(ctx context.Context, r io.Reader, opts ...sirisx.ParseOpt) (Siri, error) {
	opt := optOf(opts)
	v, err := xmlsrc.Decode(r, xmlsrc.Options{MaxDepth: opt.MaxDepth, MaxBytes: opt.MaxBytes})
	if errors.Is(err, xmlsrc.ErrTooLarge) {
		return Siri{}, sirisx.Issues{{Code: sirisx.CodeTruncated, Message: "max bytes exceeded", Cause: err}}
	}
	if err != nil {
		return Siri{}, sirisx.SyntaxIssues(err)
	}
	opt.XMLProjection = true
	return sirisx.Parse(ctx, siriSchema, v, opt)
}

// DecodeSiriYAML validates a YAML rendition of the JSON shape.
func DecodeSiriYAML(ctx context.Context, data []byte, opts ...sirisx.ParseOpt) (Siri, error) {
	opt := optOf(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return Siri{}, sirisx.Issues{{Code: sirisx.CodeTruncated, Message: "max bytes exceeded"}}
	}
	v, err := yamlsrc.Decode(data)
	if err != nil {
		return Siri{}, sirisx.SyntaxIssues(err)
	}
	return sirisx.Parse(ctx, siriSchema, v, opt)
}

func optOf(opts []sirisx.ParseOpt) sirisx.ParseOpt {
	if len(opts) == 0 {
		return sirisx.ParseOpt{}
	}
	return opts[len(opts)-1]
}
