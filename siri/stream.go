package siri

import (
	"context"
	"errors"

	sirisx "github.com/reoring/sirisx"
	eng "github.com/reoring/sirisx/internal/engine"
	"github.com/reoring/sirisx/internal/stream"
)

var situationKeys = []string{"ServiceDelivery", "SituationExchangeDelivery", "Situations", "PtSituationElement"}

// SituationsPath is the location of the situation array in a Siri document.
var SituationsPath = sirisx.PathOf("ServiceDelivery", "SituationExchangeDelivery", "Situations", "PtSituationElement")

// ErrStop may be returned by a StreamSituations callback to end iteration
// early without reporting an error.
var ErrStop = errors.New("siri: stop streaming")

// StreamSituations walks src to ServiceDelivery...PtSituationElement and
// validates each situation as soon as its tokens have been read, without
// materializing the rest of the document. fn receives every element in input
// order together with its validation error (Issues with full document paths),
// and decides whether to continue: a non-nil return ends the stream and is
// returned, except ErrStop which ends it cleanly.
//
// Envelope fields around the array are not validated; use DecodeSiri for that.
func StreamSituations(ctx context.Context, src sirisx.Source, fn func(i int, s Situation, err error) error, opts ...sirisx.ParseOpt) error {
	opt := optOf(opts)
	es := sirisx.EnforceSource(src, opt, opt.OnWarning)
	first, found, err := stream.Locate(es, situationKeys)
	if err != nil {
		return sirisx.SyntaxIssues(err)
	}
	if !found {
		return sirisx.Issues{{Path: SituationsPath, Code: sirisx.CodeRequired, Message: "situation array not found", Got: "missing"}}
	}
	err = stream.EachElement(es, first, func(i int, tok eng.Token) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := eng.DecodeValue(es, tok)
		if err != nil {
			return elementSyntaxIssues(SituationsPath.At(i), err)
		}
		s, perr := sirisx.Parse[Situation](ctx, situationSchema{}, v, opt)
		if perr != nil {
			return fn(i, Situation{}, sirisx.IssuesFromErr(SituationsPath.At(i), perr))
		}
		return fn(i, s, nil)
	})
	switch {
	case err == nil, errors.Is(err, ErrStop):
		return nil
	case errors.Is(err, stream.ErrNotArray):
		return sirisx.Issues{{Path: SituationsPath, Code: sirisx.CodeInvalidType, Message: "expected array", Expected: "array"}}
	}
	return err
}

// elementSyntaxIssues places tokenizer errors at the element. Enforcement
// findings already carry their document path and are kept as is.
func elementSyntaxIssues(at sirisx.Path, err error) sirisx.Issues {
	iss := sirisx.SyntaxIssues(err)
	out := make(sirisx.Issues, len(iss))
	for i, it := range iss {
		if len(it.Path) == 0 {
			it.Path = at
		}
		out[i] = it
	}
	return out
}
