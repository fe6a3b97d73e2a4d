package sirisx

import (
	"context"
	"errors"
	"fmt"
	"io"

	eng "github.com/reoring/sirisx/internal/engine"
)

// ParseFrom is the primary entry point. It consumes tokens from the Source,
// builds an any value, and delegates validation to the Schema.
func ParseFrom[T any](ctx context.Context, s Schema[T], src Source, opts ...ParseOpt) (T, error) {
	var zero T
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	opt := lastOpt(opts)
	v, err := DecodeAny(src, opt)
	if err != nil {
		return zero, err
	}
	return Parse(ctx, s, v, opt)
}

// Parse validates an already decoded tree with the given options.
// In fail-fast mode at most one issue is returned.
func Parse[T any](ctx context.Context, s Schema[T], v any, opts ...ParseOpt) (T, error) {
	opt := lastOpt(opts)
	out, err := s.Parse(WithOptions(ctx, opt), v)
	if err != nil {
		var zero T
		iss := IssuesFromErr(Root, err)
		if opt.FailFast && len(iss) > 1 {
			iss = iss[:1]
		}
		return zero, iss
	}
	return out, nil
}

// DecodeAny reads a full JSON document from src into an untyped tree, applying
// duplicate-key and depth enforcement from opt. Syntax problems are returned as Issues.
func DecodeAny(src Source, opt ParseOpt) (any, error) {
	var warned Issues
	enforced := EnforceSource(src, opt, func(it Issue) {
		warned = append(warned, it)
		if opt.OnWarning != nil {
			opt.OnWarning(it)
		}
	})
	v, err := eng.DecodeAnyFromSource(enforced)
	if err != nil {
		return nil, toIssues(err)
	}
	// reject trailing data after the root value
	if tok, err := enforced.NextToken(); err == nil {
		return nil, singleIssue(CodeParseError, fmt.Sprintf("unexpected trailing token (kind %d)", tok.Kind))
	} else if !errors.Is(err, io.EOF) {
		return nil, toIssues(err)
	}
	if opt.Strictness.OnDuplicateKey == Error && len(warned) > 0 {
		return nil, warned
	}
	return v, nil
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, fromSimpleIssue(ie.SimpleIssue))
	}
	return AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Cause: err})
}

func singleIssue(code, msg string) Issues { return AppendIssues(nil, Issue{Code: code, Message: msg}) }

// StreamParse validates input read from an io.Reader.
// When MaxBytes is set it enforces the size cap up front, otherwise it
// delegates directly to ParseFrom via the Source driver.
func StreamParse[T any](ctx context.Context, s Schema[T], r io.Reader, opts ...ParseOpt) (T, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		data, err := ReadLimited(r, opt.MaxBytes)
		if err != nil {
			var zero T
			return zero, err
		}
		return ParseFrom[T](ctx, s, JSONBytes(data), opts...)
	}
	return ParseFrom[T](ctx, s, JSONReader(r), opts...)
}

// ReadLimited reads r fully, failing with CodeTruncated when more than max bytes arrive.
func ReadLimited(r io.Reader, max int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, singleIssue(CodeParseError, err.Error())
	}
	if int64(len(data)) > max {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	return data, nil
}

// SyntaxIssues converts a tokenizer or enforcement error into Issues, keeping
// the code of duplicate-key and depth findings.
func SyntaxIssues(err error) Issues { return toIssues(err) }
