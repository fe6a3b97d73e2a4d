package dsl_test

import (
	"context"
	"encoding/json"
	"testing"

	sirisx "github.com/reoring/sirisx"
	g "github.com/reoring/sirisx/dsl"
)

func firstCode(t *testing.T, err error) string {
	t.Helper()
	iss, ok := sirisx.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues error, got %v", err)
	}
	return iss[0].Code
}

func TestStringSchema_Basic(t *testing.T) {
	ctx := context.Background()
	v, err := g.String().Parse(ctx, "hello")
	if err != nil || v != "hello" {
		t.Fatalf("parse ok expected, got v=%v err=%v", v, err)
	}
	_, err = g.String().Parse(ctx, 1)
	if code := firstCode(t, err); code != sirisx.CodeInvalidType {
		t.Fatalf("expected invalid_type, got %s", code)
	}
	_, err = g.String().Parse(ctx, nil)
	iss, _ := sirisx.AsIssues(err)
	if iss[0].Got != "null" || iss[0].Expected != "string" {
		t.Fatalf("unexpected expected/got: %+v", iss[0])
	}
}

func TestBoolSchema_XMLProjection(t *testing.T) {
	ctx := context.Background()
	if _, err := g.Bool().Parse(ctx, "true"); err == nil {
		t.Fatalf("text boolean must be rejected outside XML projection")
	}
	b, err := g.Bool().Parse(sirisx.WithXMLProjection(ctx, true), "true")
	if err != nil || !b {
		t.Fatalf("expected true, got %v err=%v", b, err)
	}
	if _, err := g.Bool().Parse(sirisx.WithXMLProjection(ctx, true), "yes"); err == nil {
		t.Fatalf("expected error for yes")
	}
}

func TestNumberSchema_Kinds(t *testing.T) {
	ctx := context.Background()
	for _, in := range []any{json.Number("-0.1262"), 51.5, 3} {
		if _, err := g.Number().Parse(ctx, in); err != nil {
			t.Fatalf("number %v rejected: %v", in, err)
		}
	}
	if _, err := g.Number().Parse(ctx, "51.5"); err == nil {
		t.Fatalf("numeric text must be rejected outside XML projection")
	}
	f, err := g.Number().Parse(sirisx.WithXMLProjection(ctx, true), "51.5")
	if err != nil || f != 51.5 {
		t.Fatalf("expected 51.5, got %v err=%v", f, err)
	}
}

func TestIntegerSchema(t *testing.T) {
	ctx := context.Background()
	n, err := g.Integer().Parse(ctx, json.Number("3"))
	if err != nil || n != 3 {
		t.Fatalf("expected 3, got %v err=%v", n, err)
	}
	if _, err := g.Integer().Parse(ctx, json.Number("3.5")); err == nil {
		t.Fatalf("expected error for fractional integer")
	}
}

func TestDateTimeSchema(t *testing.T) {
	ctx := context.Background()
	dt, err := g.DateTime().Parse(ctx, "2024-02-01T08:00:00Z")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dt.String() != "2024-02-01T08:00:00Z" {
		t.Fatalf("raw text not kept: %s", dt)
	}
	_, err = g.DateTime().Parse(ctx, "yesterday")
	if code := firstCode(t, err); code != sirisx.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %s", code)
	}
}

func TestDateTimeSchema_Offsets(t *testing.T) {
	const in = "2024-02-01T09:00:00+01:00"
	_, err := g.DateTime().Parse(context.Background(), in)
	if code := firstCode(t, err); code != sirisx.CodeInvalidFormat {
		t.Fatalf("offsets are rejected by default, got %s", code)
	}
	dt, err := g.DateTime().Parse(sirisx.WithDateTimeOffsets(context.Background(), true), in)
	if err != nil {
		t.Fatalf("offset must pass when enabled: %v", err)
	}
	if dt.String() != in {
		t.Fatalf("raw text not kept: %s", dt)
	}
}

func TestURLSchema(t *testing.T) {
	ctx := context.Background()
	if _, err := g.URL().Parse(ctx, "https://tfl.gov.uk/status"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, in := range []string{"not a url", "/relative/path", ""} {
		_, err := g.URL().Parse(ctx, in)
		if err == nil {
			t.Fatalf("expected error for %q", in)
		}
		if code := firstCode(t, err); code != sirisx.CodeInvalidFormat {
			t.Fatalf("expected invalid_format for %q, got %s", in, code)
		}
	}
}

func TestLiteralSchema(t *testing.T) {
	ctx := context.Background()
	if _, err := g.Literal("").Parse(ctx, ""); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := g.Literal("").Parse(ctx, "all")
	if code := firstCode(t, err); code != sirisx.CodeInvalidLiteral {
		t.Fatalf("expected invalid_literal, got %s", code)
	}
}

type mode string

func TestEnumSchema(t *testing.T) {
	ctx := context.Background()
	e := g.Enum[mode]("bus", "tram")
	v, err := e.Parse(ctx, "tram")
	if err != nil || v != "tram" {
		t.Fatalf("expected tram, got %v err=%v", v, err)
	}
	_, err = e.Parse(ctx, "spaceship")
	iss, ok := sirisx.AsIssues(err)
	if !ok || iss[0].Code != sirisx.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum, got %v", err)
	}
	allowed, _ := iss[0].Params["allowed"].([]string)
	if len(allowed) != 2 || allowed[0] != "bus" || allowed[1] != "tram" {
		t.Fatalf("unexpected allowed: %v", iss[0].Params)
	}
	if iss[0].Params["got"] != "spaceship" {
		t.Fatalf("unexpected got: %v", iss[0].Params)
	}
}

func TestArraySchema_OrderAndPaths(t *testing.T) {
	ctx := context.Background()
	a := g.Array(g.String())
	out, err := a.Parse(ctx, []any{"c", "a", "b"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 3 || out[0] != "c" || out[2] != "b" {
		t.Fatalf("order not preserved: %v", out)
	}
	empty, err := a.Parse(ctx, []any{})
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v err=%v", empty, err)
	}
	_, err = a.Parse(ctx, []any{"ok", 1, true})
	iss, _ := sirisx.AsIssues(err)
	if len(iss) != 2 || iss[0].Path.String() != "[1]" || iss[1].Path.String() != "[2]" {
		t.Fatalf("expected issues at [1] and [2], got %v", iss)
	}
	_, err = a.Parse(sirisx.WithFailFast(ctx, true), []any{"ok", 1, true})
	iss, _ = sirisx.AsIssues(err)
	if len(iss) != 1 {
		t.Fatalf("fail-fast should stop at first issue, got %v", iss)
	}
}

func TestArraySchema_XMLSingleton(t *testing.T) {
	ctx := sirisx.WithXMLProjection(context.Background(), true)
	out, err := g.Array(g.String()).Parse(ctx, "monday")
	if err != nil || len(out) != 1 || out[0] != "monday" {
		t.Fatalf("expected singleton wrap, got %v err=%v", out, err)
	}
	if _, err := g.Array(g.String()).Parse(context.Background(), "monday"); err == nil {
		t.Fatalf("singleton must be rejected outside XML projection")
	}
}
