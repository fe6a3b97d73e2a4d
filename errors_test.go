package sirisx_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	sirisx "github.com/reoring/sirisx"
	g "github.com/reoring/sirisx/dsl"
)

type user struct {
	ID    string
	Email string
}

var userSchema = g.ObjectOf("User", func(r *g.ObjectReader) user {
	return user{
		ID:    g.Required(r, "id", g.String()),
		Email: g.Required(r, "email", g.String()),
	}
})

// TestErrorModel_CollectVsFailFast_And_AsIssues compares Collect versus
// Fail-Fast behavior and exercises both AsIssues and errors.As helpers.
func TestErrorModel_CollectVsFailFast_And_AsIssues(t *testing.T) {
	ctx := context.Background()
	js := []byte(`{"email": 1, "zzz": true}`)

	_, err := sirisx.ParseFrom(ctx, userSchema, sirisx.JSONBytes(js), sirisx.ParseOpt{Unknown: sirisx.UnknownStrict})
	var iss sirisx.Issues
	if !errors.As(err, &iss) {
		t.Fatalf("expected errors.As to extract Issues, got: %v", err)
	}
	codes := []string{}
	for _, it := range iss {
		codes = append(codes, it.Code+"@"+it.Path.String())
	}
	want := "required@id invalid_type@email unknown_key@zzz"
	if strings.Join(codes, " ") != want {
		t.Fatalf("got %v want %s", codes, want)
	}

	_, err = sirisx.ParseFrom(ctx, userSchema, sirisx.JSONBytes(js), sirisx.ParseOpt{FailFast: true, Unknown: sirisx.UnknownStrict})
	iss2, ok := sirisx.AsIssues(err)
	if !ok || len(iss2) != 1 {
		t.Fatalf("expected one fail-fast issue, got: %v", err)
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := sirisx.Issues{
		{Path: sirisx.PathOf("a"), Code: sirisx.CodeRequired},
		{Path: sirisx.PathOf("b", 0), Code: sirisx.CodeInvalidType},
		{Path: sirisx.PathOf("c"), Code: sirisx.CodeInvalidEnum},
		{Path: sirisx.PathOf("d"), Code: sirisx.CodeRefinement},
	}
	msg := iss.Error()
	if !strings.HasPrefix(msg, "required at a; invalid_type at b[0]; invalid_enum at c") || !strings.Contains(msg, "total 4") {
		t.Fatalf("unexpected summary: %s", msg)
	}
	if n := len(iss.Under(sirisx.PathOf("b"))); n != 1 {
		t.Fatalf("Under: expected 1, got %d", n)
	}
	if n := len(iss.ByCategory(sirisx.CategoryShape)); n != 2 {
		t.Fatalf("ByCategory shape: expected 2, got %d", n)
	}
	if (sirisx.Issues{}).Error() != "" {
		t.Fatalf("empty Issues must render empty")
	}
}

func TestIssues_Rebase(t *testing.T) {
	iss := sirisx.Issues{{Path: sirisx.PathOf("EndTime"), Code: sirisx.CodeRefinement}}
	got := iss.Rebase(sirisx.PathOf("ValidityPeriod", 2))
	if got[0].Path.String() != "ValidityPeriod[2].EndTime" {
		t.Fatalf("unexpected path: %s", got[0].Path)
	}
	if iss[0].Path.String() != "EndTime" {
		t.Fatalf("Rebase must not modify the receiver")
	}
}

func TestIssuesFromErr(t *testing.T) {
	if sirisx.IssuesFromErr(sirisx.Root, nil) != nil {
		t.Fatalf("nil error must give nil Issues")
	}
	iss := sirisx.IssuesFromErr(sirisx.PathOf("x"), errors.New("boom"))
	if len(iss) != 1 || iss[0].Code != sirisx.CodeParseError || iss[0].Path.String() != "x" {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestIssue_Category(t *testing.T) {
	cases := map[string]sirisx.Category{
		sirisx.CodeInvalidType:           sirisx.CategoryShape,
		sirisx.CodeRequired:              sirisx.CategoryShape,
		sirisx.CodeInvalidEnum:           sirisx.CategoryEnum,
		sirisx.CodeDiscriminatorMismatch: sirisx.CategoryDiscriminator,
		sirisx.CodeDomainRange:           sirisx.CategoryRefinement,
		sirisx.CodeDuplicateKey:          sirisx.CategorySyntax,
	}
	for code, want := range cases {
		if got := (sirisx.Issue{Code: code}).Category(); got != want {
			t.Fatalf("%s: got %v want %v", code, got, want)
		}
	}
}
