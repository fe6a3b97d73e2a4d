package engine_test

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"testing"

	eng "github.com/reoring/sirisx/internal/engine"
	"github.com/reoring/sirisx/source/gojson"
)

func TestDecodeAnyFromSource(t *testing.T) {
	src := gojson.NewBytes([]byte(`{"a":[1,"x",true,null],"b":{}}`))
	v, err := eng.DecodeAnyFromSource(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]any{
		"a": []any{json.Number("1"), "x", true, nil},
		"b": map[string]any{},
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %#v", v)
	}
}

func TestDecodeAnyFromSource_Truncated(t *testing.T) {
	_, err := eng.DecodeAnyFromSource(gojson.NewBytes([]byte(`{"a":[1,2`)))
	if err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestSkip(t *testing.T) {
	src := gojson.NewBytes([]byte(`[{"a":[1,{"b":2}]},3]`))
	tok, _ := src.NextToken() // [
	first, _ := src.NextToken()
	if err := eng.Skip(src, first); err != nil {
		t.Fatalf("skip: %v", err)
	}
	next, err := src.NextToken()
	if err != nil || next.Kind != eng.KindNumber || next.Number != "3" {
		t.Fatalf("expected 3 after skip, got %+v %v (opening %v)", next, err, tok.Kind)
	}
}

func enforce(data string, opt eng.EnforceOptions) ([]eng.SimpleIssue, error) {
	var got []eng.SimpleIssue
	opt.IssueSink = func(si eng.SimpleIssue) { got = append(got, si) }
	src := eng.WrapWithEnforcement(gojson.NewBytes([]byte(data)), opt)
	_, err := eng.DecodeAnyFromSource(src)
	return got, err
}

func TestEnforce_DuplicateKey(t *testing.T) {
	got, err := enforce(`{"a":{"x":1,"x":2},"b":[{"y":1},{"y":1,"y":2}]}`, eng.EnforceOptions{OnDuplicate: eng.DupWarn})
	if err != nil {
		t.Fatalf("warn mode must not fail: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 findings, got %+v", got)
	}
	want := [][]eng.PathStep{
		{{Key: "a"}, {Key: "x"}},
		{{Key: "b"}, {Index: 1, IsIndex: true}, {Key: "y"}},
	}
	for i := range want {
		if got[i].Code != "duplicate_key" || !reflect.DeepEqual(got[i].Path, want[i]) {
			t.Fatalf("finding %d: %+v", i, got[i])
		}
	}

	_, err = enforce(`{"a":1,"a":2}`, eng.EnforceOptions{OnDuplicate: eng.DupError})
	var ie eng.IssueError
	if !errors.As(err, &ie) || ie.Code != "duplicate_key" {
		t.Fatalf("expected IssueError, got %v", err)
	}
}

func TestEnforce_SameKeyInSiblings(t *testing.T) {
	got, err := enforce(`[{"a":1},{"a":2}]`, eng.EnforceOptions{OnDuplicate: eng.DupError})
	if err != nil || len(got) != 0 {
		t.Fatalf("sibling objects are independent: %v %v", got, err)
	}
}

func TestEnforce_MaxDepth(t *testing.T) {
	if _, err := enforce(`[[[]]]`, eng.EnforceOptions{MaxDepth: 3}); err != nil {
		t.Fatalf("depth 3 allowed: %v", err)
	}
	got, err := enforce(`[[[[]]]]`, eng.EnforceOptions{MaxDepth: 3})
	if err == nil || len(got) != 1 || got[0].Message != "max depth exceeded" {
		t.Fatalf("expected depth failure, got %v %v", got, err)
	}
	if errors.Is(err, io.EOF) {
		t.Fatalf("depth failure must not look like EOF")
	}
}
