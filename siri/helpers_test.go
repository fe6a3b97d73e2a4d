package siri_test

import (
	"os"
	"path/filepath"
	"testing"

	sirisx "github.com/reoring/sirisx"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return b
}

// tree decodes a fixture into a fresh JSON-like value the test may mutate.
func tree(t *testing.T, name string) map[string]any {
	t.Helper()
	v, err := sirisx.DecodeAny(sirisx.JSONBytes(readFixture(t, name)), sirisx.ParseOpt{})
	if err != nil {
		t.Fatalf("decode fixture %s: %v", name, err)
	}
	return v.(map[string]any)
}

func situations(doc map[string]any) []any {
	sd := doc["ServiceDelivery"].(map[string]any)
	sx := sd["SituationExchangeDelivery"].(map[string]any)
	return sx["Situations"].(map[string]any)["PtSituationElement"].([]any)
}

func mustIssues(t *testing.T, err error) sirisx.Issues {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	iss, ok := sirisx.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %T: %v", err, err)
	}
	return iss
}

func only(t *testing.T, iss sirisx.Issues, code, path string) {
	t.Helper()
	if len(iss) != 1 {
		t.Fatalf("expected exactly one issue, got %d: %v", len(iss), iss)
	}
	if iss[0].Code != code || iss[0].Path.String() != path {
		t.Fatalf("expected %s at %s, got %s at %s", code, path, iss[0].Code, iss[0].Path)
	}
}
