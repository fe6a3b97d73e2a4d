package yamlsrc_test

import (
	"errors"
	"testing"

	"github.com/reoring/sirisx/source/yamlsrc"
)

func TestDecode_JSONLikeTree(t *testing.T) {
	in := []byte(`
ServiceDelivery:
  ProducerRef: DepartmentForTransport
  ResponseTimestamp: "2024-02-01T08:00:00Z"
  Situations:
    PtSituationElement:
      - Version: 2
      - Version: 3
`)
	v, err := yamlsrc.Decode(in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	sd, ok := v.(map[string]any)["ServiceDelivery"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested object, got %#v", v)
	}
	if sd["ResponseTimestamp"] != "2024-02-01T08:00:00Z" {
		t.Fatalf("quoted timestamp must stay a string: %#v", sd["ResponseTimestamp"])
	}
	elems := sd["Situations"].(map[string]any)["PtSituationElement"].([]any)
	if len(elems) != 2 || elems[1].(map[string]any)["Version"] != 3 {
		t.Fatalf("unexpected elements: %#v", elems)
	}
}

func TestDecode_UnquotedTimestampKeepsText(t *testing.T) {
	v, err := yamlsrc.Decode([]byte("StartTime: 2024-02-01T08:00:00.10Z\n"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := v.(map[string]any)["StartTime"]; got != "2024-02-01T08:00:00.10Z" {
		t.Fatalf("timestamp text rewritten: %#v", got)
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := yamlsrc.Decode([]byte("")); !errors.Is(err, yamlsrc.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if _, err := yamlsrc.Decode([]byte("a: [1, 2")); err == nil {
		t.Fatalf("expected syntax error")
	}
}
