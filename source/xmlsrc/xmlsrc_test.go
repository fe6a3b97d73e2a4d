package xmlsrc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/reoring/sirisx/source/xmlsrc"
)

const doc = `<?xml version="1.0" encoding="UTF-8"?>
<Siri xmlns="http://www.siri.org.uk/siri" version="2.0">
  <ServiceDelivery>
    <ProducerRef>DepartmentForTransport</ProducerRef>
    <Situations>
      <PtSituationElement><SituationNumber>1</SituationNumber></PtSituationElement>
      <PtSituationElement><SituationNumber>2</SituationNumber></PtSituationElement>
    </Situations>
    <Operators><AllOperators/></Operators>
  </ServiceDelivery>
</Siri>`

func TestDecode_Projection(t *testing.T) {
	v, err := xmlsrc.Decode(strings.NewReader(doc), xmlsrc.Options{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	root, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected object root, got %T", v)
	}
	sd, ok := root["ServiceDelivery"].(map[string]any)
	if !ok {
		t.Fatalf("root element must be stripped, got %#v", root)
	}
	if sd["ProducerRef"] != "DepartmentForTransport" {
		t.Fatalf("text element not trimmed: %#v", sd["ProducerRef"])
	}
	elems, ok := sd["Situations"].(map[string]any)["PtSituationElement"].([]any)
	if !ok || len(elems) != 2 {
		t.Fatalf("repeated siblings must become an array: %#v", sd["Situations"])
	}
	if elems[1].(map[string]any)["SituationNumber"] != "2" {
		t.Fatalf("order not preserved: %#v", elems)
	}
	if sd["Operators"].(map[string]any)["AllOperators"] != "" {
		t.Fatalf("empty element must become empty string")
	}
}

func TestDecode_Limits(t *testing.T) {
	if _, err := xmlsrc.Decode(strings.NewReader(doc), xmlsrc.Options{MaxDepth: 2}); !errors.Is(err, xmlsrc.ErrTooDeep) {
		t.Fatalf("expected ErrTooDeep, got %v", err)
	}
	if _, err := xmlsrc.Decode(strings.NewReader(doc), xmlsrc.Options{MaxBytes: 64}); !errors.Is(err, xmlsrc.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if _, err := xmlsrc.Decode(strings.NewReader("   "), xmlsrc.Options{}); !errors.Is(err, xmlsrc.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if _, err := xmlsrc.Decode(strings.NewReader("<Siri><A></Siri>"), xmlsrc.Options{}); err == nil {
		t.Fatalf("expected syntax error")
	}
}

func TestDecode_Charset(t *testing.T) {
	// "Café" in ISO-8859-1
	in := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><Siri><Summary>Caf\xe9</Summary></Siri>"
	v, err := xmlsrc.Decode(strings.NewReader(in), xmlsrc.Options{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := v.(map[string]any)["Summary"]; got != "Café" {
		t.Fatalf("expected converted text, got %q", got)
	}
}
