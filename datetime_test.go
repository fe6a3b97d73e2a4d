package sirisx_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	sirisx "github.com/reoring/sirisx"
)

func TestParseDateTime(t *testing.T) {
	for _, in := range []string{"2024-02-01T08:00:00Z", "2024-02-01T08:00:00.123456Z"} {
		d, err := sirisx.ParseDateTime(in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if d.String() != in {
			t.Fatalf("wire text not kept: %s", d)
		}
	}
	for _, in := range []string{"", "2024-02-01", "2024-02-01 08:00:00", "now"} {
		if _, err := sirisx.ParseDateTime(in); !errors.Is(err, sirisx.ErrInvalidDateTime) {
			t.Fatalf("%q: expected ErrInvalidDateTime, got %v", in, err)
		}
	}
}

func TestParseDateTime_Offsets(t *testing.T) {
	for _, in := range []string{"2024-02-01T09:00:00+01:00", "2024-02-01T08:00:00+00:00", "2024-02-01T03:00:00.5-05:00"} {
		if _, err := sirisx.ParseDateTime(in); !errors.Is(err, sirisx.ErrDateTimeOffset) {
			t.Fatalf("%s: expected ErrDateTimeOffset, got %v", in, err)
		}
		d, err := sirisx.ParseDateTimeOffset(in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if d.String() != in {
			t.Fatalf("wire text not kept: %s", d)
		}
	}
	if _, err := sirisx.ParseDateTimeOffset("2024-02-01"); !errors.Is(err, sirisx.ErrInvalidDateTime) {
		t.Fatalf("expected ErrInvalidDateTime, got %v", err)
	}
	var v struct {
		At sirisx.DateTime `json:"at"`
	}
	if err := json.Unmarshal([]byte(`{"at":"2024-02-01T09:00:00+01:00"}`), &v); err == nil {
		t.Fatalf("UnmarshalText must reject offsets")
	}
}

func TestDateTime_CompareAsInstants(t *testing.T) {
	a := sirisx.MustDateTime("2024-02-01T09:00:00+01:00")
	b := sirisx.MustDateTime("2024-02-01T08:00:00Z")
	if a.Before(b) || b.Before(a) {
		t.Fatalf("same instant must not be ordered")
	}
	if !a.Time().Equal(b.Time()) {
		t.Fatalf("expected equal instants")
	}
}

func TestDateTime_Text(t *testing.T) {
	var v struct {
		At sirisx.DateTime `json:"at"`
	}
	if err := json.Unmarshal([]byte(`{"at":"2024-02-01T08:00:00.5Z"}`), &v); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, _ := json.Marshal(v)
	if string(b) != `{"at":"2024-02-01T08:00:00.5Z"}` {
		t.Fatalf("unexpected encoding: %s", b)
	}
	if got := sirisx.DateTimeOf(time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)).String(); got != "2024-02-01T08:00:00Z" {
		t.Fatalf("unexpected canonical form: %s", got)
	}
	if !(sirisx.DateTime{}).IsZero() {
		t.Fatalf("zero value must report IsZero")
	}
}
