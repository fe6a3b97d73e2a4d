package siri_test

import (
	"testing"

	sirisx "github.com/reoring/sirisx"
	"github.com/reoring/sirisx/siri"
)

func TestPeriod_Contains(t *testing.T) {
	end := sirisx.MustDateTime("2024-02-01T10:00:00Z")
	p := siri.Period{StartTime: sirisx.MustDateTime("2024-02-01T08:00:00Z"), EndTime: &end}
	cases := map[string]bool{
		"2024-02-01T07:59:59Z":      false,
		"2024-02-01T08:00:00Z":      true,
		"2024-02-01T10:00:00+01:00": true,
		"2024-02-01T10:00:00Z":      true,
		"2024-02-01T10:00:01Z":      false,
	}
	for in, want := range cases {
		if got := p.Contains(sirisx.MustDateTime(in)); got != want {
			t.Fatalf("%s: got %v want %v", in, got, want)
		}
	}
	open := siri.Period{StartTime: p.StartTime}
	if !open.Contains(sirisx.MustDateTime("2030-01-01T00:00:00Z")) {
		t.Fatalf("open-ended period must contain later instants")
	}
}

func TestSituation_KeyAndActiveAt(t *testing.T) {
	s := siri.Situation{
		ParticipantRef:  "TfL",
		SituationNumber: "TFL-9",
		ValidityPeriod: []siri.Period{
			{StartTime: sirisx.MustDateTime("2024-02-01T08:00:00Z")},
		},
	}
	if got := s.Key().String(); got != "TfL/TFL-9" {
		t.Fatalf("unexpected key: %s", got)
	}
	ref := siri.SituationElementRef{ParticipantRef: "TfL", SituationNumber: "TFL-9"}
	if ref.Key() != s.Key() {
		t.Fatalf("reference key must match situation key")
	}
	if s.ActiveAt(sirisx.MustDateTime("2024-01-31T00:00:00Z")) {
		t.Fatalf("not active before start")
	}
	if !s.ActiveAt(sirisx.MustDateTime("2024-02-02T00:00:00Z")) {
		t.Fatalf("active after start")
	}
	if (siri.Situation{}).ActiveAt(sirisx.MustDateTime("2024-02-02T00:00:00Z")) {
		t.Fatalf("no periods means never active")
	}
}

func TestReasonTypeOf(t *testing.T) {
	cases := []struct {
		r    siri.Reason
		want siri.ReasonType
	}{
		{siri.MiscellaneousReasonRoadworks, siri.ReasonTypeMiscellaneous},
		{siri.PersonnelReasonStaffShortage, siri.ReasonTypePersonnel},
		{siri.EquipmentReasonSignalFailure, siri.ReasonTypeEquipment},
		{siri.EnvironmentReasonFog, siri.ReasonTypeEnvironment},
	}
	for _, c := range cases {
		if got := siri.ReasonTypeOf(c.r); got != c.want {
			t.Fatalf("%v: got %s want %s", c.r, got, c.want)
		}
	}
	if len(siri.ReasonTypes()) != 4 {
		t.Fatalf("expected four reason types")
	}
}
