package siri_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/goccy/go-json"

	sirisx "github.com/reoring/sirisx"
	"github.com/reoring/sirisx/siri"
)

func TestStreamSituations_InOrder(t *testing.T) {
	var got []string
	err := siri.StreamSituations(context.Background(), sirisx.JSONBytes(readFixture(t, "full.json")), func(i int, s siri.Situation, err error) error {
		if err != nil {
			t.Fatalf("situation %d: %v", i, err)
		}
		got = append(got, s.SituationNumber)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 3 || got[0] != "RFLDEV-1001" || got[2] != "TFL-2003" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestStreamSituations_PartialAcceptance(t *testing.T) {
	in := tree(t, "full.json")
	situations(in)[1].(map[string]any)["Progress"] = "finished"
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var accepted []int
	var rejected sirisx.Issues
	err = siri.StreamSituations(context.Background(), sirisx.JSONBytes(data), func(i int, s siri.Situation, err error) error {
		if err != nil {
			iss, _ := sirisx.AsIssues(err)
			rejected = append(rejected, iss...)
			return nil
		}
		accepted = append(accepted, i)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(accepted) != 2 || accepted[0] != 0 || accepted[1] != 2 {
		t.Fatalf("unexpected accepted set: %v", accepted)
	}
	only(t, rejected, sirisx.CodeInvalidEnum, "ServiceDelivery.SituationExchangeDelivery.Situations.PtSituationElement[1].Progress")
}

func TestStreamSituations_Stop(t *testing.T) {
	n := 0
	err := siri.StreamSituations(context.Background(), sirisx.JSONBytes(readFixture(t, "full.json")), func(i int, s siri.Situation, err error) error {
		n++
		return siri.ErrStop
	})
	if err != nil || n != 1 {
		t.Fatalf("expected clean stop after one element, n=%d err=%v", n, err)
	}

	boom := errors.New("boom")
	err = siri.StreamSituations(context.Background(), sirisx.JSONBytes(readFixture(t, "full.json")), func(i int, s siri.Situation, err error) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("callback error must be returned, got %v", err)
	}
}

func TestStreamSituations_Structure(t *testing.T) {
	err := siri.StreamSituations(context.Background(), sirisx.JSONBytes([]byte(`{"ServiceDelivery":{"ProducerRef":"x"}}`)), func(int, siri.Situation, error) error { return nil })
	only(t, mustIssues(t, err), sirisx.CodeRequired, siri.SituationsPath.String())

	doc := `{"ServiceDelivery":{"SituationExchangeDelivery":{"Situations":{"PtSituationElement":{}}}}}`
	err = siri.StreamSituations(context.Background(), sirisx.JSONBytes([]byte(doc)), func(int, siri.Situation, error) error { return nil })
	only(t, mustIssues(t, err), sirisx.CodeInvalidType, siri.SituationsPath.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = siri.StreamSituations(ctx, sirisx.JSONBytes(readFixture(t, "full.json")), func(int, siri.Situation, error) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func streamIssues(t *testing.T, doc string, opt sirisx.ParseOpt) sirisx.Issues {
	t.Helper()
	err := siri.StreamSituations(context.Background(), sirisx.JSONBytes([]byte(doc)), func(int, siri.Situation, error) error { return nil }, opt)
	return mustIssues(t, err)
}

const streamEnvelope = `{"ServiceDelivery":{"SituationExchangeDelivery":{"Situations":{"PtSituationElement":[%s]}}}}`

func TestStreamSituations_DuplicateKeyPath(t *testing.T) {
	doc := fmt.Sprintf(streamEnvelope, `{"Summary":"a","Summary":"b"}`)
	iss := streamIssues(t, doc, sirisx.ParseOpt{Strictness: sirisx.Strictness{OnDuplicateKey: sirisx.Error}})
	only(t, iss, sirisx.CodeDuplicateKey, situation0+".Summary")

	var warned []sirisx.Issue
	opt := sirisx.ParseOpt{
		Strictness: sirisx.Strictness{OnDuplicateKey: sirisx.Warn},
		OnWarning:  func(it sirisx.Issue) { warned = append(warned, it) },
	}
	err := siri.StreamSituations(context.Background(), sirisx.JSONBytes([]byte(doc)), func(int, siri.Situation, error) error { return nil }, opt)
	if err != nil {
		t.Fatalf("warn mode must not end the stream: %v", err)
	}
	only(t, warned, sirisx.CodeDuplicateKey, situation0+".Summary")
}

func TestStreamSituations_MaxDepthPath(t *testing.T) {
	// the element object sits at depth 6
	doc := fmt.Sprintf(streamEnvelope, `{"Summary":"a"},{"Source":{"SourceType":"feed"}}`)
	iss := streamIssues(t, doc, sirisx.ParseOpt{MaxDepth: 6})
	if len(iss) != 1 || iss[0].Code != sirisx.CodeParseError {
		t.Fatalf("expected one parse_error, got %v", iss)
	}
	if want := siri.SituationsPath.At(1).Field("Source").String(); iss[0].Path.String() != want {
		t.Fatalf("expected path %s, got %s", want, iss[0].Path)
	}
}

func TestStreamSituations_TruncatedElementPath(t *testing.T) {
	doc := `{"ServiceDelivery":{"SituationExchangeDelivery":{"Situations":{"PtSituationElement":[{"Summary":"a"},{"Summary":`
	iss := streamIssues(t, doc, sirisx.ParseOpt{})
	if len(iss) != 1 || iss[0].Code != sirisx.CodeParseError || iss[0].Path.String() != siri.SituationsPath.At(1).String() {
		t.Fatalf("expected parse_error at element 1, got %v", iss)
	}
}
