package siri

import (
	"context"

	"github.com/goccy/go-json"

	sirisx "github.com/reoring/sirisx"
	"github.com/reoring/sirisx/dsl"
)

// situationSchema validates a PtSituationElement as the intersection of three
// shapes read from the same object: the envelope fields, the reason union and
// the descriptive fields. Issues of all three are reported together, and the
// unknown-key policy sees the keys of all three.
type situationSchema struct{}

func (situationSchema) Expect() string { return "PtSituationElement" }

func (s situationSchema) Parse(ctx context.Context, v any) (Situation, error) {
	r, err := dsl.Object(ctx, v)
	if err != nil {
		return Situation{}, err
	}
	var out Situation
	readBase(r, &out)
	out.Reason = readReason(r)
	readDescriptive(r, &out)
	if err := r.Done(); err != nil {
		return Situation{}, err
	}
	return sirisx.ApplyNormalize[Situation](ctx, out, s)
}

// Normalize is the post-validation reshaping pass. It currently keeps every
// value as decoded: absent collections stay nil and present ones keep their
// order.
func (situationSchema) Normalize(ctx context.Context, s Situation) (Situation, error) {
	return normalizeSituation(s), nil
}

func normalizeSituation(s Situation) Situation { return s }

func readBase(r *dsl.ObjectReader, out *Situation) {
	out.CreationTime = dsl.Optional(r, "CreationTime", dsl.DateTime())
	out.ParticipantRef = dsl.Required(r, "ParticipantRef", dsl.String())
	out.SituationNumber = dsl.Required(r, "SituationNumber", dsl.String())
	out.Version = dsl.Optional(r, "Version", dsl.Integer())
	out.References = dsl.Optional(r, "References", referencesSchema)
	out.Source = dsl.Required(r, "Source", sourceSchema)
	out.VersionedAtTime = dsl.Optional(r, "VersionedAtTime", dsl.DateTime())
	out.Progress = dsl.Required(r, "Progress", progressEnum)
	out.ValidityPeriod = dsl.Required(r, "ValidityPeriod", dsl.Array(periodSchema))
	out.Repetitions = dsl.Optional(r, "Repetitions", repetitionsSchema)
	out.PublicationWindow = dsl.Required(r, "PublicationWindow", periodSchema)
}

func readReason(r *dsl.ObjectReader) Reason {
	reason, _ := dsl.Union(r, "ReasonType", reasonVariants...)
	return reason
}

func readDescriptive(r *dsl.ObjectReader, out *Situation) {
	out.Planned = dsl.Required(r, "Planned", dsl.Bool())
	out.Summary = dsl.Required(r, "Summary", dsl.String())
	out.Description = dsl.Required(r, "Description", dsl.String())
	out.InfoLinks = dsl.Optional(r, "InfoLinks", infoLinksSchema)
	out.Consequences = dsl.Optional(r, "Consequences", consequencesSchema)
}

// situationAlias drops the methods of Situation so the encoder does not recurse.
type situationAlias Situation

// MarshalJSON encodes the wire shape, re-emitting ReasonType and the sub-code field.
func (s Situation) MarshalJSON() ([]byte, error) {
	aux := struct {
		situationAlias
		ReasonType          ReasonType           `json:"ReasonType,omitempty"`
		MiscellaneousReason *MiscellaneousReason `json:"MiscellaneousReason,omitempty"`
		PersonnelReason     *PersonnelReason     `json:"PersonnelReason,omitempty"`
		EquipmentReason     *EquipmentReason     `json:"EquipmentReason,omitempty"`
		EnvironmentReason   *EnvironmentReason   `json:"EnvironmentReason,omitempty"`
	}{situationAlias: situationAlias(s)}
	aux.ReasonType = ReasonTypeOf(s.Reason)
	switch r := s.Reason.(type) {
	case MiscellaneousReason:
		aux.MiscellaneousReason = &r
	case PersonnelReason:
		aux.PersonnelReason = &r
	case EquipmentReason:
		aux.EquipmentReason = &r
	case EnvironmentReason:
		aux.EnvironmentReason = &r
	}
	return json.Marshal(aux)
}

// UnmarshalJSON validates data with SituationSchema using default options.
func (s *Situation) UnmarshalJSON(data []byte) error {
	v, err := sirisx.ParseFrom[Situation](context.Background(), situationSchema{}, sirisx.JSONBytes(data))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
