package siri

import (
	"context"
	"fmt"

	sirisx "github.com/reoring/sirisx"
	"github.com/reoring/sirisx/dsl"
	"github.com/reoring/sirisx/i18n"
)

var (
	sourceSchema = dsl.ObjectOf("Source", func(r *dsl.ObjectReader) Source {
		return Source{
			SourceType:          dsl.Required(r, "SourceType", sourceTypeEnum),
			TimeOfCommunication: dsl.Required(r, "TimeOfCommunication", dsl.DateTime()),
		}
	})

	periodSchema = dsl.Refine(dsl.ObjectOf("Period", func(r *dsl.ObjectReader) Period {
		return Period{
			StartTime: dsl.Required(r, "StartTime", dsl.DateTime()),
			EndTime:   dsl.Optional(r, "EndTime", dsl.DateTime()),
		}
	}), checkPeriod)

	infoLinksSchema = dsl.ObjectOf("InfoLinks", func(r *dsl.ObjectReader) InfoLinks {
		return InfoLinks{InfoLink: dsl.Required(r, "InfoLink", dsl.Array(infoLinkSchema))}
	})

	infoLinkSchema = dsl.ObjectOf("InfoLink", func(r *dsl.ObjectReader) InfoLink {
		return InfoLink{Uri: dsl.Required(r, "Uri", dsl.URL())}
	})

	situationElementRefSchema = dsl.ObjectOf("SituationElementRef", func(r *dsl.ObjectReader) SituationElementRef {
		return SituationElementRef{
			CreationTime:    dsl.Optional(r, "CreationTime", dsl.DateTime()),
			VersionedAtTime: dsl.Optional(r, "VersionedAtTime", dsl.DateTime()),
			ParticipantRef:  dsl.Required(r, "ParticipantRef", dsl.String()),
			SituationNumber: dsl.Required(r, "SituationNumber", dsl.String()),
		}
	})

	referencesSchema = dsl.ObjectOf("References", func(r *dsl.ObjectReader) References {
		return References{RelatedToRef: dsl.Required(r, "RelatedToRef", dsl.Array(situationElementRefSchema))}
	})

	repetitionsSchema = dsl.ObjectOf("Repetitions", func(r *dsl.ObjectReader) Repetitions {
		return Repetitions{DayType: dsl.Required(r, "DayType", dsl.Array[DayType](dayTypeEnum))}
	})
)

// checkPeriod rejects windows whose end precedes their start. Equal bounds are accepted.
func checkPeriod(ctx context.Context, p Period) error {
	if p.EndTime == nil || !p.EndTime.Before(p.StartTime) {
		return nil
	}
	it := sirisx.IssueAt(sirisx.PathOf("EndTime"), sirisx.CodeRefinement,
		i18n.T(sirisx.CodeRefinement, map[string]string{"detail": "EndTime must not be before StartTime"}),
		map[string]any{"StartTime": p.StartTime.String(), "EndTime": p.EndTime.String()})
	it.Got = p.EndTime.String()
	return sirisx.Issues{it}
}

var (
	affectedOperatorSchema = dsl.ObjectOf("AffectedOperator", func(r *dsl.ObjectReader) AffectedOperator {
		return AffectedOperator{
			OperatorRef:  dsl.Required(r, "OperatorRef", dsl.String()),
			OperatorName: dsl.Optional(r, "OperatorName", dsl.String()),
		}
	})

	operatorsSchema = dsl.ObjectOf("Operators", func(r *dsl.ObjectReader) Operators {
		return Operators{
			AllOperators:     dsl.Optional(r, "AllOperators", dsl.Literal("")),
			AffectedOperator: dsl.Optional(r, "AffectedOperator", dsl.Array(affectedOperatorSchema)),
		}
	})

	affectedLineSchema = dsl.ObjectOf("AffectedLine", func(r *dsl.ObjectReader) AffectedLine {
		return AffectedLine{
			AffectedOperator:  dsl.Optional(r, "AffectedOperator", affectedOperatorSchema),
			LineRef:           dsl.Required(r, "LineRef", dsl.String()),
			PublishedLineName: dsl.Required(r, "PublishedLineName", dsl.String()),
			Direction: dsl.Optional(r, "Direction", dsl.ObjectOf("Direction", func(r *dsl.ObjectReader) Direction {
				return Direction{DirectionRef: dsl.Required(r, "DirectionRef", directionRefEnum)}
			})),
		}
	})

	networksSchema = dsl.ObjectOf("Networks", func(r *dsl.ObjectReader) Networks {
		return Networks{AffectedNetwork: dsl.Required(r, "AffectedNetwork", affectedNetworkSchema)}
	})

	affectedNetworkSchema = dsl.ObjectOf("AffectedNetwork", func(r *dsl.ObjectReader) AffectedNetwork {
		return AffectedNetwork{
			VehicleMode:  dsl.Required(r, "VehicleMode", vehicleModeEnum),
			AllLines:     dsl.Optional(r, "AllLines", dsl.Literal("")),
			AffectedLine: dsl.Optional(r, "AffectedLine", dsl.Array(affectedLineSchema)),
		}
	})

	placesSchema = dsl.ObjectOf("Places", func(r *dsl.ObjectReader) Places {
		return Places{AffectedPlace: dsl.Required(r, "AffectedPlace", dsl.Array(dsl.ObjectOf("AffectedPlace", func(r *dsl.ObjectReader) AffectedPlace {
			return AffectedPlace{
				PlaceRef:      dsl.Required(r, "PlaceRef", dsl.String()),
				PlaceName:     dsl.Required(r, "PlaceName", dsl.String()),
				PlaceCategory: dsl.Required(r, "PlaceCategory", dsl.String()),
			}
		})))}
	})

	locationSchema = dsl.Refine(dsl.ObjectOf("Location", func(r *dsl.ObjectReader) Location {
		return Location{
			Longitude: dsl.Required(r, "Longitude", dsl.Number()),
			Latitude:  dsl.Required(r, "Latitude", dsl.Number()),
		}
	}), checkGeoBounds)

	affectedModesSchema = dsl.ObjectOf("AffectedModes", func(r *dsl.ObjectReader) AffectedModes {
		return AffectedModes{Mode: dsl.Required(r, "Mode", dsl.ObjectOf("Mode", func(r *dsl.ObjectReader) Mode {
			return Mode{VehicleMode: dsl.Required(r, "VehicleMode", vehicleModeEnum)}
		}))}
	})

	stopPointsSchema = dsl.ObjectOf("StopPoints", func(r *dsl.ObjectReader) StopPoints {
		return StopPoints{AffectedStopPoint: dsl.Required(r, "AffectedStopPoint", dsl.Array(dsl.ObjectOf("AffectedStopPoint", func(r *dsl.ObjectReader) AffectedStopPoint {
			return AffectedStopPoint{
				StopPointRef:  dsl.Required(r, "StopPointRef", dsl.String()),
				StopPointName: dsl.Required(r, "StopPointName", dsl.String()),
				Location:      dsl.Required(r, "Location", locationSchema),
				AffectedModes: dsl.Required(r, "AffectedModes", affectedModesSchema),
			}
		})))}
	})

	vehicleJourneysSchema = dsl.ObjectOf("VehicleJourneys", func(r *dsl.ObjectReader) VehicleJourneys {
		return VehicleJourneys{AffectedVehicleJourney: dsl.Required(r, "AffectedVehicleJourney", dsl.Array(dsl.ObjectOf("AffectedVehicleJourney", func(r *dsl.ObjectReader) AffectedVehicleJourney {
			return AffectedVehicleJourney{
				VehicleJourneyRef:        dsl.Required(r, "VehicleJourneyRef", dsl.String()),
				Route:                    dsl.Required(r, "Route", dsl.String()),
				OriginAimedDepartureTime: dsl.Required(r, "OriginAimedDepartureTime", dsl.String()),
			}
		})))}
	})

	affectsSchema = dsl.ObjectOf("Affects", func(r *dsl.ObjectReader) Affects {
		return Affects{
			Operators:       dsl.Optional(r, "Operators", operatorsSchema),
			Networks:        dsl.Optional(r, "Networks", networksSchema),
			Places:          dsl.Optional(r, "Places", placesSchema),
			StopPoints:      dsl.Optional(r, "StopPoints", stopPointsSchema),
			VehicleJourneys: dsl.Optional(r, "VehicleJourneys", vehicleJourneysSchema),
		}
	})
)

// checkGeoBounds applies WGS84 ranges when the context asks for them.
func checkGeoBounds(ctx context.Context, l Location) error {
	if !sirisx.IsGeoBounds(ctx) {
		return nil
	}
	var iss sirisx.Issues
	if l.Longitude < -180 || l.Longitude > 180 {
		iss = append(iss, rangeIssue("Longitude", l.Longitude, -180, 180))
	}
	if l.Latitude < -90 || l.Latitude > 90 {
		iss = append(iss, rangeIssue("Latitude", l.Latitude, -90, 90))
	}
	if len(iss) == 0 {
		return nil
	}
	return iss
}

func rangeIssue(key string, v, lo, hi float64) sirisx.Issue {
	want := fmt.Sprintf("[%g, %g]", lo, hi)
	it := sirisx.IssueAt(sirisx.PathOf(key), sirisx.CodeDomainRange,
		i18n.T(sirisx.CodeDomainRange, map[string]string{"expected": want}),
		map[string]any{"min": lo, "max": hi, "got": v})
	it.Expected, it.Got = want, fmt.Sprintf("%g", v)
	return it
}

// delaySchema keeps Delay opaque; the description names what producers send.
var delaySchema = dsl.Describe(dsl.String(), "ISO-8601 duration")

var (
	// Some XML producers emit "undefined" for an unset severity.
	severitySchema = dsl.Preprocess(func(ctx context.Context, v any) any {
		if s, ok := v.(string); ok && s == "undefined" && sirisx.IsXMLProjection(ctx) {
			return string(SeverityUnknown)
		}
		return v
	}, dsl.Schema[Severity](severityEnum))

	consequenceSchema = dsl.ObjectOf("Consequence", func(r *dsl.ObjectReader) Consequence {
		return Consequence{
			Condition: dsl.Required(r, "Condition", conditionEnum),
			Severity:  dsl.Required(r, "Severity", severitySchema),
			Affects:   dsl.Required(r, "Affects", affectsSchema),
			Advice: dsl.Required(r, "Advice", dsl.ObjectOf("Advice", func(r *dsl.ObjectReader) Advice {
				return Advice{Details: dsl.Required(r, "Details", dsl.String())}
			})),
			Blocking: dsl.Required(r, "Blocking", dsl.ObjectOf("Blocking", func(r *dsl.ObjectReader) Blocking {
				return Blocking{JourneyPlanner: dsl.Required(r, "JourneyPlanner", dsl.Bool())}
			})),
			Delays: dsl.Optional(r, "Delays", dsl.ObjectOf("Delays", func(r *dsl.ObjectReader) Delays {
				return Delays{Delay: dsl.Required(r, "Delay", delaySchema)}
			})),
		}
	})

	consequencesSchema = dsl.ObjectOf("Consequences", func(r *dsl.ObjectReader) Consequences {
		return Consequences{Consequence: dsl.Required(r, "Consequence", dsl.Array(consequenceSchema))}
	})
)

// reasonCode constrains the four sub-code enums.
type reasonCode interface {
	~string
	Reason
}

func reasonVariant[T reasonCode](rt ReasonType, codes *dsl.EnumSchema[T]) dsl.Variant[Reason] {
	key := string(rt)
	return dsl.Variant[Reason]{
		Tag:     key,
		Payload: []string{key},
		Read: func(r *dsl.ObjectReader) Reason {
			return dsl.Required(r, key, codes)
		},
	}
}

var reasonVariants = []dsl.Variant[Reason]{
	reasonVariant(ReasonTypeMiscellaneous, miscellaneousReasonEnum),
	reasonVariant(ReasonTypePersonnel, personnelReasonEnum),
	reasonVariant(ReasonTypeEquipment, equipmentReasonEnum),
	reasonVariant(ReasonTypeEnvironment, environmentReasonEnum),
}

var (
	situationsSchema = dsl.ObjectOf("Situations", func(r *dsl.ObjectReader) Situations {
		return Situations{PtSituationElement: dsl.Required(r, "PtSituationElement", dsl.Array[Situation](situationSchema{}))}
	})

	situationExchangeDeliverySchema = dsl.ObjectOf("SituationExchangeDelivery", func(r *dsl.ObjectReader) SituationExchangeDelivery {
		return SituationExchangeDelivery{
			ResponseTimestamp:     dsl.Required(r, "ResponseTimestamp", dsl.DateTime()),
			Status:                dsl.Optional(r, "Status", dsl.Bool()),
			ShortestPossibleCycle: dsl.Optional(r, "ShortestPossibleCycle", dsl.String()),
			Situations:            dsl.Required(r, "Situations", situationsSchema),
		}
	})

	serviceDeliverySchema = dsl.ObjectOf("ServiceDelivery", func(r *dsl.ObjectReader) ServiceDelivery {
		return ServiceDelivery{
			ResponseTimestamp:         dsl.Required(r, "ResponseTimestamp", dsl.DateTime()),
			ProducerRef:               dsl.Required(r, "ProducerRef", dsl.String()),
			ResponseMessageIdentifier: dsl.Required(r, "ResponseMessageIdentifier", dsl.String()),
			SituationExchangeDelivery: dsl.Required(r, "SituationExchangeDelivery", situationExchangeDeliverySchema),
		}
	})

	siriSchema = dsl.ObjectOf("Siri", func(r *dsl.ObjectReader) Siri {
		return Siri{ServiceDelivery: dsl.Required(r, "ServiceDelivery", serviceDeliverySchema)}
	})
)

func PeriodSchema() sirisx.Schema[Period]                   { return periodSchema }
func SourceSchema() sirisx.Schema[Source]                   { return sourceSchema }
func InfoLinksSchema() sirisx.Schema[InfoLinks]             { return infoLinksSchema }
func ReferencesSchema() sirisx.Schema[References]           { return referencesSchema }
func RepetitionsSchema() sirisx.Schema[Repetitions]         { return repetitionsSchema }
func OperatorsSchema() sirisx.Schema[Operators]             { return operatorsSchema }
func NetworksSchema() sirisx.Schema[Networks]               { return networksSchema }
func PlacesSchema() sirisx.Schema[Places]                   { return placesSchema }
func StopPointsSchema() sirisx.Schema[StopPoints]           { return stopPointsSchema }
func VehicleJourneysSchema() sirisx.Schema[VehicleJourneys] { return vehicleJourneysSchema }
func AffectsSchema() sirisx.Schema[Affects]                 { return affectsSchema }
func ConsequencesSchema() sirisx.Schema[Consequences]       { return consequencesSchema }
func SituationsSchema() sirisx.Schema[Situations]           { return situationsSchema }
func SituationExchangeDeliverySchema() sirisx.Schema[SituationExchangeDelivery] {
	return situationExchangeDeliverySchema
}
func ServiceDeliverySchema() sirisx.Schema[ServiceDelivery] { return serviceDeliverySchema }
func SiriSchema() sirisx.Schema[Siri]                       { return siriSchema }

// ReasonSchema validates the reason part of a situation on its own:
// {"ReasonType": ..., "<ReasonType>": ...}.
func ReasonSchema() sirisx.Schema[Reason] {
	return dsl.DiscriminatedUnion("ReasonType", reasonVariants...)
}

// SituationSchema validates one PtSituationElement.
func SituationSchema() sirisx.Schema[Situation] { return situationSchema{} }
