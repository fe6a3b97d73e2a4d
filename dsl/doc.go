// Package dsl provides the schema combinators the SIRI-SX wire model is built
// from.
//
// Every schema implements sirisx.Schema[T]: it accepts an already decoded
// JSON-like value (map[string]any, []any, string, bool, json.Number, nil) and
// returns a typed value or sirisx.Issues whose paths are relative to that
// value. Parents rebase the issues of their children, so a failure deep in a
// document surfaces with its full path, e.g.
//
//	ServiceDelivery.SituationExchangeDelivery.Situations.PtSituationElement[0].Progress
//
// Object shapes are read imperatively through an ObjectReader:
//
//	period := dsl.ObjectOf("Period", func(r *dsl.ObjectReader) Period {
//		return Period{
//			StartTime: dsl.Required(r, "StartTime", dsl.DateTime()),
//			EndTime:   dsl.Optional(r, "EndTime", dsl.DateTime()),
//		}
//	})
//
// Issues are collected for every field unless the context carries fail-fast
// (sirisx.WithFailFast), in which case readers stop at the first issue.
//
// Several readers of one object may share an ObjectReader; this is how an
// intersection of object shapes is expressed, with the unknown-key policy
// applied once over the union of the keys the readers consumed.
package dsl
