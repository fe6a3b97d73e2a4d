// Package siri models SIRI-SX (Service Interface for Real Time Information,
// Situation Exchange) documents and validates them.
//
// A document is decoded in two steps: the input is tokenized into a JSON-like
// tree (JSON, YAML, or XML through a projection) and the tree is validated
// bottom-up by per-shape schemas. Validation never stops at the first problem
// unless sirisx.ParseOpt.FailFast is set; every issue carries the full path to
// the offending value:
//
//	doc, err := siri.DecodeSiriJSON(ctx, data)
//	if iss, ok := sirisx.AsIssues(err); ok {
//		for _, it := range iss {
//			log.Printf("%s", it) // invalid_enum at ServiceDelivery...AffectedNetwork.VehicleMode: ...
//		}
//	}
//
// The reason of a situation is a discriminated union keyed by ReasonType; it
// decodes into the Reason interface, implemented by the four sub-code types.
//
// Large feeds can be consumed one situation at a time with StreamSituations.
package siri
