// Package sirisx validates and decodes SIRI Situation Exchange (SIRI-SX)
// documents into typed Go values.
//
// The root package holds the pieces shared by every schema:
//
//   - Issues, a structured error carrying a Path, a code and parameters for each problem
//   - ParseOpt and the context flags a Schema reads (fail-fast, unknown keys, XML projection)
//   - Source, a streaming JSON token producer with duplicate-key, depth and size enforcement
//   - DateTime, an ISO-8601 timestamp that keeps its wire text
//
// Schema combinators live in dsl/, the SIRI-SX model and its schemas in siri/,
// and the CLI in cmd/sirisx.
//
// Typical usage:
//
//	doc, err := siri.DecodeSiriJSON(ctx, data)
//	if iss, ok := sirisx.AsIssues(err); ok {
//		for _, it := range iss {
//			log.Printf("%s at %s: %s", it.Code, it.Path, it.Message)
//		}
//	}
package sirisx
