package sirisx

// UnknownPolicy controls how unknown keys are handled.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Drop unknown keys (default, the wire format is open-ended).
	UnknownStrict                      // Reject unknown keys with an error.
)

// Severity expresses the severity level for raw document checks.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn or Error (duplicate JSON keys).
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	// FailFast stops at the first issue instead of collecting every issue.
	FailFast bool
	Unknown  UnknownPolicy

	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64

	// XMLProjection reads documents produced by an XML-to-JSON projection:
	// singletons stand for one-element arrays and scalars may arrive as text.
	XMLProjection bool
	// AllowOffsets accepts timestamps with numeric offsets; by default only Z is valid.
	AllowOffsets bool
	// CheckGeoBounds rejects longitudes outside [-180,180] and latitudes outside [-90,90].
	CheckGeoBounds bool

	// OnWarning receives non-fatal findings such as duplicate keys under Warn.
	OnWarning func(Issue)
}

func lastOpt(opts []ParseOpt) ParseOpt {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}
