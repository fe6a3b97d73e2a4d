package sirisx

import (
	"errors"
	"strings"
	"time"
)

// DateTime is an ISO-8601 timestamp that remembers its wire text, so that
// re-encoding reproduces the input byte-for-byte.
type DateTime struct {
	raw string
	t   time.Time
}

// ErrInvalidDateTime is returned for text that is not an RFC 3339 timestamp.
var ErrInvalidDateTime = errors.New("sirisx: invalid ISO-8601 date-time")

// ErrDateTimeOffset is returned by ParseDateTime for a timestamp with a numeric offset.
var ErrDateTimeOffset = errors.New("sirisx: date-time offset not allowed, expected Z")

// ParseDateTime parses an RFC 3339 UTC timestamp with optional fractional
// seconds. Only the Z designator is accepted.
func ParseDateTime(s string) (DateTime, error) {
	d, err := ParseDateTimeOffset(s)
	if err != nil {
		return DateTime{}, err
	}
	if !strings.HasSuffix(s, "Z") {
		return DateTime{}, ErrDateTimeOffset
	}
	return d, nil
}

// ParseDateTimeOffset is like ParseDateTime but also accepts numeric offsets
// such as +01:00.
func ParseDateTimeOffset(s string) (DateTime, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return DateTime{}, ErrInvalidDateTime
	}
	return DateTime{raw: s, t: t}, nil
}

// MustDateTime is like ParseDateTimeOffset but panics on invalid input. Intended for tests and constants.
func MustDateTime(s string) DateTime {
	d, err := ParseDateTimeOffset(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateTimeOf wraps t, rendering it in canonical UTC RFC 3339 form.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{raw: t.UTC().Format(time.RFC3339Nano), t: t}
}

// Time returns the parsed instant.
func (d DateTime) Time() time.Time { return d.t }

// String returns the wire text.
func (d DateTime) String() string { return d.raw }

// IsZero reports whether d was never set.
func (d DateTime) IsZero() bool { return d.raw == "" }

// Before reports whether d is strictly earlier than o. Offsets are compared as instants.
func (d DateTime) Before(o DateTime) bool { return d.t.Before(o.t) }

func (d DateTime) MarshalText() ([]byte, error) { return []byte(d.raw), nil }

func (d *DateTime) UnmarshalText(b []byte) error {
	v, err := ParseDateTime(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
