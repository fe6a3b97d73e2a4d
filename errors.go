package sirisx

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeInvalidType    = "invalid_type"
	CodeRequired       = "required"
	CodeUnknownKey     = "unknown_key"
	CodeInvalidLiteral = "invalid_literal"
	CodeInvalidFormat  = "invalid_format"
	CodeInvalidEnum    = "invalid_enum"
	// Discriminated union resolution (ReasonType)
	CodeDiscriminatorMissing  = "discriminator_missing"
	CodeDiscriminatorUnknown  = "discriminator_unknown"
	CodeDiscriminatorMismatch = "discriminator_mismatch"
	// Cross-field invariants
	CodeRefinement  = "refinement"
	CodeDomainRange = "domain_range"
	// Raw document problems, reported before any schema runs
	CodeDuplicateKey = "duplicate_key"
	CodeParseError   = "parse_error"
	CodeTruncated    = "truncated"
)

// Category groups issue codes into the failure classes callers usually branch on.
type Category int

const (
	CategoryShape Category = iota
	CategoryEnum
	CategoryDiscriminator
	CategoryRefinement
	CategorySyntax
)

func (c Category) String() string {
	switch c {
	case CategoryShape:
		return "shape"
	case CategoryEnum:
		return "enum"
	case CategoryDiscriminator:
		return "discriminator"
	case CategoryRefinement:
		return "refinement"
	case CategorySyntax:
		return "syntax"
	}
	return "unknown"
}

// Issue represents a single validation entry.
type Issue struct {
	Path     Path   // Steps from the document root to the offending value.
	Code     string // One of the codes listed above.
	Message  string
	Expected string // Expected shape, e.g. "string", "object", "one of [bus tram]".
	Got      string // Kind of the value actually found ("number", "missing", ...).
	Hint     string
	Cause    error
	// Params carries structured parameters (e.g. {"allowed": [...], "got": "spaceship"})
	// for i18n and machine consumers.
	Params map[string]any
}

// Category classifies the issue by its code.
func (it Issue) Category() Category {
	switch it.Code {
	case CodeInvalidEnum:
		return CategoryEnum
	case CodeDiscriminatorMissing, CodeDiscriminatorUnknown, CodeDiscriminatorMismatch:
		return CategoryDiscriminator
	case CodeRefinement, CodeDomainRange:
		return CategoryRefinement
	case CodeDuplicateKey, CodeParseError, CodeTruncated:
		return CategorySyntax
	}
	return CategoryShape
}

func (it Issue) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
	if it.Expected != "" || it.Got != "" {
		fmt.Fprintf(b, " (expected %s, got %s)", orDash(it.Expected), orDash(it.Got))
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		// e.g. invalid_enum at ServiceDelivery.Foo[0].Bar
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Rebase returns a copy of the issues with prefix prepended to every path.
func (iss Issues) Rebase(prefix Path) Issues {
	if len(prefix) == 0 || len(iss) == 0 {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		it.Path = prefix.Join(it.Path)
		out[i] = it
	}
	return out
}

// Under returns the issues located at or below prefix.
func (iss Issues) Under(prefix Path) Issues {
	var out Issues
	for _, it := range iss {
		if it.Path.HasPrefix(prefix) {
			out = append(out, it)
		}
	}
	return out
}

// ByCategory returns the issues of the given category.
func (iss Issues) ByCategory(c Category) Issues {
	var out Issues
	for _, it := range iss {
		if it.Category() == c {
			out = append(out, it)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssuesFromErr converts an error into Issues rooted at path, wrapping plain
// errors with CodeParseError.
func IssuesFromErr(path Path, err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss.Rebase(path)
	}
	return Issues{{Path: path, Code: CodeParseError, Message: err.Error(), Cause: err}}
}
