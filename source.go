package sirisx

import (
	"io"
	"sync"

	eng "github.com/reoring/sirisx/internal/engine"
	"github.com/reoring/sirisx/source/gojson"
)

// Token is one lexical JSON token.
type Token = eng.Token

// TokenKind enumerates JSON token kinds.
type TokenKind = eng.Kind

const (
	TokenBeginObject = eng.KindBeginObject
	TokenEndObject   = eng.KindEndObject
	TokenBeginArray  = eng.KindBeginArray
	TokenEndArray    = eng.KindEndArray
	TokenKey         = eng.KindKey
	TokenString      = eng.KindString
	TokenNumber      = eng.KindNumber
	TokenBool        = eng.KindBool
	TokenNull        = eng.KindNull
)

// Source abstracts over token producers. Location is a byte offset, -1 if unknown.
type Source interface {
	NextToken() (Token, error)
	Location() int64
}

// JSONDriver converts JSON input into a Source. The default implementation is
// backed by goccy/go-json and may be swapped with SetJSONDriver.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the go-json backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = goJSONDriver{}
	jsonDriverMu.Unlock()
}

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

type goJSONDriver struct{}

func (goJSONDriver) NewReader(r io.Reader) Source { return gojson.NewReader(r) }
func (goJSONDriver) NewBytes(b []byte) Source     { return gojson.NewBytes(b) }
func (goJSONDriver) Name() string                 { return "go-json" }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return getJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return getJSONDriver().NewBytes(b) }

// EnforceSource wraps a Source with duplicate-key and depth enforcement.
// Non-fatal findings (duplicate keys in Warn mode) are forwarded to sink when non-nil.
func EnforceSource(s Source, opt ParseOpt, sink func(Issue)) Source {
	if opt.Strictness.OnDuplicateKey == Ignore && opt.MaxDepth == 0 {
		return s
	}
	var forward func(eng.SimpleIssue)
	if sink != nil {
		forward = func(si eng.SimpleIssue) { sink(fromSimpleIssue(si)) }
	}
	return eng.WrapWithEnforcement(s, eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		IssueSink:   forward,
		FailFast:    opt.FailFast,
	})
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Warn:
		return eng.DupWarn
	case Error:
		return eng.DupError
	default:
		return eng.DupIgnore
	}
}

func fromSimpleIssue(si eng.SimpleIssue) Issue {
	p := make(Path, 0, len(si.Path))
	for _, s := range si.Path {
		p = append(p, Step{Key: s.Key, Index: s.Index, IsIndex: s.IsIndex})
	}
	return Issue{Path: p, Code: si.Code, Message: si.Message}
}
