package stream

import (
	"errors"

	eng "github.com/reoring/sirisx/internal/engine"
)

// ErrNotArray is returned by EachElement when the located value is not an array.
var ErrNotArray = errors.New("stream: value is not an array")

// Locate advances src until the value addressed by keys begins and returns its
// first token. Only object members are followed; sibling subtrees are skipped
// without being materialized. found is false when the path does not exist.
func Locate(src eng.TokenSource, keys []string) (tok eng.Token, found bool, err error) {
	first, err := src.NextToken()
	if err != nil {
		return eng.Token{}, false, err
	}
	return locateFrom(src, first, keys)
}

func locateFrom(src eng.TokenSource, tok eng.Token, keys []string) (eng.Token, bool, error) {
	if len(keys) == 0 {
		return tok, true, nil
	}
	if tok.Kind != eng.KindBeginObject {
		return eng.Token{}, false, eng.Skip(src, tok)
	}
	for {
		kt, err := src.NextToken()
		if err != nil {
			return eng.Token{}, false, err
		}
		if kt.Kind == eng.KindEndObject {
			return eng.Token{}, false, nil
		}
		if kt.Kind != eng.KindKey {
			return eng.Token{}, false, eng.ErrUnexpectedToken
		}
		vt, err := src.NextToken()
		if err != nil {
			return eng.Token{}, false, err
		}
		if kt.String == keys[0] {
			return locateFrom(src, vt, keys[1:])
		}
		if err := eng.Skip(src, vt); err != nil {
			return eng.Token{}, false, err
		}
	}
}

// EachElement calls fn for every element of the array that starts with first.
// fn receives the element's first token and must consume the element subtree
// (for example via engine.DecodeValue). Iteration stops at the first error.
func EachElement(src eng.TokenSource, first eng.Token, fn func(i int, tok eng.Token) error) error {
	if first.Kind != eng.KindBeginArray {
		_ = eng.Skip(src, first)
		return ErrNotArray
	}
	for i := 0; ; i++ {
		tok, err := src.NextToken()
		if err != nil {
			return err
		}
		if tok.Kind == eng.KindEndArray {
			return nil
		}
		if err := fn(i, tok); err != nil {
			return err
		}
	}
}
