// Package xmlsrc projects SIRI XML documents onto the JSON-like tree the
// validators consume.
//
// The projection follows the usual XML-to-JSON conventions of SIRI tooling:
// attributes are dropped, element names are taken without their namespace,
// repeated sibling elements become an array, text-only elements become their
// trimmed text and empty elements become "". The root element (Siri) is
// removed, so <Siri><ServiceDelivery>...</ServiceDelivery></Siri> yields
// {"ServiceDelivery": {...}}.
//
// The projection cannot tell a single repeated element from a non-repeated
// one, nor text from numbers; callers validate the result with
// sirisx.ParseOpt.XMLProjection enabled.
package xmlsrc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

var (
	// ErrEmpty is returned for input without a root element.
	ErrEmpty = errors.New("xmlsrc: empty document")
	// ErrTooLarge is returned when input exceeds Options.MaxBytes.
	ErrTooLarge = errors.New("xmlsrc: max bytes exceeded")
	// ErrTooDeep is returned when element nesting exceeds Options.MaxDepth.
	ErrTooDeep = errors.New("xmlsrc: max depth exceeded")
)

// Options bounds the input. Zero values disable the limits.
type Options struct {
	MaxDepth int
	MaxBytes int64
}

type element struct {
	name     string
	children map[string]any
	text     strings.Builder
}

func (e *element) value() any {
	if e.children != nil {
		return e.children
	}
	return strings.TrimSpace(e.text.String())
}

func (e *element) add(name string, v any) {
	if e.children == nil {
		e.children = make(map[string]any)
	}
	prev, ok := e.children[name]
	if !ok {
		e.children[name] = v
		return
	}
	if arr, isArr := prev.([]any); isArr {
		e.children[name] = append(arr, v)
		return
	}
	e.children[name] = []any{prev, v}
}

// Decode reads one XML document from r. Non-UTF-8 encodings declared in the
// XML prolog are converted.
func Decode(r io.Reader, opt Options) (any, error) {
	var cr *countingReader
	if opt.MaxBytes > 0 {
		cr = &countingReader{r: r, max: opt.MaxBytes}
		r = cr
	}
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	var stack []*element
	for {
		tok, err := d.Token()
		if tok == nil || err == io.EOF {
			break
		} else if err != nil {
			if cr != nil && cr.exceeded {
				return nil, ErrTooLarge
			}
			return nil, fmt.Errorf("xmlsrc: %w", err)
		}

		switch ty := tok.(type) {
		case xml.StartElement:
			if opt.MaxDepth > 0 && len(stack) >= opt.MaxDepth {
				return nil, ErrTooDeep
			}
			stack = append(stack, &element{name: ty.Name.Local})
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(ty)
			}
		case xml.EndElement:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return top.value(), nil
			}
			stack[len(stack)-1].add(top.name, top.value())
		}
	}
	if cr != nil && cr.exceeded {
		return nil, ErrTooLarge
	}
	return nil, ErrEmpty
}

type countingReader struct {
	r        io.Reader
	n, max   int64
	exceeded bool
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	if c.n > c.max {
		c.exceeded = true
		return 0, ErrTooLarge
	}
	return n, err
}
