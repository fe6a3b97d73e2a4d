// Package yamlsrc decodes YAML renditions of SIRI documents into the
// JSON-like tree the validators consume.
package yamlsrc

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned for a document without content.
var ErrEmpty = errors.New("yamlsrc: empty document")

// Decode parses the first YAML document in data.
func Decode(data []byte) (any, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("yamlsrc: %w", err)
	}
	if node == nil {
		return nil, ErrEmpty
	}
	return normalizeValue(node), nil
}

// normalizeValue converts YAML-decoded values (which may contain map[any]any)
// into JSON-like values recursively. Timestamps decode to their text.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = normalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
