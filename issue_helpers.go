package sirisx

// IssueAt creates an Issue at the given path with provided code, message and params map.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(p Path, code, msg string, params map[string]any) Issue {
	return Issue{Path: p, Code: code, Message: msg, Params: params}
}

// KindOf names the JSON kind of a decoded value for Issue.Got.
func KindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	if _, ok := ToFloat(v); ok {
		return "number"
	}
	return "unknown"
}
