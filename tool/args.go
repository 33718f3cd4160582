package tool

// stringArg extracts a required string argument from a raw argument map.
func stringArg(toolName string, args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", &ErrMissingArg{Tool: toolName, Arg: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &ErrBadArg{Tool: toolName, Arg: key, Want: "string"}
	}
	return s, nil
}

// stringSliceArg extracts a required list-of-strings argument. JSON
// decoding yields []any, so both []string and []any are accepted.
func stringSliceArg(toolName string, args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok {
		return nil, &ErrMissingArg{Tool: toolName, Arg: key}
	}
	switch vs := v.(type) {
	case []string:
		return vs, nil
	case []any:
		out := make([]string, 0, len(vs))
		for _, item := range vs {
			s, ok := item.(string)
			if !ok {
				return nil, &ErrBadArg{Tool: toolName, Arg: key, Want: "list of strings"}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &ErrBadArg{Tool: toolName, Arg: key, Want: "list of strings"}
	}
}
