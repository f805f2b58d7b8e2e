package depfile

import "encoding/json"

// ParseSourceDependencies reads the JSON document cl.exe writes for /sourceDependencies:
//
//	{"Version": "1.2", "Data": {"Source": "...", "Includes": ["a.h", "b.h"]}}
//
// The compiler does not list the translation unit itself, so src is appended.
// A document without a Data object holding an Includes array is malformed.
// Non-string members of Includes are skipped.
func ParseSourceDependencies(data []byte, src string) ([]string, bool) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}

	section, ok := doc["Data"].(map[string]any)
	if !ok {
		return nil, false
	}

	includes, ok := section["Includes"].([]any)
	if !ok {
		return nil, false
	}

	deps := make([]string, 0, len(includes)+1)
	for _, v := range includes {
		if s, ok := v.(string); ok {
			deps = append(deps, s)
		}
	}
	return append(deps, src), true
}
