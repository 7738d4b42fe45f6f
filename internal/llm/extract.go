package llm

import (
	"encoding/json"
	"strings"
)

// StripCodeFences removes a surrounding markdown code fence from raw LLM
// output, if present. Models asked for JSON frequently reply with
//
//	```json
//	{...}
//	```
//
// even when told not to. Content without a fence is returned unchanged.
func StripCodeFences(raw json.RawMessage) json.RawMessage {
	s := strings.TrimSpace(string(raw))

	if !strings.HasPrefix(s, "```") {
		return raw
	}

	s = strings.TrimPrefix(s, "```")
	// Drop an optional language tag on the opening fence line.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if first == "" || isFenceTag(first) {
			s = s[idx+1:]
		}
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")

	return json.RawMessage(strings.TrimSpace(s))
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
