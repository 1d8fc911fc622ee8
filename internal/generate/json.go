package generate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var jsonBlockRegex = regexp.MustCompile("```(?:json)?\\s*")

// strips markdown code fences models wrap around JSON replies
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)
	s = jsonBlockRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// UnmarshalResponse locates the first valid JSON document in a model reply
// and unmarshals it into out. Models frequently wrap JSON in prose or
// code fences; everything before the document is skipped.
func UnmarshalResponse(text string, out any) error {
	text = cleanJSONResponse(text)

	for i := 0; i < len(text); i++ {
		if text[i] != '[' && text[i] != '{' {
			continue
		}
		decoder := json.NewDecoder(strings.NewReader(text[i:]))
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			continue
		}
		if err := json.Unmarshal(raw, out); err == nil {
			return nil
		}
	}
	return fmt.Errorf(
		"no valid JSON found in response: %s",
		truncateString(text, 200),
	)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
