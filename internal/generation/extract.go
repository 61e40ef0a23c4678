package generation

import (
	"encoding/json"
	"strings"
)

// Extract recovers a Result from free-form model text.
//
// The substring from the first '{' to the last '}' is parsed strictly as
// JSON. If the braces are missing, out of order, the substring does not
// parse, or the object lacks a string "title" or "content", the whole text is
// wrapped under FallbackTitle instead. Content that itself holds unbalanced
// braces can be mis-extracted.
func Extract(text string) Outcome {
	if r, ok := extractObject(text); ok {
		return Outcome{Result: r, Status: StatusParsed}
	}

	return Outcome{
		Result: Result{Title: FallbackTitle, Content: text},
		Status: StatusFallback,
	}
}

func extractObject(text string) (Result, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end == -1 || end < start {
		return Result{}, false
	}

	// Pointers tell a missing or null key apart from an empty string.
	var obj struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil {
		return Result{}, false
	}
	if obj.Title == nil || obj.Content == nil {
		return Result{}, false
	}

	return Result{Title: *obj.Title, Content: *obj.Content}, true
}
