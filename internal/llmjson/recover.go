// Package llmjson recovers structured JSON from free-form model output.
package llmjson

import (
	"encoding/json"
	"strings"
	"unicode"

	"course-planner/internal/domain"
)

const fence = "```"

// StripCodeFence removes a surrounding markdown code fence (optionally tagged,
// e.g. ```json) and any <think>...</think> preamble, then trims whitespace.
// Input without a fence is returned trimmed.
func StripCodeFence(raw string) string {
	s := stripThinking(strings.TrimSpace(raw))

	if rest, ok := strings.CutPrefix(s, fence); ok {
		if i := strings.IndexByte(rest, '\n'); i >= 0 && isFenceTag(rest[:i]) {
			rest = rest[i+1:]
		} else if len(rest) >= 4 && strings.EqualFold(rest[:4], "json") {
			rest = rest[4:]
		}
		s = strings.TrimSpace(rest)
	}
	s = strings.TrimSuffix(s, fence)
	return strings.TrimSpace(s)
}

// Unmarshal strips the fence and decodes the remainder into v.
func Unmarshal(raw string, v interface{}) error {
	return json.Unmarshal([]byte(StripCodeFence(raw)), v)
}

// Decode parses raw model output into T. A parse failure is reported as the
// fixed user-facing message rather than the decoder error.
func Decode[T any](raw string) domain.Result[T] {
	var v T
	if err := Unmarshal(raw, &v); err != nil {
		return domain.Fail[T](domain.MsgParseFailure)
	}
	return domain.Ok(v)
}

func stripThinking(s string) string {
	start := strings.Index(s, "<think>")
	if start == -1 {
		return s
	}
	end := strings.Index(s, "</think>")
	if end == -1 || end < start {
		return s
	}
	return strings.TrimSpace(s[:start] + s[end+len("</think>"):])
}

// isFenceTag reports whether the text after an opening fence is a language tag.
func isFenceTag(s string) bool {
	for _, r := range strings.TrimSpace(s) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}
