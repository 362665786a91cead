package utils

import (
	"log"
)

// Logf prints consistent server lifecycle logs.
func Logf(format string, v ...any) {
	log.Printf("[punchline] "+format, v...)
}

// ErrJSON produces the standard JSON error body. Details are optional and
// omitted when empty.
func ErrJSON(msg string, details ...string) map[string]any {
	out := map[string]any{
		"error": msg,
	}
	if len(details) > 0 && details[0] != "" {
		out["details"] = details[0]
	}
	return out
}

// LimitStr returns a string truncated to n bytes with "..." appended if longer.
func LimitStr(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
