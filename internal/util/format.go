package util

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var nonSlugChars = regexp.MustCompile(`[^\w ]+`)

// Slugify converts free text to a URL-safe slug.
// Examples: "FPGA ML Accelerator" -> "fpga-ml-accelerator"
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), "-")
	return s
}

// FormatDate formats a timestamp as a long date, e.g. "January 15, 2023".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// FormatDateISO formats a timestamp as an ISO date (2006-01-02).
func FormatDateISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// FormatSize formats a byte count with a binary-ish MB/KB suffix matching
// how the media library displays file sizes.
func FormatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
