// Package util provides small display helpers shared by the CLI commands.
// It is kept dependency-free to avoid import cycles.
package util

import (
	"fmt"
	"strings"
	"time"
)

// DefaultString returns fallback if v is empty or whitespace-only.
func DefaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// EmptyDash returns "-" for empty or whitespace-only values, so optional
// table columns stay readable.
func EmptyDash(s string) string {
	return DefaultString(s, "-")
}

// TimeAgo formats a unix timestamp as a coarse relative age for table
// output. Zero or negative timestamps render as "-".
func TimeAgo(unix int64, now time.Time) string {
	if unix <= 0 {
		return "-"
	}
	d := now.Sub(time.Unix(unix, 0))
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
