package utils

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Days never roll up into weeks or months.
var relMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "just now", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: time.Minute},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: time.Hour},
	{D: 24 * time.Hour, Format: "%d hours %s", DivBy: time.Hour},
	{D: 48 * time.Hour, Format: "1 day %s", DivBy: 24 * time.Hour},
	{D: math.MaxInt64, Format: "%d days %s", DivBy: 24 * time.Hour},
}

// RelativeTime renders then relative to now, e.g. "5 hours ago".
// Anything in the future reads "just now".
func RelativeTime(then, now time.Time) string {
	if then.After(now) {
		return "just now"
	}
	return humanize.CustomRelTime(then, now, "ago", "from now", relMagnitudes)
}
