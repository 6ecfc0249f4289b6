package pinclient

import (
	"time"

	"github.com/dustin/go-humanize"
)

var relMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "Just now", DivBy: 1},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: humanize.Day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: 1},
	{D: humanize.Week, Format: "%d days %s", DivBy: humanize.Day},
}

// RelativeTime labels a pin timestamp relative to now: "Just now", "N minutes ago",
// "N hours ago", "N days ago", or the plain date once it is a week old. Timestamps in
// the future read as "Just now" and unparseable ones are returned unchanged.
func RelativeTime(ts string, now time.Time) string {
	then, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}

	if then.After(now) {
		return relMagnitudes[0].Format
	}

	if now.Sub(then) >= humanize.Week {
		return then.In(now.Location()).Format("1/2/2006")
	}

	return humanize.CustomRelTime(then, now, "ago", "from now", relMagnitudes)
}
