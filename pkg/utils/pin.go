package utils

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TimestampLayout matches the ISO-8601 form browsers emit from Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const idSuffixLength = 9

// NewPinID returns the Unix-millisecond time of now followed by a random suffix.
func NewPinID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLength]

	return strconv.FormatInt(now.UnixMilli(), 10) + suffix
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// IsTimestamp reports whether s parses as an RFC 3339 / ISO-8601 date-time.
func IsTimestamp(s string) bool {
	_, err := time.Parse(time.RFC3339Nano, s)

	return err == nil
}

// TruncateRunes cuts s to at most limit code points.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)

	return string(runes[:limit])
}
