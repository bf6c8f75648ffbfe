package textutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

const (
	InputDateLayout     = "2006-01-02"
	InputDateTimeLayout = "2006-01-02T15:04"
)

// TimeAgo formats t relative to now: the clock time when t is at most a
// day old, the date otherwise.
func TimeAgo(t, now time.Time) string {
	if now.Sub(t) <= 24*time.Hour {
		return t.Format("15:04")
	}
	return t.Format("Jan 2, 2006")
}

// FormatInputDate formats t the way date inputs expect it.
func FormatInputDate(t time.Time, includeTime bool) string {
	if includeTime {
		return t.Format(InputDateTimeLayout)
	}
	return t.Format(InputDateLayout)
}

// ParseInputDate parses a value produced by FormatInputDate in loc.
func ParseInputDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(InputDateTimeLayout, s, loc); err == nil {
		return t, nil
	}
	return time.ParseInLocation(InputDateLayout, s, loc)
}

// DefaultExpiration is the expiration date proposed for new mailboxes.
func DefaultExpiration(now time.Time) string {
	return FormatInputDate(now.Add(24*time.Hour), false)
}

// RandomHex returns n random hex characters. n defaults to 40 and is
// rounded down to an even number.
func RandomHex(n int) string {
	if n <= 0 {
		n = 40
	}
	buf := make([]byte, n/2)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// Move moves the element at from to index to, shifting the elements in
// between. Out of range indexes leave s untouched.
func Move[T any](s []T, from, to int) []T {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return s
	}
	v := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = v
	return s
}

// Truncate shortens a string to maxLen runes, adding an ellipsis if needed.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-1]) + "…"
}
