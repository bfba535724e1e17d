package booking

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const defaultDurationDays = 3

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewBookingReference generates a human-shareable booking reference:
// "BK" + base36 millis + 3 random characters, e.g. "BKMB7X2K1QZ3".
func NewBookingReference() string {
	ref := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}
	return "BK" + ref + string(suffix)
}

// DurationDays parses the leading integer of a free-text duration ("5 days").
// Durations with no parseable leading integer default to 3 days.
func DurationDays(duration string) int {
	s := strings.TrimSpace(duration)
	end := 0
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	if end == 0 {
		return defaultDurationDays
	}
	days, err := strconv.Atoi(s[:end])
	if err != nil || days <= 0 {
		return defaultDurationDays
	}
	return days
}
