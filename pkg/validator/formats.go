package validator

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// year, month, day separated by "-", "/" or "."; or compact YYYYMMDD.
	// Separators are captured so both can be required to match.
	dateRegex        = regexp.MustCompile(`^(\d{4})([-/.])(\d{1,2})([-/.])(\d{1,2})$`)
	compactDateRegex = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})$`)

	// date, then "T" or a space, then hours:minutes with optional seconds
	dateTimeRegex = regexp.MustCompile(`^(\d{4})([-/.])(\d{1,2})([-/.])(\d{1,2})[T ](\d{1,2}):(\d{2})(?::(\d{2}))?$`)
)

// isEmail validates an address in the plain local@domain form.
// Display names ("Bo <bo@example.com>") are rejected.
func isEmail(value string) bool {
	if value == "" || strings.ContainsAny(value, "<> ") {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	localPart, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || localPart == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// isDate reports whether value is a real calendar date; "2000-42-00" is not.
func isDate(value string) bool {
	if m := dateRegex.FindStringSubmatch(value); m != nil {
		return m[2] == m[4] && validDate(atoi(m[1]), atoi(m[3]), atoi(m[5]))
	}
	if m := compactDateRegex.FindStringSubmatch(value); m != nil {
		return validDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	return false
}

// isDateTime reports whether value is a real date followed by a valid time of day.
// RFC 3339 timestamps are accepted as well.
func isDateTime(value string) bool {
	if _, err := time.Parse(time.RFC3339, value); err == nil {
		return true
	}

	m := dateTimeRegex.FindStringSubmatch(value)
	if m == nil || m[2] != m[4] {
		return false
	}
	if !validDate(atoi(m[1]), atoi(m[3]), atoi(m[5])) {
		return false
	}

	hour, minute, second := atoi(m[6]), atoi(m[7]), 0
	if m[8] != "" {
		second = atoi(m[8])
	}
	return hour < 24 && minute < 60 && second < 60
}

// validDate rejects values time.Date would normalize, like month 13 or Feb 30.
func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// atoi is only called on regex-matched digit groups.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
