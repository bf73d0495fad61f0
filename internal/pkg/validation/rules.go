package validation

import (
	"regexp"
	"strconv"
	"time"
)

// Validation patterns and shared limits
var (
	// EmailPattern matches a syntactically valid address
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// FourDigitYearPattern matches exactly four digits
	FourDigitYearPattern = `^\d{4}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email         *regexp.Regexp
	FourDigitYear *regexp.Regexp
}{
	Email:         regexp.MustCompile(EmailPattern),
	FourDigitYear: regexp.MustCompile(FourDigitYearPattern),
}

// dateLayouts are the accepted birth/employment date encodings. Form input
// arrives either as a plain calendar date or as a full RFC 3339 timestamp.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate parses a date value in any accepted layout.
func ParseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Age returns the number of whole years elapsed between birth and now,
// decremented when the birthday has not yet occurred this year.
func Age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// MinLen fails values shorter than n characters.
func MinLen(n int, msg string) Rule {
	return func(value string, _ Values) string {
		if len([]rune(value)) < n {
			return msg
		}
		return ""
	}
}

// MaxLen fails values longer than n characters.
func MaxLen(n int, msg string) Rule {
	return func(value string, _ Values) string {
		if len([]rune(value)) > n {
			return msg
		}
		return ""
	}
}

// Email fails values that are not syntactically valid addresses.
func Email(msg string) Rule {
	return func(value string, _ Values) string {
		if !CompiledPatterns.Email.MatchString(value) {
			return msg
		}
		return ""
	}
}

// FourDigitYear fails values that are not exactly four digits.
func FourDigitYear(msg string) Rule {
	return func(value string, _ Values) string {
		if !CompiledPatterns.FourDigitYear.MatchString(value) {
			return msg
		}
		return ""
	}
}

// YearBetween fails values outside [min, current year] or non-numeric values.
func YearBetween(min int, msg string) Rule {
	return func(value string, _ Values) string {
		year, err := strconv.Atoi(value)
		if err != nil || year < min || year > time.Now().Year() {
			return msg
		}
		return ""
	}
}

// IntegerID fails values that do not parse as a positive integer identifier.
func IntegerID(msg string) Rule {
	return func(value string, _ Values) string {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil || id < 1 {
			return msg
		}
		return ""
	}
}

// CalendarDate fails values that do not parse as a real date.
func CalendarDate(msg string) Rule {
	return func(value string, _ Values) string {
		if _, err := ParseDate(value); err != nil {
			return msg
		}
		return ""
	}
}

// NotFutureDate fails dates after the current instant.
func NotFutureDate(msg string) Rule {
	return func(value string, _ Values) string {
		t, err := ParseDate(value)
		if err != nil || t.After(time.Now()) {
			return msg
		}
		return ""
	}
}

// MinAge fails birth dates whose exact elapsed age is below years.
func MinAge(years int, msg string) Rule {
	return func(value string, _ Values) string {
		t, err := ParseDate(value)
		if err != nil || Age(t, time.Now()) < years {
			return msg
		}
		return ""
	}
}

// EqualsField fails when the value differs from the named field's value.
// The error belongs to the field carrying this rule, not the referenced one.
func EqualsField(other, msg string) Rule {
	return func(value string, all Values) string {
		if value != all[other] {
			return msg
		}
		return ""
	}
}
