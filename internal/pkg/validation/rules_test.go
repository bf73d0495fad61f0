package validation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "calendar date", input: "1990-04-15"},
		{name: "rfc3339 timestamp", input: "1990-04-15T00:00:00Z"},
		{name: "garbage", input: "not-a-date", wantErr: true},
		{name: "impossible day", input: "1990-02-31", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1990, parsed.Year())
			assert.Equal(t, time.April, parsed.Month())
			assert.Equal(t, 15, parsed.Day())
		})
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{name: "birthday already passed", birth: time.Date(2000, time.January, 10, 0, 0, 0, 0, time.UTC), want: 25},
		{name: "birthday today", birth: time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC), want: 25},
		{name: "birthday still ahead", birth: time.Date(2000, time.December, 24, 0, 0, 0, 0, time.UTC), want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(tt.birth, now))
		})
	}
}

func TestMinAge(t *testing.T) {
	rule := MinAge(13, "too young")
	now := time.Now()

	// Exactly 13 today passes.
	thirteenToday := now.AddDate(-13, 0, 0).Format("2006-01-02")
	assert.Empty(t, rule(thirteenToday, nil))

	// One day short of 13 fails.
	almostThirteen := now.AddDate(-13, 0, 1).Format("2006-01-02")
	assert.Equal(t, "too young", rule(almostThirteen, nil))

	assert.Equal(t, "too young", rule("not-a-date", nil))
}

func TestLengthRules(t *testing.T) {
	min := MinLen(2, "too short")
	max := MaxLen(5, "too long")

	assert.Equal(t, "too short", min("a", nil))
	assert.Empty(t, min("ab", nil))
	// Rune length, not byte length.
	assert.Empty(t, min("çş", nil))

	assert.Empty(t, max("abcde", nil))
	assert.Equal(t, "too long", max("abcdef", nil))
}

func TestEmailRule(t *testing.T) {
	rule := Email("invalid email")

	valid := []string{"a@b.co", "first.last+tag@example.org"}
	for _, v := range valid {
		assert.Empty(t, rule(v, nil), v)
	}

	invalid := []string{"plainaddress", "missing@tld", "@example.com", "a b@example.com"}
	for _, v := range invalid {
		assert.Equal(t, "invalid email", rule(v, nil), v)
	}
}

func TestYearRules(t *testing.T) {
	fourDigit := FourDigitYear("bad year")
	assert.Empty(t, fourDigit("1999", nil))
	assert.Equal(t, "bad year", fourDigit("99", nil))
	assert.Equal(t, "bad year", fourDigit("19999", nil))
	assert.Equal(t, "bad year", fourDigit("199x", nil))

	between := YearBetween(1900, "out of range")
	assert.Empty(t, between("1990", nil))
	assert.Equal(t, "out of range", between("1899", nil))
	assert.Equal(t, "out of range", between(fmt.Sprint(time.Now().Year()+1), nil))
	assert.Equal(t, "out of range", between("abcd", nil))
}

func TestIntegerIDRule(t *testing.T) {
	rule := IntegerID("pick one")

	assert.Empty(t, rule("1", nil))
	assert.Empty(t, rule("42", nil))
	assert.Equal(t, "pick one", rule("0", nil))
	assert.Equal(t, "pick one", rule("-3", nil))
	assert.Equal(t, "pick one", rule("3.5", nil))
	assert.Equal(t, "pick one", rule("abc", nil))
}

func TestDateRules(t *testing.T) {
	calendar := CalendarDate("bad date")
	assert.Empty(t, calendar("2000-06-15", nil))
	assert.Equal(t, "bad date", calendar("2000-13-01", nil))

	notFuture := NotFutureDate("in the future")
	assert.Empty(t, notFuture("2000-06-15", nil))
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	assert.Equal(t, "in the future", notFuture(tomorrow, nil))
}

func TestEqualsFieldRule(t *testing.T) {
	rule := EqualsField("password", "mismatch")

	all := Values{"password": "secret1"}
	assert.Empty(t, rule("secret1", all))
	assert.Equal(t, "mismatch", rule("secret2", all))
}
