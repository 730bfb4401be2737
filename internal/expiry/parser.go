package expiry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Canonical storage format
const (
	// Layout is the zero-padded local timestamp used for storage and round-trips.
	Layout = "2006-01-02 15:04:05"

	// NeverToken marks an item that never expires.
	NeverToken = "inf"
)

// Unit suffixes accepted by ParseDuration
const (
	SuffixDay   = 'd'
	SuffixWeek  = 'w'
	SuffixHour  = 'h'
	SuffixMonth = 'm'
	SuffixYear  = 'y'
)

// Calendar approximations
const (
	DaysPerWeek  = 7
	DaysPerMonth = 30
	DaysPerYear  = 365
)

// Representable year range of Layout
const (
	MinYear = 1
	MaxYear = 9999
)

// MaxMagnitude bounds the numeric part so hour spans cannot overflow time.Duration.
const MaxMagnitude = 2_000_000

// ErrInvalidFormat is returned when text matches no recognized expression.
var ErrInvalidFormat = errors.New("invalid expiration format")

// Span is a relative shelf-life. Forever means the item never expires.
type Span struct {
	Days    int
	Hours   int
	Forever bool
}

// From returns now shifted by the span. Days move the calendar date so the
// wall clock survives DST changes; hours are elapsed time.
func (s Span) From(now time.Time) time.Time {
	return now.AddDate(0, 0, s.Days).Add(time.Duration(s.Hours) * time.Hour)
}

// Expiration is a resolved expiration: an absolute local instant or Never.
type Expiration struct {
	At    time.Time
	Never bool
}

// NeverExpires returns the "no expiration" sentinel.
func NeverExpires() Expiration {
	return Expiration{Never: true}
}

// At returns an absolute expiration truncated to whole seconds.
func At(t time.Time) Expiration {
	return Expiration{At: t.Truncate(time.Second)}
}

// String renders the stored form: NeverToken or Layout.
func (e Expiration) String() string {
	if e.Never {
		return NeverToken
	}
	return e.At.Format(Layout)
}

// Equal reports whether both values denote the same expiration.
func (e Expiration) Equal(other Expiration) bool {
	if e.Never || other.Never {
		return e.Never == other.Never
	}
	return e.At.Equal(other.At)
}

// Before reports whether e is an absolute instant strictly before t.
func (e Expiration) Before(t time.Time) bool {
	return !e.Never && e.At.Before(t)
}

// ParseDuration parses a relative shelf-life expression.
//
// Accepted forms are "inf" (any case), an integer followed by one of the
// suffixes d, w, h, m, y, or a bare integer meaning days. Zero and negative
// values are accepted.
func ParseDuration(text string) (Span, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return Span{}, fmt.Errorf("%w: empty value", ErrInvalidFormat)
	}
	if s == NeverToken {
		return Span{Forever: true}, nil
	}

	number, unit := s, byte(SuffixDay)
	switch last := s[len(s)-1]; last {
	case SuffixDay, SuffixWeek, SuffixHour, SuffixMonth, SuffixYear:
		number, unit = s[:len(s)-1], last
	}

	n, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil {
		return Span{}, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	if n > MaxMagnitude || n < -MaxMagnitude {
		return Span{}, fmt.Errorf("%w: %q is out of range", ErrInvalidFormat, text)
	}

	switch unit {
	case SuffixWeek:
		return Span{Days: n * DaysPerWeek}, nil
	case SuffixHour:
		return Span{Hours: n}, nil
	case SuffixMonth:
		return Span{Days: n * DaysPerMonth}, nil
	case SuffixYear:
		return Span{Days: n * DaysPerYear}, nil
	default:
		return Span{Days: n}, nil
	}
}

// ParseStored parses a value as written to the item file: NeverToken or a
// Layout timestamp in local time. Relative expressions are rejected.
func ParseStored(raw string) (Expiration, error) {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, NeverToken) {
		return NeverExpires(), nil
	}
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return Expiration{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}
	return Expiration{At: t}, nil
}

// ResolveExpiration converts user input into an Expiration relative to now.
// A canonical timestamp is taken as-is, so a value previously produced by
// this function resolves to itself whatever now is.
func ResolveExpiration(raw string, now time.Time) (Expiration, error) {
	if exp, err := ParseStored(raw); err == nil {
		return exp, nil
	}

	span, err := ParseDuration(raw)
	if err != nil {
		return Expiration{}, err
	}
	if span.Forever {
		return NeverExpires(), nil
	}

	at := span.From(now)
	if y := at.Year(); y < MinYear || y > MaxYear {
		return Expiration{}, fmt.Errorf("%w: %q is out of range", ErrInvalidFormat, raw)
	}
	return At(at), nil
}
