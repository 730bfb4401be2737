package expiry

import (
	"fmt"
	"time"
)

// Level classifies how urgently an item needs attention.
type Level int

const (
	LevelNormal Level = iota
	LevelUrgent
	LevelExpired
	LevelNever
	LevelUnknown
)

// String returns a short lowercase name for the level.
func (l Level) String() string {
	switch l {
	case LevelNormal:
		return "normal"
	case LevelUrgent:
		return "urgent"
	case LevelExpired:
		return "expired"
	case LevelNever:
		return "never"
	default:
		return "unknown"
	}
}

// IsAlert returns true for levels rendered in the alert colour.
func (l Level) IsAlert() bool {
	return l == LevelUrgent || l == LevelExpired
}

// Display labels
const (
	LabelNever   = "Never"
	LabelExpired = "Expired"
	LabelUnknown = "Unknown"

	RemainingFormat = "%dd %dh"
)

// UrgentWithin is the remaining time below which an item is flagged.
const UrgentWithin = 24 * time.Hour

// Status is the derived remaining-time view of an expiration.
type Status struct {
	Text  string
	Level Level
}

// Describe renders the time left until exp as seen at now.
func Describe(exp Expiration, now time.Time) Status {
	if exp.Never {
		return Status{Text: LabelNever, Level: LevelNever}
	}

	remaining := exp.At.Sub(now)
	if remaining < 0 {
		return Status{Text: LabelExpired, Level: LevelExpired}
	}

	days, hours := SplitRemaining(remaining)
	level := LevelNormal
	if remaining < UrgentWithin {
		level = LevelUrgent
	}
	return Status{Text: fmt.Sprintf(RemainingFormat, days, hours), Level: level}
}

// DescribeStored is Describe for a raw stored value. Values that do not parse
// are reported as LevelUnknown instead of failing the whole list.
func DescribeStored(raw string, now time.Time) Status {
	exp, err := ParseStored(raw)
	if err != nil {
		return Status{Text: LabelUnknown, Level: LevelUnknown}
	}
	return Describe(exp, now)
}

// SplitRemaining splits a non-negative duration into whole days and the
// whole hours left over.
func SplitRemaining(d time.Duration) (days, hours int) {
	days = int(d / (24 * time.Hour))
	hours = int((d % (24 * time.Hour)) / time.Hour)
	return days, hours
}
