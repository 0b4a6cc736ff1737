package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Settings is the singleton operational configuration of the shop. The order
// flow reads it inside its own transaction; only admin tooling mutates it.
type Settings struct {
	IsOpen            bool
	TemporarilyClosed bool
	OpensAt           *string // "HH:MM", nil when never configured
	ClosesAt          *string
	PrepMinutes       *int // minimum preparation buffer, nil means default
	UpdatedAt         time.Time
}

// DefaultPrepMinutes applies when the configured buffer is absent or invalid.
const DefaultPrepMinutes = 120

// EffectivePrepMinutes returns the configured preparation buffer, falling
// back to the default for missing or non-positive values.
func (s *Settings) EffectivePrepMinutes() int {
	if s.PrepMinutes == nil || *s.PrepMinutes <= 0 {
		return DefaultPrepMinutes
	}
	return *s.PrepMinutes
}

// ParseClock converts an "HH:MM" time-of-day into minutes since midnight.
func ParseClock(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day: %q", hhmm)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", hhmm)
	}

	return h*60 + m, nil
}

type UpdateParams struct {
	IsOpen            *bool
	TemporarilyClosed *bool
	OpensAt           *string
	ClosesAt          *string
	PrepMinutes       *int
}
