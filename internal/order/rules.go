package order

import (
	"time"

	"floreria-be/internal/store"
)

const pickupLayout = "2006-01-02 15:04"

// validateSchedule runs the business-hour rule sequence against a single
// consistent read of the settings and returns the parsed pickup timestamp.
// now must be store-local; the requested date and time are anchored to the
// same zone, the client never supplies an offset.
//
// Order matters: config availability, then the closure flags, then date
// parsing, then lead time, then the open/close window.
func validateSchedule(s *store.Settings, now time.Time, dateStr, timeStr string) (time.Time, error) {
	if s == nil || s.OpensAt == nil || s.ClosesAt == nil {
		return time.Time{}, E(KindConfigUnavailable, "store schedule is not configured")
	}

	opening, err := store.ParseClock(*s.OpensAt)
	if err != nil {
		return time.Time{}, E(KindConfigUnavailable, "store schedule is not configured")
	}
	closing, err := store.ParseClock(*s.ClosesAt)
	if err != nil {
		return time.Time{}, E(KindConfigUnavailable, "store schedule is not configured")
	}

	if !s.IsOpen || s.TemporarilyClosed {
		return time.Time{}, E(KindStoreClosed, "the store is currently closed")
	}

	buffer := s.EffectivePrepMinutes()

	pickup, err := time.ParseInLocation(pickupLayout, dateStr+" "+timeStr, now.Location())
	if err != nil {
		return time.Time{}, E(KindInvalidDateFormat, "invalid pickup date or time %q %q", dateStr, timeStr)
	}

	// whole minutes between submission and pickup. A pickup in the past is
	// negative and always fails the buffer check.
	leadMinutes := int(pickup.Sub(now) / time.Minute)
	if leadMinutes < buffer {
		return time.Time{}, E(KindInsufficientLeadTime,
			"orders require at least %d minutes of preparation time", buffer)
	}

	tod := pickup.Hour()*60 + pickup.Minute()
	if tod < opening || tod >= closing {
		return time.Time{}, E(KindOutsideBusinessHours,
			"pickup must be between %s and %s", *s.OpensAt, *s.ClosesAt)
	}

	return pickup, nil
}
