package order

import (
	"errors"
	"fmt"
)

// Kind classifies checkout failures so the transport layer can map them to a
// status code without string matching.
type Kind string

const (
	KindNotAuthenticated     Kind = "NOT_AUTHENTICATED"
	KindUserNotFound         Kind = "USER_NOT_FOUND"
	KindConfigUnavailable    Kind = "CONFIG_UNAVAILABLE"
	KindStoreClosed          Kind = "STORE_CLOSED"
	KindInvalidDateFormat    Kind = "INVALID_DATE_FORMAT"
	KindInsufficientLeadTime Kind = "INSUFFICIENT_LEAD_TIME"
	KindOutsideBusinessHours Kind = "OUTSIDE_BUSINESS_HOURS"
	KindInvalidProductID     Kind = "INVALID_PRODUCT_ID"
	KindTotalMismatch        Kind = "TOTAL_MISMATCH"
	KindOrderNotFound        Kind = "ORDER_NOT_FOUND"
	KindInvalidStatus        Kind = "INVALID_STATUS"
	KindInternal             Kind = "INTERNAL"
)

// Error carries a kind plus a message suitable for showing to the user.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func E(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the failure kind, treating anything unclassified as
// internal. Unexpected persistence errors never leak their raw message.
func KindOf(err error) Kind {
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindInternal
}
