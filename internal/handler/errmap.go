package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"floreria-be/internal/cart"
	"floreria-be/internal/catalog"
	"floreria-be/internal/logger"
	"floreria-be/internal/order"
	"floreria-be/internal/store"
	"floreria-be/internal/user"
)

// respondError maps a service error to an HTTP status and a JSON body. An
// unclassified error is logged and surfaced as a generic 500 so raw
// persistence messages never reach the client.
func respondError(c *gin.Context, err error) {
	if status, ok := statusFor(err); ok {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	logger.FromCtx(c.Request.Context()).Error("unhandled error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
}

func statusFor(err error) (int, bool) {
	var oe *order.Error
	if errors.As(err, &oe) {
		return statusForOrderKind(oe.Kind), true
	}

	switch {
	case errors.Is(err, user.ErrNotAuthenticated),
		errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrInvalidIDToken),
		errors.Is(err, user.ErrTokenExpired),
		errors.Is(err, cart.ErrUserNotAuthenticated):
		return http.StatusUnauthorized, true

	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, catalog.ErrBouquetNotFound),
		errors.Is(err, catalog.ErrFlowerNotFound),
		errors.Is(err, cart.ErrCartItemNotFound),
		errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, store.ErrSettingsNotFound):
		return http.StatusNotFound, true

	case errors.Is(err, user.ErrEmailExists):
		return http.StatusConflict, true

	case errors.Is(err, catalog.ErrEmptyName),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInvalidKind),
		errors.Is(err, cart.ErrProductInactive),
		errors.Is(err, cart.ErrInsufficientStock),
		errors.Is(err, store.ErrInvalidClock),
		errors.Is(err, store.ErrInvalidWindow),
		errors.Is(err, store.ErrInvalidBuffer):
		return http.StatusUnprocessableEntity, true
	}

	return 0, false
}

func statusForOrderKind(kind order.Kind) int {
	switch kind {
	case order.KindNotAuthenticated:
		return http.StatusUnauthorized
	case order.KindUserNotFound, order.KindOrderNotFound:
		return http.StatusNotFound
	case order.KindStoreClosed:
		return http.StatusConflict
	case order.KindInvalidDateFormat,
		order.KindInsufficientLeadTime,
		order.KindOutsideBusinessHours,
		order.KindInvalidProductID,
		order.KindTotalMismatch,
		order.KindInvalidStatus:
		return http.StatusUnprocessableEntity
	case order.KindConfigUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
