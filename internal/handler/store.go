package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"floreria-be/internal/metrics"
	"floreria-be/internal/store"
	"floreria-be/internal/validation"
)

// GetSettings is public: the storefront shows hours and whether checkout is
// available.
func (h *Handler) GetSettings(c *gin.Context) {
	s, err := h.settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsView(s))
}

// Stats reports checkout counters for the admin dashboard.
func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"orders_created":  metrics.Checkout.Created.Load(),
		"orders_rejected": metrics.Checkout.Rejected.Load(),
		"orders_failed":   metrics.Checkout.Failed.Load(),
	})
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req validation.UpdateStoreSettingsRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	s, err := h.settings.Update(c.Request.Context(), store.UpdateParams{
		IsOpen:            req.IsOpen,
		TemporarilyClosed: req.TemporarilyClosed,
		OpensAt:           req.OpensAt,
		ClosesAt:          req.ClosesAt,
		PrepMinutes:       req.PrepMinutes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsView(s))
}
