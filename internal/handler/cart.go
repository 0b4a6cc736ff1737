package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"floreria-be/internal/cart"
	"floreria-be/internal/catalog"
	"floreria-be/internal/utils"
	"floreria-be/internal/validation"
)

func (h *Handler) GetCart(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	out, err := h.carts.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(out))
}

func (h *Handler) AddCartItem(c *gin.Context) {
	var req validation.AddCartItemRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	item, err := h.carts.AddItem(c.Request.Context(), cart.AddItemParams{
		UserID:        userID,
		Kind:          catalog.Kind(req.Kind),
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		Customization: req.Customization,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         item.ID,
		"kind":       string(item.Kind),
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
		"unit_price": item.UnitPrice,
	})
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req validation.UpdateCartItemRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	userID, _ := utils.GetUserIDFromContext(c.Request.Context())
	if err := h.carts.UpdateItemQuantity(c.Request.Context(), userID, id, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userID, _ := utils.GetUserIDFromContext(c.Request.Context())
	if err := h.carts.RemoveItem(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ClearCart(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c.Request.Context())
	if err := h.carts.Clear(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
