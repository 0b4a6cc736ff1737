package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"floreria-be/internal/catalog"
	"floreria-be/internal/order"
	"floreria-be/internal/realtime"
	"floreria-be/internal/utils"
	"floreria-be/internal/validation"
)

func (h *Handler) Checkout(c *gin.Context) {
	var req validation.CheckoutRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	items := make([]order.CreateOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, order.CreateOrderItem{
			ProductID:     it.ProductID,
			Kind:          catalog.Kind(it.Kind),
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			Customization: it.Customization,
		})
	}

	id, err := h.orders.Create(c.Request.Context(), order.CreateOrderRequest{
		ContactName:   req.ContactName,
		ContactPhone:  req.ContactPhone,
		RecipientName: req.RecipientName,
		PickupDate:    req.PickupDate,
		PickupTime:    req.PickupTime,
		Total:         req.Total,
		Items:         items,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order_id": id})
}

func (h *Handler) MyOrders(c *gin.Context) {
	out, err := h.orders.ListMine(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	views := []orderView{}
	for _, o := range out {
		views = append(views, toOrderView(o))
	}
	c.JSON(http.StatusOK, gin.H{"orders": views})
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	o, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	// Customers only see their own orders.
	userID, _ := utils.GetUserIDFromContext(c.Request.Context())
	if o.UserID != userID && !utils.IsAdmin(c.Request.Context()) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.JSON(http.StatusOK, toOrderView(o))
}

func (h *Handler) AdminListOrders(c *gin.Context) {
	opts := order.ListOptions{}
	if s := c.Query("status"); s != "" {
		status := order.Status(s)
		opts.Status = &status
	}
	if limit, err := utils.ToInt64(c.Query("limit")); err == nil {
		opts.Limit = int32(limit)
	}
	if page, err := utils.ToInt64(c.Query("page")); err == nil {
		opts.Page = int32(page)
	}

	out, err := h.orders.List(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}

	views := []orderView{}
	for _, o := range out {
		views = append(views, toOrderView(o))
	}
	c.JSON(http.StatusOK, gin.H{"orders": views})
}

func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req validation.UpdateOrderStatusRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	o, err := h.orders.UpdateStatus(c.Request.Context(), id, order.Status(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderView(o))
}

// OrdersStream upgrades the connection and streams order events to the admin
// dashboard.
func (h *Handler) OrdersStream(c *gin.Context) {
	realtime.ServeWS(h.hub, c.Writer, c.Request)
}
