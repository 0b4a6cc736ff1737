package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"floreria-be/internal/middleware"
)

// NewRouter wires the middleware chain and every route.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.Authenticate())
	r.Use(middleware.RateLimit())
	r.Use(middleware.Logging())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/google", h.GoogleLogin)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}

	api.GET("/settings", h.GetSettings)

	api.GET("/bouquets", h.ListBouquets)
	api.GET("/bouquets/:id", h.GetBouquet)
	api.GET("/flowers", h.ListFlowers)
	api.GET("/flowers/:id", h.GetFlower)

	cartRoutes := api.Group("/cart", middleware.RequireAuth())
	{
		cartRoutes.GET("", h.GetCart)
		cartRoutes.POST("/items", h.AddCartItem)
		cartRoutes.PATCH("/items/:id", h.UpdateCartItem)
		cartRoutes.DELETE("/items/:id", h.RemoveCartItem)
		cartRoutes.DELETE("", h.ClearCart)
	}

	orders := api.Group("/orders", middleware.RequireAuth())
	{
		orders.POST("", h.Checkout)
		orders.GET("", h.MyOrders)
		orders.GET("/:id", h.GetOrder)
	}

	admin := api.Group("/admin", middleware.RequireAdmin())
	{
		admin.PUT("/settings", h.UpdateSettings)
		admin.POST("/bouquets", h.CreateBouquet)
		admin.PUT("/bouquets/:id", h.UpdateBouquet)
		admin.POST("/flowers", h.CreateFlower)
		admin.PUT("/flowers/:id", h.UpdateFlower)
		admin.GET("/stats", h.Stats)
		admin.GET("/orders", h.AdminListOrders)
		admin.PATCH("/orders/:id/status", h.AdminUpdateOrderStatus)
		admin.GET("/orders/ws", h.OrdersStream)
	}

	return r
}
