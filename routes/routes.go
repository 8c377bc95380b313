package routes

import (
	"chorsu-feast-api/handlers"
	"chorsu-feast-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public storefront routes ───────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", handlers.Login)
		public.GET("/menu", handlers.GetMenu)
		public.POST("/orders", handlers.CreateOrder)
	}

	// ── Back-office routes ─────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired())
	{
		// Orders
		admin.GET("/orders", handlers.ListOrders)
		admin.GET("/orders/stream", handlers.StreamOrders)
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
		admin.PUT("/orders/:id/assign", handlers.AssignCourier)
		admin.POST("/orders/:id/auto-assign", handlers.AutoAssignCourier)
		admin.PUT("/orders/:id/payment", handlers.ConfirmPayment)
		admin.DELETE("/orders/:id", handlers.DeleteOrder)

		// Menu management
		admin.POST("/menu", handlers.AddMenuItem)
		admin.PUT("/menu/:id", handlers.UpdateMenuItem)
		admin.DELETE("/menu/:id", handlers.DeleteMenuItem)

		// Courier registry
		admin.GET("/couriers", handlers.ListCouriers)
		admin.POST("/couriers", handlers.AddCourier)
		admin.PUT("/couriers/:id/status", handlers.UpdateCourierStatus)
		admin.DELETE("/couriers/:id", handlers.DeleteCourier)

		// Boards
		admin.GET("/kitchen", handlers.GetKitchenBoard)
		admin.GET("/dashboard", handlers.GetDashboard)
	}
}
