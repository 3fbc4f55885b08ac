package handlers

import (
	"net/http"

	"opsboard/internal/access"
	"opsboard/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Set groups the handlers so route registration lives in one place and can
// be wired against test doubles.
type Set struct {
	Auth      *AuthHandler
	Task      *TaskHandler
	Order     *OrderHandler
	Store     *StoreHandler
	Ecommerce *EcommerceHandler
	Dashboard *DashboardHandler
	Forecast  *ForecastHandler
	User      *UserHandler
}

// Register wires every route. Permission checks run as middleware before any
// handler: session first, then the role→view table, then the admin gate
// where the action demands it.
func (s *Set) Register(router *gin.Engine, authService services.AuthService) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/api/auth/login", s.Auth.Login)

	api := router.Group("/api")
	api.Use(RequireSession(authService))
	{
		api.POST("/auth/logout", s.Auth.Logout)
		api.GET("/views", s.Auth.Views)

		// Dashboard is visible to every role
		api.GET("/dashboard/summary", s.Dashboard.Summary)

		tasks := api.Group("/tasks/:kind")
		tasks.Use(RequireKindView())
		{
			tasks.GET("", RequireAdmin(), s.Task.List)
			tasks.POST("", RequireAdmin(), s.Task.Create)
			tasks.GET("/buckets", s.Task.Buckets)
			tasks.GET("/id/:id", s.Task.Get)
			tasks.PUT("/id/:id/progress", s.Task.UpdateProgress)
			tasks.DELETE("/id/:id", RequireAdmin(), s.Task.Delete)
		}

		orders := api.Group("/orders", RequireView(access.ViewOrders))
		{
			orders.POST("", s.Order.Create)
			orders.GET("", s.Order.List)
			orders.GET("/pending", s.Order.Pending)
			orders.GET("/pending/top", s.Order.TopPending)
		}

		store := api.Group("/store", RequireView(access.ViewStore))
		{
			store.POST("/transactions", s.Store.Create)
			store.GET("/transactions", s.Store.List)
			store.GET("/stock", s.Store.Stock)
		}

		api.GET("/packing/forecast", RequireView(access.ViewPacking), s.Forecast.Materials)

		ecom := api.Group("/ecommerce", RequireView(access.ViewEcommerce))
		{
			ecom.POST("/logs", s.Ecommerce.Create)
			ecom.GET("/logs", s.Ecommerce.List)
			ecom.GET("/summary", s.Ecommerce.Summary)
		}

		users := api.Group("/users", RequireAdmin())
		{
			users.POST("", s.User.Create)
			users.GET("", s.User.List)
		}
	}
}
