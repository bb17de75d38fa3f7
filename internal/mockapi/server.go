// Package mockapi is an in-memory implementation of the marketplace REST
// contract. It backs the resource-layer tests and the cmd/mockapi dev
// server; it is a fixture, not the real backend.
package mockapi

import (
	"strconv"
	"strings"
	"time"

	"storefront-client/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	fixtureRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mockapi_requests_total",
		Help: "Total number of fixture API requests",
	}, []string{"method", "path", "status"})

	fixtureRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mockapi_request_duration_seconds",
		Help:    "Fixture API request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// Server holds the fixture state and the gin engine serving it.
type Server struct {
	state *state
}

// NewServer creates a fixture server seeded with the default marketplace
// data set (three accounts, a small catalog, a coupon).
func NewServer() *Server {
	return &Server{state: newState()}
}

// Engine builds the gin engine with all routes registered. The engine is an
// http.Handler, so tests mount it on httptest.NewServer directly.
func (s *Server) Engine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "time": time.Now().Unix()})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/auth/login", s.login)
		api.POST("/auth/register", s.register)
		api.GET("/auth/profile", s.authed(s.profile))
		api.PUT("/auth/profile", s.authed(s.updateProfile))

		api.GET("/products", s.listProducts)
		api.GET("/products/seller/:sellerId", s.listSellerProducts)
		api.GET("/products/:id", s.getProduct)
		api.POST("/products", s.authed(s.createProduct))
		api.PUT("/products/:id", s.authed(s.updateProduct))
		api.DELETE("/products/:id", s.authed(s.deleteProduct))

		api.GET("/cart", s.authed(s.getCart))
		api.POST("/cart", s.authed(s.addCartItem))
		api.PUT("/cart", s.authed(s.updateCartItem))
		api.DELETE("/cart", s.authed(s.removeCartItem))
		api.DELETE("/cart/clear", s.authed(s.clearCart))

		api.GET("/orders", s.role(models.RoleAdmin, s.listAllOrders))
		api.GET("/orders/seller", s.role(models.RoleSeller, s.listSellerOrders))
		api.GET("/orders/deleted", s.role(models.RoleAdmin, s.listDeletedOrders))
		api.GET("/orders/:id", s.authed(s.getOrdersByID))
		api.POST("/orders", s.authed(s.createOrder))
		api.PATCH("/orders/:id/status", s.authed(s.updateOrderStatus))
		api.DELETE("/orders/:id/soft", s.role(models.RoleAdmin, s.softDeleteOrder))
		api.PATCH("/orders/:id/restore", s.role(models.RoleAdmin, s.restoreOrder))

		api.GET("/coupons", s.authed(s.listCoupons))
		api.POST("/coupons", s.authed(s.createCoupon))
		api.POST("/coupons/validate", s.authed(s.validateCoupon))
		api.GET("/coupons/:id", s.authed(s.getCoupon))
		api.PUT("/coupons/:id", s.authed(s.updateCoupon))
		api.DELETE("/coupons/:id", s.authed(s.deleteCoupon))

		api.GET("/users", s.role(models.RoleAdmin, s.listUsers))
		api.GET("/users/roles", s.role(models.RoleAdmin, s.listRoles))
		api.GET("/users/me/stats", s.role(models.RoleSeller, s.sellerStats))
		api.PUT("/users/:id/role", s.role(models.RoleAdmin, s.updateUserRole))
		api.DELETE("/users/:id", s.role(models.RoleAdmin, s.deleteUser))

		api.GET("/categories", s.listCategories)
		api.POST("/categories", s.role(models.RoleAdmin, s.createCategory))
		api.PUT("/categories/:id", s.role(models.RoleAdmin, s.updateCategory))
		api.DELETE("/categories/:id", s.role(models.RoleAdmin, s.deleteCategory))
	}

	return router
}

// authed resolves the bearer token to a user and aborts with 401 otherwise.
func (s *Server) authed(h func(*gin.Context, *models.User)) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := s.userFromToken(c)
		if user == nil {
			c.JSON(401, gin.H{"message": "Unauthorized"})
			return
		}
		h(c, user)
	}
}

// role is authed plus an exact role requirement.
func (s *Server) role(required models.Role, h func(*gin.Context, *models.User)) gin.HandlerFunc {
	return s.authed(func(c *gin.Context, user *models.User) {
		if user.Role != required {
			c.JSON(403, gin.H{"message": "Forbidden"})
			return
		}
		h(c, user)
	})
}

func (s *Server) userFromToken(c *gin.Context) *models.User {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}
	return s.state.userForToken(strings.TrimPrefix(header, "Bearer "))
}

func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		fixtureRequestDuration.WithLabelValues(c.Request.Method, c.FullPath()).Observe(duration)
		fixtureRequestsTotal.WithLabelValues(c.Request.Method, c.FullPath(), status).Inc()
	}
}

func dataJSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, gin.H{"data": payload})
}
