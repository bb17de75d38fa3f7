package mockapi

import (
	"time"

	"github.com/gin-gonic/gin"

	"storefront-client/internal/models"
)

func (s *Server) createOrder(c *gin.Context, user *models.User) {
	var req struct {
		Coupons []string `json:"coupons"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	cart := s.state.buildCart(user.ID)
	if len(cart.Items) == 0 {
		c.JSON(400, gin.H{"message": "Cart is empty"})
		return
	}

	var discount float64
	for _, code := range req.Coupons {
		coupon := s.state.couponByCode(code)
		if coupon == nil {
			c.JSON(400, gin.H{"message": "Unknown coupon code"})
			return
		}
		discount += discountFor(coupon, cart.Total)
	}
	finalAmount := cart.Total - discount
	if finalAmount < 0 {
		finalAmount = 0
	}

	order := &models.Order{
		ID:          newID(),
		UserID:      user.ID,
		Status:      models.OrderStatusPending,
		FinalAmount: finalAmount,
		Coupons:     req.Coupons,
		CreatedAt:   time.Now(),
	}
	for _, item := range cart.Items {
		// Price and title freeze at purchase time.
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.Product.ID,
			Title:     item.Product.Title,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
		if product, ok := s.state.products[item.Product.ID]; ok {
			product.Stock -= item.Quantity
			if product.Stock < 0 {
				product.Stock = 0
			}
		}
	}
	s.state.orders[order.ID] = order
	delete(s.state.carts, user.ID)
	delete(s.state.cartCoupon, user.ID)

	c.JSON(201, gin.H{"data": gin.H{"order": order}})
}

// getOrdersByID serves both shapes the real backend multiplexes on this
// path: an order id returns that order, anything else is treated as a user
// id and returns that user's active orders.
func (s *Server) getOrdersByID(c *gin.Context, user *models.User) {
	id := c.Param("id")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if order, ok := s.state.orders[id]; ok {
		if user.Role != models.RoleAdmin && order.UserID != user.ID {
			c.JSON(403, gin.H{"message": "Forbidden"})
			return
		}
		dataJSON(c, 200, order)
		return
	}

	if user.Role != models.RoleAdmin && id != user.ID {
		c.JSON(403, gin.H{"message": "Forbidden"})
		return
	}
	orders := make([]models.Order, 0)
	for _, order := range s.state.orders {
		if order.UserID == id && order.Status != models.OrderStatusDeleted {
			orders = append(orders, *order)
		}
	}
	dataJSON(c, 200, orders)
}

func (s *Server) listAllOrders(c *gin.Context, _ *models.User) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	orders := make([]models.Order, 0, len(s.state.orders))
	for _, order := range s.state.orders {
		if order.Status != models.OrderStatusDeleted {
			orders = append(orders, *order)
		}
	}
	dataJSON(c, 200, orders)
}

func (s *Server) listDeletedOrders(c *gin.Context, _ *models.User) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	orders := make([]models.Order, 0)
	for _, order := range s.state.orders {
		if order.Status == models.OrderStatusDeleted {
			orders = append(orders, *order)
		}
	}
	dataJSON(c, 200, orders)
}

func (s *Server) listSellerOrders(c *gin.Context, user *models.User) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	sellerProducts := make(map[string]bool)
	for _, p := range s.state.products {
		if p.SellerID == user.ID {
			sellerProducts[p.ID] = true
		}
	}

	orders := make([]models.Order, 0)
	for _, order := range s.state.orders {
		if order.Status == models.OrderStatusDeleted {
			continue
		}
		for _, item := range order.Items {
			if sellerProducts[item.ProductID] {
				orders = append(orders, *order)
				break
			}
		}
	}
	dataJSON(c, 200, orders)
}

func (s *Server) updateOrderStatus(c *gin.Context, user *models.User) {
	var req struct {
		NewStatus string `json:"newStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	order, ok := s.state.orders[c.Param("id")]
	if !ok {
		c.JSON(404, gin.H{"message": "Order not found"})
		return
	}
	switch user.Role {
	case models.RoleAdmin, models.RoleSeller:
	default:
		// Owners may only cancel their own pending orders.
		if order.UserID != user.ID || req.NewStatus != models.OrderStatusCancelled {
			c.JSON(403, gin.H{"message": "Forbidden"})
			return
		}
	}
	if !validTransition(order.Status, req.NewStatus) {
		c.JSON(400, gin.H{"message": "Invalid status transition"})
		return
	}
	order.Status = req.NewStatus
	order.UpdatedAt = time.Now()
	dataJSON(c, 200, order)
}

// validTransition enforces one-directional status flow; restore is handled
// by its own endpoint.
func validTransition(from, to string) bool {
	switch from {
	case models.OrderStatusPending:
		return to == models.OrderStatusShipped || to == models.OrderStatusCancelled
	case models.OrderStatusShipped:
		return to == models.OrderStatusCompleted || to == models.OrderStatusCancelled
	default:
		return false
	}
}

func (s *Server) softDeleteOrder(c *gin.Context, _ *models.User) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	order, ok := s.state.orders[c.Param("id")]
	if !ok {
		c.JSON(404, gin.H{"message": "Order not found"})
		return
	}
	order.Status = models.OrderStatusDeleted
	order.UpdatedAt = time.Now()
	c.JSON(200, gin.H{"data": nil})
}

func (s *Server) restoreOrder(c *gin.Context, _ *models.User) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	order, ok := s.state.orders[c.Param("id")]
	if !ok {
		c.JSON(404, gin.H{"message": "Order not found"})
		return
	}
	if order.Status != models.OrderStatusDeleted {
		c.JSON(400, gin.H{"message": "Order is not deleted"})
		return
	}
	order.Status = models.OrderStatusPending
	order.UpdatedAt = time.Now()
	dataJSON(c, 200, order)
}
