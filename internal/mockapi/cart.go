package mockapi

import (
	"github.com/gin-gonic/gin"

	"storefront-client/internal/models"
)

type cartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// buildCart assembles the populated cart for a user: items carry the full
// product, quantities are clamped to stock, lines for vanished products are
// dropped, and total/discount are recomputed. Callers hold the state mutex.
func (s *state) buildCart(userID string) models.Cart {
	lines := s.carts[userID]
	cart := models.Cart{UserID: userID, Items: []models.CartItem{}}
	for productID, quantity := range lines {
		product, ok := s.products[productID]
		if !ok {
			delete(lines, productID)
			continue
		}
		if quantity > product.Stock {
			quantity = product.Stock
			lines[productID] = quantity
		}
		if quantity < 1 {
			delete(lines, productID)
			continue
		}
		cart.Items = append(cart.Items, models.CartItem{Product: *product, Quantity: quantity})
		cart.Total += product.Price * float64(quantity)
	}
	if code := s.cartCoupon[userID]; code != "" {
		if coupon := s.couponByCode(code); coupon != nil {
			cart.Discount = discountFor(coupon, cart.Total)
		}
	}
	return cart
}

func (s *state) couponByCode(code string) *models.Coupon {
	for _, coupon := range s.coupons {
		if coupon.Code == code {
			return coupon
		}
	}
	return nil
}

func discountFor(coupon *models.Coupon, total float64) float64 {
	if coupon.Status != models.CouponStatusActive || total < coupon.MinimumPurchase {
		return 0
	}
	if coupon.Type == models.CouponTypePercentage {
		return total * coupon.Value / 100
	}
	if coupon.Value > total {
		return total
	}
	return coupon.Value
}

func (s *Server) getCart(c *gin.Context, user *models.User) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	dataJSON(c, 200, s.state.buildCart(user.ID))
}

func (s *Server) addCartItem(c *gin.Context, user *models.User) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	product, ok := s.state.products[req.ProductID]
	if !ok {
		c.JSON(404, gin.H{"message": "Product not found"})
		return
	}
	if product.Stock < 1 {
		c.JSON(400, gin.H{"message": "Product is out of stock"})
		return
	}

	if s.state.carts[user.ID] == nil {
		s.state.carts[user.ID] = make(map[string]int)
	}
	s.state.carts[user.ID][req.ProductID] += req.Quantity
	dataJSON(c, 200, s.state.buildCart(user.ID))
}

func (s *Server) updateCartItem(c *gin.Context, user *models.User) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}
	if req.Quantity < 1 {
		c.JSON(400, gin.H{"message": "Quantity must be at least 1"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	lines := s.state.carts[user.ID]
	if _, ok := lines[req.ProductID]; !ok {
		c.JSON(404, gin.H{"message": "Item not in cart"})
		return
	}
	lines[req.ProductID] = req.Quantity
	dataJSON(c, 200, s.state.buildCart(user.ID))
}

func (s *Server) removeCartItem(c *gin.Context, user *models.User) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	delete(s.state.carts[user.ID], req.ProductID)
	dataJSON(c, 200, s.state.buildCart(user.ID))
}

func (s *Server) clearCart(c *gin.Context, user *models.User) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	delete(s.state.carts, user.ID)
	delete(s.state.cartCoupon, user.ID)
	c.JSON(200, gin.H{"data": nil})
}
