package mockapi

import (
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-client/internal/models"
)

const usersPageSize = 10

func (s *Server) listCoupons(c *gin.Context, _ *models.User) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	coupons := make([]models.Coupon, 0, len(s.state.coupons))
	for _, coupon := range s.state.coupons {
		coupons = append(coupons, *coupon)
	}
	dataJSON(c, 200, coupons)
}

func (s *Server) getCoupon(c *gin.Context, _ *models.User) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	coupon, ok := s.state.coupons[c.Param("id")]
	if !ok {
		c.JSON(404, gin.H{"message": "Coupon not found"})
		return
	}
	dataJSON(c, 200, coupon)
}

func (s *Server) createCoupon(c *gin.Context, user *models.User) {
	if user.Role != models.RoleSeller && user.Role != models.RoleAdmin {
		c.JSON(403, gin.H{"message": "Forbidden"})
		return
	}
	var coupon models.Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}
	if len(coupon.Code) < 6 || len(coupon.Code) > 20 {
		c.JSON(400, gin.H{"message": "Coupon code must be between 6 and 20 characters"})
		return
	}
	if coupon.Type == models.CouponTypePercentage && coupon.Value > 100 {
		c.JSON(400, gin.H{"message": "Percentage value cannot exceed 100"})
		return
	}
	if !coupon.ExpirationDate.After(coupon.StartDate) {
		c.JSON(400, gin.H{"message": "Expiration date must be after start date"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.state.couponByCode(coupon.Code) != nil {
		c.JSON(409, gin.H{"message": "Coupon code already exists"})
		return
	}
	coupon.ID = newID()
	s.state.coupons[coupon.ID] = &coupon
	dataJSON(c, 201, coupon)
}

func (s *Server) updateCoupon(c *gin.Context, user *models.User) {
	if user.Role != models.RoleSeller && user.Role != models.RoleAdmin {
		c.JSON(403, gin.H{"message": "Forbidden"})
		return
	}
	var req models.Coupon
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	coupon, ok := s.state.coupons[c.Param("id")]
	if !ok {
		c.JSON(404, gin.H{"message": "Coupon not found"})
		return
	}
	req.ID = coupon.ID
	*coupon = req
	dataJSON(c, 200, coupon)
}

func (s *Server) deleteCoupon(c *gin.Context, user *models.User) {
	if user.Role != models.RoleSeller && user.Role != models.RoleAdmin {
		c.JSON(403, gin.H{"message": "Forbidden"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.coupons[c.Param("id")]; !ok {
		c.JSON(404, gin.H{"message": "Coupon not found"})
		return
	}
	delete(s.state.coupons, c.Param("id"))
	c.JSON(200, gin.H{"data": nil})
}

func (s *Server) validateCoupon(c *gin.Context, user *models.User) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	coupon := s.state.couponByCode(req.Code)
	if coupon == nil || coupon.Status != models.CouponStatusActive {
		c.JSON(400, gin.H{"message": "Coupon is not valid"})
		return
	}
	now := time.Now()
	if now.Before(coupon.StartDate) || now.After(coupon.ExpirationDate) {
		c.JSON(400, gin.H{"message": "Coupon is not valid"})
		return
	}
	s.state.cartCoupon[user.ID] = coupon.Code
	dataJSON(c, 200, coupon)
}

func (s *Server) listUsers(c *gin.Context, _ *models.User) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	users := make([]models.User, 0, len(s.state.users))
	for _, u := range s.state.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })

	total := len(users)
	totalPages := (total + usersPageSize - 1) / usersPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	start := (page - 1) * usersPageSize
	if start > total {
		start = total
	}
	end := start + usersPageSize
	if end > total {
		end = total
	}

	dataJSON(c, 200, models.UserPage{
		Users:      users[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	})
}

func (s *Server) listRoles(c *gin.Context, _ *models.User) {
	dataJSON(c, 200, []models.Role{models.RoleUser, models.RoleSeller, models.RoleAdmin})
}

func (s *Server) updateUserRole(c *gin.Context, _ *models.User) {
	var req struct {
		Role models.Role `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	user, ok := s.state.users[c.Param("id")]
	if !ok {
		c.JSON(404, gin.H{"message": "User not found"})
		return
	}
	user.Role = req.Role
	dataJSON(c, 200, user)
}

func (s *Server) deleteUser(c *gin.Context, _ *models.User) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	user, ok := s.state.users[c.Param("id")]
	if !ok {
		c.JSON(404, gin.H{"message": "User not found"})
		return
	}
	delete(s.state.users, user.ID)
	delete(s.state.emails, user.Email)
	delete(s.state.passwords, user.Email)
	c.JSON(200, gin.H{"data": nil})
}

func (s *Server) sellerStats(c *gin.Context, user *models.User) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	stats := models.SellerStats{}
	sellerProducts := make(map[string]bool)
	for _, p := range s.state.products {
		if p.SellerID == user.ID {
			sellerProducts[p.ID] = true
			stats.ProductCount++
		}
	}
	for _, order := range s.state.orders {
		if order.Status == models.OrderStatusDeleted || order.Status == models.OrderStatusCancelled {
			continue
		}
		counted := false
		for _, item := range order.Items {
			if sellerProducts[item.ProductID] {
				stats.Revenue += item.Price * float64(item.Quantity)
				counted = true
			}
		}
		if counted {
			stats.OrderCount++
		}
	}
	dataJSON(c, 200, stats)
}
