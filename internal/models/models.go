package models

import "time"

// Role is the single role attached to a user account. Each role grants a
// disjoint dashboard and permission set.
type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Order statuses. Transitions are one-directional except restore-from-deleted.
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
	OrderStatusDeleted   = "deleted"
)

// Coupon types and statuses.
const (
	CouponTypePercentage = "percentage"
	CouponTypeFixed      = "fixed"

	CouponStatusActive   = "active"
	CouponStatusInactive = "inactive"
)

// User is the denormalized account record returned by the auth endpoints and
// persisted alongside the bearer token.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Product is a seller-owned catalog entry.
type Product struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Categories  []string  `json:"categories,omitempty"`
	ImagePath   string    `json:"imagePath,omitempty"`
	ImagePath2  string    `json:"imagePath2,omitempty"`
	Published   bool      `json:"published"`
	SellerID    string    `json:"sellerId,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// CartItem is a cart line. The server populates the product reference, so
// price and stock limit ride along denormalized.
type CartItem struct {
	Product  Product `json:"productId"`
	Quantity int     `json:"quantity"`
}

// Cart is the authenticated user's cart as returned by GET /cart. Total and
// discount are derived server-side; the local store recomputes total from
// items and never trusts it as an independent field.
type Cart struct {
	ID       string     `json:"_id,omitempty"`
	UserID   string     `json:"userId,omitempty"`
	Items    []CartItem `json:"items"`
	Total    float64    `json:"total"`
	Discount float64    `json:"discount"`
}

// OrderItem freezes product, price and title at purchase time. A later
// product deletion must not invalidate it.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is created from a cart snapshot plus optional coupon codes. Items
// are immutable once created.
type Order struct {
	ID          string      `json:"_id"`
	UserID      string      `json:"userId"`
	Items       []OrderItem `json:"items"`
	Status      string      `json:"status"`
	FinalAmount float64     `json:"finalAmount"`
	Coupons     []string    `json:"coupons,omitempty"`
	CreatedAt   time.Time   `json:"createdAt,omitempty"`
	UpdatedAt   time.Time   `json:"updatedAt,omitempty"`
}

// Coupon is an admin/seller-created discount rule.
type Coupon struct {
	ID              string    `json:"_id"`
	Code            string    `json:"code"`
	Type            string    `json:"type"`
	Value           float64   `json:"value"`
	MinimumPurchase float64   `json:"minimumPurchase"`
	StartDate       time.Time `json:"startDate"`
	ExpirationDate  time.Time `json:"expirationDate"`
	MaxUsage        int       `json:"maxUsage,omitempty"`
	MaxUsagePerUser int       `json:"maxUsagePerUser"`
	Status          string    `json:"status"`
}

// Category groups products.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SellerStats is the aggregate returned by GET /users/me/stats.
type SellerStats struct {
	ProductCount int     `json:"productCount"`
	OrderCount   int     `json:"orderCount"`
	Revenue      float64 `json:"revenue"`
}

// UserPage is one page of the paginated admin user listing.
type UserPage struct {
	Users      []User `json:"users"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Total      int    `json:"total"`
}

// AuthResponse is the shape of POST /auth/login and /auth/register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
