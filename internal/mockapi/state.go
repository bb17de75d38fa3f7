package mockapi

import (
	"sync"
	"time"

	"storefront-client/internal/models"

	"github.com/google/uuid"
)

// state is the fixture data set behind the mock API. Writes are serialized
// on one mutex; the fixture favors simplicity over throughput.
type state struct {
	mu sync.Mutex

	users      map[string]*models.User
	passwords  map[string]string // email -> password
	emails     map[string]string // email -> user id
	tokens     map[string]string // token -> user id
	products   map[string]*models.Product
	carts      map[string]map[string]int // user id -> product id -> quantity
	cartCoupon map[string]string         // user id -> applied coupon code
	orders     map[string]*models.Order
	coupons    map[string]*models.Coupon
	categories map[string]*models.Category
}

func newState() *state {
	s := &state{
		users:      make(map[string]*models.User),
		passwords:  make(map[string]string),
		emails:     make(map[string]string),
		tokens:     make(map[string]string),
		products:   make(map[string]*models.Product),
		carts:      make(map[string]map[string]int),
		cartCoupon: make(map[string]string),
		orders:     make(map[string]*models.Order),
		coupons:    make(map[string]*models.Coupon),
		categories: make(map[string]*models.Category),
	}
	s.seed()
	return s
}

// Seed accounts. The password for every seeded account is "secret123".
func (s *state) seed() {
	admin := &models.User{ID: newID(), Name: "Ava Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	seller := &models.User{ID: newID(), Name: "Sam Seller", Email: "seller@example.com", Role: models.RoleSeller}
	client := &models.User{ID: newID(), Name: "Cleo Client", Email: "client@example.com", Role: models.RoleUser}
	for _, u := range []*models.User{admin, seller, client} {
		s.users[u.ID] = u
		s.emails[u.Email] = u.ID
		s.passwords[u.Email] = "secret123"
	}

	skincare := &models.Category{ID: newID(), Name: "Skincare"}
	makeup := &models.Category{ID: newID(), Name: "Makeup"}
	s.categories[skincare.ID] = skincare
	s.categories[makeup.ID] = makeup

	seedProducts := []*models.Product{
		{ID: newID(), Title: "Rose Glow Serum", Description: "Vitamin C brightening serum", Price: 29.99, Stock: 40, Published: true, SellerID: seller.ID, Categories: []string{skincare.ID}},
		{ID: newID(), Title: "Velvet Matte Lipstick", Description: "Long-wear matte finish", Price: 18.50, Stock: 25, Published: true, SellerID: seller.ID, Categories: []string{makeup.ID}},
		{ID: newID(), Title: "Hydra Night Cream", Description: "Overnight repair cream", Price: 54.00, Stock: 12, Published: true, SellerID: seller.ID, Categories: []string{skincare.ID}},
	}
	for _, p := range seedProducts {
		p.CreatedAt = time.Now()
		s.products[p.ID] = p
	}

	welcome := &models.Coupon{
		ID:              newID(),
		Code:            "WELCOME10",
		Type:            models.CouponTypePercentage,
		Value:           10,
		MinimumPurchase: 20,
		StartDate:       time.Now().Add(-24 * time.Hour),
		ExpirationDate:  time.Now().Add(30 * 24 * time.Hour),
		MaxUsagePerUser: 1,
		Status:          models.CouponStatusActive,
	}
	s.coupons[welcome.ID] = welcome
}

func (s *state) userForToken(token string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.tokens[token]
	if !ok {
		return nil
	}
	user, ok := s.users[id]
	if !ok {
		return nil
	}
	u := *user
	return &u
}

func (s *state) issueToken(userID string) string {
	token := "tok-" + uuid.New().String()
	s.tokens[token] = userID
	return token
}

func newID() string {
	return uuid.New().String()
}
