package mockapi

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-client/internal/models"
)

func (s *Server) listProducts(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	products := make([]models.Product, 0, len(s.state.products))
	for _, p := range s.state.products {
		products = append(products, *p)
	}
	dataJSON(c, 200, products)
}

func (s *Server) getProduct(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	product, ok := s.state.products[c.Param("id")]
	if !ok {
		c.JSON(404, gin.H{"message": "Product not found"})
		return
	}
	dataJSON(c, 200, product)
}

func (s *Server) listSellerProducts(c *gin.Context) {
	sellerID := c.Param("sellerId")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	products := make([]models.Product, 0)
	for _, p := range s.state.products {
		if p.SellerID == sellerID {
			products = append(products, *p)
		}
	}
	dataJSON(c, 200, products)
}

// productFromForm reads the multipart fields the real backend accepts.
func productFromForm(c *gin.Context, into *models.Product) {
	if v := c.PostForm("title"); v != "" {
		into.Title = v
	}
	if v := c.PostForm("description"); v != "" {
		into.Description = v
	}
	if v := c.PostForm("price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			into.Price = price
		}
	}
	if v := c.PostForm("stock"); v != "" {
		if stock, err := strconv.Atoi(v); err == nil {
			into.Stock = stock
		}
	}
	if v := c.PostForm("published"); v != "" {
		into.Published = v == "true"
	}
	if file, err := c.FormFile("image"); err == nil {
		into.ImagePath = "/uploads/" + file.Filename
	}
	if file, err := c.FormFile("image2"); err == nil {
		into.ImagePath2 = "/uploads/" + file.Filename
	}
}

func (s *Server) createProduct(c *gin.Context, user *models.User) {
	if user.Role != models.RoleSeller && user.Role != models.RoleAdmin {
		c.JSON(403, gin.H{"message": "Forbidden"})
		return
	}

	product := models.Product{ID: newID(), SellerID: user.ID, CreatedAt: time.Now()}
	productFromForm(c, &product)
	if product.Title == "" || product.Price <= 0 {
		c.JSON(400, gin.H{"message": "Title and positive price are required"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.products[product.ID] = &product
	dataJSON(c, 201, product)
}

func (s *Server) updateProduct(c *gin.Context, user *models.User) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	product, ok := s.state.products[c.Param("id")]
	if !ok {
		c.JSON(404, gin.H{"message": "Product not found"})
		return
	}
	if user.Role != models.RoleAdmin && product.SellerID != user.ID {
		c.JSON(403, gin.H{"message": "Forbidden"})
		return
	}
	productFromForm(c, product)
	product.UpdatedAt = time.Now()
	dataJSON(c, 200, product)
}

func (s *Server) deleteProduct(c *gin.Context, user *models.User) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	product, ok := s.state.products[c.Param("id")]
	if !ok {
		c.JSON(404, gin.H{"message": "Product not found"})
		return
	}
	if user.Role != models.RoleAdmin && product.SellerID != user.ID {
		c.JSON(403, gin.H{"message": "Forbidden"})
		return
	}
	delete(s.state.products, product.ID)
	c.JSON(200, gin.H{"data": nil})
}

func (s *Server) listCategories(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	categories := make([]models.Category, 0, len(s.state.categories))
	for _, cat := range s.state.categories {
		categories = append(categories, *cat)
	}
	dataJSON(c, 200, categories)
}

func (s *Server) createCategory(c *gin.Context, _ *models.User) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}
	category.ID = newID()

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.categories[category.ID] = &category
	dataJSON(c, 201, category)
}

func (s *Server) updateCategory(c *gin.Context, _ *models.User) {
	var req models.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	category, ok := s.state.categories[c.Param("id")]
	if !ok {
		c.JSON(404, gin.H{"message": "Category not found"})
		return
	}
	if req.Name != "" {
		category.Name = req.Name
	}
	category.Description = req.Description
	dataJSON(c, 200, category)
}

func (s *Server) deleteCategory(c *gin.Context, _ *models.User) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.categories[c.Param("id")]; !ok {
		c.JSON(404, gin.H{"message": "Category not found"})
		return
	}
	delete(s.state.categories, c.Param("id"))
	c.JSON(200, gin.H{"data": nil})
}
