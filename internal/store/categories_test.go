package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-client/internal/models"
)

func TestCategoriesUpdateUnknownIDIsNoOp(t *testing.T) {
	s := NewCategoriesSlice()
	s.SetItems([]models.Category{{ID: "c1", Name: "Skincare"}})

	s.Update(models.Category{ID: "ghost", Name: "Ghost"})

	items := s.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "Skincare", items[0].Name)
}

func TestCategoriesRemoveByEntityOrID(t *testing.T) {
	s := NewCategoriesSlice()
	s.SetItems([]models.Category{
		{ID: "c1", Name: "Skincare"},
		{ID: "c2", Name: "Makeup"},
	})

	s.Remove("c1")
	s.Remove(models.Category{ID: "c2"})
	s.Remove(nil)

	assert.Empty(t, s.Items())
}

func TestCategoriesAddAndUpdate(t *testing.T) {
	s := NewCategoriesSlice()

	s.Add(models.Category{ID: "c1", Name: "Skincare"})
	s.Update(models.Category{ID: "c1", Name: "Skin Care"})

	items := s.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "Skin Care", items[0].Name)
}
