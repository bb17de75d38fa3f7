// Package forms validates user input client-side before any network call is
// issued. This is redundant with, and never a substitute for, server-side
// validation.
package forms

import (
	"errors"
	"fmt"
	"time"

	"storefront-client/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CouponForm carries the coupon create/edit fields.
type CouponForm struct {
	Code            string  `validate:"required,min=6,max=20"`
	Type            string  `validate:"required,oneof=percentage fixed"`
	Value           float64 `validate:"required,gt=0"`
	MinimumPurchase float64 `validate:"gte=0"`
	StartDate       time.Time
	ExpirationDate  time.Time
	MaxUsage        int     `validate:"gte=0"`
	MaxUsagePerUser int     `validate:"gte=1"`
	Status          string  `validate:"required,oneof=active inactive"`
}

// Validate checks the coupon fields. Messages match the ones surfaced in
// the dashboards.
func (f CouponForm) Validate() error {
	if len(f.Code) < 6 || len(f.Code) > 20 {
		return errors.New("Coupon code must be between 6 and 20 characters")
	}
	if f.Type == models.CouponTypePercentage && f.Value > 100 {
		return errors.New("Percentage value cannot exceed 100%")
	}
	if !f.ExpirationDate.After(f.StartDate) {
		return errors.New("Expiration date must be after start date")
	}
	if err := validate.Struct(f); err != nil {
		return friendly(err)
	}
	return nil
}

// Model converts the form to the wire entity.
func (f CouponForm) Model() models.Coupon {
	return models.Coupon{
		Code:            f.Code,
		Type:            f.Type,
		Value:           f.Value,
		MinimumPurchase: f.MinimumPurchase,
		StartDate:       f.StartDate,
		ExpirationDate:  f.ExpirationDate,
		MaxUsage:        f.MaxUsage,
		MaxUsagePerUser: f.MaxUsagePerUser,
		Status:          f.Status,
	}
}

// ProductForm carries the product create/edit fields.
type ProductForm struct {
	Title       string  `validate:"required"`
	Description string  `validate:"required"`
	Price       float64 `validate:"required,gt=0"`
	Stock       int     `validate:"gte=0"`
}

// Validate checks the product fields.
func (f ProductForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return friendly(err)
	}
	return nil
}

// LoginForm carries the credentials fields.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Validate checks the credential fields.
func (f LoginForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return friendly(err)
	}
	return nil
}

// SignupForm carries the registration fields.
type SignupForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Validate checks the registration fields.
func (f SignupForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return friendly(err)
	}
	return nil
}

// friendly rewrites the first validator error into a field-level message.
func friendly(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s is required", e.Field())
		case "email":
			return errors.New("Email address is not valid")
		case "min":
			return fmt.Errorf("%s is too short", e.Field())
		case "max":
			return fmt.Errorf("%s is too long", e.Field())
		case "gt", "gte":
			return fmt.Errorf("%s is out of range", e.Field())
		case "oneof":
			return fmt.Errorf("%s has an unsupported value", e.Field())
		}
		return fmt.Errorf("%s is invalid", e.Field())
	}
	return err
}
