package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-client/internal/models"
)

func validCoupon() CouponForm {
	return CouponForm{
		Code:            "SUMMER25",
		Type:            models.CouponTypePercentage,
		Value:           25,
		MinimumPurchase: 10,
		StartDate:       time.Now(),
		ExpirationDate:  time.Now().AddDate(0, 1, 0),
		MaxUsagePerUser: 1,
		Status:          models.CouponStatusActive,
	}
}

func TestCouponFormValid(t *testing.T) {
	require.NoError(t, validCoupon().Validate())
}

func TestCouponFormPercentageCannotExceed100(t *testing.T) {
	f := validCoupon()
	f.Value = 150

	err := f.Validate()
	require.Error(t, err)
	assert.Equal(t, "Percentage value cannot exceed 100%", err.Error())
}

func TestCouponFormFixedValueMayExceed100(t *testing.T) {
	f := validCoupon()
	f.Type = models.CouponTypeFixed
	f.Value = 150

	assert.NoError(t, f.Validate())
}

func TestCouponFormCodeLength(t *testing.T) {
	for _, code := range []string{"SHORT", "THISCODEISWAYTOOLONGTOUSE"} {
		f := validCoupon()
		f.Code = code

		err := f.Validate()
		require.Error(t, err, code)
		assert.Equal(t, "Coupon code must be between 6 and 20 characters", err.Error())
	}
}

func TestCouponFormExpirationMustFollowStart(t *testing.T) {
	f := validCoupon()
	f.ExpirationDate = f.StartDate.Add(-time.Hour)

	err := f.Validate()
	require.Error(t, err)
	assert.Equal(t, "Expiration date must be after start date", err.Error())
}

func TestCouponFormModelRoundTrip(t *testing.T) {
	f := validCoupon()
	m := f.Model()

	assert.Equal(t, f.Code, m.Code)
	assert.Equal(t, f.Type, m.Type)
	assert.InDelta(t, f.Value, m.Value, 1e-9)
	assert.Equal(t, f.Status, m.Status)
}

func TestLoginFormRejectsBadEmail(t *testing.T) {
	f := LoginForm{Email: "not-an-email", Password: "secret123"}

	err := f.Validate()
	require.Error(t, err)
	assert.Equal(t, "Email address is not valid", err.Error())
}

func TestLoginFormRejectsShortPassword(t *testing.T) {
	f := LoginForm{Email: "user@example.com", Password: "abc"}

	assert.Error(t, f.Validate())
}

func TestSignupFormRequiresName(t *testing.T) {
	f := SignupForm{Email: "user@example.com", Password: "secret123"}

	err := f.Validate()
	require.Error(t, err)
	assert.Equal(t, "Name is required", err.Error())
}

func TestProductFormRequiresPositivePrice(t *testing.T) {
	f := ProductForm{Title: "Serum", Description: "Brightening", Price: 0}

	assert.Error(t, f.Validate())
}
