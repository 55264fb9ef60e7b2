package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetail(t *testing.T) {
	t.Run("should create valid detail", func(t *testing.T) {
		detail, err := order.NewDetail(7, 3, 1990)

		require.NoError(t, err)
		require.NoError(t, detail.Validate())
		assert.Equal(t, int64(7), detail.ProductID())
		assert.Equal(t, 3, detail.Quantity())
		assert.Equal(t, int64(1990), detail.UnitPrice())
	})

	t.Run("should accept zero unit price", func(t *testing.T) {
		detail, err := order.NewDetail(7, 1, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), detail.UnitPrice())
	})

	t.Run("should fail with non-positive product id", func(t *testing.T) {
		for _, productID := range []int64{0, -1} {
			detail, err := order.NewDetail(productID, 1, 100)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "productId is invalid")
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.Detail{}, detail)
		}
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -3} {
			detail, err := order.NewDetail(7, quantity, 100)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "quantity is invalid")
			assert.Equal(t, order.Detail{}, detail)
		}
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		detail, err := order.NewDetail(7, 1, -50)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unitPrice is invalid")
		assert.Contains(t, err.Error(), "-50 is less than 0")
		assert.Equal(t, order.Detail{}, detail)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := order.NewDetail(0, 0, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productId is invalid")
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "unitPrice is invalid")
	})
}

func TestDetail_Validate(t *testing.T) {
	t.Run("should fail for zero value detail", func(t *testing.T) {
		var detail order.Detail

		err := detail.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrDetailIsNotConstructed, err)
	})
}

func TestDetail_Subtotal(t *testing.T) {
	testCases := []struct {
		name      string
		quantity  int
		unitPrice int64
		expected  int64
	}{
		{"single unit", 1, 1990, 1990},
		{"multiple units", 3, 1990, 5970},
		{"free item", 5, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			detail, err := order.NewDetail(1, tc.quantity, tc.unitPrice)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, detail.Subtotal())
		})
	}
}
