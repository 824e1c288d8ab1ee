package guard_test

import (
	"errors"
	"testing"

	"hydrohub/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// by domain objects to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Product struct {
		id    string
		name  string
		price int64
		guard guard.ConstructorGuard
	}

	var errProductNotConstructed = errors.New("Product must be created via NewProduct")

	newProduct := func(id, name string, price int64) (Product, error) {
		if id == "" {
			return Product{}, errors.New("product ID is required")
		}
		if name == "" {
			return Product{}, errors.New("product name is required")
		}
		if price < 0 {
			return Product{}, errors.New("product price cannot be negative")
		}
		return Product{
			id:    id,
			name:  name,
			price: price,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateProduct := func(p Product) error {
		return p.guard.Validate(errProductNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		product, err := newProduct("wb-19l", "19L Water Bottle", 30000)

		require.NoError(t, err)
		require.NoError(t, validateProduct(product))
		assert.Equal(t, "wb-19l", product.id)
		assert.Equal(t, int64(30000), product.price)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var product Product // zero value

		err := validateProduct(product)

		require.Error(t, err)
		assert.Equal(t, errProductNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newProduct("wb-19l", "19L Water Bottle", -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price cannot be negative")

		_, err = newProduct("", "19L Water Bottle", 30000)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ID is required")
	})
}

// TestConstructorGuardConcurrency verifies that a constructed guard is safe
// for concurrent validation.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 1000 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func TestConstructorGuardCopySemantics(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		guardCopy := g

		require.NoError(t, g.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
