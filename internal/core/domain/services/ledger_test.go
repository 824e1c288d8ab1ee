package services_test

import (
	"testing"

	"hydrohub/internal/core/domain/model/customer"
	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
	"hydrohub/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerOwing(t *testing.T, amount int64) *customer.Customer {
	t.Helper()
	c, err := customer.RestoreCustomer(kernel.NewUUID(), "Rahim Traders", "", kernel.NewMoney(amount))
	require.NoError(t, err)
	return c
}

func TestLedger_ApplyOrder(t *testing.T) {
	ledger := services.NewLedger()

	t.Run("merging_debits_payable_from_balance", func(t *testing.T) {
		c := customerOwing(t, -200)

		change, err := ledger.ApplyOrder(c, kernel.NewMoney(600), true)

		require.NoError(t, err)
		assert.Equal(t, kernel.NewMoney(-200), change.Previous)
		assert.Equal(t, kernel.NewMoney(-800), change.New)
		assert.Equal(t, kernel.NewMoney(-800), c.AccountBalance())
	})

	t.Run("without_merge_balance_is_untouched", func(t *testing.T) {
		c := customerOwing(t, -200)

		change, err := ledger.ApplyOrder(c, kernel.NewMoney(600), false)

		require.NoError(t, err)
		assert.Equal(t, change.Previous, change.New)
		assert.Equal(t, kernel.NewMoney(-200), c.AccountBalance())
	})

	t.Run("zero_payable_is_a_no_op", func(t *testing.T) {
		c := customerOwing(t, -200)

		change, err := ledger.ApplyOrder(c, kernel.MoneyZero, true)

		require.NoError(t, err)
		assert.Equal(t, change.Previous, change.New)
	})

	t.Run("rejects_negative_payable", func(t *testing.T) {
		_, err := ledger.ApplyOrder(customerOwing(t, 0), kernel.NewMoney(-1), true)
		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_customer", func(t *testing.T) {
		_, err := ledger.ApplyOrder(nil, kernel.NewMoney(100), true)
		require.ErrorIs(t, err, customer.ErrCustomerIsNotConstructed)
	})
}

func TestLedger_ReconcileChange(t *testing.T) {
	ledger := services.NewLedger()

	t.Run("add_to_balance_credits_positive_change", func(t *testing.T) {
		c := customerOwing(t, -800)

		change, err := ledger.ReconcileChange(c, kernel.NewMoney(300), order.ReconcileAddToBalance)

		require.NoError(t, err)
		assert.Equal(t, kernel.NewMoney(-800), change.Previous)
		assert.Equal(t, kernel.NewMoney(-500), change.New)
	})

	t.Run("return_cash_leaves_balance_alone", func(t *testing.T) {
		c := customerOwing(t, -800)

		change, err := ledger.ReconcileChange(c, kernel.NewMoney(300), order.ReconcileReturnCash)

		require.NoError(t, err)
		assert.Equal(t, change.Previous, change.New)
		assert.Equal(t, kernel.NewMoney(-800), c.AccountBalance())
	})

	t.Run("negative_change_is_a_no_op", func(t *testing.T) {
		c := customerOwing(t, 0)

		change, err := ledger.ReconcileChange(c, kernel.NewMoney(-134), order.ReconcileAddToBalance)

		require.NoError(t, err)
		assert.Equal(t, change.Previous, change.New)
		assert.Equal(t, kernel.MoneyZero, c.AccountBalance())
	})

	t.Run("zero_change_is_a_no_op", func(t *testing.T) {
		c := customerOwing(t, 0)

		change, err := ledger.ReconcileChange(c, kernel.MoneyZero, order.ReconcileAddToBalance)

		require.NoError(t, err)
		assert.Equal(t, change.Previous, change.New)
	})

	t.Run("rejects_unknown_action", func(t *testing.T) {
		_, err := ledger.ReconcileChange(customerOwing(t, 0), kernel.NewMoney(100), order.ReconcileActionUnknown)
		require.Error(t, err)
	})
}
