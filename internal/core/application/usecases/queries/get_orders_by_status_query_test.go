package queries_test

import (
	"testing"

	"hydrohub/internal/core/application/usecases/queries"
	"hydrohub/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByStatusQuery(t *testing.T) {
	t.Run("accepts_every_lifecycle_status", func(t *testing.T) {
		for _, status := range []order.Status{order.New, order.Assigned, order.Shipped, order.Completed} {
			query, err := queries.NewGetOrdersByStatusQuery(status)
			require.NoError(t, err)
			require.NoError(t, query.Validate())
			assert.Equal(t, status, query.Status())
		}
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := queries.NewGetOrdersByStatusQuery(order.Unknown)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var query queries.GetOrdersByStatusQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOrdersByStatusQueryIsNotConstructed)
	})
}

func TestNewGetAllOrdersQuery(t *testing.T) {
	require.NoError(t, queries.NewGetAllOrdersQuery().Validate())

	var query queries.GetAllOrdersQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetAllOrdersQueryIsNotConstructed)
}
