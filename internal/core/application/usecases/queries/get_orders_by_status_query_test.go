package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByStatusQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetOrdersByStatusQuery(int(order.OutForDelivery))
	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, query.Status())
}

func TestNewGetOrdersByStatusQuery_InvalidStatus(t *testing.T) {
	for _, ordinal := range []int{0, 8, -3} {
		_, err := queries.NewGetOrdersByStatusQuery(ordinal)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestGetOrdersByStatusQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrdersByStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}
