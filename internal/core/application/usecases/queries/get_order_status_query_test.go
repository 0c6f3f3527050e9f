package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderStatusQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetOrderStatusQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.OrderID())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrderStatusQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderStatusQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderStatusQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrderStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderStatusQueryIsNotConstructed)
}
