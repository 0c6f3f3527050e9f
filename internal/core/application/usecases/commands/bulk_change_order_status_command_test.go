package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBulkChangeOrderStatusCommand_ValidInput(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	cmd, err := commands.NewBulkChangeOrderStatusCommand(ids, int(order.Delivered), "")
	require.NoError(t, err)
	assert.Equal(t, ids, cmd.OrderIDs())
	assert.Equal(t, order.Delivered, cmd.Status())
}

func TestNewBulkChangeOrderStatusCommand_EmptyIDs(t *testing.T) {
	_, err := commands.NewBulkChangeOrderStatusCommand(nil, int(order.Delivered), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewBulkChangeOrderStatusCommand_InvalidID(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID(), {}}
	_, err := commands.NewBulkChangeOrderStatusCommand(ids, int(order.Delivered), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewBulkChangeOrderStatusCommand_InvalidStatus(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID()}
	_, err := commands.NewBulkChangeOrderStatusCommand(ids, 0, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestBulkChangeOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.BulkChangeOrderStatusCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrBulkChangeOrderStatusCommandIsNotConstructed)
}
