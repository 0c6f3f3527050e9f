package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRestartProgressionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t)
	cmd, _ := commands.NewRestartProgressionCommand(o.ID())

	var rescheduled []order.ScheduledTransition
	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockStatusJobRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("StatusJobRepository").Return(jobRepo).Once(),
		jobRepo.On("DeleteForOrder", mock.Anything, o.ID()).Return(nil).Once(),
		jobRepo.On("Add", mock.Anything, mock.AnythingOfType("[]order.ScheduledTransition")).
			Run(func(args mock.Arguments) {
				rescheduled = args.Get(1).([]order.ScheduledTransition)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestartProgressionCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, updated.Status())

	// The re-acceptance schedule starts past ACCEPTED.
	require.Len(t, rescheduled, 4)
	targets := make([]order.Status, 0, len(rescheduled))
	for _, tr := range rescheduled {
		targets = append(targets, tr.Target())
	}
	assert.Equal(t, []order.Status{
		order.Preparing, order.Prepared, order.OutForDelivery, order.Delivered,
	}, targets)

	orderRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRestartProgressionCommandHandler_Handle_TerminalOrderRejected(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t)
	require.NoError(t, o.ChangeStatus(order.Delivered, "", o.CreatedAt()))
	cmd, _ := commands.NewRestartProgressionCommand(o.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestartProgressionCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRestartProgressionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RestartProgressionCommand{} // not constructed properly
	h := commands.NewRestartProgressionCommandHandler(new(MockUoWFactory))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
