package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplyDueTransitionsCommand(t *testing.T) {
	cmd := commands.NewApplyDueTransitionsCommand()
	assert.NoError(t, cmd.Validate())
}

func TestApplyDueTransitionsCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ApplyDueTransitionsCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrApplyDueTransitionsCommandIsNotConstructed)
}
