package commands_test

import (
	"strings"
	"testing"

	"flowerorder/internal/core/application/usecases/commands"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	memberID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(memberID, validDraft(), nil)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, memberID, cmd.MemberID())
	require.NoError(t, cmd.OrderID().Validate())
	assert.Nil(t, cmd.Image())
}

func TestNewCreateOrderCommand_InvalidMemberID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, validDraft(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_ImageWithoutContentIsIgnored(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), validDraft(), &ports.Upload{Name: "x.png"})
	require.NoError(t, err)
	assert.Nil(t, cmd.Image())
}

func TestNewCreateOrderCommand_KeepsImage(t *testing.T) {
	upload := &ports.Upload{Name: "rose.png", ContentType: "image/png", Size: 4, Content: strings.NewReader("data")}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), validDraft(), upload)
	require.NoError(t, err)
	require.NotNil(t, cmd.Image())
	assert.Equal(t, "rose.png", cmd.Image().Name)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
