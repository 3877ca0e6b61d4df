package commands_test

import (
	"testing"

	"orderintake/internal/core/application/usecases/commands"
	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("123 Main St", "Springfield", "IL", "62704")
	require.NoError(t, err)
	return address
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Widget", 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func TestNewSubmitOrderCommand_Valid(t *testing.T) {
	vendorID := kernel.NewUUID()
	items := testItems(t)

	cmd, err := commands.NewSubmitOrderCommand("ORD-001", vendorID, order.PriorityHigh, testAddress(t), items)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, "ORD-001", cmd.OrderID())
	require.Equal(t, vendorID, cmd.VendorID())
	require.Equal(t, order.PriorityHigh, cmd.Priority())
	require.Len(t, cmd.Items(), 1)
}

func TestNewSubmitOrderCommand_Invalid(t *testing.T) {
	validAddress := testAddress(t)
	validItems := testItems(t)

	tests := []struct {
		name     string
		orderID  string
		vendorID kernel.UUID
		priority order.Priority
		address  order.Address
		items    []order.Item
	}{
		{"blank order id", "  ", kernel.NewUUID(), order.PriorityLow, validAddress, validItems},
		{"empty vendor id", "ORD-001", kernel.UUID{}, order.PriorityLow, validAddress, validItems},
		{"invalid priority", "ORD-001", kernel.NewUUID(), order.Priority("URGENT"), validAddress, validItems},
		{"unconstructed address", "ORD-001", kernel.NewUUID(), order.PriorityLow, order.Address{}, validItems},
		{"no items", "ORD-001", kernel.NewUUID(), order.PriorityLow, validAddress, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewSubmitOrderCommand(tt.orderID, tt.vendorID, tt.priority, tt.address, tt.items)
			require.Error(t, err)
		})
	}
}

func TestSubmitOrderCommand_ItemsReturnsCopy(t *testing.T) {
	cmd, err := commands.NewSubmitOrderCommand(
		"ORD-001", kernel.NewUUID(), order.PriorityLow, testAddress(t), testItems(t))
	require.NoError(t, err)

	items := cmd.Items()
	items[0] = order.Item{}
	require.Equal(t, "Widget", cmd.Items()[0].Name())
}

func TestSubmitOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SubmitOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrSubmitOrderCommandIsNotConstructed)
}
