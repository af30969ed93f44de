package tests

import (
	"sync"
	"testing"

	"delivery-storefront/storefront/internal/domain"
	"delivery-storefront/storefront/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_AddOrderPrependsAndSetsCurrent(t *testing.T) {
	ledger := store.NewLedger()
	ledger.AddOrder(fixtureOrder("o1", domain.OrderPending))
	ledger.AddOrder(fixtureOrder("o2", domain.OrderPending))

	orders := ledger.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[0].ID)

	current, ok := ledger.CurrentOrder()
	require.True(t, ok)
	assert.Equal(t, "o2", current.ID)
}

func TestLedger_UpdateOrderStatusTouchesCurrentPointer(t *testing.T) {
	ledger := store.NewLedger()
	ledger.AddOrder(fixtureOrder("o1", domain.OrderPending))

	ledger.UpdateOrderStatus("o1", domain.OrderPreparing)

	order, _ := ledger.OrderByID("o1")
	assert.Equal(t, domain.OrderPreparing, order.Status)
	current, _ := ledger.CurrentOrder()
	assert.Equal(t, domain.OrderPreparing, current.Status)
}

func TestLedger_CancelledStatusClearsActiveDelivery(t *testing.T) {
	ledger := store.NewLedger()
	ledger.AddOrder(fixtureOrder("o1", domain.OrderPending))
	ledger.AddOrder(fixtureOrder("o2", domain.OrderPending))
	delivery := fixtureDelivery("d1", "o1")
	ledger.SetActiveDelivery(&delivery)

	// Cancelling a different order still drops the tracked delivery.
	ledger.UpdateOrderStatus("o2", domain.OrderCancelled)

	_, ok := ledger.ActiveDelivery()
	assert.False(t, ok)
}

func TestLedger_CancelOrderGuard(t *testing.T) {
	tests := []struct {
		name      string
		status    domain.OrderStatus
		cancelled bool
	}{
		{"pending_cancellable", domain.OrderPending, true},
		{"confirmed_cancellable", domain.OrderConfirmed, true},
		{"preparing_rejected", domain.OrderPreparing, false},
		{"delivering_rejected", domain.OrderDelivering, false},
		{"delivered_rejected", domain.OrderDelivered, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ledger := store.NewLedger()
			ledger.AddOrder(fixtureOrder("o1", testCase.status))

			ledger.CancelOrder("o1")

			order, _ := ledger.OrderByID("o1")
			if testCase.cancelled {
				assert.Equal(t, domain.OrderCancelled, order.Status)
				assert.Empty(t, ledger.LastError())
			} else {
				assert.Equal(t, testCase.status, order.Status)
				assert.Equal(t, "order can no longer be cancelled", ledger.LastError())
			}
		})
	}
}

// Whichever side wins the race, the outcome must match one of the two serial
// orderings. Cancel-first is overwritten to delivering; update-first is
// rejected by the guard. Either way the order ends delivering, never
// cancelled from under a delivering status.
func TestLedger_ConcurrentCancelAndStatusUpdateSerialize(t *testing.T) {
	for i := 0; i < 200; i++ {
		ledger := store.NewLedger()
		ledger.AddOrder(fixtureOrder("o1", domain.OrderConfirmed))

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			ledger.UpdateOrderStatus("o1", domain.OrderDelivering)
		}()
		go func() {
			defer wg.Done()
			ledger.CancelOrder("o1")
		}()
		wg.Wait()

		order, ok := ledger.OrderByID("o1")
		require.True(t, ok)
		require.Equal(t, domain.OrderDelivering, order.Status)
	}
}

func TestLedger_CancelUnknownOrderSetsError(t *testing.T) {
	ledger := store.NewLedger()
	ledger.CancelOrder("missing")
	assert.NotEmpty(t, ledger.LastError())

	ledger.ClearError()
	assert.Empty(t, ledger.LastError())
}

func TestLedger_ActiveOrdersExcludesTerminal(t *testing.T) {
	ledger := store.NewLedger()
	ledger.AddOrder(fixtureOrder("o1", domain.OrderDelivered))
	ledger.AddOrder(fixtureOrder("o2", domain.OrderDelivering))
	ledger.AddOrder(fixtureOrder("o3", domain.OrderCancelled))
	ledger.AddOrder(fixtureOrder("o4", domain.OrderPending))

	active := ledger.ActiveOrders()
	require.Len(t, active, 2)
	assert.Equal(t, "o4", active[0].ID)
	assert.Equal(t, "o2", active[1].ID)
}

func TestLedger_OrdersByCustomer(t *testing.T) {
	ledger := store.NewLedger()
	mine := fixtureOrder("o1", domain.OrderPending)
	other := fixtureOrder("o2", domain.OrderPending)
	other.Customer.ID = "customer_2"
	ledger.AddOrder(mine)
	ledger.AddOrder(other)

	orders := ledger.OrdersByCustomer("customer_1")
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
}

func TestLedger_SetDeliveryStateMergesOnlyActiveID(t *testing.T) {
	ledger := store.NewLedger()
	delivery := fixtureDelivery("d1", "o1")
	ledger.SetActiveDelivery(&delivery)

	assert.False(t, ledger.SetDeliveryState("d2", domain.DeliveryArrived, nil))

	location := domain.LatLng{Lat: 6.5, Lng: 2.7}
	assert.True(t, ledger.SetDeliveryState("d1", domain.DeliveryDelivering, &location))

	got, ok := ledger.ActiveDelivery()
	require.True(t, ok)
	assert.Equal(t, domain.DeliveryDelivering, got.Status)
	assert.Equal(t, location, got.CurrentLocation)
}

func TestLedger_SetDeliveryLocationKeepsStatus(t *testing.T) {
	ledger := store.NewLedger()
	delivery := fixtureDelivery("d1", "o1")
	delivery.Status = domain.DeliveryDelivering
	ledger.SetActiveDelivery(&delivery)

	assert.True(t, ledger.SetDeliveryLocation("d1", domain.LatLng{Lat: 6.51, Lng: 2.71}))

	got, _ := ledger.ActiveDelivery()
	assert.Equal(t, domain.DeliveryDelivering, got.Status)
	assert.Equal(t, 6.51, got.CurrentLocation.Lat)
}
