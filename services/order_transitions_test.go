package services

import (
	"errors"
	"testing"

	"github.com/Sanjanabonagiri16/Tabletrack/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestOrderService_Advance_FullLifecycle(t *testing.T) {
	env := newTestEnv(t)
	table := env.tableByNumber(t, 5)

	out := env.mustCreateOrder(t, table.ID,
		CartItemIn{MenuItemID: 1, Qty: 2},
		CartItemIn{MenuItemID: 2, Qty: 1},
	)

	o, err := env.orders.Advance(out.ID, entity.OrderPreparing)
	if err != nil {
		t.Fatalf("pending→preparing error = %v", err)
	}
	if o.Status != entity.OrderPreparing {
		t.Fatalf("status = %q, want %q", o.Status, entity.OrderPreparing)
	}
	if got := env.tableByNumber(t, 5).Status; got != entity.TableOccupied {
		t.Errorf("table released too early, status = %q", got)
	}

	o, err = env.orders.Advance(out.ID, entity.OrderServed)
	if err != nil {
		t.Fatalf("preparing→served error = %v", err)
	}
	if o.Status != entity.OrderServed {
		t.Fatalf("status = %q, want %q", o.Status, entity.OrderServed)
	}
	if got := env.tableByNumber(t, 5).Status; got != entity.TableAvailable {
		t.Errorf("table status after served = %q, want %q", got, entity.TableAvailable)
	}
}

func TestOrderService_Advance_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		target string
	}{
		{"pending cannot skip to served", entity.OrderPending, entity.OrderServed},
		{"pending cannot stay pending", entity.OrderPending, entity.OrderPending},
		{"preparing cannot regress", entity.OrderPreparing, entity.OrderPending},
		{"served is terminal", entity.OrderServed, entity.OrderPending},
		{"served cannot re-serve", entity.OrderServed, entity.OrderServed},
		{"unknown status string", entity.OrderPending, "delivered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			table := env.tableByNumber(t, 1)
			out := env.mustCreateOrder(t, table.ID, CartItemIn{MenuItemID: 1, Qty: 1})

			// Walk the order to the starting state for the case.
			if tt.from != entity.OrderPending {
				if _, err := env.orders.Advance(out.ID, entity.OrderPreparing); err != nil {
					t.Fatalf("setup advance: %v", err)
				}
			}
			if tt.from == entity.OrderServed {
				if _, err := env.orders.Advance(out.ID, entity.OrderServed); err != nil {
					t.Fatalf("setup advance: %v", err)
				}
			}

			var before entity.Order
			env.db.First(&before, out.ID)
			tableBefore := env.tableByNumber(t, 1).Status

			_, err := env.orders.Advance(out.ID, tt.target)
			if !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("Advance(%s→%s) error = %v, want %v", tt.from, tt.target, err, ErrIllegalTransition)
			}

			// Nothing may have moved.
			var after entity.Order
			env.db.First(&after, out.ID)
			if after.Status != before.Status {
				t.Errorf("order status mutated %q → %q on illegal transition", before.Status, after.Status)
			}
			if got := env.tableByNumber(t, 1).Status; got != tableBefore {
				t.Errorf("table status mutated %q → %q on illegal transition", tableBefore, got)
			}
		})
	}
}

func TestOrderService_Advance_UnknownOrder(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.Advance(12345, entity.OrderPreparing)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Advance(unknown) error = %v, want %v", err, ErrNotFound)
	}
}

// A table with several historical orders is only released when the last
// active one is served. The sibling pair is inserted directly because the
// creation policy does not allow two active orders through the front door.
func TestOrderService_Advance_SiblingOrderKeepsTableOccupied(t *testing.T) {
	env := newTestEnv(t)
	table := env.tableByNumber(t, 5)

	first := entity.Order{
		Uid: uuid.NewString(), TableID: table.ID, UserID: 1,
		Total: decimal.NewFromFloat(10.00), Status: entity.OrderPreparing,
	}
	second := entity.Order{
		Uid: uuid.NewString(), TableID: table.ID, UserID: 1,
		Total: decimal.NewFromFloat(5.00), Status: entity.OrderPreparing,
	}
	if err := env.db.Create(&first).Error; err != nil {
		t.Fatalf("insert first: %v", err)
	}
	if err := env.db.Create(&second).Error; err != nil {
		t.Fatalf("insert second: %v", err)
	}
	env.db.Model(&entity.DiningTable{}).Where("id = ?", table.ID).
		Update("status", entity.TableOccupied)

	if _, err := env.orders.Advance(second.ID, entity.OrderServed); err != nil {
		t.Fatalf("serve second order: %v", err)
	}
	if got := env.tableByNumber(t, 5).Status; got != entity.TableOccupied {
		t.Errorf("table released while sibling still preparing, status = %q", got)
	}

	if _, err := env.orders.Advance(first.ID, entity.OrderServed); err != nil {
		t.Fatalf("serve first order: %v", err)
	}
	if got := env.tableByNumber(t, 5).Status; got != entity.TableAvailable {
		t.Errorf("table status after last active order served = %q, want %q", got, entity.TableAvailable)
	}
}
