package services

import (
	"errors"

	"github.com/Sanjanabonagiri16/Tabletrack/entity"

	"gorm.io/gorm"
)

// The order lifecycle is strictly linear: pending → preparing → served.
// nextStatus is the single source of truth for what each state may become.
var nextStatus = map[string]string{
	entity.OrderPending:   entity.OrderPreparing,
	entity.OrderPreparing: entity.OrderServed,
}

// Advance moves an order to target, which must be exactly one step forward.
// The write is a guarded from→to UPDATE, so a concurrent transition on the
// same order makes one of the two lose cleanly instead of double-applying.
// Reaching served releases the table, but only after re-querying for other
// active orders on it inside the same transaction.
func (s *OrderService) Advance(orderID uint, target string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(target) {
		return nil, ErrIllegalTransition
	}

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderTx(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		next, ok := nextStatus[o.Status]
		if !ok || next != target {
			return ErrIllegalTransition
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Lost a race with a sibling transition.
			return ErrIllegalTransition
		}
		o.Status = target

		if target == entity.OrderServed {
			if err := s.releaseTableIfIdle(tx, o.TableID); err != nil {
				return err
			}
		}

		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// releaseTableIfIdle frees the table unless some other order on it is still
// pending/preparing. The check re-queries the orders table rather than
// trusting the single order just updated; order history on a table can span
// several orders and only the currently active subset matters.
func (s *OrderService) releaseTableIfIdle(tx *gorm.DB, tableID uint) error {
	active, err := s.TableRepo.CountActiveOrders(tx, tableID)
	if err != nil {
		return err
	}
	if active > 0 {
		return nil
	}
	_, err = s.TableRepo.SetStatus(tx, tableID, entity.TableAvailable)
	return err
}
