package services

import (
	"errors"

	"github.com/Sanjanabonagiri16/Tabletrack/entity"
	"github.com/Sanjanabonagiri16/Tabletrack/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	TableRepo *repository.TableRepository
	MenuRepo  *repository.MenuRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	tableRepo *repository.TableRepository,
	menuRepo *repository.MenuRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, TableRepo: tableRepo, MenuRepo: menuRepo}
}

// ----- DTOs from Controller -----

type CartItemIn struct {
	MenuItemID uint `json:"menuItemId"`
	Qty        int  `json:"qty"`
}

type CreateOrderReq struct {
	TableID uint         `json:"tableId"`
	Items   []CartItemIn `json:"items"`
}

type CreateOrderRes struct {
	ID     uint            `json:"id"`
	Uid    string          `json:"uid"`
	Total  decimal.Decimal `json:"total"`
	Status string          `json:"status"`
}

// ----- Create -----

// Create validates the cart, snapshots catalog data into lines and writes
// order + lines + table occupancy as one transaction. A table that already
// carries a pending/preparing order rejects the new order outright.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, it := range req.Items {
		if it.Qty < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	// The cart UI merges duplicates already, but re-merge here so no order
	// ever persists the same menu item on two lines.
	merged := mergeCart(req.Items)

	total := decimal.Zero
	lines := make([]entity.OrderLine, 0, len(merged))
	for _, it := range merged {
		m, err := s.MenuRepo.GetBasics(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnknownItem
			}
			return nil, err
		}
		subtotal := m.Price.Mul(decimal.NewFromInt(int64(it.Qty)))
		total = total.Add(subtotal)
		lines = append(lines, entity.OrderLine{
			MenuItemID: m.ID,
			Name:       m.Name,
			Price:      m.Price,
			Qty:        it.Qty,
			Subtotal:   subtotal,
		})
	}

	var out CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		table, err := s.TableRepo.GetTx(tx, req.TableID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		// Strict policy: one active order per table. Checked inside the
		// transaction so two concurrent creates cannot both pass.
		active, err := s.TableRepo.CountActiveOrders(tx, table.ID)
		if err != nil {
			return err
		}
		if active > 0 {
			return ErrTableBusy
		}

		order := entity.Order{
			Uid:     uuid.NewString(),
			TableID: table.ID,
			UserID:  userID,
			Total:   total,
			Status:  entity.OrderPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for i := range lines {
			lines[i].OrderID = order.ID
			if err := s.Repo.CreateOrderLine(tx, &lines[i]); err != nil {
				return err
			}
		}

		if _, err := s.TableRepo.SetStatus(tx, table.ID, entity.TableOccupied); err != nil {
			return err
		}

		out = CreateOrderRes{ID: order.ID, Uid: order.Uid, Total: order.Total, Status: order.Status}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// mergeCart sums quantities for repeated menu items, keeping first-seen order.
func mergeCart(items []CartItemIn) []CartItemIn {
	idx := make(map[uint]int, len(items))
	merged := make([]CartItemIn, 0, len(items))
	for _, it := range items {
		if i, ok := idx[it.MenuItemID]; ok {
			merged[i].Qty += it.Qty
			continue
		}
		idx[it.MenuItemID] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

// ----- List -----

// ListFor returns all orders for admins and only the caller's own for
// waiters, newest first with lines included.
func (s *OrderService) ListFor(userID uint, role string) ([]entity.Order, error) {
	if role == entity.RoleAdmin {
		return s.Repo.ListAll(0)
	}
	return s.Repo.ListForUser(userID, 0)
}

// Detail returns one order with its lines. Waiters only see their own;
// a foreign order reads as not found rather than forbidden.
func (s *OrderService) Detail(orderID, userID uint, role string) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if role != entity.RoleAdmin && o.UserID != userID {
		return nil, ErrNotFound
	}
	lines, err := s.Repo.GetOrderLines(o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return o, nil
}
