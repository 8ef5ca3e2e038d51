package repository

import (
	"github.com/Sanjanabonagiri16/Tabletrack/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderTx(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders (waiter) → only the caller's orders, newest first
func (r *OrderRepository) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var orders []entity.Order
	err := r.DB.Preload("Lines").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&orders).Error
	return orders, err
}

// GET /orders (admin) → everything, newest first
func (r *OrderRepository) ListAll(limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var orders []entity.Order
	err := r.DB.Preload("Lines").
		Order("created_at DESC").Limit(limit).
		Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard flips status only when the row still holds the expected
// from-status. RowsAffected == 0 means the order moved concurrently or the
// requested step is not the next one.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Order lines ----------------

func (r *OrderRepository) CreateOrderLine(tx *gorm.DB, l *entity.OrderLine) error {
	return tx.Create(l).Error
}

func (r *OrderRepository) GetOrderLines(orderID uint) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.DB.Where("order_id = ?", orderID).Find(&lines).Error
	return lines, err
}

// ---------------- Aggregates ----------------

func (r *OrderRepository) CountByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		Cnt    int64
	}
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Cnt
	}
	return out, nil
}

// SumTotals adds up every order's total, historical ones included.
func (r *OrderRepository) SumTotals() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Select("id, total").Find(&orders).Error
	return orders, err
}
