package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderServed    = "served"
)

// NonTerminalOrderStatuses are the statuses that keep a table occupied.
var NonTerminalOrderStatuses = []string{OrderPending, OrderPreparing}

type Order struct {
	gorm.Model
	Uid    string          `gorm:"uniqueIndex;not null" json:"uid"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Status string          `gorm:"not null;default:pending;index" json:"status"`

	TableID uint        `gorm:"index" json:"tableId"`
	Table   DiningTable `gorm:"foreignKey:TableID" json:"-"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only when the owner detail is needed

	Lines []OrderLine `json:"lines"`
}

func ValidOrderStatus(s string) bool {
	return s == OrderPending || s == OrderPreparing || s == OrderServed
}
