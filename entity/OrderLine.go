package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLine carries a snapshot of the menu item's name and price taken at
// order time, so later catalog changes never touch historical orders.
type OrderLine struct {
	gorm.Model
	Qty      int             `json:"qty"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Subtotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
