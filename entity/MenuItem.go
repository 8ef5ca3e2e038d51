package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItem is catalog reference data. Name and price are copied into order
// lines at order time, so editing is deliberately unsupported once live.
type MenuItem struct {
	gorm.Model
	Name     string          `gorm:"not null" json:"name"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category string          `gorm:"not null;index" json:"category"`

	OrderLines []OrderLine `json:"-"`
}
