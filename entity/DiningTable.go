package entity

import (
	"gorm.io/gorm"
)

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
)

// DiningTable is one physical table. The set of tables is fixed and seeded
// at startup; rows are only ever mutated through their status column.
type DiningTable struct {
	gorm.Model
	Number int    `gorm:"uniqueIndex;not null" json:"number"`
	Status string `gorm:"not null;default:available" json:"status"`

	Orders []Order `gorm:"foreignKey:TableID" json:"-"`
}

func ValidTableStatus(s string) bool {
	return s == TableAvailable || s == TableOccupied
}
