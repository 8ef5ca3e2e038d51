package entity

import (
	"gorm.io/gorm"
)

const (
	RoleWaiter = "waiter"
	RoleAdmin  = "admin"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:waiter" json:"role"`

	Orders []Order `json:"-"`
}
