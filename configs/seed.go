package configs

import (
	"log"
	"strings"

	"github.com/Sanjanabonagiri16/Tabletrack/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedUsers creates the admin and waiter accounts on first boot.
func SeedUsers(cfg *Config) error {
	if err := seedUser(cfg.AdminUsername, cfg.AdminPassword, entity.RoleAdmin); err != nil {
		return err
	}
	return seedUser(cfg.WaiterUsername, cfg.WaiterPassword, entity.RoleWaiter)
}

func seedUser(username, password, role string) error {
	if username == "" || password == "" {
		log.Printf("skip seeding %s: missing username/password env", role)
		return nil
	}
	username = strings.ToLower(strings.TrimSpace(username))

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Printf("%s already exists: %s", role, username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&entity.User{
		Username: username,
		Password: string(hash),
		Role:     role,
	}).Error
}

// SeedTables creates the fixed table set, tables 1..n.
func SeedTables(n int) error {
	for i := 1; i <= n; i++ {
		t := entity.DiningTable{Number: i, Status: entity.TableAvailable}
		if err := db.Where(entity.DiningTable{Number: i}).FirstOrCreate(&t).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedMenu loads a starter catalog. Idempotent, keyed by name+category.
func SeedMenu() error {
	starter := []entity.MenuItem{
		{Name: "Margherita Pizza", Price: decimal.NewFromFloat(12.50), Category: "Mains"},
		{Name: "Spaghetti Carbonara", Price: decimal.NewFromFloat(11.00), Category: "Mains"},
		{Name: "Grilled Salmon", Price: decimal.NewFromFloat(16.00), Category: "Mains"},
		{Name: "Caesar Salad", Price: decimal.NewFromFloat(8.50), Category: "Starters"},
		{Name: "Bruschetta", Price: decimal.NewFromFloat(6.00), Category: "Starters"},
		{Name: "Tiramisu", Price: decimal.NewFromFloat(7.00), Category: "Desserts"},
		{Name: "Panna Cotta", Price: decimal.NewFromFloat(6.50), Category: "Desserts"},
		{Name: "Sparkling Water", Price: decimal.NewFromFloat(3.00), Category: "Drinks"},
		{Name: "House Red (glass)", Price: decimal.NewFromFloat(5.50), Category: "Drinks"},
	}
	for _, it := range starter {
		item := it
		err := db.Where(entity.MenuItem{Name: it.Name, Category: it.Category}).
			FirstOrCreate(&item).Error
		if err != nil {
			return err
		}
	}
	return nil
}
