package services

import (
	"testing"

	"github.com/Sanjanabonagiri16/Tabletrack/entity"
	"github.com/Sanjanabonagiri16/Tabletrack/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database with the full schema.
// MaxOpenConns(1) keeps every query on the same sqlite connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.User{},
		&entity.DiningTable{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderLine{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type testEnv struct {
	db     *gorm.DB
	orders *OrderService
	tables *TableService
	menu   *MenuService
}

// newTestEnv wires the services against a seeded db: five tables and a
// small catalog (item A $10.00, item B $5.00, item C $3.50).
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	for i := 1; i <= 5; i++ {
		if err := db.Create(&entity.DiningTable{Number: i, Status: entity.TableAvailable}).Error; err != nil {
			t.Fatalf("seed table %d: %v", i, err)
		}
	}
	items := []entity.MenuItem{
		{Name: "Item A", Price: decimal.NewFromFloat(10.00), Category: "Mains"},
		{Name: "Item B", Price: decimal.NewFromFloat(5.00), Category: "Starters"},
		{Name: "Item C", Price: decimal.NewFromFloat(3.50), Category: "Drinks"},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("seed menu: %v", err)
		}
	}

	orderRepo := repository.NewOrderRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)

	return &testEnv{
		db:     db,
		orders: NewOrderService(db, orderRepo, tableRepo, menuRepo),
		tables: NewTableService(db, tableRepo),
		menu:   NewMenuService(menuRepo),
	}
}

func (e *testEnv) tableByNumber(t *testing.T, number int) entity.DiningTable {
	t.Helper()
	var table entity.DiningTable
	if err := e.db.Where("number = ?", number).First(&table).Error; err != nil {
		t.Fatalf("load table %d: %v", number, err)
	}
	return table
}

func (e *testEnv) mustCreateOrder(t *testing.T, tableID uint, items ...CartItemIn) *CreateOrderRes {
	t.Helper()
	out, err := e.orders.Create(1, &CreateOrderReq{TableID: tableID, Items: items})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return out
}

func (e *testEnv) countOrders(t *testing.T) int64 {
	t.Helper()
	var cnt int64
	if err := e.db.Model(&entity.Order{}).Count(&cnt).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	return cnt
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func qty(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
