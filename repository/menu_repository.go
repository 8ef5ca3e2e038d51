package repository

import (
	"github.com/Sanjanabonagiri16/Tabletrack/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// GET /menu-items → category asc, then name asc
func (r *MenuRepository) ListAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("category ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

// GetBasics fetches just what order creation snapshots (id, name, price).
func (r *MenuRepository) GetBasics(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, name, price").First(&m, id).Error
	return m, err
}
