package repository

import (
	"github.com/Sanjanabonagiri16/Tabletrack/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

// GET /tables → every table, stable order by number
func (r *TableRepository) ListAll() ([]entity.DiningTable, error) {
	var tables []entity.DiningTable
	err := r.DB.Order("number ASC").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) GetTx(tx *gorm.DB, tableID uint) (*entity.DiningTable, error) {
	var t entity.DiningTable
	if err := tx.First(&t, tableID).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// SetStatus overwrites the status column unconditionally. Occupancy is owned
// by the order lifecycle, so only the services layer may call this; it is
// never exposed raw over HTTP.
func (r *TableRepository) SetStatus(tx *gorm.DB, tableID uint, status string) (int64, error) {
	res := tx.Model(&entity.DiningTable{}).
		Where("id = ?", tableID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// CountActiveOrders counts pending/preparing orders on a table. Always run
// inside the same transaction as the write that depends on the answer.
func (r *TableRepository) CountActiveOrders(tx *gorm.DB, tableID uint) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.Order{}).
		Where("table_id = ? AND status IN ?", tableID, entity.NonTerminalOrderStatuses).
		Count(&cnt).Error
	return cnt, err
}

func (r *TableRepository) CountByStatus(status string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.DiningTable{}).Where("status = ?", status).Count(&cnt).Error
	return cnt, err
}

func (r *TableRepository) Count() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.DiningTable{}).Count(&cnt).Error
	return cnt, err
}
