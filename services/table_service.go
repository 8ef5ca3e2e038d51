package services

import (
	"errors"

	"github.com/Sanjanabonagiri16/Tabletrack/entity"
	"github.com/Sanjanabonagiri16/Tabletrack/repository"

	"gorm.io/gorm"
)

type TableService struct {
	DB   *gorm.DB
	Repo *repository.TableRepository
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository) *TableService {
	return &TableService{DB: db, Repo: repo}
}

func (s *TableService) List() ([]entity.DiningTable, error) {
	return s.Repo.ListAll()
}

// Override lets an admin force a table's status. It refuses to mark a table
// available while an active order still references it, so occupancy can
// never be desynchronized from live orders through this path.
func (s *TableService) Override(tableID uint, status string) (*entity.DiningTable, error) {
	if !entity.ValidTableStatus(status) {
		return nil, ErrInvalidStatus
	}

	var out *entity.DiningTable
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		t, err := s.Repo.GetTx(tx, tableID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if status == entity.TableAvailable {
			active, err := s.Repo.CountActiveOrders(tx, t.ID)
			if err != nil {
				return err
			}
			if active > 0 {
				return ErrTableBusy
			}
		}

		if _, err := s.Repo.SetStatus(tx, t.ID, status); err != nil {
			return err
		}
		t.Status = status
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
