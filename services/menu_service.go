package services

import (
	"fmt"
	"strings"

	"github.com/Sanjanabonagiri16/Tabletrack/entity"
	"github.com/Sanjanabonagiri16/Tabletrack/repository"

	"github.com/shopspring/decimal"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// List returns the catalog ordered by category then name.
func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.ListAll()
}

type CreateMenuItemReq struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// Create adds a catalog item. Items are immutable afterwards, so all the
// validation happens here.
func (s *MenuService) Create(req *CreateMenuItemReq) (*entity.MenuItem, error) {
	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if !req.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be greater than zero", ErrValidation)
	}

	item := &entity.MenuItem{
		Name:     name,
		Price:    req.Price,
		Category: category,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}
