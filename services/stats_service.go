package services

import (
	"github.com/Sanjanabonagiri16/Tabletrack/entity"
	"github.com/Sanjanabonagiri16/Tabletrack/repository"

	"github.com/shopspring/decimal"
)

// StatsService rolls up the numbers shown on the admin dashboard.
type StatsService struct {
	OrderRepo *repository.OrderRepository
	TableRepo *repository.TableRepository
}

func NewStatsService(orderRepo *repository.OrderRepository, tableRepo *repository.TableRepository) *StatsService {
	return &StatsService{OrderRepo: orderRepo, TableRepo: tableRepo}
}

type DashboardStats struct {
	TotalRevenue   decimal.Decimal  `json:"totalRevenue"`
	OccupiedTables int64            `json:"occupiedTables"`
	TotalTables    int64            `json:"totalTables"`
	OrdersByStatus map[string]int64 `json:"ordersByStatus"`
}

// Dashboard sums revenue over every order ever placed, served ones included.
func (s *StatsService) Dashboard() (*DashboardStats, error) {
	orders, err := s.OrderRepo.SumTotals()
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
	}

	occupied, err := s.TableRepo.CountByStatus(entity.TableOccupied)
	if err != nil {
		return nil, err
	}
	total, err := s.TableRepo.Count()
	if err != nil {
		return nil, err
	}

	byStatus, err := s.OrderRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalRevenue:   revenue,
		OccupiedTables: occupied,
		TotalTables:    total,
		OrdersByStatus: byStatus,
	}, nil
}
