package contract

import (
	"context"

	"github.com/diegoclair/shift-roster-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Employee() EmployeeRepo
	Roster() RosterRepo
}

// EmployeeRepo defines the contract for the employee master list
type EmployeeRepo interface {
	Create(ctx context.Context, employee *entity.Employee) error
	List(ctx context.Context) ([]*entity.Employee, error)
	DeleteAll(ctx context.Context) error
}

// RosterRepo defines the contract for generated rosters
type RosterRepo interface {
	Create(ctx context.Context, roster *entity.Roster) error
	GetLatest(ctx context.Context, month, year int) (*entity.Roster, error)
}
