package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/shift-roster-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	employeeRepo contract.EmployeeRepo
	rosterRepo   contract.RosterRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		employeeRepo: newEmployeeRepo(db),
		rosterRepo:   newRosterRepo(db),
	}
}

// Employee returns the employee repository
func (i *instance) Employee() contract.EmployeeRepo {
	return i.employeeRepo
}

// Roster returns the roster repository
func (i *instance) Roster() contract.RosterRepo {
	return i.rosterRepo
}

// WithTransaction executes a function within a database transaction.
// Nested calls run inside the outer transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
