package database

import (
	"context"
	"testing"

	"github.com/diegoclair/shift-roster-bot/internal/domain/contract"
	"github.com/diegoclair/shift-roster-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepo_CreateAndList(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newEmployeeRepo(db.conn)

	second := &entity.Employee{Position: 1, Name: "Bob", BaseShift: "S2", OffRule: []int{6, 7}, OffRuleMode: "weekly"}
	first := &entity.Employee{Position: 0, Name: "Alice", BaseShift: "S1", Email: "alice@example.com"}

	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID, "Expected employee ID to be set after creation")

	employees, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)

	assert.Equal(t, "Alice", employees[0].Name)
	assert.Equal(t, "S1", employees[0].BaseShift)
	assert.Equal(t, []int{}, employees[0].OffRule)
	assert.Equal(t, "", employees[0].OffRuleMode)
	assert.Equal(t, "alice@example.com", employees[0].Email)
	assert.False(t, employees[0].CreatedAt.IsZero())

	assert.Equal(t, "Bob", employees[1].Name)
	assert.Equal(t, []int{6, 7}, employees[1].OffRule)
	assert.Equal(t, "weekly", employees[1].OffRuleMode)
}

func TestEmployeeRepo_DeleteAll(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newEmployeeRepo(db.conn)

	require.NoError(t, repo.Create(ctx, &entity.Employee{Name: "Alice", BaseShift: "S1"}))
	require.NoError(t, repo.DeleteAll(ctx))

	employees, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestInstance_WithTransactionRollsBack(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	dm := NewInstance(db)

	require.NoError(t, dm.Employee().Create(ctx, &entity.Employee{Name: "Alice", BaseShift: "S1"}))

	err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Employee().DeleteAll(ctx); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	employees, err := dm.Employee().List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1, "Expected delete to be rolled back")
}
