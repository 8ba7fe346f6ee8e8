package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/diegoclair/shift-roster-bot/internal/domain/contract"
	"github.com/diegoclair/shift-roster-bot/internal/domain/entity"
)

type employeeRepo struct {
	db dbConn
}

func newEmployeeRepo(db dbConn) contract.EmployeeRepo {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (position, name, base_shift, off_rule, off_rule_mode, email)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	offRule := employee.OffRule
	if offRule == nil {
		offRule = []int{}
	}

	// Convert OffRule to JSON for storage
	offRuleJSON, err := json.Marshal(offRule)
	if err != nil {
		return fmt.Errorf("failed to marshal off rule: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query,
		employee.Position,
		employee.Name,
		employee.BaseShift,
		string(offRuleJSON),
		employee.OffRuleMode,
		employee.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	employee.ID = id
	return nil
}

func (r *employeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	query := `
		SELECT id, position, name, base_shift, off_rule, off_rule_mode, email, created_at
		FROM employees
		ORDER BY position ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*entity.Employee
	for rows.Next() {
		employee := &entity.Employee{}
		var offRuleJSON string
		err := rows.Scan(
			&employee.ID,
			&employee.Position,
			&employee.Name,
			&employee.BaseShift,
			&offRuleJSON,
			&employee.OffRuleMode,
			&employee.Email,
			&employee.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}

		// Convert JSON to OffRule slice
		if err := json.Unmarshal([]byte(offRuleJSON), &employee.OffRule); err != nil {
			return nil, fmt.Errorf("failed to unmarshal off rule of %s: %w", employee.Name, err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

func (r *employeeRepo) DeleteAll(ctx context.Context) error {
	query := `DELETE FROM employees`

	_, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to delete employees: %w", err)
	}

	return nil
}
