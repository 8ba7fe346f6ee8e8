package entity

import (
	"time"

	"github.com/diegoclair/shift-roster-bot/internal/roster"
)

// Employee is a stored master record. OffRuleMode is empty when the
// employee follows the run's default mode.
type Employee struct {
	ID          int64     `json:"id"`
	Position    int       `json:"position"`
	Name        string    `json:"name"`
	BaseShift   string    `json:"base_shift"`
	OffRule     []int     `json:"off_rule"`
	OffRuleMode string    `json:"off_rule_mode,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToRoster converts the record into the builder's input.
func (e *Employee) ToRoster() (roster.Employee, error) {
	emp := roster.Employee{
		Name:      e.Name,
		BaseShift: e.BaseShift,
		OffRule:   append([]int(nil), e.OffRule...),
		Email:     e.Email,
	}

	if e.OffRuleMode != "" {
		mode, err := roster.ParseMode(e.OffRuleMode)
		if err != nil {
			return roster.Employee{}, err
		}
		emp.Mode = mode
	}

	return emp, nil
}
