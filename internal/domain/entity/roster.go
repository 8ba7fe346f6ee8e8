package entity

import (
	"time"

	"github.com/diegoclair/shift-roster-bot/internal/roster"
)

type Roster struct {
	ID        string      `json:"id"`
	Month     int         `json:"month"`
	Year      int         `json:"year"`
	Rows      []RosterRow `json:"rows"`
	CreatedAt time.Time   `json:"created_at"`
}

type RosterRow struct {
	Position     int      `json:"position"`
	EmployeeName string   `json:"employee_name"`
	BaseShift    string   `json:"base_shift"`
	Email        string   `json:"email,omitempty"`
	Shifts       []string `json:"shifts"`
}

// NewRoster copies a built table into a storable roster, keeping row order.
func NewRoster(table *roster.Table) *Roster {
	r := &Roster{
		Month: table.Period.Month,
		Year:  table.Period.Year,
		Rows:  make([]RosterRow, 0, len(table.Rows)),
	}

	for i, row := range table.Rows {
		r.Rows = append(r.Rows, RosterRow{
			Position:     i,
			EmployeeName: row.Employee.Name,
			BaseShift:    row.Employee.BaseShift,
			Email:        row.Employee.Email,
			Shifts:       append([]string(nil), row.Shifts...),
		})
	}

	return r
}

func (r *Roster) Period() roster.Period {
	return roster.Period{Month: r.Month, Year: r.Year}
}
