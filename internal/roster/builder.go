// Package roster computes monthly shift rosters. Everything in here is pure:
// no I/O, no logging, no shared state.
package roster

import (
	"fmt"
	"sort"
	"strings"
)

// WeekOff is the shift code emitted for off days.
const WeekOff = "WO"

// Employee is one input record. A nil Mode uses the builder's default mode.
type Employee struct {
	Name      string
	BaseShift string
	OffRule   []int
	Mode      OffRuleMode
	Email     string
}

// Row is one employee's shifts for the month, day 1 first.
type Row struct {
	Employee Employee
	Shifts   []string
}

// Table is a built roster. Warnings hold the off rule problems tolerated
// under the skip and clamp policies.
type Table struct {
	Period   Period
	Rows     []Row
	Warnings []error
}

// DaysInMonth is the number of shifts in every row.
func (t *Table) DaysInMonth() int {
	return DaysInMonth(t.Period.Month, t.Period.Year)
}

// InvalidRulePolicy decides what happens to an employee whose off rule holds
// values outside the valid range of its mode.
type InvalidRulePolicy string

const (
	// PolicyFail aborts the build.
	PolicyFail InvalidRulePolicy = "fail"
	// PolicySkip ignores the whole rule; the employee works every day.
	PolicySkip InvalidRulePolicy = "skip"
	// PolicyClamp drops the out of range values and keeps the rest.
	PolicyClamp InvalidRulePolicy = "clamp"
)

// ParsePolicy resolves a policy by name.
func ParsePolicy(name string) (InvalidRulePolicy, error) {
	switch p := InvalidRulePolicy(strings.ToLower(strings.TrimSpace(name))); p {
	case PolicyFail, PolicySkip, PolicyClamp:
		return p, nil
	default:
		return "", fmt.Errorf("unknown off rule policy %q (use fail, skip or clamp)", name)
	}
}

// Builder builds rosters with a fixed mode, policy and priority.
type Builder struct {
	mode     OffRuleMode
	policy   InvalidRulePolicy
	priority Priority
}

type Option func(*Builder)

// WithMode sets the mode used by employees that do not carry their own.
func WithMode(mode OffRuleMode) Option {
	return func(b *Builder) {
		if mode != nil {
			b.mode = mode
		}
	}
}

func WithPolicy(policy InvalidRulePolicy) Option {
	return func(b *Builder) {
		if policy != "" {
			b.policy = policy
		}
	}
}

func WithPriority(priority Priority) Option {
	return func(b *Builder) {
		if len(priority) > 0 {
			b.priority = priority
		}
	}
}

// NewBuilder defaults to absolute day mode, the fail policy and the
// default priority.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		mode:     AbsoluteDay{},
		policy:   PolicyFail,
		priority: DefaultPriority(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var defaultBuilder = NewBuilder()

// Build builds a roster with the default builder.
func Build(employees []Employee, period Period) (*Table, error) {
	return defaultBuilder.Build(employees, period)
}

// ExpandOffDays expands an employee's rule with the default builder.
func ExpandOffDays(employee Employee, period Period) (DaySet, error) {
	return defaultBuilder.ExpandOffDays(employee, period)
}

// ExpandOffDays returns the days of period the employee is off. Rule values
// outside the mode's range are always an error here; the policy only
// applies to Build.
func (b *Builder) ExpandOffDays(employee Employee, period Period) (DaySet, error) {
	n, err := period.DaysInMonth()
	if err != nil {
		return nil, err
	}
	return Expand(employee.OffRule, b.modeOf(employee), n)
}

// Build computes the roster of period. Every employee is validated before
// any row is computed and nothing is returned on error.
func (b *Builder) Build(employees []Employee, period Period) (*Table, error) {
	n, err := period.DaysInMonth()
	if err != nil {
		return nil, err
	}

	if err := ValidateEmployees(employees); err != nil {
		return nil, err
	}

	table := &Table{Period: period, Rows: make([]Row, 0, len(employees))}
	for i, e := range employees {
		mode := b.modeOf(e)
		rule := e.OffRule
		if bad := outOfRange(rule, mode); len(bad) > 0 {
			ruleErr := &EmployeeError{Index: i, Name: e.Name, Field: "offRule", Detail: rangeDetail(bad, mode), Err: ErrInvalidOffRule}
			switch b.policy {
			case PolicySkip:
				rule = nil
			case PolicyClamp:
				rule = inRange(rule, mode)
			default:
				return nil, ruleErr
			}
			table.Warnings = append(table.Warnings, ruleErr)
		}
		off := mode.Days(rule, n)

		shifts := make([]string, n)
		for d := 1; d <= n; d++ {
			if off.Contains(d) {
				shifts[d-1] = WeekOff
			} else {
				shifts[d-1] = e.BaseShift
			}
		}
		table.Rows = append(table.Rows, Row{Employee: e, Shifts: shifts})
	}

	b.sortRows(table.Rows)
	return table, nil
}

func (b *Builder) modeOf(e Employee) OffRuleMode {
	if e.Mode != nil {
		return e.Mode
	}
	return b.mode
}

// sortRows orders rows by (rank, shift code). Ties keep their input order.
func (b *Builder) sortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		si, sj := rows[i].Employee.BaseShift, rows[j].Employee.BaseShift
		ri, rj := b.priority.Rank(si), b.priority.Rank(sj)
		if ri != rj {
			return ri < rj
		}
		return si < sj
	})
}

// ValidateEmployees reports the first employee missing a name or a base
// shift.
func ValidateEmployees(employees []Employee) error {
	for i, e := range employees {
		if err := validateEmployee(i, e); err != nil {
			return err
		}
	}
	return nil
}

func validateEmployee(index int, e Employee) error {
	if strings.TrimSpace(e.Name) == "" {
		return &EmployeeError{Index: index, Name: e.Name, Field: "name", Detail: "missing", Err: ErrMalformedEmployee}
	}
	if strings.TrimSpace(e.BaseShift) == "" {
		return &EmployeeError{Index: index, Name: e.Name, Field: "baseShift", Detail: "missing", Err: ErrMalformedEmployee}
	}
	return nil
}
