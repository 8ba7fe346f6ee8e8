package roster

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod     = errors.New("invalid period")
	ErrInvalidOffRule    = errors.New("invalid off rule")
	ErrMalformedEmployee = errors.New("malformed employee")
)

// PeriodError reports the rejected month/year pair.
type PeriodError struct {
	Month int
	Year  int
}

func (e *PeriodError) Error() string {
	return fmt.Sprintf("%s: month=%d year=%d (month must be 1-12, year positive)", ErrInvalidPeriod, e.Month, e.Year)
}

func (e *PeriodError) Unwrap() error { return ErrInvalidPeriod }

// EmployeeError locates a problem on one employee of the input sequence.
// Index is zero-based in the caller's slice.
type EmployeeError struct {
	Index  int
	Name   string
	Field  string
	Detail string
	Err    error
}

func (e *EmployeeError) Error() string {
	who := e.Name
	if who == "" {
		who = "<unnamed>"
	}
	msg := fmt.Sprintf("%s: employee #%d (%s) field %q", e.Err, e.Index+1, who, e.Field)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *EmployeeError) Unwrap() error { return e.Err }
