package roster

import "time"

// Period is the month a roster is generated for.
type Period struct {
	Month int
	Year  int
}

// NewPeriod validates month and year and returns the period.
func NewPeriod(month, year int) (Period, error) {
	p := Period{Month: month, Year: year}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// Validate rejects months outside 1..12 and non-positive years.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 || p.Year <= 0 {
		return &PeriodError{Month: p.Month, Year: p.Year}
	}
	return nil
}

// DaysInMonth returns the Gregorian length of the period's month.
func (p Period) DaysInMonth() (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return DaysInMonth(p.Month, p.Year), nil
}

// Next returns the period immediately after p.
func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Month: 1, Year: p.Year + 1}
	}
	return Period{Month: p.Month + 1, Year: p.Year}
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// DaysInMonth assumes a valid month. Day 0 of the following month is the
// last day of this one, which lets time handle leap years.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
