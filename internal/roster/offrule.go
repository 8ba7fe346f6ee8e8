package roster

import (
	"fmt"
	"sort"
	"strings"
)

// DaySet is a set of day-of-month numbers.
type DaySet map[int]struct{}

func (s DaySet) Contains(day int) bool {
	_, ok := s[day]
	return ok
}

// Sorted returns the days in ascending order.
func (s DaySet) Sorted() []int {
	days := make([]int, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// OffRuleMode decides how the numbers of an off rule map onto the days of
// a month.
type OffRuleMode interface {
	// Name is the configuration name of the mode.
	Name() string
	// MaxValue is the largest value a rule may hold in this mode. The
	// smallest is always 1.
	MaxValue() int
	// Days returns the off days of a month with daysInMonth days. The rule
	// must already be validated.
	Days(rule []int, daysInMonth int) DaySet
}

// AbsoluteDay treats rule values as day-of-month numbers.
type AbsoluteDay struct{}

func (AbsoluteDay) Name() string  { return ModeAbsolute }
func (AbsoluteDay) MaxValue() int { return 31 }

func (AbsoluteDay) Days(rule []int, daysInMonth int) DaySet {
	days := DaySet{}
	for _, v := range rule {
		if v <= daysInMonth {
			days[v] = struct{}{}
		}
	}
	return days
}

// WeeklyRecurring treats rule values as positions 1..7 of a seven day cycle
// that restarts on day 1 of every month. It is not aligned to calendar
// weekdays.
type WeeklyRecurring struct{}

func (WeeklyRecurring) Name() string  { return ModeWeekly }
func (WeeklyRecurring) MaxValue() int { return 7 }

func (WeeklyRecurring) Days(rule []int, daysInMonth int) DaySet {
	weekdays := make(map[int]bool, len(rule))
	for _, v := range rule {
		weekdays[v] = true
	}

	days := DaySet{}
	for d := 1; d <= daysInMonth; d++ {
		if weekdays[(d-1)%7+1] {
			days[d] = struct{}{}
		}
	}
	return days
}

const (
	ModeAbsolute = "absolute"
	ModeWeekly   = "weekly"
)

// ParseMode resolves a mode by its configuration name.
func ParseMode(name string) (OffRuleMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ModeAbsolute:
		return AbsoluteDay{}, nil
	case ModeWeekly:
		return WeeklyRecurring{}, nil
	default:
		return nil, fmt.Errorf("unknown off rule mode %q (use %q or %q)", name, ModeAbsolute, ModeWeekly)
	}
}

// Expand validates rule against mode and returns the off days of a month
// with daysInMonth days.
func Expand(rule []int, mode OffRuleMode, daysInMonth int) (DaySet, error) {
	if bad := outOfRange(rule, mode); len(bad) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOffRule, rangeDetail(bad, mode))
	}
	return mode.Days(rule, daysInMonth), nil
}

func outOfRange(rule []int, mode OffRuleMode) []int {
	var bad []int
	for _, v := range rule {
		if v < 1 || v > mode.MaxValue() {
			bad = append(bad, v)
		}
	}
	return bad
}

func rangeDetail(bad []int, mode OffRuleMode) string {
	return fmt.Sprintf("values %v outside 1-%d for %s mode", bad, mode.MaxValue(), mode.Name())
}

func inRange(rule []int, mode OffRuleMode) []int {
	kept := make([]int, 0, len(rule))
	for _, v := range rule {
		if v >= 1 && v <= mode.MaxValue() {
			kept = append(kept, v)
		}
	}
	return kept
}
