package service

import (
	"fmt"
	"strings"

	"github.com/diegoclair/shift-roster-bot/internal/domain"
	"github.com/diegoclair/shift-roster-bot/internal/domain/entity"
)

// FormatRoster renders r as a Slack message: a monospace grid of the days
// followed by the team of every shift. mentions maps row indexes to Slack
// user IDs and may be nil.
func FormatRoster(r *entity.Roster, mentions map[int]string) (string, error) {
	monthName, err := domain.MonthName(r.Month)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 *Shift roster for %s %d*\n", monthName, r.Year)

	if len(r.Rows) == 0 {
		b.WriteString("\nNo employees in this roster.")
		return b.String(), nil
	}

	nameWidth := len("Employee")
	for _, row := range r.Rows {
		if n := len([]rune(row.EmployeeName)); n > nameWidth {
			nameWidth = n
		}
	}

	b.WriteString("```\n")
	b.WriteString(pad("Employee", nameWidth))
	for d := 1; d <= len(r.Rows[0].Shifts); d++ {
		fmt.Fprintf(&b, " %-3d", d)
	}
	b.WriteString("\n")

	for _, row := range r.Rows {
		b.WriteString(pad(row.EmployeeName, nameWidth))
		for _, code := range row.Shifts {
			fmt.Fprintf(&b, " %-3s", code)
		}
		b.WriteString("\n")
	}
	b.WriteString("```\n")

	// rows are already in shift order, so teams come out in the same order
	var shifts []string
	teams := make(map[string][]string)
	for i, row := range r.Rows {
		if _, seen := teams[row.BaseShift]; !seen {
			shifts = append(shifts, row.BaseShift)
		}

		member := row.EmployeeName
		if id, ok := mentions[i]; ok {
			member = fmt.Sprintf("<@%s>", id)
		}
		teams[row.BaseShift] = append(teams[row.BaseShift], member)
	}

	for _, shift := range shifts {
		fmt.Fprintf(&b, "*%s*: %s\n", shift, strings.Join(teams[shift], ", "))
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
