// Package workbook reads the employee master sheet and writes generated
// rosters back as spreadsheet tabs.
package workbook

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/diegoclair/shift-roster-bot/internal/domain"
	"github.com/diegoclair/shift-roster-bot/internal/domain/entity"
	"github.com/diegoclair/shift-roster-bot/internal/roster"
	"github.com/xuri/excelize/v2"
)

// Layout locates the employee master data inside a workbook.
type Layout struct {
	MasterSheet   string
	HeaderEndRow  int
	EmployeeCount int
}

func DefaultLayout() Layout {
	return Layout{
		MasterSheet:   domain.DefaultMasterSheet,
		HeaderEndRow:  3,
		EmployeeCount: 13,
	}
}

// The roster period sits in the header block of the master sheet.
const (
	periodRow   = 3
	monthColumn = 5
	yearColumn  = 6
)

const (
	nameColumn = iota + 1
	ruleColumn
	shiftColumn
	emailColumn
)

const headerColor = "00FF00"

var shiftColors = map[string]string{
	domain.ShiftS1: "FFFF00",
	domain.ShiftS2: "ADD8E6",
	domain.ShiftS3: "90EE90",
	domain.WeekOff: "808080",
}

// Master is the content of the employee master sheet.
type Master struct {
	Period    roster.Period
	Employees []*entity.Employee
}

// ReadMaster loads the period and the employee list from the master sheet
// of the workbook at path.
func ReadMaster(path string, layout Layout) (*Master, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := layout.MasterSheet
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		return nil, fmt.Errorf("sheet %q not found in %s", sheet, path)
	}

	month, err := intCell(f, sheet, monthColumn, periodRow)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster month: %w", err)
	}
	year, err := intCell(f, sheet, yearColumn, periodRow)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster year: %w", err)
	}

	period, err := roster.NewPeriod(month, year)
	if err != nil {
		return nil, err
	}

	master := &Master{Period: period}
	first := layout.HeaderEndRow + 1
	for row := first; row < first+layout.EmployeeCount; row++ {
		emp, err := readEmployee(f, sheet, row)
		if err != nil {
			return nil, err
		}
		if emp == nil {
			break
		}
		emp.Position = len(master.Employees)
		master.Employees = append(master.Employees, emp)
	}

	return master, nil
}

func readEmployee(f *excelize.File, sheet string, row int) (*entity.Employee, error) {
	name, err := cell(f, sheet, nameColumn, row)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, nil
	}

	rawRule, err := cell(f, sheet, ruleColumn, row)
	if err != nil {
		return nil, err
	}
	rule, err := ParseRule(rawRule)
	if err != nil {
		return nil, fmt.Errorf("row %d (%s): %w", row, name, err)
	}

	shift, err := cell(f, sheet, shiftColumn, row)
	if err != nil {
		return nil, err
	}
	email, err := cell(f, sheet, emailColumn, row)
	if err != nil {
		return nil, err
	}

	return &entity.Employee{
		Name:      name,
		BaseShift: shift,
		OffRule:   rule,
		Email:     email,
	}, nil
}

// ParseRule reads a comma separated list of off rule values. A blank cell
// is an empty rule.
func ParseRule(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	rule := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: off rule value %q is not a number", roster.ErrMalformedEmployee, p)
		}
		rule = append(rule, v)
	}
	return rule, nil
}

// SheetName is the name of the tab holding the roster of p.
func SheetName(p roster.Period) (string, error) {
	name, err := domain.MonthName(p.Month)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d", name, p.Year), nil
}

// WriteRoster stores table as a sheet of the workbook at path, replacing a
// previous sheet of the same period. The workbook is created when path does
// not exist.
func WriteRoster(path string, table *roster.Table) error {
	sheet, err := SheetName(table.Period)
	if err != nil {
		return err
	}
	monthName, _ := domain.MonthName(table.Period.Month)

	f, err := openOrCreate(path, sheet)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := resetSheet(f, sheet); err != nil {
		return err
	}

	w := &sheetWriter{f: f, sheet: sheet, styles: make(map[string]int)}

	headerStyle, err := w.style(headerColor, true)
	if err != nil {
		return err
	}
	for day := 1; day <= table.DaysInMonth(); day++ {
		if err := w.set(day+1, 1, fmt.Sprintf("%d-%s", day, monthName), headerStyle); err != nil {
			return err
		}
	}

	for i, row := range table.Rows {
		r := i + 2
		if err := w.setCode(nameColumn, r, row.Employee.Name, row.Employee.BaseShift); err != nil {
			return err
		}
		for j, code := range row.Shifts {
			if err := w.setCode(j+2, r, code, code); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func openOrCreate(path, sheet string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	f = excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	return f, nil
}

// resetSheet makes sure sheet exists and holds no values from an earlier
// run.
func resetSheet(f *excelize.File, sheet string) error {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return err
	}

	if idx != -1 {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return err
		}
		for i := len(rows); i >= 1; i-- {
			if err := f.RemoveRow(sheet, i); err != nil {
				return err
			}
		}
	} else if idx, err = f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}

	f.SetActiveSheet(idx)
	return nil
}

type sheetWriter struct {
	f      *excelize.File
	sheet  string
	styles map[string]int
}

// style returns a solid fill style of color, creating it on first use.
func (w *sheetWriter) style(color string, centered bool) (int, error) {
	key := fmt.Sprintf("%s/%t", color, centered)
	if id, ok := w.styles[key]; ok {
		return id, nil
	}

	s := &excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
	}
	if centered {
		s.Alignment = &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	}

	id, err := w.f.NewStyle(s)
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}
	w.styles[key] = id
	return id, nil
}

func (w *sheetWriter) set(col, row int, value string, style int) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := w.f.SetCellValue(w.sheet, name, value); err != nil {
		return err
	}
	if style == 0 {
		return nil
	}
	return w.f.SetCellStyle(w.sheet, name, name, style)
}

// setCode writes value colored by the shift code; unknown codes stay
// unstyled.
func (w *sheetWriter) setCode(col, row int, value, code string) error {
	style := 0
	if color, ok := shiftColors[code]; ok {
		id, err := w.style(color, false)
		if err != nil {
			return err
		}
		style = id
	}
	return w.set(col, row, value, style)
}

func cell(f *excelize.File, sheet string, col, row int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	v, err := f.GetCellValue(sheet, name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s!%s: %w", sheet, name, err)
	}
	return strings.TrimSpace(v), nil
}

func intCell(f *excelize.File, sheet string, col, row int) (int, error) {
	v, err := cell(f, sheet, col, row)
	if err != nil {
		return 0, err
	}
	// numeric cells may come back formatted as "3.0" style floats
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	fv, err := strconv.ParseFloat(v, 64)
	if err != nil || fv != float64(int(fv)) {
		return 0, fmt.Errorf("cell %s row %d: %q is not a whole number", sheet, row, v)
	}
	return int(fv), nil
}
