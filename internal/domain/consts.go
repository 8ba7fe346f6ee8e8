package domain

import (
	"fmt"

	"github.com/diegoclair/shift-roster-bot/internal/roster"
)

// Shift codes known to the default priority table
const (
	ShiftS1 = "S1"
	ShiftS2 = "S2"
	ShiftS3 = "S3"
	WeekOff = roster.WeekOff
)

// MonthNames maps month numbers to their English names
var MonthNames = map[int]string{
	1:  "January",
	2:  "February",
	3:  "March",
	4:  "April",
	5:  "May",
	6:  "June",
	7:  "July",
	8:  "August",
	9:  "September",
	10: "October",
	11: "November",
	12: "December",
}

// MonthName returns the English name of month or an error if it is not 1-12
func MonthName(month int) (string, error) {
	name, ok := MonthNames[month]
	if !ok {
		return "", fmt.Errorf("invalid month: %d", month)
	}
	return name, nil
}

// DefaultMasterSheet is the sheet holding the employee master list
const DefaultMasterSheet = "Employee_Master"
