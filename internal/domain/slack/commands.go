package slack

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/shift-roster-bot/internal/roster"
)

type CommandType string

const (
	CmdGenerate  CommandType = "generate"
	CmdShow      CommandType = "show"
	CmdEmployees CommandType = "employees"
	CmdHelp      CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "generate", "gen":
		cmd.Type = CmdGenerate
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "show":
		cmd.Type = CmdShow
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "employees", "ls":
		cmd.Type = CmdEmployees
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// ParsePeriod reads "M YYYY" or "YYYY-MM" from args. With no args it
// returns the month after now.
func ParsePeriod(args []string, now time.Time) (roster.Period, error) {
	switch len(args) {
	case 0:
		return roster.PeriodOf(now).Next(), nil
	case 1:
		year, month, ok := strings.Cut(args[0], "-")
		if !ok {
			return roster.Period{}, fmt.Errorf("invalid period %q. Use `MONTH YEAR` or `YYYY-MM`", args[0])
		}
		return newPeriod(month, year)
	case 2:
		return newPeriod(args[0], args[1])
	default:
		return roster.Period{}, fmt.Errorf("too many arguments. Use `MONTH YEAR` or `YYYY-MM`")
	}
}

func newPeriod(month, year string) (roster.Period, error) {
	m, err := strconv.Atoi(month)
	if err != nil {
		return roster.Period{}, fmt.Errorf("invalid month %q", month)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return roster.Period{}, fmt.Errorf("invalid year %q", year)
	}
	return roster.NewPeriod(m, y)
}

func GetHelpText() string {
	return `*Available Commands:*

*Rosters:*
• ` + "`/roster generate`" + ` - Generate next month's roster
• ` + "`/roster generate 3 2025`" + ` - Generate the roster of a month (also ` + "`2025-03`" + `)
• ` + "`/roster show [3 2025]`" + ` - Show the latest roster of a month

*Employees:*
• ` + "`/roster employees`" + ` - List the imported employees and their off rules`
}
