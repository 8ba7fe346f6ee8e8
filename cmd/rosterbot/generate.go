package main

import (
	"fmt"

	"github.com/diegoclair/shift-roster-bot/internal/logger"
	"github.com/diegoclair/shift-roster-bot/internal/roster"
	"github.com/diegoclair/shift-roster-bot/internal/workbook"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateFlags struct {
	in     string
	out    string
	month  int
	year   int
	mode   string
	policy string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build a roster from the master sheet and write it to a workbook",
	RunE:  generate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateFlags.in, "in", "", "workbook holding the employee master sheet")
	f.StringVar(&generateFlags.out, "out", "", "workbook to write the roster to (defaults to --in)")
	f.IntVar(&generateFlags.month, "month", 0, "override the month read from the master sheet")
	f.IntVar(&generateFlags.year, "year", 0, "override the year read from the master sheet")
	f.StringVar(&generateFlags.mode, "mode", "", "off rule mode: absolute or weekly (defaults to OFF_RULE_MODE)")
	f.StringVar(&generateFlags.policy, "policy", "", "invalid rule policy: fail, skip or clamp (defaults to OFF_RULE_POLICY)")
	_ = generateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(generateCmd)
}

func generate(cmd *cobra.Command, args []string) error {
	if generateFlags.mode != "" {
		cfg.OffRuleMode = generateFlags.mode
	}
	if generateFlags.policy != "" {
		cfg.OffRulePolicy = generateFlags.policy
	}
	builder, err := cfg.Builder()
	if err != nil {
		return err
	}

	master, err := workbook.ReadMaster(generateFlags.in, cfg.Workbook)
	if err != nil {
		return err
	}

	period := master.Period
	if generateFlags.month != 0 {
		period.Month = generateFlags.month
	}
	if generateFlags.year != 0 {
		period.Year = generateFlags.year
	}

	employees := make([]roster.Employee, 0, len(master.Employees))
	for _, e := range master.Employees {
		emp, err := e.ToRoster()
		if err != nil {
			return err
		}
		employees = append(employees, emp)
	}

	table, err := builder.Build(employees, period)
	if err != nil {
		return fmt.Errorf("failed to build roster: %w", err)
	}
	for _, w := range table.Warnings {
		logger.Log.WithField("period", fmt.Sprintf("%d-%02d", period.Year, period.Month)).Warn(w)
	}

	out := generateFlags.out
	if out == "" {
		out = generateFlags.in
	}
	if err := workbook.WriteRoster(out, table); err != nil {
		return err
	}

	sheet, _ := workbook.SheetName(period)
	logger.Log.WithFields(logrus.Fields{
		"sheet":     sheet,
		"employees": len(table.Rows),
		"path":      out,
	}).Info("Shift roster saved")
	return nil
}
