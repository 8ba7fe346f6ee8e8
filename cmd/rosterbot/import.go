package main

import (
	"context"

	"github.com/diegoclair/shift-roster-bot/internal/logger"
	"github.com/diegoclair/shift-roster-bot/internal/workbook"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var importIn string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the stored employee list with the master sheet",
	RunE:  importMaster,
}

func init() {
	importCmd.Flags().StringVar(&importIn, "in", "", "workbook holding the employee master sheet")
	_ = importCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(importCmd)
}

func importMaster(cmd *cobra.Command, args []string) error {
	master, err := workbook.ReadMaster(importIn, cfg.Workbook)
	if err != nil {
		return err
	}

	app, err := newApp(nil)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.svc.Roster.ImportEmployees(context.Background(), master.Employees); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"employees": len(master.Employees),
		"path":      importIn,
	}).Info("Employee master imported")
	return nil
}
