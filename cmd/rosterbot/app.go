package main

import (
	"fmt"

	"github.com/diegoclair/shift-roster-bot/internal/database"
	"github.com/diegoclair/shift-roster-bot/internal/domain/contract"
	"github.com/diegoclair/shift-roster-bot/internal/domain/service"
	"github.com/diegoclair/shift-roster-bot/internal/logger"
	"github.com/diegoclair/shift-roster-bot/migrator/sqlite"
)

// app holds the pieces shared by the commands that need storage.
type app struct {
	db  *database.DB
	svc *service.Instance
}

func newApp(slackClient contract.SlackClient) (*app, error) {
	builder, err := cfg.Builder()
	if err != nil {
		return nil, err
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logger.Log.Debug("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Log.Debug("Migrations completed successfully")

	dm := database.NewInstance(db)
	svc := service.NewInstance(dm, slackClient, builder, cfg.RosterCron, cfg.SlackRosterChannel)

	return &app{db: db, svc: svc}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		logger.Log.Errorf("Failed to close database: %v", err)
	}
}
