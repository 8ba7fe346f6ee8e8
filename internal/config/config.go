package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/diegoclair/shift-roster-bot/internal/domain"
	"github.com/diegoclair/shift-roster-bot/internal/roster"
	"github.com/diegoclair/shift-roster-bot/internal/workbook"
	"github.com/robfig/cron/v3"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	SlackRosterChannel string
	DatabasePath       string
	Port               string
	LogLevel           string
	Environment        string

	OffRuleMode   string
	OffRulePolicy string
	ShiftPriority string
	RosterCron    string

	Workbook workbook.Layout
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackRosterChannel: getEnv("SLACK_ROSTER_CHANNEL", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./roster.db"),
		Port:               getEnv("PORT", "3000"),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Environment:        strings.ToLower(getEnv("ENVIRONMENT", "development")),
		OffRuleMode:        getEnv("OFF_RULE_MODE", roster.ModeAbsolute),
		OffRulePolicy:      getEnv("OFF_RULE_POLICY", string(roster.PolicyFail)),
		ShiftPriority:      getEnv("SHIFT_PRIORITY", "S1:1,S2:2,S3:3"),
		RosterCron:         getEnv("ROSTER_CRON", "0 9 25 * *"),
		Workbook: workbook.Layout{
			MasterSheet:   getEnv("MASTER_SHEET", domain.DefaultMasterSheet),
			HeaderEndRow:  getEnvInt("HEADER_END_ROW", 3),
			EmployeeCount: getEnvInt("EMPLOYEE_COUNT", 13),
		},
	}
}

// Validate checks every value that is parsed later on so bad settings fail
// at startup.
func (c *Config) Validate() error {
	if _, err := roster.ParseMode(c.OffRuleMode); err != nil {
		return fmt.Errorf("OFF_RULE_MODE: %w", err)
	}
	if _, err := roster.ParsePolicy(c.OffRulePolicy); err != nil {
		return fmt.Errorf("OFF_RULE_POLICY: %w", err)
	}
	if _, err := roster.ParsePriority(c.ShiftPriority); err != nil {
		return fmt.Errorf("SHIFT_PRIORITY: %w", err)
	}
	if _, err := cron.ParseStandard(c.RosterCron); err != nil {
		return fmt.Errorf("ROSTER_CRON: %w", err)
	}
	if c.Workbook.MasterSheet == "" {
		return fmt.Errorf("MASTER_SHEET is required")
	}
	if c.Workbook.HeaderEndRow < 0 {
		return fmt.Errorf("HEADER_END_ROW must not be negative")
	}
	if c.Workbook.EmployeeCount <= 0 {
		return fmt.Errorf("EMPLOYEE_COUNT must be positive")
	}
	return nil
}

// Builder returns a roster builder configured from the off rule and
// priority settings. Call Validate first.
func (c *Config) Builder() (*roster.Builder, error) {
	mode, err := roster.ParseMode(c.OffRuleMode)
	if err != nil {
		return nil, err
	}
	policy, err := roster.ParsePolicy(c.OffRulePolicy)
	if err != nil {
		return nil, err
	}
	priority, err := roster.ParsePriority(c.ShiftPriority)
	if err != nil {
		return nil, err
	}

	return roster.NewBuilder(
		roster.WithMode(mode),
		roster.WithPolicy(policy),
		roster.WithPriority(priority),
	), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
