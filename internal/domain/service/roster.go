package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/shift-roster-bot/internal/domain/contract"
	"github.com/diegoclair/shift-roster-bot/internal/domain/entity"
	"github.com/diegoclair/shift-roster-bot/internal/logger"
	"github.com/diegoclair/shift-roster-bot/internal/roster"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

type rosterService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	builder     *roster.Builder
}

func newRoster(dm contract.DataManager, slackClient contract.SlackClient, builder *roster.Builder) *rosterService {
	if builder == nil {
		builder = roster.NewBuilder()
	}
	return &rosterService{
		dm:          dm,
		slackClient: slackClient,
		builder:     builder,
	}
}

// ImportEmployees replaces the stored master list. Every record is checked
// before anything is written.
func (s *rosterService) ImportEmployees(ctx context.Context, employees []*entity.Employee) error {
	if _, err := toRosterEmployees(employees); err != nil {
		return err
	}

	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Employee().DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to clear employees: %w", err)
		}

		for i, e := range employees {
			e.Position = i
			if err := tx.Employee().Create(ctx, e); err != nil {
				return fmt.Errorf("failed to import employee %s: %w", e.Name, err)
			}
		}

		return nil
	})
}

func (s *rosterService) ListEmployees(ctx context.Context) ([]*entity.Employee, error) {
	return s.dm.Employee().List(ctx)
}

// GenerateRoster builds the roster of period from the stored employees and
// stores the result.
func (s *rosterService) GenerateRoster(ctx context.Context, period roster.Period) (*entity.Roster, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.dm.Employee().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	if len(employees) == 0 {
		return nil, fmt.Errorf("no employees imported")
	}

	input, err := toRosterEmployees(employees)
	if err != nil {
		return nil, err
	}

	table, err := s.builder.Build(input, period)
	if err != nil {
		return nil, fmt.Errorf("failed to build roster: %w", err)
	}

	for _, w := range table.Warnings {
		logger.Log.WithFields(logrus.Fields{
			"month": period.Month,
			"year":  period.Year,
		}).Warnf("Off rule tolerated: %v", w)
	}

	r := entity.NewRoster(table)
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		return tx.Roster().Create(ctx, r)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store roster: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"roster_id": r.ID,
		"month":     period.Month,
		"year":      period.Year,
		"employees": len(r.Rows),
	}).Info("Roster generated")

	return r, nil
}

// GetRoster returns the latest stored roster of period, or nil.
func (s *rosterService) GetRoster(ctx context.Context, period roster.Period) (*entity.Roster, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	r, err := s.dm.Roster().GetLatest(ctx, period.Month, period.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	return r, nil
}

// PublishRoster posts the roster to a Slack channel. Employees whose email
// resolves to a Slack user are mentioned; lookup failures only drop the
// mention.
func (s *rosterService) PublishRoster(ctx context.Context, channelID string, r *entity.Roster) error {
	if channelID == "" {
		return fmt.Errorf("no channel to publish the roster to")
	}
	if r == nil {
		return fmt.Errorf("no roster to publish")
	}

	text, err := FormatRoster(r, s.mentions(ctx, r))
	if err != nil {
		return err
	}

	_, _, err = s.slackClient.PostMessage(
		channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"roster_id": r.ID,
		"channel":   channelID,
	}).Info("Roster published")

	return nil
}

// mentions maps row indexes to Slack user IDs. Names are not unique, so
// rows are keyed by index.
func (s *rosterService) mentions(ctx context.Context, r *entity.Roster) map[int]string {
	mentions := make(map[int]string)
	for i, row := range r.Rows {
		if row.Email == "" || ctx.Err() != nil {
			continue
		}

		user, err := s.slackClient.GetUserByEmail(row.Email)
		if err != nil {
			logger.Log.WithField("employee", row.EmployeeName).Debugf("No Slack user for %s: %v", row.Email, err)
			continue
		}
		mentions[i] = user.ID
	}
	return mentions
}

func toRosterEmployees(employees []*entity.Employee) ([]roster.Employee, error) {
	out := make([]roster.Employee, 0, len(employees))
	for i, e := range employees {
		emp, err := e.ToRoster()
		if err != nil {
			return nil, &roster.EmployeeError{Index: i, Name: e.Name, Field: "offRuleMode", Detail: err.Error(), Err: roster.ErrMalformedEmployee}
		}
		out = append(out, emp)
	}

	if err := roster.ValidateEmployees(out); err != nil {
		return nil, err
	}

	return out, nil
}
