package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/shift-roster-bot/internal/logger"
	"github.com/diegoclair/shift-roster-bot/internal/roster"
	"github.com/robfig/cron/v3"
)

// scheduler generates next month's roster on a cron schedule and publishes
// it to the configured channel.
type scheduler struct {
	rosterService *rosterService
	cronEngine    *cron.Cron
	cronSpec      string
	channelID     string
	running       bool
}

func newScheduler(rosterService *rosterService, cronSpec, channelID string) *scheduler {
	return &scheduler{
		rosterService: rosterService,
		cronEngine:    cron.New(cron.WithLocation(time.Local)),
		cronSpec:      cronSpec,
		channelID:     channelID,
	}
}

func (s *scheduler) Start() error {
	if s.running {
		return nil
	}

	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if _, err := s.RunOnce(ctx, time.Now()); err != nil {
			logger.Log.Errorf("Scheduled roster generation failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule roster job %q: %w", s.cronSpec, err)
	}

	logger.Log.Infof("Scheduler starting with spec %q", s.cronSpec)
	s.cronEngine.Start()
	s.running = true
	return nil
}

// Stop waits for a running job to finish.
func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	logger.Log.Info("Scheduler stopping...")
	<-s.cronEngine.Stop().Done()
	s.running = false
}

// RunOnce generates the roster of the month after now and publishes it when
// a channel is configured.
func (s *scheduler) RunOnce(ctx context.Context, now time.Time) (roster.Period, error) {
	period := roster.PeriodOf(now).Next()

	r, err := s.rosterService.GenerateRoster(ctx, period)
	if err != nil {
		return period, fmt.Errorf("failed to generate roster for %d-%02d: %w", period.Year, period.Month, err)
	}

	if s.channelID == "" {
		logger.Log.Infof("No roster channel configured, roster %s stored only", r.ID)
		return period, nil
	}

	if err := s.rosterService.PublishRoster(ctx, s.channelID, r); err != nil {
		return period, err
	}

	return period, nil
}
