package service

import (
	"github.com/diegoclair/shift-roster-bot/internal/domain/contract"
	"github.com/diegoclair/shift-roster-bot/internal/roster"
)

type Instance struct {
	Roster    *rosterService
	Scheduler *scheduler
}

// NewInstance wires the roster service and the monthly scheduler. The
// scheduler publishes to channelID; an empty channelID only stores rosters.
func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, builder *roster.Builder, cronSpec, channelID string) *Instance {
	rosterService := newRoster(dm, slackClient, builder)

	return &Instance{
		Roster:    rosterService,
		Scheduler: newScheduler(rosterService, cronSpec, channelID),
	}
}
