package contract

import (
	"context"

	"github.com/diegoclair/shift-roster-bot/internal/domain/entity"
	"github.com/diegoclair/shift-roster-bot/internal/roster"
)

type RosterService interface {
	ImportEmployees(ctx context.Context, employees []*entity.Employee) error
	ListEmployees(ctx context.Context) ([]*entity.Employee, error)
	GenerateRoster(ctx context.Context, period roster.Period) (*entity.Roster, error)
	GetRoster(ctx context.Context, period roster.Period) (*entity.Roster, error)
	PublishRoster(ctx context.Context, channelID string, r *entity.Roster) error
}
