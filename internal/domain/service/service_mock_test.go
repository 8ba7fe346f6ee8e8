package service

import (
	"context"
	"testing"

	"github.com/diegoclair/shift-roster-bot/internal/domain/contract"
	"github.com/diegoclair/shift-roster-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockEmployeeRepo *mocks.MockEmployeeRepo
	mockRosterRepo   *mocks.MockRosterRepo
	mockSlackClient  *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	employeeRepo := mocks.NewMockEmployeeRepo(ctrl)
	dm.EXPECT().Employee().Return(employeeRepo).AnyTimes()

	rosterRepo := mocks.NewMockRosterRepo(ctrl)
	dm.EXPECT().Roster().Return(rosterRepo).AnyTimes()

	// transactions run against the same mocks
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:  dm,
		mockEmployeeRepo: employeeRepo,
		mockRosterRepo:   rosterRepo,
		mockSlackClient:  slackClient,
	}

	// validate service creation
	rosterService := newRoster(dm, slackClient, nil)
	require.NotNil(t, rosterService)

	return
}
