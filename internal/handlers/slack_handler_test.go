package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegoclair/shift-roster-bot/internal/domain/entity"
	"github.com/diegoclair/shift-roster-bot/internal/handlers/test"
	"github.com/diegoclair/shift-roster-bot/internal/roster"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func decodeResponse(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, resp.Code)

	var response slack.Msg
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)

	return response
}

func sampleRoster() *entity.Roster {
	return &entity.Roster{
		ID:    "roster-1",
		Month: 2,
		Year:  2024,
		Rows: []entity.RosterRow{
			{Position: 0, EmployeeName: "Alice", BaseShift: "S1", Email: "alice@example.com", Shifts: []string{"WO", "S1"}},
			{Position: 1, EmployeeName: "Bob", BaseShift: "S2", Shifts: []string{"S2", "S2"}},
		},
	}
}

func TestSlackHandler_HandleSlashCommand_Generate(t *testing.T) {
	type args struct {
		text      string
		channelID string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(ctx context.Context, m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should generate and publish roster for explicit period",
			args: args{text: "generate 2 2024", channelID: "C123456789"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				r := sampleRoster()

				m.RosterServiceMock.EXPECT().
					GenerateRoster(gomock.Any(), roster.Period{Month: 2, Year: 2024}).
					Return(r, nil).Times(1)

				m.RosterServiceMock.EXPECT().
					PublishRoster(gomock.Any(), args.channelID, r).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)

				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Equal(t, "✅ Roster for February 2024 generated for 2 employees.", response.Text)
			},
		},
		{
			name: "Should accept YYYY-MM period with alias",
			args: args{text: "gen 2024-12", channelID: "C123456789"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				r := &entity.Roster{Month: 12, Year: 2024}

				m.RosterServiceMock.EXPECT().
					GenerateRoster(gomock.Any(), roster.Period{Month: 12, Year: 2024}).
					Return(r, nil).Times(1)

				m.RosterServiceMock.EXPECT().
					PublishRoster(gomock.Any(), args.channelID, r).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)

				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "December 2024")
			},
		},
		{
			name: "Should return error when period is invalid",
			args: args{text: "generate 13 2024", channelID: "C123456789"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "❌")
			},
		},
		{
			name: "Should return error when generation fails",
			args: args{text: "generate 1 2024", channelID: "C123456789"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RosterServiceMock.EXPECT().
					GenerateRoster(gomock.Any(), roster.Period{Month: 1, Year: 2024}).
					Return(nil, roster.ErrInvalidOffRule).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "❌ Error generating roster")
				assert.Contains(t, response.Text, roster.ErrInvalidOffRule.Error())
			},
		},
		{
			name: "Should report publish failure",
			args: args{text: "generate 2 2024", channelID: "C123456789"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				r := sampleRoster()

				m.RosterServiceMock.EXPECT().
					GenerateRoster(gomock.Any(), roster.Period{Month: 2, Year: 2024}).
					Return(r, nil).Times(1)

				m.RosterServiceMock.EXPECT().
					PublishRoster(gomock.Any(), args.channelID, r).
					Return(errors.New("channel_not_found")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "could not be posted: channel_not_found")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			req := test.CreateSlackRequest(t, "/roster", tt.args.text, tt.args.channelID, "U987654321", test.SigningSecret)
			ctx := req.Context()

			if tt.buildMocks != nil {
				tt.buildMocks(ctx, m, tt.args)
			}

			resp := test.CreateTestRecorder()
			handler.HandleSlashCommand(resp, req)

			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Show(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should show stored roster",
			text: "show 2 2024",
			buildMocks: func(m test.ServiceMocks) {
				m.RosterServiceMock.EXPECT().
					GetRoster(gomock.Any(), roster.Period{Month: 2, Year: 2024}).
					Return(sampleRoster(), nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Shift roster for February 2024")
				assert.Contains(t, response.Text, "*S1*: Alice")
				assert.Contains(t, response.Text, "*S2*: Bob")
			},
		},
		{
			name: "Should tell when roster does not exist",
			text: "show 2024-03",
			buildMocks: func(m test.ServiceMocks) {
				m.RosterServiceMock.EXPECT().
					GetRoster(gomock.Any(), roster.Period{Month: 3, Year: 2024}).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "No roster generated for March 2024 yet")
				assert.Contains(t, response.Text, "/roster generate 3 2024")
			},
		},
		{
			name: "Should return error when loading fails",
			text: "show 3 2024",
			buildMocks: func(m test.ServiceMocks) {
				m.RosterServiceMock.EXPECT().
					GetRoster(gomock.Any(), roster.Period{Month: 3, Year: 2024}).
					Return(nil, errors.New("database error")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)

				assert.Equal(t, "❌ Error loading roster", response.Text)
			},
		},
		{
			name: "Should reject too many arguments",
			text: "show 3 2024 extra",
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)

				assert.Contains(t, response.Text, "❌ too many arguments")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m)
			}

			req := test.CreateSlackRequest(t, "/roster", tt.text, "C123456789", "U987654321", test.SigningSecret)
			resp := test.CreateTestRecorder()
			handler.HandleSlashCommand(resp, req)

			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Employees(t *testing.T) {
	tests := []struct {
		name          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should list employees in master order",
			buildMocks: func(m test.ServiceMocks) {
				m.RosterServiceMock.EXPECT().
					ListEmployees(gomock.Any()).
					Return([]*entity.Employee{
						{Name: "Alice", BaseShift: "S1", OffRule: []int{1, 7}, OffRuleMode: roster.ModeWeekly},
						{Name: "Bob", BaseShift: "S3"},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Equal(t, "*Employees:*\n1. Alice (S1) off: 1,7 [weekly]\n2. Bob (S3)", response.Text)
			},
		},
		{
			name: "Should tell when no employees were imported",
			buildMocks: func(m test.ServiceMocks) {
				m.RosterServiceMock.EXPECT().
					ListEmployees(gomock.Any()).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)

				assert.Contains(t, response.Text, "No employees imported")
			},
		},
		{
			name: "Should return error when listing fails",
			buildMocks: func(m test.ServiceMocks) {
				m.RosterServiceMock.EXPECT().
					ListEmployees(gomock.Any()).
					Return(nil, errors.New("database error")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)

				assert.Equal(t, "❌ Error listing employees", response.Text)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := test.CreateSlackRequest(t, "/roster", "employees", "C123456789", "U987654321", test.SigningSecret)
			resp := test.CreateTestRecorder()
			handler.HandleSlashCommand(resp, req)

			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Help(t *testing.T) {
	for _, text := range []string{"help", ""} {
		t.Run("Should show help for "+text, func(t *testing.T) {
			_, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			req := test.CreateSlackRequest(t, "/roster", text, "C123456789", "U987654321", test.SigningSecret)
			resp := test.CreateTestRecorder()
			handler.HandleSlashCommand(resp, req)

			response := decodeResponse(t, resp)
			assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
			assert.Contains(t, response.Text, "/roster generate")
		})
	}
}

func TestSlackHandler_HandleSlashCommand_UnknownCommand(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/roster", "rotate", "C123456789", "U987654321", test.SigningSecret)
	resp := test.CreateTestRecorder()
	handler.HandleSlashCommand(resp, req)

	response := decodeResponse(t, resp)
	assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
	assert.Equal(t, "❌ unknown command: rotate", response.Text)
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/roster", "help", "C123456789", "U987654321", "wrong-secret")
	resp := test.CreateTestRecorder()
	handler.HandleSlashCommand(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestSlackHandler_HandleSlashCommand_MissingSignatureHeaders(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/roster", "help", "C123456789", "U987654321", test.SigningSecret)
	req.Header.Del("X-Slack-Request-Timestamp")
	resp := test.CreateTestRecorder()
	handler.HandleSlashCommand(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
