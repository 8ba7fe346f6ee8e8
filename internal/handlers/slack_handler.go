package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/shift-roster-bot/internal/domain"
	"github.com/diegoclair/shift-roster-bot/internal/domain/contract"
	"github.com/diegoclair/shift-roster-bot/internal/domain/service"
	slackcmd "github.com/diegoclair/shift-roster-bot/internal/domain/slack"
	"github.com/diegoclair/shift-roster-bot/internal/logger"
	"github.com/diegoclair/shift-roster-bot/internal/roster"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient   contract.SlackClient
	rosterService contract.RosterService
	signingSecret string
	now           func() time.Time
}

func New(slackClient contract.SlackClient, rosterService contract.RosterService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		rosterService: rosterService,
		signingSecret: signingSecret,
		now:           time.Now,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		logger.Log.Warnf("Rejected slash command with invalid signature: %v", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"command": cmd.Type,
		"channel": s.ChannelID,
		"user":    s.UserID,
	}).Debug("Handling slash command")

	// Handle command
	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdGenerate:
		return h.handleGenerate(ctx, cmd, slashCmd)
	case slackcmd.CmdShow:
		return h.handleShow(ctx, cmd)
	case slackcmd.CmdEmployees:
		return h.handleEmployees(ctx)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleGenerate(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	period, err := slackcmd.ParsePeriod(cmd.Args, h.now())
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	r, err := h.rosterService.GenerateRoster(ctx, period)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error generating roster: %v", err))
	}

	if err := h.rosterService.PublishRoster(ctx, slashCmd.ChannelID, r); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Roster generated but could not be posted: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Roster for %s generated for %d employees.", periodLabel(period), len(r.Rows)),
	}
}

func (h *SlackHandler) handleShow(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	period, err := slackcmd.ParsePeriod(cmd.Args, h.now())
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	r, err := h.rosterService.GetRoster(ctx, period)
	if err != nil {
		return h.createErrorResponse("Error loading roster")
	}

	if r == nil {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("No roster generated for %s yet. Use `/roster generate %d %d` to create it.", periodLabel(period), period.Month, period.Year),
		}
	}

	text, err := service.FormatRoster(r, nil)
	if err != nil {
		return h.createErrorResponse("Error rendering roster")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) handleEmployees(ctx context.Context) *slack.Msg {
	employees, err := h.rosterService.ListEmployees(ctx)
	if err != nil {
		return h.createErrorResponse("Error listing employees")
	}

	if len(employees) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No employees imported. Run `rosterbot import --in master.xlsx` to load the master sheet.",
		}
	}

	var list strings.Builder
	list.WriteString("*Employees:*\n")
	for i, e := range employees {
		fmt.Fprintf(&list, "%d. %s (%s)", i+1, e.Name, e.BaseShift)
		if len(e.OffRule) > 0 {
			days := make([]string, len(e.OffRule))
			for j, d := range e.OffRule {
				days[j] = strconv.Itoa(d)
			}
			fmt.Fprintf(&list, " off: %s", strings.Join(days, ","))
		}
		if e.OffRuleMode != "" {
			fmt.Fprintf(&list, " [%s]", e.OffRuleMode)
		}
		list.WriteString("\n")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         strings.TrimRight(list.String(), "\n"),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func periodLabel(p roster.Period) string {
	name, err := domain.MonthName(p.Month)
	if err != nil {
		return fmt.Sprintf("%d-%02d", p.Year, p.Month)
	}
	return fmt.Sprintf("%s %d", name, p.Year)
}
