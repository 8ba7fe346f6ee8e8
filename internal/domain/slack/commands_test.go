package slack

import (
	"testing"
	"time"

	"github.com/diegoclair/shift-roster-bot/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{name: "empty is help", text: "  ", wantType: CmdHelp},
		{name: "generate", text: "generate", wantType: CmdGenerate},
		{name: "generate with period", text: "generate 3 2025", wantType: CmdGenerate, wantArgs: []string{"3", "2025"}},
		{name: "gen alias", text: "gen 2025-03", wantType: CmdGenerate, wantArgs: []string{"2025-03"}},
		{name: "show upper case", text: "SHOW 1 2024", wantType: CmdShow, wantArgs: []string{"1", "2024"}},
		{name: "employees", text: "employees", wantType: CmdEmployees},
		{name: "ls alias", text: "ls", wantType: CmdEmployees},
		{name: "help", text: "help", wantType: CmdHelp},
		{name: "unknown", text: "delete everything", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestParsePeriod(t *testing.T) {
	now := time.Date(2024, time.December, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		args    []string
		want    roster.Period
		wantErr bool
	}{
		{name: "defaults to next month", want: roster.Period{Month: 1, Year: 2025}},
		{name: "month and year", args: []string{"2", "2024"}, want: roster.Period{Month: 2, Year: 2024}},
		{name: "iso month", args: []string{"2024-07"}, want: roster.Period{Month: 7, Year: 2024}},
		{name: "month 13", args: []string{"13", "2024"}, wantErr: true},
		{name: "not a number", args: []string{"march", "2024"}, wantErr: true},
		{name: "bad year", args: []string{"3", "next"}, wantErr: true},
		{name: "single token without dash", args: []string{"2024"}, wantErr: true},
		{name: "too many", args: []string{"1", "2", "3"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.args, now)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
