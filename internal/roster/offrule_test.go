package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name        string
		rule        []int
		mode        OffRuleMode
		daysInMonth int
		want        []int
		wantErr     bool
	}{
		{
			name:        "Weekly first cycle day over 30 days",
			rule:        []int{1},
			mode:        WeeklyRecurring{},
			daysInMonth: 30,
			want:        []int{1, 8, 15, 22, 29},
		},
		{
			name:        "Weekly first and last cycle day over 31 days",
			rule:        []int{1, 7},
			mode:        WeeklyRecurring{},
			daysInMonth: 31,
			want:        []int{1, 7, 8, 14, 15, 21, 22, 28, 29},
		},
		{
			name:        "Weekly in February common year",
			rule:        []int{7},
			mode:        WeeklyRecurring{},
			daysInMonth: 28,
			want:        []int{7, 14, 21, 28},
		},
		{
			name:        "Weekly ignores rule order and duplicates",
			rule:        []int{3, 3, 2},
			mode:        WeeklyRecurring{},
			daysInMonth: 14,
			want:        []int{2, 3, 9, 10},
		},
		{
			name:        "Absolute day 31 in 30 day month is empty",
			rule:        []int{31},
			mode:        AbsoluteDay{},
			daysInMonth: 30,
			want:        []int{},
		},
		{
			name:        "Absolute keeps days within the month",
			rule:        []int{30, 1, 15, 31},
			mode:        AbsoluteDay{},
			daysInMonth: 30,
			want:        []int{1, 15, 30},
		},
		{
			name:        "Empty rule in absolute mode",
			mode:        AbsoluteDay{},
			daysInMonth: 31,
			want:        []int{},
		},
		{
			name:        "Empty rule in weekly mode",
			rule:        []int{},
			mode:        WeeklyRecurring{},
			daysInMonth: 31,
			want:        []int{},
		},
		{
			name:        "Weekly rejects 8",
			rule:        []int{1, 8},
			mode:        WeeklyRecurring{},
			daysInMonth: 31,
			wantErr:     true,
		},
		{
			name:        "Weekly rejects 0",
			rule:        []int{0},
			mode:        WeeklyRecurring{},
			daysInMonth: 31,
			wantErr:     true,
		},
		{
			name:        "Absolute rejects 32",
			rule:        []int{32},
			mode:        AbsoluteDay{},
			daysInMonth: 31,
			wantErr:     true,
		},
		{
			name:        "Absolute rejects negative days",
			rule:        []int{-3},
			mode:        AbsoluteDay{},
			daysInMonth: 31,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.rule, tt.mode, tt.daysInMonth)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidOffRule)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestExpand_IsDeterministic(t *testing.T) {
	first, err := Expand([]int{2, 5}, WeeklyRecurring{}, 31)
	require.NoError(t, err)

	second, err := Expand([]int{5, 2}, WeeklyRecurring{}, 31)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExpand_WeeklyIsPeriodic(t *testing.T) {
	for w := 1; w <= 7; w++ {
		got, err := Expand([]int{w}, WeeklyRecurring{}, 31)
		require.NoError(t, err)

		for _, d := range got.Sorted() {
			assert.Equal(t, w, (d-1)%7+1)
			if d+7 <= 31 {
				assert.True(t, got.Contains(d+7), "day %d should repeat at %d", d, d+7)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    OffRuleMode
		wantErr bool
	}{
		{name: "absolute", input: "absolute", want: AbsoluteDay{}},
		{name: "weekly", input: "weekly", want: WeeklyRecurring{}},
		{name: "case and spaces", input: "  Weekly ", want: WeeklyRecurring{}},
		{name: "unknown", input: "monthly", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Name(), got.Name())
		})
	}
}

func TestDaySet_Sorted(t *testing.T) {
	s := DaySet{9: {}, 1: {}, 4: {}}
	assert.Equal(t, []int{1, 4, 9}, s.Sorted())
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(5))
}
