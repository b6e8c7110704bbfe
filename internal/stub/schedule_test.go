package stub

import (
	"errors"
	"testing"

	"studywise-client/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicsN(n int) []dto.Topic {
	out := make([]dto.Topic, n)
	for i := range out {
		out[i] = dto.Topic{Id: string(rune('a' + i)), Name: "Topic " + string(rune('A'+i)), EstimatedHours: 2, SequenceOrder: i}
	}
	return out
}

func TestGenerateScheduleSpreadsRemainderEarly(t *testing.T) {
	days, err := GenerateSchedule(topicsN(5), "2026-03-01", "2026-03-02", 2)
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, "2026-03-01", days[0].Date)
	assert.Len(t, days[0].Topics, 3)
	assert.Equal(t, 6.0, days[0].TotalHours)

	assert.Equal(t, "2026-03-02", days[1].Date)
	assert.Len(t, days[1].Topics, 2)
	assert.Equal(t, "e", days[1].Topics[1].Id)
}

func TestGenerateScheduleFewerTopicsThanDays(t *testing.T) {
	days, err := GenerateSchedule(topicsN(2), "2026-03-01", "2026-03-10", 2)
	require.NoError(t, err)
	require.Len(t, days, 2, "days after the last topic are not emitted")
	assert.Equal(t, "2026-03-02", days[1].Date)
}

func TestGenerateScheduleSameDay(t *testing.T) {
	days, err := GenerateSchedule(topicsN(3), "2026-03-01", "2026-03-01", 2)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Len(t, days[0].Topics, 3)
}

func TestGenerateScheduleZeroEstimateUsesHoursPerDay(t *testing.T) {
	topics := []dto.Topic{{Id: "x", Name: "Unestimated"}}
	days, err := GenerateSchedule(topics, "2026-03-01", "2026-03-01", 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, days[0].Topics[0].Hours)
	assert.Equal(t, 3.0, days[0].TotalHours)
}

func TestGenerateScheduleRejects(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantMsg    string
	}{
		{"end before start", "2026-03-10", "2026-03-01", "End date must be after start date"},
		{"too long", "2026-01-01", "2027-01-01", "Study plan cannot exceed 365 days"},
		{"bad start", "03/01/2026", "2026-03-10", "Invalid date format. Use YYYY-MM-DD"},
		{"bad end", "2026-03-01", "soon", "Invalid date format. Use YYYY-MM-DD"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateSchedule(topicsN(3), tc.start, tc.end, 2)
			require.Error(t, err)

			var se *StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, 400, se.Code)
			assert.Contains(t, se.Message, tc.wantMsg)
		})
	}
}

func TestGenerateScheduleFullYearAllowed(t *testing.T) {
	days, err := GenerateSchedule(topicsN(3), "2026-01-01", "2026-12-31", 2)
	require.NoError(t, err)
	assert.Len(t, days, 3)
}
