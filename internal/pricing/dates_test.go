package pricing

import (
	"errors"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected []string
	}{
		{"Single day", "2024-07-01", "2024-07-01", []string{"2024-07-01"}},
		{"Short range", "2024-07-01", "2024-07-03", []string{"2024-07-01", "2024-07-02", "2024-07-03"}},
		{"Start after end", "2024-07-05", "2024-07-01", []string{}},
		{"Year wraparound", "2024-12-30", "2025-01-02", []string{"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02"}},
		{"Leap day included", "2024-02-28", "2024-03-01", []string{"2024-02-28", "2024-02-29", "2024-03-01"}},
		{"Non-leap February", "2023-02-28", "2023-03-01", []string{"2023-02-28", "2023-03-01"}},
		{"European DST switch", "2024-03-30", "2024-04-01", []string{"2024-03-30", "2024-03-31", "2024-04-01"}},
		{"US DST switch", "2024-11-02", "2024-11-04", []string{"2024-11-02", "2024-11-03", "2024-11-04"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := ExpandRange(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, days)
		})
	}
}

func TestExpandRange_Properties(t *testing.T) {
	start := civil.Date{Year: 2023, Month: 11, Day: 15}
	for n := 0; n < 500; n += 37 {
		end := start.AddDays(n)
		days := ExpandDates(start, end)

		assert.Len(t, days, n+1)
		assert.Equal(t, start, days[0])
		assert.Equal(t, end, days[len(days)-1])
		for i := 1; i < len(days); i++ {
			assert.Equal(t, 1, days[i].DaysSince(days[i-1]), "gap between %s and %s", days[i-1], days[i])
		}
	}
}

func TestExpandRange_InvalidInput(t *testing.T) {
	for _, input := range [][2]string{
		{"2024/07/01", "2024-07-02"},
		{"2024-07-01", "2024-02-30"},
		{"", "2024-07-02"},
		{"2024-13-01", "2024-13-02"},
	} {
		_, err := ExpandRange(input[0], input[1])
		require.Error(t, err, "input %v", input)

		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestNewRentalWindow(t *testing.T) {
	t.Run("Valid window", func(t *testing.T) {
		w, err := NewRentalWindow("2024-07-01", "2024-07-05")
		require.NoError(t, err)
		assert.Equal(t, 5, w.Len())
		assert.Len(t, w.Days(), 5)
	})

	t.Run("Same day", func(t *testing.T) {
		w, err := NewRentalWindow("2024-07-01", "2024-07-01")
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-07-01"}, w.Days())
	})

	t.Run("Return before pickup", func(t *testing.T) {
		_, err := NewRentalWindow("2024-07-05", "2024-07-01")
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "return_date")
	})

	t.Run("Malformed pickup", func(t *testing.T) {
		_, err := NewRentalWindow("07-01-2024", "2024-07-05")
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "pickup_date")
	})
}
