package chrono_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/chrono"
	"github.com/blockberries/chrono/calendar"
	chronotest "github.com/blockberries/chrono/testing"
)

func mustDate(t *testing.T, year int64, month calendar.Month, day int64) calendar.LocalDate {
	t.Helper()
	d, err := calendar.LocalDateOf(year, month, day)
	require.NoError(t, err)
	return d
}

func TestAdd_KeepsConcreteType(t *testing.T) {
	start := mustDate(t, 2024, calendar.January, 31)

	end, err := chrono.Add(start, chrono.PeriodOfMonths(1))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", end.String())

	back, err := chrono.Subtract(end, chrono.PeriodOfMonths(1))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-29", back.String())

	noon := start.AtTime(calendar.Noon)
	later, err := chrono.Add(noon, chrono.DurationOfHours(36))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-02T00:00", later.String())

	earlier, err := chrono.Subtract(later, chrono.DurationOfSeconds(0, 1))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01T23:59:59.999999", earlier.String())
}

func TestAdd_PropagatesUnsupportedUnit(t *testing.T) {
	_, err := chrono.Add(calendar.Noon, chrono.PeriodOfDays(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, chrono.ErrUnsupportedUnit)

	u, ok := chrono.IsUnsupportedUnit(err)
	require.True(t, ok)
	assert.Equal(t, chrono.TemporalUnit(chrono.Days), u.Unit)
}

func TestAdd_RejectsTypeChange(t *testing.T) {
	m := &chronotest.MockTemporal{
		PlusFn: func(int64, chrono.TemporalUnit) (chrono.Temporal, error) { return calendar.Midnight, nil },
	}
	_, err := chrono.Add(m, chrono.PeriodOfDays(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, chrono.ErrDateTime)
}

func TestAdd_Overflow(t *testing.T) {
	d := mustDate(t, 2024, calendar.January, 1)
	_, err := chrono.Add(d, chrono.PeriodOfYears(chrono.MaxYear))
	require.Error(t, err)
	assert.ErrorIs(t, err, chrono.ErrInvalidArgument)

	_, err = d.Minus(-1<<63, chrono.Days)
	assert.ErrorIs(t, err, chrono.ErrArithmeticOverflow)
}
