package chrono_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/chrono"
)

func TestChronoUnit_Forever(t *testing.T) {
	_, err := chrono.Forever.Duration()
	require.Error(t, err)
	assert.ErrorIs(t, err, chrono.ErrUnsupportedUnit)
	assert.Equal(t, "Unsupported unit: Forever", err.Error())

	assert.False(t, chrono.Forever.IsDateBased())
	assert.False(t, chrono.Forever.IsTimeBased())
	assert.False(t, chrono.Forever.IsDurationEstimated())
}

func TestChronoUnit_Classification(t *testing.T) {
	timeBased := []chrono.ChronoUnit{chrono.Micros, chrono.Millis, chrono.Seconds, chrono.Minutes, chrono.Hours, chrono.HalfDays}
	dateBased := []chrono.ChronoUnit{chrono.Days, chrono.Weeks, chrono.Months, chrono.Years, chrono.Decades, chrono.Centuries, chrono.Millennia}

	for _, u := range timeBased {
		assert.True(t, u.IsTimeBased(), u.String())
		assert.False(t, u.IsDateBased(), u.String())
		assert.False(t, u.IsDurationEstimated(), u.String())
	}
	for _, u := range dateBased {
		assert.True(t, u.IsDateBased(), u.String())
		assert.False(t, u.IsTimeBased(), u.String())
		assert.True(t, u.IsDurationEstimated(), u.String())
	}
	assert.Len(t, chrono.Units(), len(timeBased)+len(dateBased)+1)
}

func TestChronoUnit_Duration(t *testing.T) {
	tests := []struct {
		unit chrono.ChronoUnit
		want chrono.Duration
	}{
		{chrono.Micros, chrono.DurationOfSeconds(0, 1)},
		{chrono.Millis, chrono.DurationOfMillis(1)},
		{chrono.Seconds, chrono.DurationOfSeconds(1, 0)},
		{chrono.Minutes, chrono.DurationOfMinutes(1)},
		{chrono.Hours, chrono.DurationOfHours(1)},
		{chrono.HalfDays, chrono.DurationOfHours(12)},
		{chrono.Days, chrono.DurationOfDays(1)},
		{chrono.Weeks, chrono.DurationOfDays(7)},
		{chrono.Months, chrono.DurationOfSeconds(31_536_000/12, 0)},
		{chrono.Years, chrono.DurationOfDays(365)},
		{chrono.Decades, chrono.DurationOfDays(3650)},
		{chrono.Centuries, chrono.DurationOfDays(36500)},
		{chrono.Millennia, chrono.DurationOfDays(365000)},
	}
	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			got, err := tt.unit.Duration()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChronoUnit_CompareAndNames(t *testing.T) {
	assert.Equal(t, -1, chrono.Seconds.Compare(chrono.Minutes))
	assert.Equal(t, 1, chrono.Years.Compare(chrono.Months))
	assert.Equal(t, 0, chrono.Days.Compare(chrono.Days))

	for _, u := range chrono.Units() {
		got, err := chrono.UnitOf(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}
	_, err := chrono.UnitOf("Fortnights")
	assert.ErrorIs(t, err, chrono.ErrInvalidArgument)

	assert.Equal(t, "ChronoUnit(99)", chrono.ChronoUnit(99).String())
	_, err = chrono.ChronoUnit(99).Duration()
	assert.ErrorIs(t, err, chrono.ErrUnsupportedUnit)
}
