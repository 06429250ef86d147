package record

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/daily-limits/internal/model/customerr"
)

func moscow(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Skip("no tzdata for Europe/Moscow")
	}
	return loc
}

func Test_OnParse_ShouldKeepCalendarDate(t *testing.T) {
	loc := moscow(t)

	rec, err := Parse(100, "lunch", "15.10.2026", loc)

	require.NoError(t, err)
	assert.Equal(t, 100.0, rec.Amount())
	assert.Equal(t, "lunch", rec.Comment())
	assert.Equal(t, time.Date(2026, time.October, 15, 0, 0, 0, 0, loc), rec.Date())
	assert.Equal(t, time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC), rec.Day())
}

func Test_OnParse_ShouldRejectBadDates(t *testing.T) {
	for _, date := range []string{
		"31.02.2024",
		"32.01.2024",
		"01.13.2024",
		"1.2.2024",
		"01.02.24",
		"2024-02-01",
		"01/02/2024",
		"",
		"01.02.2024 ",
	} {
		t.Run(date, func(t *testing.T) {
			_, err := Parse(100, "x", date, time.UTC)

			var formatErr *customerr.DateFormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, date, formatErr.Value)
		})
	}
}

func Test_OnParse_ShouldAcceptLeapDay(t *testing.T) {
	rec, err := Parse(1, "", "29.02.2024", time.UTC)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), rec.Date())
}

func Test_OnNew_ShouldDropTimeOfDay(t *testing.T) {
	rec := New(-5.5, "", time.Date(2026, time.October, 15, 23, 59, 59, 0, time.UTC))

	assert.Equal(t, -5.5, rec.Amount())
	assert.Empty(t, rec.Comment())
	assert.Equal(t, time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC), rec.Date())
}

func Test_OnNow_ShouldUseCurrentDateInLocation(t *testing.T) {
	before := Day(time.Now().UTC())
	rec := Now(1, "", time.UTC)
	after := Day(time.Now().UTC())

	assert.True(t, rec.Day().Equal(before) || rec.Day().Equal(after))
}
