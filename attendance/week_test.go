package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekOf_EveryWeekday(t *testing.T) {
	// 2024-06-03 is a Monday
	for offset := 0; offset < 7; offset++ {
		day := time.Date(2024, 6, 3+offset, 15, 30, 0, 0, time.UTC)
		t.Run(day.Weekday().String(), func(t *testing.T) {
			w := WeekOf(day)
			assert.Equal(t, "2024-06-03", w.Start)
			assert.Equal(t, "2024-06-09", w.End)
			assert.True(t, w.Contains(DateOf(day)))
		})
	}
}

func TestWeekOf_SundayEndsItsOwnWeek(t *testing.T) {
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	w := WeekOf(sunday)
	assert.Equal(t, WeekWindow{Start: "2024-06-03", End: "2024-06-09"}, w)
}

func TestWeekOf_StartIsMondayEndIsSunday(t *testing.T) {
	day := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 400; i++ {
		d := day.AddDate(0, 0, i)
		w := WeekOf(d)

		start, err := time.Parse(DateLayout, w.Start)
		require.NoError(t, err)
		end, err := time.Parse(DateLayout, w.End)
		require.NoError(t, err)

		assert.Equal(t, time.Monday, start.Weekday(), "start for %s", DateOf(d))
		assert.Equal(t, time.Sunday, end.Weekday(), "end for %s", DateOf(d))
		assert.Equal(t, start.AddDate(0, 0, 6), end)
		assert.True(t, w.Contains(DateOf(d)), "%s not in %+v", DateOf(d), w)
	}
}

func TestWeekOf_CrossesYearBoundary(t *testing.T) {
	w := WeekOf(time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-12-30", w.Start)
	assert.Equal(t, "2025-01-05", w.End)
}

func TestWeekOf_UsesLocationCalendar(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)

	// Sunday 20:00 UTC is already Monday morning in Seoul
	instant := time.Date(2024, 6, 9, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-06-03", WeekOf(instant).Start)
	assert.Equal(t, "2024-06-10", WeekOf(instant.In(seoul)).Start)
}

func TestWeekWindow_ContainsIsInclusive(t *testing.T) {
	w := WeekWindow{Start: "2024-06-03", End: "2024-06-09"}

	assert.True(t, w.Contains("2024-06-03"))
	assert.True(t, w.Contains("2024-06-09"))
	assert.False(t, w.Contains("2024-06-02"))
	assert.False(t, w.Contains("2024-06-10"))
}
