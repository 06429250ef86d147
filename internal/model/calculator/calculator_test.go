package calculator

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"max.ks1230/daily-limits/internal/entity/record"
)

var today = time.Date(2026, time.October, 15, 13, 45, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return today.AddDate(0, 0, -n)
}

func Test_OnNewCalculator_ShouldHaveEmptyStats(t *testing.T) {
	calc := New(1000)

	assert.Equal(t, 0.0, calc.TodayStats(today))
	assert.Equal(t, 0.0, calc.WeekStats(today))
	assert.Equal(t, 1000.0, calc.Remains(today))
	assert.Equal(t, 0, calc.Len())
}

func Test_OnTodayRecord_ShouldReduceRemains(t *testing.T) {
	calc := New(1000)
	calc.AddRecord(record.New(500, "lunch", today))

	assert.Equal(t, 500.0, calc.TodayStats(today))
	assert.Equal(t, 500.0, calc.Remains(today))
}

func Test_OnTodayStats_ShouldCountOnlyToday(t *testing.T) {
	calc := New(0)
	calc.AddRecord(record.New(100, "", today))
	calc.AddRecord(record.New(50.5, "", today.Add(-13*time.Hour)))
	calc.AddRecord(record.New(300, "", daysAgo(1)))
	calc.AddRecord(record.New(700, "", daysAgo(-1)))

	assert.Equal(t, 150.5, calc.TodayStats(today))
	assert.Equal(t, -150.5, calc.Remains(today))
}

func Test_OnWeekStats_ShouldRespectWindowBounds(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		included bool
	}{
		{name: "today", date: today, included: true},
		{name: "yesterday", date: daysAgo(1), included: true},
		{name: "six days ago", date: daysAgo(6), included: true},
		{name: "seven days ago", date: daysAgo(7), included: false},
		{name: "eight days ago", date: daysAgo(8), included: false},
		{name: "tomorrow", date: daysAgo(-1), included: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := New(0)
			calc.AddRecord(record.New(10, tt.name, tt.date))

			want := 0.0
			if tt.included {
				want = 10
			}
			assert.Equal(t, want, calc.WeekStats(today))
		})
	}
}

func Test_OnWeekStats_ShouldSumWindow(t *testing.T) {
	calc := New(0)
	for i := 0; i < 10; i++ {
		calc.AddRecord(record.New(float64(i+1), "", daysAgo(i)))
	}

	// days 0..6 carry amounts 1..7
	assert.Equal(t, 28.0, calc.WeekStats(today))
	assert.Equal(t, 1.0, calc.TodayStats(today))
}

func Test_OnRepeatedQueries_ShouldReturnSameResult(t *testing.T) {
	calc := New(100)
	calc.AddRecord(record.New(30, "", today))
	calc.AddRecord(record.New(20, "", daysAgo(2)))

	for i := 0; i < 3; i++ {
		assert.Equal(t, 30.0, calc.TodayStats(today))
		assert.Equal(t, 50.0, calc.WeekStats(today))
		assert.Equal(t, 70.0, calc.Remains(today))
	}
}

func Test_OnRecords_ShouldKeepInsertionOrderAndDuplicates(t *testing.T) {
	calc := New(0)
	first := record.New(1, "a", today)
	calc.AddRecord(first)
	calc.AddRecord(record.New(2, "b", today))
	calc.AddRecord(first)

	recs := calc.Records()
	assert.Len(t, recs, 3)
	assert.Equal(t, "a", recs[0].Comment())
	assert.Equal(t, "b", recs[1].Comment())
	assert.Equal(t, "a", recs[2].Comment())

	recs[0] = record.New(99, "changed", today)
	assert.Equal(t, "a", calc.Records()[0].Comment())
}

func Test_OnConcurrentAdds_ShouldKeepEveryRecord(t *testing.T) {
	const writers, perWriter = 8, 100
	calc := New(0)

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				calc.AddRecord(record.New(1, "", today))
				_ = calc.WeekStats(today)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, calc.Len())
	assert.Equal(t, float64(writers*perWriter), calc.TodayStats(today))
}
