package calculator

import (
	"sync"
	"time"

	"max.ks1230/daily-limits/internal/entity/record"
)

const weekDays = 7

// Calculator sums records against a daily limit. Aggregates are computed
// from scratch on every call and never change state. Safe for concurrent use.
type Calculator struct {
	mu      sync.RWMutex
	limit   float64
	records []record.Record
}

func New(limit float64) *Calculator {
	return &Calculator{
		limit:   limit,
		records: make([]record.Record, 0),
	}
}

func (c *Calculator) AddRecord(rec record.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, rec)
}

func (c *Calculator) Limit() float64 {
	return c.limit
}

func (c *Calculator) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.records)
}

// Records returns a copy of the collection in insertion order.
func (c *Calculator) Records() []record.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res := make([]record.Record, len(c.records))
	copy(res, c.records)
	return res
}

// TodayStats sums amounts dated on the calendar day of asOf.
func (c *Calculator) TodayStats(asOf time.Time) float64 {
	today := record.Day(asOf)
	return c.sum(func(day time.Time) bool {
		return day.Equal(today)
	})
}

// WeekStats sums amounts dated within (asOf-7 days, asOf].
func (c *Calculator) WeekStats(asOf time.Time) float64 {
	today := record.Day(asOf)
	weekAgo := today.AddDate(0, 0, -weekDays)
	return c.sum(func(day time.Time) bool {
		return day.After(weekAgo) && !day.After(today)
	})
}

// Remains is the limit minus today's total; negative means over the limit.
func (c *Calculator) Remains(asOf time.Time) float64 {
	return c.limit - c.TodayStats(asOf)
}

func (c *Calculator) sum(match func(day time.Time) bool) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0.0
	for _, rec := range c.records {
		if match(rec.Day()) {
			total += rec.Amount()
		}
	}
	return total
}
