package config

import (
	"time"

	"max.ks1230/daily-limits/internal/entity/currency"
)

const (
	defaultTimezone = "Europe/Moscow"
	defaultJournal  = "data/journal.yaml"
)

type AppConfig struct {
	TimezoneName  string   `yaml:"timezone"`
	CaloriesDaily float64  `yaml:"calories-limit"`
	CashDaily     float64  `yaml:"cash-limit"`
	CurrencyCodes []string `yaml:"currencies"`
	JournalPath   string   `yaml:"journal"`
}

func (s *AppConfig) setDefaults() {
	if s.TimezoneName == "" {
		s.TimezoneName = defaultTimezone
	}
	if len(s.CurrencyCodes) == 0 {
		s.CurrencyCodes = currency.Currencies
	}
	if s.JournalPath == "" {
		s.JournalPath = defaultJournal
	}
}

// Location falls back to UTC when the zone database has no such name.
func (s *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.TimezoneName)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s *AppConfig) CaloriesLimit() float64 {
	return s.CaloriesDaily
}

func (s *AppConfig) CashLimit() float64 {
	return s.CashDaily
}

func (s *AppConfig) Currencies() []string {
	return s.CurrencyCodes
}

func (s *AppConfig) Journal() string {
	return s.JournalPath
}
