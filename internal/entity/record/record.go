package record

import (
	"time"

	"github.com/jinzhu/now"
	"max.ks1230/daily-limits/internal/model/customerr"
)

const DateLayout = "02.01.2006"

// Record is a dated amount with a free-text comment. Fields are read-only
// after construction.
type Record struct {
	amount  float64
	comment string
	date    time.Time
}

func New(amount float64, comment string, date time.Time) Record {
	return Record{
		amount:  amount,
		comment: comment,
		date:    now.With(date).BeginningOfDay(),
	}
}

func Now(amount float64, comment string, loc *time.Location) Record {
	return New(amount, comment, time.Now().In(loc))
}

func Parse(amount float64, comment, date string, loc *time.Location) (Record, error) {
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return Record{}, &customerr.DateFormatError{Value: date, Err: err}
	}
	return New(amount, comment, t), nil
}

func (r Record) Amount() float64 {
	return r.amount
}

func (r Record) Comment() string {
	return r.comment
}

func (r Record) Date() time.Time {
	return r.date
}

// Day returns the record's calendar date as midnight UTC, so that dates from
// different locations compare by day.
func (r Record) Day() time.Time {
	return Day(r.date)
}

func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
