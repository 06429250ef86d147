package cash

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/daily-limits/internal/entity/currency"
)

const (
	remainsMessage = "На сегодня осталось %s %s"
	noMoneyMessage = "Денег нет, держись"
	debtMessage    = "Денег нет, держись: твой долг - %s %s"
)

type remainsCalculator interface {
	Remains(asOf time.Time) float64
}

type Reporter struct {
	calc remainsCalculator
}

func NewReporter(calc remainsCalculator) *Reporter {
	return &Reporter{calc: calc}
}

// Remained validates the currency before touching the records.
func (r *Reporter) Remained(asOf time.Time, code string) (string, error) {
	curr, err := currency.Lookup(code)
	if err != nil {
		return "", errors.Wrap(err, "cash remained")
	}
	return render(r.calc.Remains(asOf), curr), nil
}

func Format(remains float64, code string) (string, error) {
	curr, err := currency.Lookup(code)
	if err != nil {
		return "", errors.Wrap(err, "format cash")
	}
	return render(remains, curr), nil
}

func render(remains float64, curr currency.Currency) string {
	if remains == 0 {
		return noMoneyMessage
	}

	amount := curr.FromBase(math.Abs(remains)).String()
	if remains > 0 {
		return fmt.Sprintf(remainsMessage, amount, curr.Label)
	}
	return fmt.Sprintf(debtMessage, amount, curr.Label)
}
