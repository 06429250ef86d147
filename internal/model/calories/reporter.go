package calories

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	canEatMessage  = "Сегодня можно съесть что-нибудь ещё, но с общей калорийностью не более %s кКал"
	stopEatMessage = "Хватит есть!"
)

//go:generate minimock -i remainsCalculator -o ../mock/remains_calculator_mock.go -n RemainsCalculatorMock

type remainsCalculator interface {
	Remains(asOf time.Time) float64
}

type Reporter struct {
	calc remainsCalculator
}

func NewReporter(calc remainsCalculator) *Reporter {
	return &Reporter{calc: calc}
}

func (r *Reporter) Remained(asOf time.Time) string {
	return Format(r.calc.Remains(asOf))
}

// Format renders the calorie status. Reaching the limit exactly reads the
// same as exceeding it.
func Format(remains float64) string {
	if remains > 0 {
		return fmt.Sprintf(canEatMessage, decimal.NewFromFloat(remains).String())
	}
	return stopEatMessage
}
