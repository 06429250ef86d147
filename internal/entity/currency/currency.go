package currency

import (
	"github.com/shopspring/decimal"
	"max.ks1230/daily-limits/internal/model/customerr"
)

const (
	RUB = "rub"
	USD = "usd"
	EUR = "eur"
)

const (
	rubRate = 1
	usdRate = 73.59
	eurRate = 87.98
)

const displayPlaces = 2

var Currencies = []string{RUB, USD, EUR}

type Currency struct {
	Code  string
	Label string
	// Rate is the price of one unit in rubles.
	Rate float64
}

var table = map[string]Currency{
	RUB: {Code: RUB, Label: "руб", Rate: rubRate},
	USD: {Code: USD, Label: "USD", Rate: usdRate},
	EUR: {Code: EUR, Label: "Euro", Rate: eurRate},
}

func Lookup(code string) (Currency, error) {
	c, ok := table[code]
	if !ok {
		return Currency{}, &customerr.UnsupportedCurrencyError{Code: code}
	}
	return c, nil
}

// FromBase converts a ruble amount into this currency, rounded half away
// from zero to two decimal places.
func (c Currency) FromBase(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).
		Div(decimal.NewFromFloat(c.Rate)).
		Round(displayPlaces)
}
