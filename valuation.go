package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// HoldingValue is one line of a value distribution: a ticker's aggregate
// monetary value on a date and its share of the portfolio total.
type HoldingValue struct {
	Ticker  string
	Value   Money
	Percent Percent
}

// Value computes the total monetary value of the portfolio on a date: the
// sum over the distribution of closing price times aggregate quantity.
// The accumulator is exact decimal; an empty portfolio is worth zero.
func Value(p *Portfolio, on Date, quotes QuoteService) (Money, error) {
	total := M(decimal.Zero, USD)
	for _, h := range p.Distribution(on) {
		price, err := quotes.Close(h.Ticker, on)
		if err != nil {
			return M(decimal.Zero, USD), fmt.Errorf("valuing %s on %s: %w", h.Ticker, on, err)
		}
		total = total.Add(M(decimal.NewFromFloat(price), USD).Mul(h.Shares))
	}
	return total, nil
}

// Distribution computes the per-ticker monetary value and percentage share
// of the portfolio on a date, in the same order as Portfolio.Distribution.
func Distribution(p *Portfolio, on Date, quotes QuoteService) ([]HoldingValue, error) {
	total, err := Value(p, on, quotes)
	if err != nil {
		return nil, err
	}
	if total.IsZero() {
		return nil, fmt.Errorf("%w: %q has no value on %s", ErrEmptyPortfolio, p.Name(), on)
	}

	holdings := p.Distribution(on)
	values := make([]HoldingValue, 0, len(holdings))
	for _, h := range holdings {
		price, err := quotes.Close(h.Ticker, on)
		if err != nil {
			return nil, fmt.Errorf("valuing %s on %s: %w", h.Ticker, on, err)
		}
		value := M(decimal.NewFromFloat(price), USD).Mul(h.Shares)
		values = append(values, HoldingValue{
			Ticker:  h.Ticker,
			Value:   value,
			Percent: value.PercentOf(total),
		})
	}
	return values, nil
}
