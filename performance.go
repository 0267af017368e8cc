package folio

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// maxQuoteWalkback bounds the search for a priced trading day. Ten days
// covers any weekend plus holiday run in practice.
const maxQuoteWalkback = 10

// performanceSteps maps a span in days to the number of samples and the
// backward step between them.
var performanceSteps = map[int]struct {
	samples int
	step    func(Date) Date
}{
	365: {12, func(d Date) Date { return d.AddMonth(-1).EndOfMonth() }},
	180: {12, func(d Date) Date { return d.Add(-14) }},
	90:  {12, func(d Date) Date { return d.Add(-7) }},
	30:  {10, func(d Date) Date { return d.Add(-3) }},
	14:  {14, func(d Date) Date { return d.Add(-1) }},
	5:   {5, func(d Date) Date { return d.Add(-1) }},
}

// Performance builds a value series for the portfolio over a historical
// window ending at anchor, stepping backward with a span-dependent step.
//
// The holdings valued are the fixed snapshot of lots purchased on or before
// anchor: the series answers "what is this snapshot worth historically", not
// what the portfolio actually held at each past date. When a sample date has
// no quoted close (weekend, holiday), the lookup walks back one day at a
// time, up to maxQuoteWalkback days, but the value is recorded under the
// intended sample date so the series keys stay evenly spaced. A sample with
// no close within the walkback window fails with ErrNoPriceData.
func Performance(p *Portfolio, spanDays int, anchor Date, quotes QuoteService) (*History[Money], error) {
	plan, ok := performanceSteps[spanDays]
	if !ok {
		return nil, fmt.Errorf("unsupported span %d days: want 365, 180, 90, 30, 14 or 5", spanDays)
	}

	holdings := p.Distribution(anchor)
	series := &History[Money]{}
	sample := anchor
	for i := 0; i < plan.samples; i++ {
		value := M(decimal.Zero, USD)
		for _, h := range holdings {
			price, err := closeOnOrBefore(quotes, h.Ticker, sample)
			if err != nil {
				return nil, fmt.Errorf("sampling %s at %s: %w", h.Ticker, sample, err)
			}
			value = value.Add(M(decimal.NewFromFloat(price), USD).Mul(h.Shares))
		}
		series.Append(sample, value)
		sample = plan.step(sample)
	}
	return series, nil
}

// closeOnOrBefore returns the close for ticker on the given date, walking
// backward past unpriced days up to maxQuoteWalkback.
func closeOnOrBefore(quotes QuoteService, ticker string, on Date) (float64, error) {
	day := on
	for i := 0; i <= maxQuoteWalkback; i++ {
		price, err := quotes.Close(ticker, day)
		if err == nil {
			return price, nil
		}
		if !errors.Is(err, ErrNoPriceData) {
			return 0, err
		}
		day = day.Add(-1)
	}
	return 0, fmt.Errorf("%w: no close for %s within %d days before %s",
		ErrNoPriceData, ticker, maxQuoteWalkback, on)
}
