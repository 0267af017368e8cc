package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rebalance adjusts lot quantities so that the per-ticker value shares match
// the target weights at the closing prices of the rebalance date.
//
// weights is one integer percentage per ticker, aligned with the order of
// p.Distribution(on), and must sum to exactly 100. The total portfolio value
// is computed once, before any mutation. Shortfalls are bought as a lot dated
// at the rebalance date; excesses are sold oldest lot first. All prices are
// fetched before the first mutation, so a missing quote aborts the whole
// operation with the portfolio unchanged.
func Rebalance(p *Portfolio, on Date, weights []int, quotes QuoteService) (*Portfolio, error) {
	holdings := p.Distribution(on)
	if len(holdings) < 2 {
		return p, fmt.Errorf("%w: %q holds %d ticker(s) on %s",
			ErrInsufficientDiversification, p.Name(), len(holdings), on)
	}
	if len(weights) != len(holdings) {
		return p, fmt.Errorf("%w: %d weights for %d holdings",
			ErrInvalidWeights, len(weights), len(holdings))
	}
	sum := 0
	for _, w := range weights {
		sum += w
	}
	if sum != 100 {
		return p, fmt.Errorf("%w: weights sum to %d, want 100", ErrInvalidWeights, sum)
	}
	if err := p.checkOrder(on); err != nil {
		return p, err
	}

	// Fetch every price up front: a missing quote must abort before the
	// first mutation.
	prices := make([]Money, len(holdings))
	total := M(decimal.Zero, USD)
	for i, h := range holdings {
		close, err := quotes.Close(h.Ticker, on)
		if err != nil {
			return p, fmt.Errorf("rebalancing %s on %s: %w", h.Ticker, on, err)
		}
		prices[i] = M(decimal.NewFromFloat(close), USD)
		total = total.Add(prices[i].Mul(h.Shares))
	}

	next := p
	for i, h := range holdings {
		targetValue := total.Mul(Q(weights[i])).Div(Q(100))
		targetShares := targetValue.DivPrice(prices[i])

		var err error
		switch {
		case targetShares.GreaterThan(h.Shares):
			next, err = next.AddLot(h.Ticker, targetShares.Sub(h.Shares), on)
		case targetShares.LessThan(h.Shares):
			next, err = next.Sell(h.Ticker, h.Shares.Sub(targetShares), on)
		}
		if err != nil {
			return p, fmt.Errorf("rebalancing %s: %w", h.Ticker, err)
		}
	}
	// A rebalance is a dated event even when every holding is already at its
	// target: later transactions must not be dated before it.
	if next == p {
		next = p.clone()
	}
	next.lastTransaction = on
	return next, nil
}
