package folio

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Portfolio is an ordered ledger of lots plus transaction-order state.
//
// A Portfolio is a value: every mutation returns a new *Portfolio and leaves
// the receiver untouched, so a failed operation is observably a no-op and
// callers must adopt the returned state. Lots are kept in insertion order,
// which is also purchase-date order because the chronological-order invariant
// only accepts transactions with non-decreasing dates.
type Portfolio struct {
	name            string
	lots            []Lot
	lastTransaction Date // zero means no constraint yet
}

// NewPortfolio creates an empty portfolio with a name.
func NewPortfolio(name string) *Portfolio {
	return &Portfolio{name: name}
}

// Name returns the portfolio's name, unique within its repository.
func (p *Portfolio) Name() string { return p.name }

// Size returns the number of lots in the ledger.
func (p *Portfolio) Size() int { return len(p.lots) }

// LastTransaction returns the date of the last accepted transaction, zero
// when no transaction was accepted yet.
func (p *Portfolio) LastTransaction() Date { return p.lastTransaction }

// Lot returns the lot at a ledger position.
func (p *Portfolio) Lot(i int) (Lot, error) {
	if i < 0 || i >= len(p.lots) {
		return Lot{}, fmt.Errorf("%w: index %d out of range [0,%d)", ErrLotNotFound, i, len(p.lots))
	}
	return p.lots[i], nil
}

// Lots returns an iterator over all lots in ledger order.
func (p *Portfolio) Lots() iter.Seq2[int, Lot] {
	return func(yield func(int, Lot) bool) {
		for i, l := range p.lots {
			if !yield(i, l) {
				return
			}
		}
	}
}

// ContainsTicker reports whether any lot holds this ticker.
func (p *Portfolio) ContainsTicker(ticker string) bool {
	return slices.ContainsFunc(p.lots, func(l Lot) bool { return l.Matches(ticker) })
}

// clone returns a copy whose lot slice is safe to mutate.
func (p *Portfolio) clone() *Portfolio {
	return &Portfolio{
		name:            p.name,
		lots:            slices.Clone(p.lots),
		lastTransaction: p.lastTransaction,
	}
}

// checkOrder enforces the chronological-order invariant: a transaction dated
// before the last accepted one is rejected.
func (p *Portfolio) checkOrder(on Date) error {
	if !p.lastTransaction.IsZero() && on.Before(p.lastTransaction) {
		return fmt.Errorf("%w: %s is before last transaction on %s",
			ErrOutOfOrderTransaction, on, p.lastTransaction)
	}
	return nil
}

// AddLot records a purchase of quantity shares of ticker on a date. If a lot
// for the same (ticker, date) pair exists, the quantity merges into it,
// otherwise a new lot is appended.
func (p *Portfolio) AddLot(ticker string, quantity Quantity, on Date) (*Portfolio, error) {
	if quantity.IsNegative() {
		return p, fmt.Errorf("%w: buy %s shares of %s", ErrInvalidQuantity, quantity, ticker)
	}
	if err := p.checkOrder(on); err != nil {
		return p, err
	}

	next := p.clone()
	merged := false
	for i, l := range next.lots {
		if l.Mergeable(ticker, on) {
			grown, err := l.AddShares(quantity)
			if err != nil {
				return p, err
			}
			next.lots[i] = grown
			merged = true
			break
		}
	}
	if !merged {
		next.lots = append(next.lots, NewLot(ticker, quantity, on))
	}
	next.lastTransaction = on
	return next, nil
}

// RemoveLot sells quantity shares out of one concrete lot on a date.
//
// index -1 resolves the lot by ticker lookup: the earliest lot of the ticker
// in ledger order. When several lots match, callers that want a different lot
// must pass its index, or use Sell to draw from all of them oldest first.
// If removeAll is set, or the requested quantity equals the lot's quantity,
// the lot is deleted from the ledger; otherwise it is decremented.
func (p *Portfolio) RemoveLot(ticker string, quantity Quantity, index int, removeAll bool, on Date) (*Portfolio, error) {
	if quantity.IsNegative() {
		return p, fmt.Errorf("%w: sell %s shares of %s", ErrInvalidQuantity, quantity, ticker)
	}
	if err := p.checkOrder(on); err != nil {
		return p, err
	}

	if index == -1 {
		index = slices.IndexFunc(p.lots, func(l Lot) bool { return l.Matches(ticker) })
		if index == -1 {
			return p, fmt.Errorf("%w: no lot of %s in portfolio %q", ErrLotNotFound, ticker, p.name)
		}
	}
	if index < 0 || index >= len(p.lots) {
		return p, fmt.Errorf("%w: index %d out of range [0,%d)", ErrLotNotFound, index, len(p.lots))
	}
	target := p.lots[index]
	if !target.Matches(ticker) {
		return p, fmt.Errorf("%w: lot %d holds %s, not %s", ErrLotNotFound, index, target.Ticker, ticker)
	}
	if target.Quantity.LessThan(quantity) {
		return p, fmt.Errorf("%w: lot holds %s shares of %s, asked to sell %s",
			ErrInsufficientShares, target.Quantity, ticker, quantity)
	}

	next := p.clone()
	if removeAll || target.Quantity.Equal(quantity) {
		next.lots = slices.Delete(next.lots, index, index+1)
	} else {
		shrunk, err := target.SellShares(quantity)
		if err != nil {
			return p, err
		}
		next.lots[index] = shrunk
	}
	next.lastTransaction = on
	return next, nil
}

// Sell draws quantity shares of ticker from the lots eligible on a date,
// oldest purchase first. A fully consumed lot is removed, the last lot
// touched may be partially decremented.
//
// Sufficiency is checked against the sum of all eligible lots before any
// mutation, so a failing sell leaves the ledger unchanged.
func (p *Portfolio) Sell(ticker string, quantity Quantity, on Date) (*Portfolio, error) {
	if quantity.IsNegative() {
		return p, fmt.Errorf("%w: sell %s shares of %s", ErrInvalidQuantity, quantity, ticker)
	}
	if err := p.checkOrder(on); err != nil {
		return p, err
	}

	eligible := p.Indexes(ticker, on)
	if len(eligible) == 0 {
		return p, fmt.Errorf("%w: no lot of %s purchased on or before %s", ErrLotNotFound, ticker, on)
	}
	if p.TotalShares(ticker, on).LessThan(quantity) {
		return p, fmt.Errorf("%w: %s shares of %s eligible on %s, asked to sell %s",
			ErrInsufficientShares, p.TotalShares(ticker, on), ticker, on, quantity)
	}

	next := p.clone()
	remaining := quantity
	consumed := make([]int, 0, len(eligible))
	for _, i := range eligible {
		if remaining.IsZero() {
			break
		}
		l := next.lots[i]
		if l.Quantity.GreaterThan(remaining) {
			shrunk, err := l.SellShares(remaining)
			if err != nil {
				return p, err
			}
			next.lots[i] = shrunk
			remaining = Q(0)
		} else {
			remaining = remaining.Sub(l.Quantity)
			consumed = append(consumed, i)
		}
	}
	// Delete fully consumed lots back to front so positions stay valid.
	for j := len(consumed) - 1; j >= 0; j-- {
		i := consumed[j]
		next.lots = slices.Delete(next.lots, i, i+1)
	}
	next.lastTransaction = on
	return next, nil
}

// Indexes returns, in ledger order, the positions of all lots of ticker
// purchased on or before the date. It is both a read query and the candidate
// set for multi-lot sells.
func (p *Portfolio) Indexes(ticker string, on Date) []int {
	var indexes []int
	for i, l := range p.lots {
		if l.Matches(ticker) && !l.Purchased.After(on) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// TotalShares sums the quantities of all lots of ticker purchased on or
// before the date.
func (p *Portfolio) TotalShares(ticker string, on Date) Quantity {
	var total Quantity
	for _, i := range p.Indexes(ticker, on) {
		total = total.Add(p.lots[i].Quantity)
	}
	return total
}

// Holding is a per-ticker aggregate of shares, the unit of valuation and
// rebalancing. Purchase-date granularity is deliberately discarded.
type Holding struct {
	Ticker string
	Shares Quantity
}

// Distribution aggregates all lots purchased on or before the date by
// ticker, one entry per distinct ticker in first-seen ledger order.
func (p *Portfolio) Distribution(on Date) []Holding {
	var holdings []Holding
	pos := make(map[string]int)
	for _, l := range p.lots {
		if l.Purchased.After(on) {
			continue
		}
		key := strings.ToUpper(l.Ticker)
		if i, seen := pos[key]; seen {
			holdings[i].Shares = holdings[i].Shares.Add(l.Quantity)
		} else {
			pos[key] = len(holdings)
			holdings = append(holdings, Holding{Ticker: l.Ticker, Shares: l.Quantity})
		}
	}
	return holdings
}
