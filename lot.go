package folio

import (
	"fmt"
	"strings"
)

// Lot is a quantity of one ticker purchased on one date. It is an immutable
// value: adjusting shares produces a new Lot, ownership of the old value ends
// at the portfolio boundary.
type Lot struct {
	Ticker    string
	Quantity  Quantity
	Purchased Date
}

// NewLot returns a lot. It does not validate: validation belongs to the
// portfolio operations that create lots.
func NewLot(ticker string, quantity Quantity, purchased Date) Lot {
	return Lot{Ticker: ticker, Quantity: quantity, Purchased: purchased}
}

// Matches reports whether the lot is for this ticker. Ticker comparison is
// case-insensitive everywhere in the ledger.
func (l Lot) Matches(ticker string) bool {
	return strings.EqualFold(l.Ticker, ticker)
}

// Mergeable reports whether another purchase of ticker on day merges into
// this lot rather than opening a new one.
func (l Lot) Mergeable(ticker string, day Date) bool {
	return l.Matches(ticker) && l.Purchased == day
}

// AddShares returns a new lot with the quantity increased.
func (l Lot) AddShares(q Quantity) (Lot, error) {
	if q.IsNegative() {
		return l, fmt.Errorf("%w: %s shares of %s", ErrInvalidQuantity, q, l.Ticker)
	}
	return Lot{Ticker: l.Ticker, Quantity: l.Quantity.Add(q), Purchased: l.Purchased}, nil
}

// SellShares returns a new lot with the quantity decreased.
func (l Lot) SellShares(q Quantity) (Lot, error) {
	if q.IsNegative() {
		return l, fmt.Errorf("%w: %s shares of %s", ErrInvalidQuantity, q, l.Ticker)
	}
	if l.Quantity.LessThan(q) {
		return l, fmt.Errorf("%w: lot holds %s shares of %s, asked to sell %s",
			ErrInsufficientShares, l.Quantity, l.Ticker, q)
	}
	return Lot{Ticker: l.Ticker, Quantity: l.Quantity.Sub(q), Purchased: l.Purchased}, nil
}

func (l Lot) String() string {
	return fmt.Sprintf("%s,%s,%s", l.Ticker, l.Quantity, l.Purchased)
}
