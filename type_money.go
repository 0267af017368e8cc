package folio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// USD is the reporting currency. The ledger tracks a single currency;
// multi-currency portfolios are out of scope.
const USD = "USD"

// Money represents a monetary value as an exact decimal in a major unit.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from a number and a currency code.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String renders the value in the currency's display format, rounded to the
// currency's fraction. Rounding happens here only; arithmetic stays exact.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string          { return m.cur }
func (m Money) Equal(n Money) bool        { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool              { return m.value.IsZero() }
func (m Money) IsNegative() bool          { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool     { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool  { return m.value.GreaterThan(n.value) }
func (m Money) Mul(q Quantity) Money      { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Div(q Quantity) Money      { return Money{value: m.value.Div(q.value), cur: m.cur} }
func (m Money) Add(n Money) Money         { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money         { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) DivPrice(n Money) Quantity { return Quantity{value: m.value.Div(n.value)} }

// PercentOf returns m as a percentage of total.
func (m Money) PercentOf(total Money) Percent {
	return Percent(m.value.Div(total.value).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// cur merges two currencies, treating "" as weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// InexactFloat64 returns the nearest float64. For display and charting only.
func (m Money) InexactFloat64() float64 { return m.value.InexactFloat64() }

// MarshalJSON encodes the amount rounded to the currency's fraction.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(int32(m.currency().Fraction)))
	return w.MarshalJSON()
}
