package folio

import (
	"fmt"
	"strings"
)

// QuoteService is the price lookup capability the valuation, rebalance and
// performance components consume. The concrete transport lives in the
// adapters (see AlphaVantage); tests use an in-memory table.
type QuoteService interface {
	// Close returns the closing price of ticker on that exact date, or an
	// error wrapping ErrNoPriceData when the date has no quoted close.
	// There is no forward or backward substitution at this level.
	Close(ticker string, on Date) (float64, error)
	// Series returns the full available close-price history of ticker in
	// chronological order.
	Series(ticker string) (*History[float64], error)
}

// TickerDirectory validates ticker symbols against a reference list. It is
// consulted before an add or sell introduces a new ticker.
type TickerDirectory interface {
	Known(ticker string) bool
}

// MemQuotes is an in-memory QuoteService, usable offline and in tests.
type MemQuotes struct {
	series map[string]*History[float64]
}

// NewMemQuotes returns an empty in-memory quote service.
func NewMemQuotes() *MemQuotes {
	return &MemQuotes{series: make(map[string]*History[float64])}
}

// Set records the closing price of ticker on the given day.
func (m *MemQuotes) Set(ticker string, on Date, close float64) *MemQuotes {
	ticker = strings.ToUpper(ticker)
	h, ok := m.series[ticker]
	if !ok {
		h = &History[float64]{}
		m.series[ticker] = h
	}
	h.Append(on, close)
	return m
}

// Close returns the recorded closing price of ticker on that exact day.
func (m *MemQuotes) Close(ticker string, on Date) (float64, error) {
	h, ok := m.series[strings.ToUpper(ticker)]
	if !ok {
		return 0, fmt.Errorf("no prices for %s: %w", ticker, ErrNoPriceData)
	}
	price, ok := h.Get(on)
	if !ok {
		return 0, fmt.Errorf("no close for %s on %s: %w", ticker, on, ErrNoPriceData)
	}
	return price, nil
}

// Series returns the recorded close history of ticker.
func (m *MemQuotes) Series(ticker string) (*History[float64], error) {
	h, ok := m.series[strings.ToUpper(ticker)]
	if !ok {
		return nil, fmt.Errorf("no prices for %s: %w", ticker, ErrNoPriceData)
	}
	return h, nil
}

// Known reports whether any price has been recorded for ticker, making
// MemQuotes usable as a TickerDirectory offline.
func (m *MemQuotes) Known(ticker string) bool {
	_, ok := m.series[strings.ToUpper(ticker)]
	return ok
}
