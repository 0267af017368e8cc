package folio

import "errors"

// Sentinel errors returned by ledger, valuation and rebalancing operations.
// They are wrapped with context at the call site, so callers match them
// with errors.Is.
var (
	// ErrInvalidQuantity is returned when a negative quantity is supplied.
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
	// ErrInsufficientShares is returned when a sell asks for more shares
	// than the targeted lot, or the eligible lots together, hold.
	ErrInsufficientShares = errors.New("not enough shares")
	// ErrLotNotFound is returned when a lot index is out of range or no lot
	// matches the requested ticker.
	ErrLotNotFound = errors.New("lot not found")
	// ErrOutOfOrderTransaction is returned when a mutation is dated before
	// the portfolio's last accepted transaction.
	ErrOutOfOrderTransaction = errors.New("transaction out of chronological order")
	// ErrNoPriceData is returned by a quote service when a ticker has no
	// quoted close for the requested date.
	ErrNoPriceData = errors.New("no price data")
	// ErrEmptyPortfolio is returned when a value distribution is requested
	// for a portfolio whose total value is zero.
	ErrEmptyPortfolio = errors.New("portfolio is empty")
	// ErrInvalidWeights is returned when rebalance target weights do not sum
	// to exactly 100, or do not align with the portfolio's holdings.
	ErrInvalidWeights = errors.New("invalid target weights")
	// ErrInsufficientDiversification is returned when a rebalance is
	// requested on fewer than two distinct holdings.
	ErrInsufficientDiversification = errors.New("rebalancing needs at least two holdings")
	// ErrUnknownTicker is returned when a ticker is not listed in the
	// reference directory.
	ErrUnknownTicker = errors.New("unknown ticker")
	// ErrInvalidDate is returned when a date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
)
