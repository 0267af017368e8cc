package folio

import (
	"errors"
	"testing"
)

func TestAddLot(t *testing.T) {
	p := NewPortfolio("retirement")
	p, err := p.AddLot("GOOG", Q(10), MustParseDate("2024-06-03"))
	if err != nil {
		t.Fatalf("AddLot failed: %v", err)
	}
	if p.Size() != 1 {
		t.Fatalf("got %d lots, want 1", p.Size())
	}
	if got := p.TotalShares("GOOG", MustParseDate("2024-06-03")); !got.Equal(Q(10)) {
		t.Errorf("got %s shares, want 10", got)
	}
}

func TestAddLotMergesSameTickerAndDate(t *testing.T) {
	day := MustParseDate("2024-06-03")
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), day)
	p, err := p.AddLot("goog", Q(5), day)
	if err != nil {
		t.Fatalf("AddLot failed: %v", err)
	}
	if p.Size() != 1 {
		t.Fatalf("got %d lots, want the purchases merged into 1", p.Size())
	}
	lot, _ := p.Lot(0)
	if !lot.Quantity.Equal(Q(15)) {
		t.Errorf("got %s shares, want 15", lot.Quantity)
	}
}

func TestAddLotDifferentDateOpensNewLot(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), MustParseDate("2024-06-03"))
	p, _ = p.AddLot("GOOG", Q(5), MustParseDate("2024-06-04"))
	if p.Size() != 2 {
		t.Fatalf("got %d lots, want 2", p.Size())
	}
}

func TestAddLotRejectsNegativeQuantity(t *testing.T) {
	p := NewPortfolio("retirement")
	next, err := p.AddLot("GOOG", Q(-1), MustParseDate("2024-06-03"))
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("got %v, want ErrInvalidQuantity", err)
	}
	if next != p {
		t.Error("failed add must return the receiver unchanged")
	}
}

func TestChronologicalOrder(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), MustParseDate("2024-06-10"))

	if _, err := p.AddLot("AAPL", Q(2), MustParseDate("2024-06-09")); !errors.Is(err, ErrOutOfOrderTransaction) {
		t.Errorf("backdated add: got %v, want ErrOutOfOrderTransaction", err)
	}
	if _, err := p.Sell("GOOG", Q(1), MustParseDate("2024-06-09")); !errors.Is(err, ErrOutOfOrderTransaction) {
		t.Errorf("backdated sell: got %v, want ErrOutOfOrderTransaction", err)
	}
	// same-day transactions stay legal
	if _, err := p.AddLot("AAPL", Q(2), MustParseDate("2024-06-10")); err != nil {
		t.Errorf("same-day add failed: %v", err)
	}
}

func TestRemoveLotByTickerLookup(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), MustParseDate("2024-06-03"))
	p, _ = p.AddLot("AAPL", Q(2), MustParseDate("2024-06-04"))

	p, err := p.RemoveLot("GOOG", Q(4), -1, false, MustParseDate("2024-06-05"))
	if err != nil {
		t.Fatalf("RemoveLot failed: %v", err)
	}
	lot, _ := p.Lot(0)
	if !lot.Quantity.Equal(Q(6)) {
		t.Errorf("got %s shares of GOOG, want 6", lot.Quantity)
	}
}

func TestRemoveLotToZeroDeletesLot(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), MustParseDate("2024-06-03"))
	p, err := p.RemoveLot("GOOG", Q(10), 0, false, MustParseDate("2024-06-04"))
	if err != nil {
		t.Fatalf("RemoveLot failed: %v", err)
	}
	if p.Size() != 0 {
		t.Errorf("got %d lots, want the emptied lot deleted", p.Size())
	}
}

func TestRemoveLotRemoveAll(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), MustParseDate("2024-06-03"))
	p, err := p.RemoveLot("GOOG", Q(1), 0, true, MustParseDate("2024-06-04"))
	if err != nil {
		t.Fatalf("RemoveLot failed: %v", err)
	}
	if p.Size() != 0 {
		t.Errorf("got %d lots, want 0", p.Size())
	}
}

func TestRemoveLotInsufficientSharesIsNoOp(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), MustParseDate("2024-06-03"))

	next, err := p.RemoveLot("GOOG", Q(11), 0, false, MustParseDate("2024-06-04"))
	if !errors.Is(err, ErrInsufficientShares) {
		t.Fatalf("got %v, want ErrInsufficientShares", err)
	}
	if next != p {
		t.Error("failed remove must return the receiver unchanged")
	}
	if got := next.TotalShares("GOOG", MustParseDate("2024-06-04")); !got.Equal(Q(10)) {
		t.Errorf("got %s shares after failed remove, want 10 untouched", got)
	}
}

func TestRemoveLotTickerMismatch(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), MustParseDate("2024-06-03"))
	p, _ = p.AddLot("AAPL", Q(2), MustParseDate("2024-06-04"))

	if _, err := p.RemoveLot("GOOG", Q(1), 1, false, MustParseDate("2024-06-05")); !errors.Is(err, ErrLotNotFound) {
		t.Errorf("got %v, want ErrLotNotFound when index holds another ticker", err)
	}
	if _, err := p.RemoveLot("MSFT", Q(1), -1, false, MustParseDate("2024-06-05")); !errors.Is(err, ErrLotNotFound) {
		t.Errorf("got %v, want ErrLotNotFound for an absent ticker", err)
	}
}

func TestSellFIFO(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(5), MustParseDate("2024-06-01"))
	p, _ = p.AddLot("GOOG", Q(7), MustParseDate("2024-06-04"))

	p, err := p.Sell("GOOG", Q(10), MustParseDate("2024-06-05"))
	if err != nil {
		t.Fatalf("Sell failed: %v", err)
	}
	if p.Size() != 1 {
		t.Fatalf("got %d lots, want the oldest lot fully consumed", p.Size())
	}
	lot, _ := p.Lot(0)
	if !lot.Quantity.Equal(Q(2)) || lot.Purchased != MustParseDate("2024-06-04") {
		t.Errorf("got %s, want GOOG,2,2024-06-04", lot)
	}
}

func TestSellInsufficientSharesIsNoOp(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(5), MustParseDate("2024-06-01"))
	p, _ = p.AddLot("GOOG", Q(7), MustParseDate("2024-06-04"))

	next, err := p.Sell("GOOG", Q(13), MustParseDate("2024-06-05"))
	if !errors.Is(err, ErrInsufficientShares) {
		t.Fatalf("got %v, want ErrInsufficientShares", err)
	}
	if next.Size() != 2 {
		t.Errorf("got %d lots after failed sell, want both untouched", next.Size())
	}
}

func TestSellIgnoresLotsPurchasedAfter(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(5), MustParseDate("2024-06-01"))
	p, _ = p.AddLot("GOOG", Q(7), MustParseDate("2024-06-04"))

	// Only the first lot is eligible on 2024-06-02.
	if _, err := p.Sell("GOOG", Q(6), MustParseDate("2024-06-02")); !errors.Is(err, ErrOutOfOrderTransaction) {
		// The backdated sell is rejected by the order invariant first.
		t.Errorf("got %v, want ErrOutOfOrderTransaction", err)
	}
	if got := p.TotalShares("GOOG", MustParseDate("2024-06-02")); !got.Equal(Q(5)) {
		t.Errorf("got %s eligible shares on 2024-06-02, want 5", got)
	}
}

func TestIndexes(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(5), MustParseDate("2024-06-01"))
	p, _ = p.AddLot("AAPL", Q(2), MustParseDate("2024-06-02"))
	p, _ = p.AddLot("goog", Q(7), MustParseDate("2024-06-04"))

	got := p.Indexes("GOOG", MustParseDate("2024-06-03"))
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("got %v, want [0]", got)
	}
	got = p.Indexes("GOOG", MustParseDate("2024-06-04"))
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("got %v, want [0 2]", got)
	}
}

func TestDistributionAggregatesByTicker(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), MustParseDate("2024-06-01"))
	p, _ = p.AddLot("AAPL", Q(2), MustParseDate("2024-06-02"))
	p, _ = p.AddLot("GOOG", Q(5), MustParseDate("2024-06-03"))

	got := p.Distribution(MustParseDate("2024-06-03"))
	if len(got) != 2 {
		t.Fatalf("got %d holdings, want 2", len(got))
	}
	if got[0].Ticker != "GOOG" || !got[0].Shares.Equal(Q(15)) {
		t.Errorf("got %s %s, want GOOG 15", got[0].Ticker, got[0].Shares)
	}
	if got[1].Ticker != "AAPL" || !got[1].Shares.Equal(Q(2)) {
		t.Errorf("got %s %s, want AAPL 2", got[1].Ticker, got[1].Shares)
	}
}

func TestDistributionFiltersByDate(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), MustParseDate("2024-06-01"))
	p, _ = p.AddLot("AAPL", Q(2), MustParseDate("2024-06-05"))

	got := p.Distribution(MustParseDate("2024-06-02"))
	if len(got) != 1 || got[0].Ticker != "GOOG" {
		t.Errorf("got %v, want only GOOG on 2024-06-02", got)
	}
}

func TestMutationsDoNotAliasReceiver(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), MustParseDate("2024-06-01"))

	next, _ := p.Sell("GOOG", Q(4), MustParseDate("2024-06-02"))
	if got := p.TotalShares("GOOG", MustParseDate("2024-06-02")); !got.Equal(Q(10)) {
		t.Errorf("receiver mutated: got %s shares, want 10", got)
	}
	if got := next.TotalShares("GOOG", MustParseDate("2024-06-02")); !got.Equal(Q(6)) {
		t.Errorf("got %s shares, want 6", got)
	}
}
