package folio

import (
	"errors"
	"testing"
)

func TestValue(t *testing.T) {
	day := MustParseDate("2024-06-03")
	quotes := NewMemQuotes().
		Set("GOOG", day, 100).
		Set("AAPL", day, 50)

	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), day)
	p, _ = p.AddLot("AAPL", Q(2), day)

	total, err := Value(p, day, quotes)
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if want := M(1100, USD); !total.Equal(want) {
		t.Errorf("got %s, want %s", total, want)
	}
}

func TestValueEmptyPortfolioIsZero(t *testing.T) {
	total, err := Value(NewPortfolio("empty"), MustParseDate("2024-06-03"), NewMemQuotes())
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if !total.IsZero() {
		t.Errorf("got %s, want zero", total)
	}
}

func TestValueMissingQuote(t *testing.T) {
	day := MustParseDate("2024-06-03")
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), day)

	_, err := Value(p, day, NewMemQuotes())
	if !errors.Is(err, ErrNoPriceData) {
		t.Errorf("got %v, want ErrNoPriceData", err)
	}
}

func TestDistributionOfValue(t *testing.T) {
	day := MustParseDate("2024-06-03")
	quotes := NewMemQuotes().
		Set("GOOG", day, 100).
		Set("AAPL", day, 50)

	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(6), day)
	p, _ = p.AddLot("AAPL", Q(8), day)

	dist, err := Distribution(p, day, quotes)
	if err != nil {
		t.Fatalf("Distribution failed: %v", err)
	}
	if len(dist) != 2 {
		t.Fatalf("got %d lines, want 2", len(dist))
	}
	if !dist[0].Value.Equal(M(600, USD)) || !dist[0].Percent.Equal(60) {
		t.Errorf("got %s at %s, want $600.00 at 60.00%%", dist[0].Value, dist[0].Percent)
	}
	if !dist[1].Value.Equal(M(400, USD)) || !dist[1].Percent.Equal(40) {
		t.Errorf("got %s at %s, want $400.00 at 40.00%%", dist[1].Value, dist[1].Percent)
	}
}

func TestDistributionEmptyPortfolio(t *testing.T) {
	_, err := Distribution(NewPortfolio("empty"), MustParseDate("2024-06-03"), NewMemQuotes())
	if !errors.Is(err, ErrEmptyPortfolio) {
		t.Errorf("got %v, want ErrEmptyPortfolio", err)
	}
}
