package folio

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodePortfolio(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), MustParseDate("2024-06-03"))
	p, _ = p.AddLot("AAPL", Q(2.5), MustParseDate("2024-06-04"))

	var buf bytes.Buffer
	if err := EncodePortfolio(&buf, p); err != nil {
		t.Fatalf("EncodePortfolio failed: %v", err)
	}
	want := `{"ticker":"GOOG","quantity":10,"purchased":"2024-06-03"}
{"ticker":"AAPL","quantity":2.5,"purchased":"2024-06-04"}
`
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestDecodePortfolioRoundTrip(t *testing.T) {
	p := NewPortfolio("retirement")
	p, _ = p.AddLot("GOOG", Q(10), MustParseDate("2024-06-03"))
	p, _ = p.AddLot("AAPL", Q(2), MustParseDate("2024-06-04"))
	p, _ = p.AddLot("GOOG", Q(5), MustParseDate("2024-06-05"))

	var buf bytes.Buffer
	if err := EncodePortfolio(&buf, p); err != nil {
		t.Fatalf("EncodePortfolio failed: %v", err)
	}
	back, err := DecodePortfolio(&buf, "retirement")
	if err != nil {
		t.Fatalf("DecodePortfolio failed: %v", err)
	}
	if back.Size() != p.Size() {
		t.Fatalf("got %d lots, want %d", back.Size(), p.Size())
	}
	for i, lot := range p.Lots() {
		got, _ := back.Lot(i)
		if got.Ticker != lot.Ticker || !got.Quantity.Equal(lot.Quantity) || got.Purchased != lot.Purchased {
			t.Errorf("lot %d: got %s, want %s", i, got, lot)
		}
	}
	if back.LastTransaction() != p.LastTransaction() {
		t.Errorf("got last transaction %s, want %s", back.LastTransaction(), p.LastTransaction())
	}
}

func TestDecodePortfolioSkipsBlankLines(t *testing.T) {
	input := `{"ticker":"GOOG","quantity":10,"purchased":"2024-06-03"}

{"ticker":"AAPL","quantity":2,"purchased":"2024-06-04"}
`
	p, err := DecodePortfolio(strings.NewReader(input), "retirement")
	if err != nil {
		t.Fatalf("DecodePortfolio failed: %v", err)
	}
	if p.Size() != 2 {
		t.Errorf("got %d lots, want 2", p.Size())
	}
}

func TestDecodePortfolioRejectsGarbage(t *testing.T) {
	if _, err := DecodePortfolio(strings.NewReader("not json\n"), "broken"); err == nil {
		t.Error("want an error for a malformed line")
	}
}
