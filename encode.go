package folio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// EncodeLot writes a single lot as a one-line JSON object.
func EncodeLot(w io.Writer, lot Lot) error {
	// quantities are plain JSON numbers on disk
	decimal.MarshalJSONWithoutQuotes = true
	var obj jsonObjectWriter
	obj.Append("ticker", lot.Ticker)
	obj.Append("quantity", lot.Quantity)
	obj.Append("purchased", lot.Purchased)
	data, err := json.Marshal(&obj)
	if err != nil {
		return fmt.Errorf("failed to encode lot %q: %w", lot.Ticker, err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// EncodePortfolio writes all lots of p to w in ledger order, one JSON object
// per line.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	for _, lot := range p.Lots() {
		if err := EncodeLot(w, lot); err != nil {
			return err
		}
	}
	return nil
}

// lotRecord mirrors the on-disk shape of a lot.
type lotRecord struct {
	Ticker    string   `json:"ticker"`
	Quantity  Quantity `json:"quantity"`
	Purchased Date     `json:"purchased"`
}

// DecodePortfolio reads a JSONL stream of lots and replays them into a new
// portfolio called name. Lots are stored in non-decreasing purchase-date
// order, so replaying them through AddLot reconstructs the ledger exactly.
func DecodePortfolio(r io.Reader, name string) (*Portfolio, error) {
	p := NewPortfolio(name)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec lotRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("invalid lot on line %d: %w", line, err)
		}
		next, err := p.AddLot(rec.Ticker, rec.Quantity, rec.Purchased)
		if err != nil {
			return nil, fmt.Errorf("invalid lot on line %d: %w", line, err)
		}
		p = next
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read portfolio %q: %w", name, err)
	}
	return p, nil
}
