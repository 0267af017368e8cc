package folio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// ScreenerList is a ticker directory backed by an exchange screener CSV
// export, as published at https://www.nasdaq.com/market-activity/stocks/screener.
// The first column of each row holds the symbol.
type ScreenerList struct {
	tickers map[string]bool
}

// LoadScreener reads a screener CSV file into a directory.
func LoadScreener(path string) (*ScreenerList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open screener file %q: %w", path, err)
	}
	defer f.Close()
	list, err := ReadScreener(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read screener file %q: %w", path, err)
	}
	return list, nil
}

// ReadScreener parses screener CSV content. The header row is skipped.
func ReadScreener(r io.Reader) (*ScreenerList, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	list := &ScreenerList{tickers: make(map[string]bool)}
	for i, rec := range records {
		if i == 0 || len(rec) == 0 {
			continue
		}
		symbol := strings.ToUpper(strings.TrimSpace(rec[0]))
		if symbol == "" {
			continue
		}
		list.tickers[symbol] = true
	}
	return list, nil
}

// Len returns the number of symbols in the list.
func (l *ScreenerList) Len() int { return len(l.tickers) }

// Known reports whether ticker appears in the screener export.
func (l *ScreenerList) Known(ticker string) bool {
	return l.tickers[strings.ToUpper(strings.TrimSpace(ticker))]
}

// Directories combines several ticker directories. A ticker is known if any
// of them knows it; directories are probed in order so cheap local lists
// should come first.
func Directories(dirs ...TickerDirectory) TickerDirectory {
	return multiDirectory(dirs)
}

type multiDirectory []TickerDirectory

func (m multiDirectory) Known(ticker string) bool {
	for _, d := range m {
		if d.Known(ticker) {
			return true
		}
	}
	return false
}
