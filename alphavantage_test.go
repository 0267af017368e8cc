package folio

import (
	"strings"
	"testing"
)

const dailyCSVSample = `timestamp,open,high,low,close,volume
2024-06-05,165.1000,166.2500,164.8000,166.0700,3049377
2024-06-04,164.3000,165.5000,163.9000,164.2100,2866441
2024-06-03,163.6000,164.9000,163.1000,164.8500,3172864
`

func TestParseDailyCSV(t *testing.T) {
	h, err := parseDailyCSV(strings.NewReader(dailyCSVSample))
	if err != nil {
		t.Fatalf("parseDailyCSV failed: %v", err)
	}
	if h.Len() != 3 {
		t.Fatalf("got %d points, want 3", h.Len())
	}
	// the feed is newest first, the history must come out chronological
	day, close := h.Oldest()
	if day != MustParseDate("2024-06-03") || close != 164.85 {
		t.Errorf("Oldest = %s %v, want 2024-06-03 164.85", day, close)
	}
	day, close = h.Latest()
	if day != MustParseDate("2024-06-05") || close != 166.07 {
		t.Errorf("Latest = %s %v, want 2024-06-05 166.07", day, close)
	}
}

func TestParseDailyCSVBadHeader(t *testing.T) {
	if _, err := parseDailyCSV(strings.NewReader("a,b,c\n1,2,3\n")); err == nil {
		t.Error("want an error for an unrecognized header")
	}
}

func TestParseDailyCSVBadClose(t *testing.T) {
	input := "timestamp,close\n2024-06-03,not-a-number\n"
	if _, err := parseDailyCSV(strings.NewReader(input)); err == nil {
		t.Error("want an error for an unparseable close")
	}
}
