package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/skaur/folio"
)

func TestAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
data_dir = "/tmp/folio-test"
screener_file = "/tmp/screener.csv"
alphavantage_api_key = "demo"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	*configFlag = path
	config = nil
	t.Cleanup(func() { *configFlag = ""; config = nil })

	cfg := appConfig()
	if cfg.DataDir != "/tmp/folio-test" {
		t.Errorf("got data dir %q", cfg.DataDir)
	}
	if cfg.ScreenerFile != "/tmp/screener.csv" {
		t.Errorf("got screener file %q", cfg.ScreenerFile)
	}
	if cfg.APIKey != "demo" {
		t.Errorf("got api key %q", cfg.APIKey)
	}
	if got := dataDir(); got != "/tmp/folio-test" {
		t.Errorf("dataDir() = %q, want the configured folder", got)
	}
}

func TestAppConfigMissingFile(t *testing.T) {
	*configFlag = filepath.Join(t.TempDir(), "no-such-config.toml")
	config = nil
	t.Cleanup(func() { *configFlag = ""; config = nil })

	cfg := appConfig()
	if cfg.DataDir != "" || cfg.APIKey != "" {
		t.Errorf("a missing file must yield an empty config, got %+v", cfg)
	}
}

func TestResolveDate(t *testing.T) {
	on, err := resolveDate("")
	if err != nil {
		t.Fatalf("resolveDate failed: %v", err)
	}
	if on != folio.Today() {
		t.Errorf("got %s, want today", on)
	}

	on, err = resolveDate("2024-06-03")
	if err != nil {
		t.Fatalf("resolveDate failed: %v", err)
	}
	if on != folio.MustParseDate("2024-06-03") {
		t.Errorf("got %s, want 2024-06-03", on)
	}

	if _, err := resolveDate("bogus"); err == nil {
		t.Error("want an error for an unparseable date")
	}
}

func TestParseQuantity(t *testing.T) {
	q, err := parseQuantity("2.5")
	if err != nil {
		t.Fatalf("parseQuantity failed: %v", err)
	}
	if q != 2.5 {
		t.Errorf("got %v, want 2.5", q)
	}

	// ParseFloat accepts these spellings but the decimal conversion behind
	// folio.Q cannot represent them.
	for _, s := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "ten"} {
		if _, err := parseQuantity(s); err == nil {
			t.Errorf("parseQuantity(%q) must fail", s)
		}
	}
}
