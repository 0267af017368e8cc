package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the optional configuration file settings. Flags override it.
type Config struct {
	// DataDir is the folder holding the saved portfolios.
	DataDir string `toml:"data_dir"`
	// ScreenerFile points to an exchange screener CSV used to validate tickers.
	ScreenerFile string `toml:"screener_file"`
	// APIKey is the Alpha Vantage API key.
	APIKey string `toml:"alphavantage_api_key"`
}

var configFlag = flag.String("config", "", "Path to the configuration file, defaults to ~/.config/fcs/config.toml")

var config *Config

// appConfig loads the configuration file once. A missing file is an empty
// configuration, not an error.
func appConfig() *Config {
	if config != nil {
		return config
	}
	config = &Config{}

	path := *configFlag
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return config
		}
		path = filepath.Join(home, ".config", "fcs", "config.toml")
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config file %q: %v\n", path, err)
		return config
	}
	if err := toml.Unmarshal(content, config); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config file %q: %v\n", path, err)
		config = &Config{}
	}
	return config
}

// dataDir resolves the data directory: flag, then config file, then ~/.folio.
func dataDir() string {
	if *dataDirFlag != "" {
		return *dataDirFlag
	}
	if dir := appConfig().DataDir; dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".folio"
	}
	return filepath.Join(home, ".folio")
}

// screenerPath resolves the screener CSV path: flag, then config file.
func screenerPath() string {
	if *screenerFlag != "" {
		return *screenerFlag
	}
	return appConfig().ScreenerFile
}
