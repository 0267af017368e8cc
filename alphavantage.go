package folio

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

const alphavantage_api_key = "ALPHAVANTAGE_API_KEY"

var alphavantageApiFlag = flag.String("alphavantage-api-key", "", "Alpha Vantage API key to use for fetching prices.\n If missing it will read the environment variable \""+alphavantage_api_key+"\". You can get one at https://www.alphavantage.co/support/#api-key")

func alphavantageApiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *alphavantageApiFlag == "" {
		*alphavantageApiFlag = os.Getenv(alphavantage_api_key)
	}
	return *alphavantageApiFlag
}

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// get from disk
	// diskcache implements a unique key per day, so the local tmp expires every day.
	key := fmt.Sprintf("%s %s %s", Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	err = c.put(key, resp)
	if err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// returns a client with a cache all with daily expire
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// wget performs a plain HTTP GET request and returns the response body.
func wget(client *http.Client, addr string) ([]byte, error) {
	resp, err := client.Get(addr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

const alphavantageBase = "https://www.alphavantage.co/query"

// AlphaVantage fetches daily close prices from the Alpha Vantage API. It
// memoizes fetched series so each ticker costs at most one request per run,
// on top of the daily disk cache.
type AlphaVantage struct {
	apiKey string
	client *http.Client
	series map[string]*History[float64]
}

// NewAlphaVantage returns a quote service backed by the Alpha Vantage API.
// An empty apiKey falls back to the -alphavantage-api-key flag or the
// ALPHAVANTAGE_API_KEY environment variable.
func NewAlphaVantage(apiKey string) *AlphaVantage {
	if apiKey == "" {
		apiKey = alphavantageApiKey()
	}
	return &AlphaVantage{
		apiKey: apiKey,
		client: daily(),
		series: make(map[string]*History[float64]),
	}
}

// Series returns the full daily close history for ticker.
func (av *AlphaVantage) Series(ticker string) (*History[float64], error) {
	ticker = strings.ToUpper(ticker)
	if h, ok := av.series[ticker]; ok {
		return h, nil
	}
	// https://www.alphavantage.co/query?function=TIME_SERIES_DAILY&symbol=IBM&outputsize=full&datatype=csv&apikey=demo
	// timestamp,open,high,low,close,volume
	// 2024-06-05,165.1000,166.2500,164.8000,166.0700,3049377
	addr := fmt.Sprintf("%s?function=TIME_SERIES_DAILY&symbol=%s&outputsize=full&datatype=csv&apikey=%s",
		alphavantageBase, url.QueryEscape(ticker), av.apiKey)
	body, err := wget(av.client, addr)
	if err != nil {
		return nil, fmt.Errorf("error retrieving %q: %w", ticker, err)
	}
	// on error (unknown symbol, rate limiting) the API answers a JSON object
	// instead of CSV, with the same 200 status.
	if bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		var jobj map[string]any
		if err := json.Unmarshal(body, &jobj); err == nil {
			for _, key := range []string{"Error Message", "Note", "Information"} {
				if msg, ok := jobj[key].(string); ok {
					return nil, fmt.Errorf("alphavantage refused %q: %s", ticker, msg)
				}
			}
		}
		return nil, fmt.Errorf("alphavantage returned an unexpected response for %q", ticker)
	}

	h, err := parseDailyCSV(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error parsing prices for %q: %w", ticker, err)
	}
	av.series[ticker] = h
	return h, nil
}

// parseDailyCSV reads the TIME_SERIES_DAILY CSV payload into a close history.
func parseDailyCSV(r io.Reader) (*History[float64], error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("empty price response")
	}
	header := records[0]
	dateCol, closeCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "timestamp":
			dateCol = i
		case "close":
			closeCol = i
		}
	}
	if dateCol < 0 || closeCol < 0 {
		return nil, fmt.Errorf("unexpected price header %q", strings.Join(header, ","))
	}
	var h History[float64]
	for _, rec := range records[1:] {
		if len(rec) <= dateCol || len(rec) <= closeCol {
			continue
		}
		day, err := ParseDate(rec[dateCol])
		if err != nil {
			return nil, err
		}
		close, err := strconv.ParseFloat(rec[closeCol], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid close %q on %s: %w", rec[closeCol], day, err)
		}
		h.Append(day, close)
	}
	return &h, nil
}

// Close returns the closing price for ticker on the given day, or
// ErrNoPriceData when the market had no close that day.
func (av *AlphaVantage) Close(ticker string, on Date) (float64, error) {
	h, err := av.Series(ticker)
	if err != nil {
		return 0, err
	}
	price, ok := h.Get(on)
	if !ok {
		return 0, fmt.Errorf("no close for %s on %s: %w", ticker, on, ErrNoPriceData)
	}
	return price, nil
}

// Known reports whether the Alpha Vantage symbol search has an exact match
// for ticker.
func (av *AlphaVantage) Known(ticker string) bool {
	// https://www.alphavantage.co/query?function=SYMBOL_SEARCH&keywords=IBM&apikey=demo
	// {"bestMatches": [{"1. symbol": "IBM", ...}, ...]}
	addr := fmt.Sprintf("%s?function=SYMBOL_SEARCH&keywords=%s&apikey=%s",
		alphavantageBase, url.QueryEscape(ticker), av.apiKey)
	matches, err := av.searchSymbols(addr)
	if err != nil {
		log.Printf("symbol search for %q failed: %v", ticker, err)
		return false
	}
	for _, symbol := range matches {
		if strings.EqualFold(symbol, ticker) {
			return true
		}
	}
	return false
}

func (av *AlphaVantage) searchSymbols(addr string) ([]string, error) {
	var jobj any
	if err := jwget(av.client, addr, &jobj); err != nil {
		return nil, err
	}
	path := `$.bestMatches[:]["1. symbol"]`
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing search response: %q %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		// because jsonpath is never clear about whether it returns a list of
		// answers or a single answer: wrap the single one.
		jlist = []any{jval}
	}
	var symbols []string
	for _, v := range jlist {
		if s, ok := v.(string); ok {
			symbols = append(symbols, s)
		}
	}
	return symbols, nil
}
