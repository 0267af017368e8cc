package folio

import "fmt"

// This file holds single-stock analyses computed over a close-price series.
// They take the whole series (QuoteService.Series) rather than a lookup so a
// single fetch serves the full window.

// GainLoss returns the change in closing price between two dates. Both dates
// must be trading days present in the series.
func GainLoss(series *History[float64], from, to Date) (float64, error) {
	start, ok := series.Get(from)
	if !ok {
		return 0, fmt.Errorf("%w: no close on %s", ErrNoPriceData, from)
	}
	end, ok := series.Get(to)
	if !ok {
		return 0, fmt.Errorf("%w: no close on %s", ErrNoPriceData, to)
	}
	return end - start, nil
}

// MovingAverage returns the x-day moving average of closing prices: the mean
// of the last x trading days ending on or before the date.
func MovingAverage(series *History[float64], on Date, x int) (float64, error) {
	if x <= 0 {
		return 0, fmt.Errorf("moving average window must be positive, got %d", x)
	}
	last := series.IndexAsOf(on)
	if last < 0 {
		return 0, fmt.Errorf("%w: no close on or before %s", ErrNoPriceData, on)
	}
	first := last - x + 1
	if first < 0 {
		first = 0
	}
	var total float64
	for i := first; i <= last; i++ {
		_, close := series.At(i)
		total += close
	}
	return total / float64(last-first+1), nil
}

// Crossovers returns the trading days within the x-day window ending on or
// before the date where the close crossed from below the x-day moving
// average to above it.
func Crossovers(series *History[float64], on Date, x int) ([]Date, error) {
	if x <= 0 {
		return nil, fmt.Errorf("crossover window must be positive, got %d", x)
	}
	last := series.IndexAsOf(on)
	if last < 0 {
		return nil, fmt.Errorf("%w: no close on or before %s", ErrNoPriceData, on)
	}

	var days []Date
	for i := last; i > 0 && i > last-x; i-- {
		day, close := series.At(i)
		_, prev := series.At(i - 1)
		avg, err := MovingAverage(series, day, x)
		if err != nil {
			return nil, err
		}
		if close > avg && prev < avg {
			days = append(days, day)
		}
	}
	// Report in chronological order, the scan above walks backward.
	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}
	return days, nil
}
