package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/skaur/folio"
)

// PerformanceChartPNG renders a sampled value series as a PNG line chart.
func PerformanceChartPNG(name string, series *folio.History[folio.Money]) ([]byte, error) {
	if series.Len() < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", series.Len())
	}

	xValues := make([]time.Time, 0, series.Len())
	yValues := make([]float64, 0, series.Len())
	for on, value := range series.Values() {
		xValues = append(xValues, on.Time())
		yValues = append(yValues, value.InexactFloat64())
	}

	valueSeries := chart.TimeSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Value of %s", name),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{valueSeries},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
