package chart

import (
	"bytes"
	"fmt"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"airstats/internal/domain"
	"airstats/internal/domain/entity"
	"airstats/pkg/errcodes"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 400

	dotWidth = 3
)

// Render рисует линейный график частоты рейсов в PNG.
// Пустые наборы данных пропускаются; если рисовать нечего — ошибка EmptyChart.
func Render(c entity.Chart, width, height int) ([]byte, error) {
	if width <= 0 {
		width = DefaultWidth
	}

	if height <= 0 {
		height = DefaultHeight
	}

	series := make([]gochart.Series, 0, len(c.Datasets))
	points := len(c.Labels)
	top := 0.0

	for _, ds := range c.Datasets {
		if len(ds.Data) == 0 {
			continue
		}

		xs := make([]float64, len(ds.Data))
		for i := range xs {
			xs[i] = float64(i)
			top = math.Max(top, ds.Data[i])
		}

		points = max(points, len(ds.Data))

		series = append(series, gochart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ds.Data,
			Style: gochart.Style{
				StrokeColor: toColor(ds.BorderColor),
				StrokeWidth: ds.BorderWidth,
				DotColor:    toColor(ds.BackgroundColor),
				DotWidth:    dotWidth,
			},
		})
	}

	if len(series) == 0 {
		return nil, domain.NewError(errcodes.EmptyChart, "nothing to draw: every dataset is empty")
	}

	minX, maxX := 0.0, float64(points-1)
	if points <= 1 {
		// одна точка: go-chart не строит ось нулевой ширины
		minX, maxX = -0.5, 0.5
	}

	ticks := xTicks(c.Labels, minX, maxX)

	graph := gochart.Chart{
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 20, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: minX, Max: maxX},
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			// ось Y всегда от нуля
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Max(math.Ceil(top*1.1), 1)},
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("graph.Render: %w", err)
	}

	return buf.Bytes(), nil
}

// xTicks подписывает точки месяцами. Диапазон оси go-chart берёт из крайних
// делений, поэтому края диапазона всегда получают деление (пустое, если там нет месяца).
func xTicks(labels []string, minX, maxX float64) []gochart.Tick {
	ticks := make([]gochart.Tick, 0, len(labels)+2)

	if minX < 0 {
		ticks = append(ticks, gochart.Tick{Value: minX})
	}

	for i, label := range labels {
		if float64(i) > maxX {
			break
		}

		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: label})
	}

	if last := float64(len(labels) - 1); last < maxX {
		ticks = append(ticks, gochart.Tick{Value: maxX})
	}

	return ticks
}

func toColor(c entity.RGBA) drawing.Color {
	return drawing.Color{
		R: c.R,
		G: c.G,
		B: c.B,
		A: uint8(math.Round(math.Max(0, math.Min(c.A, 1)) * 255)),
	}
}
