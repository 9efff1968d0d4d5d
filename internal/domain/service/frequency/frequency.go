package frequency

import (
	"context"
	"log/slog"
	"math"
	"slices"

	"github.com/samber/lo"

	"airstats/internal/domain/entity"
	"airstats/pkg/contextx"
	"airstats/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	fillAlpha   = 0.2
	borderAlpha = 1.0
	borderWidth = 1.0
)

// BuildChart собирает линейный график: один набор данных на авиакомпанию.
// Подписи оси X берутся из первой серии. Цвета набора берутся из random
// (шесть вызовов на набор: заливка, затем граница).
func BuildChart(
	ctx context.Context,
	names []string,
	series [][]entity.FrequencyPoint,
	random func() float64,
) entity.Chart {
	if len(series) == 0 {
		return entity.Chart{}
	}

	labels := months(series[0])

	for i, s := range series[1:] {
		if !slices.Equal(labels, months(s)) {
			logger(ctx).WarnContext(ctx, "months differ from the first series",
				slog.String(logx.FieldAirline, nameAt(names, i+1)),
				slog.Int(logx.FieldCount, len(s)),
			)
		}
	}

	datasets := make([]entity.Dataset, 0, len(series))

	for i, s := range series {
		datasets = append(datasets, entity.Dataset{
			Label: nameAt(names, i),
			Data: lo.Map(s, func(p entity.FrequencyPoint, _ int) float64 {
				return float64(p.FlightCount)
			}),
			BackgroundColor: color(random, fillAlpha),
			BorderColor:     color(random, borderAlpha),
			BorderWidth:     borderWidth,
		})
	}

	return entity.Chart{
		Labels:   labels,
		Datasets: datasets,
	}
}

func nameAt(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}

	return ""
}

func months(points []entity.FrequencyPoint) []string {
	return lo.Map(points, func(p entity.FrequencyPoint, _ int) string { return p.Month })
}

func color(random func() float64, alpha float64) entity.RGBA {
	return entity.RGBA{
		R: channel(random()),
		G: channel(random()),
		B: channel(random()),
		A: alpha,
	}
}

func channel(v float64) uint8 {
	return uint8(min(math.Floor(v*256), 255)) //nolint:gosec // в пределах [0,255]
}
