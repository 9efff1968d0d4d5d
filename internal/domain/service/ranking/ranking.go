package ranking

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"airstats/internal/domain/entity"
)

// DelayIconThreshold — средняя задержка (мин), ниже которой показывается значок.
const DelayIconThreshold = 25.0

//nolint:gochecknoglobals
var podium = []entity.Medal{entity.MedalGold, entity.MedalSilver, entity.MedalBronze}

// Coefficient — доля рейсов, прибывших вовремя. Без рейсов коэффициент 0.
func Coefficient(f entity.FlightResult) float64 {
	if f.TotalFlights <= 0 {
		return 0
	}

	return float64(f.OnTimeFlights) / float64(f.TotalFlights)
}

// Rank сортирует результаты по убыванию коэффициента (устойчиво, равные
// остаются в исходном порядке) и раздаёт медали первым трём.
// Входной срез не изменяется.
func Rank(results []entity.FlightResult) []entity.RankedFlight {
	ranked := lo.Map(results, func(f entity.FlightResult, _ int) entity.RankedFlight {
		return entity.RankedFlight{
			FlightResult: f,
			Coefficient:  Coefficient(f),
			DelayIcon:    f.Summary < DelayIconThreshold,
		}
	})

	slices.SortStableFunc(ranked, func(a, b entity.RankedFlight) int {
		return cmp.Compare(b.Coefficient, a.Coefficient)
	})

	for i := range min(len(ranked), len(podium)) {
		ranked[i].Medal = podium[i]
	}

	if len(ranked) > 0 {
		ranked[0].Annotated = true
	}

	return ranked
}
