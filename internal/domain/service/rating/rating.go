package rating

import (
	"math"

	"github.com/samber/lo"

	"airstats/internal/domain/entity"
)

const (
	MinStars = 1.0
	MaxStars = 5.0
	// NeutralStars заменяет NaN, когда шкалу построить нельзя: все рейтинги
	// равны, рейтингов нет или рейтинг авиакомпании неизвестен.
	NeutralStars = 3.0
)

// Rescale переводит рейтинги API в пятибалльную шкалу:
// 1 + 4*(rating-min)/(max-min). Порядок авиакомпаний сохраняется.
func Rescale(airlines []entity.AirlineSummary) []entity.RatedAirline {
	known := lo.FilterMap(airlines, func(a entity.AirlineSummary, _ int) (float64, bool) {
		if a.Rating == nil || !isFinite(*a.Rating) {
			return 0, false
		}

		return *a.Rating, true
	})

	lowest, highest := lo.Min(known), lo.Max(known)

	return lo.Map(airlines, func(a entity.AirlineSummary, _ int) entity.RatedAirline {
		stars := NeutralStars

		if a.Rating != nil && isFinite(*a.Rating) && highest > lowest {
			stars = MinStars + (MaxStars-MinStars)*(*a.Rating-lowest)/(highest-lowest)
			stars = math.Max(MinStars, math.Min(MaxStars, stars))
		}

		return entity.RatedAirline{
			AirlineSummary: a,
			Stars:          stars,
			Row:            Stars(stars),
		}
	})
}

// Stars строит ряд ровно из entity.StarCount символов. Значение сначала
// округляется до сотых, затем целая часть даёт полные звёзды, ненулевой
// остаток — половинку, остальное добивается пустыми.
func Stars(value float64) entity.StarRow {
	if !isFinite(value) {
		value = NeutralStars
	}

	rounded := math.Round(value*100) / 100 //nolint:mnd
	whole := math.Floor(rounded)

	full := max(0, min(entity.StarCount, int(whole)))
	half := rounded != whole && full < entity.StarCount

	empty := entity.StarCount - full
	if half {
		empty--
	}

	return entity.StarRow{
		Full:  full,
		Half:  half,
		Empty: empty,
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
