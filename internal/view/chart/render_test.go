package chart_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"airstats/internal/domain"
	"airstats/internal/domain/entity"
	"airstats/internal/view/chart"
	"airstats/pkg/errcodes"
)

func dataset(label string, data ...float64) entity.Dataset {
	return entity.Dataset{
		Label:           label,
		Data:            data,
		BackgroundColor: entity.RGBA{R: 10, G: 20, B: 30, A: 0.2},
		BorderColor:     entity.RGBA{R: 10, G: 20, B: 30, A: 1},
		BorderWidth:     1,
	}
}

func TestRender(t *testing.T) {
	testCases := []struct {
		name  string
		chart entity.Chart
	}{
		{
			name: "two airlines",
			chart: entity.Chart{
				Labels:   []string{"2024-01", "2024-02", "2024-03"},
				Datasets: []entity.Dataset{dataset("S7", 3, 7, 5), dataset("Победа", 0, 1, 2)},
			},
		},
		{
			name: "single month",
			chart: entity.Chart{
				Labels:   []string{"2024-01"},
				Datasets: []entity.Dataset{dataset("S7", 4)},
			},
		},
		{
			name: "single month for every airline",
			chart: entity.Chart{
				Labels:   []string{"2024-01"},
				Datasets: []entity.Dataset{dataset("S7", 3), dataset("Победа", 1)},
			},
		},
		{
			name: "single point without labels",
			chart: entity.Chart{
				Datasets: []entity.Dataset{dataset("S7", 3)},
			},
		},
		{
			name: "series longer than labels",
			chart: entity.Chart{
				Labels:   []string{"2024-01"},
				Datasets: []entity.Dataset{dataset("S7", 3), dataset("Победа", 1, 2, 5)},
			},
		},
		{
			name: "all zero counts",
			chart: entity.Chart{
				Labels:   []string{"2024-01", "2024-02"},
				Datasets: []entity.Dataset{dataset("S7", 0, 0)},
			},
		},
		{
			name: "empty dataset skipped",
			chart: entity.Chart{
				Labels:   []string{"2024-01", "2024-02"},
				Datasets: []entity.Dataset{dataset("S7"), dataset("Победа", 1, 2)},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			out, err := chart.Render(tc.chart, 320, 200)
			rq.NoError(err)

			img, err := png.Decode(bytes.NewReader(out))
			rq.NoError(err)
			rq.Equal(320, img.Bounds().Dx())
			rq.Equal(200, img.Bounds().Dy())
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	rq := require.New(t)

	_, err := chart.Render(entity.Chart{Labels: []string{"2024-01"}, Datasets: []entity.Dataset{dataset("S7")}}, 0, 0)
	rq.True(domain.HasCode(err, errcodes.EmptyChart))

	_, err = chart.Render(entity.Chart{}, 0, 0)
	rq.True(domain.HasCode(err, errcodes.EmptyChart))
}
