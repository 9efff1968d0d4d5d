package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"airstats/internal/domain"
	"airstats/internal/domain/entity"
	"airstats/internal/domain/service/frequency"
	"airstats/internal/domain/service/ranking"
	"airstats/internal/domain/service/rating"
	"airstats/internal/domain/value"
	"airstats/internal/infrastructure/canvas"
	"airstats/internal/view/chart"
	"airstats/pkg/contextx"
	"airstats/pkg/errcodes"
	"airstats/pkg/logx"
)

var (
	logger   = contextx.LoggerFromContextOrDefault                   //nolint:gochecknoglobals
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals
)

type StatsAPI interface {
	AllAirlines(ctx context.Context) ([]entity.AirlineSummary, error)
	Cities(ctx context.Context) ([]string, error)
	SearchFlights(ctx context.Context, query value.SearchQuery) ([]entity.FlightResult, error)
	FlightFrequency(ctx context.Context, airline string) ([]entity.FrequencyPoint, error)
}

type Canvases interface {
	Begin() uint64
	Commit(canvasID string, image canvas.Image) error
}

// State — результат начальной загрузки страницы. Ошибки частей независимы.
type State struct {
	Airlines    []entity.RatedAirline
	AirlinesErr error
	Cities      []string
	CitiesErr   error
	// Chart == nil, если начальный график не построен.
	Chart *ChartResult
}

type ChartResult struct {
	CanvasID   string
	Generation uint64
	Airlines   []string
}

type Service struct {
	api          StatsAPI
	canvases     Canvases
	chartWidth   int
	chartHeight  int
	randomColour func() float64
}

func NewService(api StatsAPI, canvases Canvases) *Service {
	return &Service{
		api:          api,
		canvases:     canvases,
		chartWidth:   chart.DefaultWidth,
		chartHeight:  chart.DefaultHeight,
		randomColour: rand.Float64, //nolint:gosec // цвета графика
	}
}

func (s *Service) WithChartSize(width, height int) *Service {
	s.chartWidth = width
	s.chartHeight = height

	return s
}

func (s *Service) WithRandom(random func() float64) *Service {
	s.randomColour = random

	return s
}

// Load параллельно загружает авиакомпании и города, затем строит
// график для первой авиакомпании.
func (s *Service) Load(ctx context.Context, canvasID string) State {
	var (
		state    State
		airlines []entity.AirlineSummary
		wg       sync.WaitGroup
	)

	wg.Go(func() {
		airlines, state.AirlinesErr = s.api.AllAirlines(ctx)
	})
	wg.Go(func() {
		state.Cities, state.CitiesErr = s.api.Cities(ctx)
	})
	wg.Wait()

	if state.AirlinesErr != nil {
		logger(ctx).ErrorContext(ctx, "load airlines", logx.Error(state.AirlinesErr))
	} else {
		state.Airlines = rating.Rescale(airlines)
	}

	if state.CitiesErr != nil {
		logger(ctx).ErrorContext(ctx, "load cities", logx.Error(state.CitiesErr))
	}

	if len(state.Airlines) > 0 && canvasID != "" {
		result, err := s.UpdateChart(ctx, canvasID, []string{state.Airlines[0].Name})
		if err != nil {
			logger(ctx).ErrorContext(ctx, "initial chart", logx.Error(err))
		} else {
			state.Chart = &result
		}
	}

	return state
}

// Search ищет рейсы и ранжирует их по доле прибывших вовремя.
func (s *Service) Search(ctx context.Context, query value.SearchQuery) ([]entity.RankedFlight, error) {
	if err := validate.StructCtx(ctx, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidSearchQuery, "invalid search query")
	}

	results, err := s.api.SearchFlights(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("api.SearchFlights: %w", err)
	}

	logger(ctx).InfoContext(ctx, "flights found", slog.Int(logx.FieldCount, len(results)))

	return ranking.Rank(results), nil
}

// UpdateChart строит график частоты рейсов и привязывает его к холсту.
// Частоты загружаются параллельно; ошибка любой загрузки отменяет обновление.
// Результат, опоздавший относительно более нового, отбрасывается (StaleChartUpdate).
func (s *Service) UpdateChart(ctx context.Context, canvasID string, airlines []string) (ChartResult, error) {
	if len(airlines) == 0 {
		return ChartResult{}, domain.NewError(errcodes.NoAirlinesSelected, "no airlines selected")
	}

	generation := s.canvases.Begin()

	series := make([][]entity.FrequencyPoint, len(airlines))

	g, gctx := errgroup.WithContext(ctx)

	for i, airline := range airlines {
		g.Go(func() error {
			points, err := s.api.FlightFrequency(gctx, airline)
			if err != nil {
				return fmt.Errorf("api.FlightFrequency %q: %w", airline, err)
			}

			series[i] = points

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ChartResult{}, err
	}

	image, err := chart.Render(
		frequency.BuildChart(ctx, airlines, series, s.randomColour),
		s.chartWidth,
		s.chartHeight,
	)
	if err != nil {
		return ChartResult{}, fmt.Errorf("chart.Render: %w", err)
	}

	err = s.canvases.Commit(canvasID, canvas.Image{
		Generation: generation,
		PNG:        image,
		Airlines:   airlines,
	})
	if errors.Is(err, canvas.ErrStale) {
		logger(ctx).WarnContext(ctx, "stale chart update dropped",
			slog.String(logx.FieldCanvasID, canvasID),
			slog.Uint64(logx.FieldGeneration, generation),
		)

		return ChartResult{}, domain.WrapError(err, errcodes.StaleChartUpdate, "a newer chart is already shown")
	}

	if err != nil {
		return ChartResult{}, fmt.Errorf("canvases.Commit: %w", err)
	}

	return ChartResult{
		CanvasID:   canvasID,
		Generation: generation,
		Airlines:   airlines,
	}, nil
}
