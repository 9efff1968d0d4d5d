package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"airstats/internal/domain"
	"airstats/internal/domain/entity"
	"airstats/internal/domain/service/dashboard"
	"airstats/internal/domain/value"
	"airstats/internal/infrastructure/canvas"
	"airstats/internal/view"
	"airstats/pkg/contextx"
	"airstats/pkg/errcodes"
	"airstats/pkg/httpx/reply"
	"airstats/pkg/httpx/req"
	"airstats/pkg/logx"
	"airstats/pkg/rest"
)

type dashboardService interface {
	Load(ctx context.Context, canvasID string) dashboard.State
	Search(ctx context.Context, query value.SearchQuery) ([]entity.RankedFlight, error)
	UpdateChart(ctx context.Context, canvasID string, airlines []string) (dashboard.ChartResult, error)
}

type chartImages interface {
	Get(canvasID string) (canvas.Image, bool)
}

type DashboardServer struct {
	dashboardService dashboardService
	chartImages      chartImages
}

func NewDashboardServer(dashboardService dashboardService, chartImages chartImages) DashboardServer {
	return DashboardServer{
		dashboardService: dashboardService,
		chartImages:      chartImages,
	}
}

// getIndex отдаёт каркас страницы, который наполняет patch.js. С параметрами
// формы (или render=server) страница собирается на сервере целиком.
func (s DashboardServer) getIndex(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	query := r.URL.Query()

	if !serverRendered(query) {
		reply.HTML(ctx, w, http.StatusOK, func(buf *bytes.Buffer) error {
			return view.RenderPage(buf, view.State{}, view.InitClient)
		})

		return nil
	}

	canvasID, err := canvasIDFromContext(ctx)
	if err != nil {
		return err
	}

	airlines := query["airline"]

	initialChartCanvas := canvasID
	if len(airlines) > 0 {
		initialChartCanvas = ""
	}

	loaded := s.dashboardService.Load(ctx, initialChartCanvas)

	state, _, err := view.Update(view.State{}, newLoadedEvent(loaded))
	if err != nil {
		return fmt.Errorf("view.Update: %w", err)
	}

	if loaded.Chart != nil {
		state, _, err = view.Update(state, newChartUpdatedEvent(*loaded.Chart))
		if err != nil {
			return fmt.Errorf("view.Update: %w", err)
		}
	}

	// Как и при начальной загрузке, ошибки графика и поиска только логируются:
	// страница отдаётся без графика или без результатов.
	if len(airlines) > 0 {
		result, err := s.dashboardService.UpdateChart(ctx, canvasID, airlines)
		if err != nil {
			logger(ctx).ErrorContext(ctx, "dashboardService.UpdateChart", logx.Error(err))
		} else {
			state, _, err = view.Update(state, newChartUpdatedEvent(result))
			if err != nil {
				return fmt.Errorf("view.Update: %w", err)
			}
		}
	}

	if searchQuery := newDomainSearchQuery(newRESTSearchRequest(query)); !searchQuery.IsZero() {
		state.Query = searchQuery

		results, err := s.dashboardService.Search(ctx, searchQuery)
		if err != nil {
			logger(ctx).ErrorContext(ctx, "dashboardService.Search", logx.Error(err))
		} else {
			state, _, err = view.Update(state, view.Searched{Query: searchQuery, Results: results})
			if err != nil {
				return fmt.Errorf("view.Update: %w", err)
			}
		}
	}

	reply.HTML(ctx, w, http.StatusOK, func(buf *bytes.Buffer) error {
		return view.RenderPage(buf, state, view.InitServer)
	})

	return nil
}

func (s DashboardServer) postUIInit(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	canvasID, err := canvasIDFromContext(ctx)
	if err != nil {
		return err
	}

	loaded := s.dashboardService.Load(ctx, canvasID)

	state, patches, err := view.Update(view.State{}, newLoadedEvent(loaded))
	if err != nil {
		return fmt.Errorf("view.Update: %w", err)
	}

	if loaded.Chart != nil {
		_, chartPatches, err := view.Update(state, newChartUpdatedEvent(*loaded.Chart))
		if err != nil {
			return fmt.Errorf("view.Update: %w", err)
		}

		patches = append(patches, chartPatches...)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPatchResponse(patches))

	return nil
}

func (s DashboardServer) postUISearch(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SearchRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	query := newDomainSearchQuery(request)

	results, err := s.dashboardService.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("dashboardService.Search: %w", err)
	}

	_, patches, err := view.Update(view.State{}, view.Searched{Query: query, Results: results})
	if err != nil {
		return fmt.Errorf("view.Update: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPatchResponse(patches))

	return nil
}

// postUIChart перестраивает график. Устаревший результат не даёт патчей.
func (s DashboardServer) postUIChart(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	canvasID, err := canvasIDFromContext(ctx)
	if err != nil {
		return err
	}

	var request rest.ChartRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result, err := s.dashboardService.UpdateChart(ctx, canvasID, request.Airlines)
	if domain.HasCode(err, errcodes.StaleChartUpdate) {
		reply.JSON(ctx, w, http.StatusOK, rest.PatchResponse{Patches: []rest.Patch{}})

		return nil
	}

	if err != nil {
		return fmt.Errorf("dashboardService.UpdateChart: %w", err)
	}

	_, patches, err := view.Update(view.State{}, newChartUpdatedEvent(result))
	if err != nil {
		return fmt.Errorf("view.Update: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPatchResponse(patches))

	return nil
}

// getChart отдаёт PNG, привязанный к холсту. Чужой холст не отдаётся.
func (s DashboardServer) getChart(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	canvasID, err := canvasIDFromContext(ctx)
	if err != nil {
		return err
	}

	if chi.URLParam(r, "canvasID") != canvasID {
		return domain.NewError(errcodes.CanvasNotFound, "chart canvas not found")
	}

	image, ok := s.chartImages.Get(canvasID)
	if !ok {
		return domain.NewError(errcodes.CanvasNotFound, "chart canvas not found")
	}

	reply.PNG(ctx, w, image.PNG)

	return nil
}

func getPatchScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(view.PatchScript); err != nil {
		logger(r.Context()).Error("w.Write", logx.Error(err))
	}
}

func canvasIDFromContext(ctx context.Context) (string, error) {
	canvasID, err := contextx.CanvasIDFromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("contextx.CanvasIDFromContext: %w", err)
	}

	return canvasID.String(), nil
}

func serverRendered(query map[string][]string) bool {
	for _, key := range []string{"render", "from", "to", "date", "airline"} {
		if _, ok := query[key]; ok {
			return true
		}
	}

	return false
}
