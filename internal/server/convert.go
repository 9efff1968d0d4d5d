package server

import (
	"net/url"

	"github.com/samber/lo"

	"airstats/internal/domain/service/dashboard"
	"airstats/internal/domain/value"
	"airstats/internal/view"
	"airstats/pkg/rest"
)

func newRESTPatchResponse(patches []view.Patch) rest.PatchResponse {
	return rest.PatchResponse{
		Patches: lo.Map(patches, func(p view.Patch, _ int) rest.Patch {
			return rest.Patch{
				Target:   p.Target,
				Op:       string(p.Op),
				HTML:     p.HTML,
				Src:      p.Src,
				Behavior: p.Behavior,
				Options: lo.Map(p.Options, func(o view.Option, _ int) rest.Option {
					return rest.Option{Value: o.Value, Text: o.Text}
				}),
			}
		}),
	}
}

func newDomainSearchQuery(request rest.SearchRequest) value.SearchQuery {
	return value.SearchQuery{
		From: request.From,
		To:   request.To,
		Date: request.Date,
	}
}

func newRESTSearchRequest(query url.Values) rest.SearchRequest {
	return rest.SearchRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
		Date: query.Get("date"),
	}
}

func newLoadedEvent(state dashboard.State) view.Loaded {
	return view.Loaded{
		Airlines:       state.Airlines,
		AirlinesLoaded: state.AirlinesErr == nil,
		Cities:         state.Cities,
		CitiesLoaded:   state.CitiesErr == nil,
	}
}

func newChartUpdatedEvent(result dashboard.ChartResult) view.ChartUpdated {
	return view.ChartUpdated{
		CanvasID:   result.CanvasID,
		Generation: result.Generation,
		Airlines:   result.Airlines,
	}
}
