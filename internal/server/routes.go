package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"airstats/pkg/contextx"
	"airstats/pkg/httpx/reply"
	"airstats/pkg/logx"
	"airstats/pkg/middlewarex"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const CanvasCookieName = "airstats-canvas"

type RouterOptions struct {
	LogFieldMaxLen     int
	CORSAllowedOrigins []string
}

// NewRouter собирает HTTP-обработчик со всеми middleware.
func (s Server) NewRouter(opts RouterOptions) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()
	r.Use(
		middlewarex.TraceID,
		middlewarex.Canvas(CanvasCookieName),
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, opts.LogFieldMaxLen),
		middlewarex.Recovery,
	)

	s.RegisterRoutes(r, opts)

	return r
}

func (s Server) RegisterRoutes(r chi.Router, opts RouterOptions) {
	r.Get("/", handler(s.getIndex))
	r.Get("/static/patch.js", getPatchScript)
	r.Get("/charts/{canvasID}.png", handler(s.getChart))

	r.Route("/ui", func(r chi.Router) {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   opts.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
		}).Handler)

		r.Post("/init", handler(s.postUIInit))
		r.Post("/search", handler(s.postUISearch))
		r.Post("/chart", handler(s.postUIChart))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
