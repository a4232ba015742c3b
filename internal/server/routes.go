package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tg_dealscan/pkg/httpx/reply"
	"tg_dealscan/pkg/logx"
	"tg_dealscan/pkg/middlewarex"
)

// Handler собирает роутер с общими middleware.
func (s Server) Handler(logFieldMaxLen int) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		// только чтение: настройки меняются через бота
		r.Get("/settings", handler(s.getV1Settings))
		r.Post("/evaluate", handler(s.postV1Evaluate))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
