package api

import (
	"net/http"

	_ "histrates/docs"
	"histrates/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler, gatherer prometheus.Gatherer, corsOrigins []string) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/rate/{base}/{quote}/{timestamp}", rateHandler.GetRate)
		r.Post("/batch_rate", rateHandler.GetBatchRate)
		r.Get("/currencies", rateHandler.GetCurrencies)
		r.Post("/feedback", rateHandler.SendFeedback)
		r.Get("/series", rateHandler.ListSeries)
		r.Post("/series/{base}/{quote}/trades", rateHandler.ImportTrades)
	})
	return router
}
