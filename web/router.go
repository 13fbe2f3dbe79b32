package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/RicTBest/paydaysite-sub000/controller"
)

func getRouter(ctrl controller.C, render *render.Render, creds AdminCreds) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/api", func(r chi.Router) {
		r.Get("/leaderboard/{season:\\d+}", leaderboardHandler(ctrl, render))

		r.Route("/seasons/{season:\\d+}/weeks/{week:\\d+}", func(r chi.Router) {
			r.Get("/awards", awardsHandler(ctrl, render))
			r.Get("/probabilities", probabilitiesHandler(ctrl, render))
			r.Get("/goose", gooseReportHandler(ctrl, render))
			r.Get("/goose/{ownerID:\\d+}", gooseOwnerHandler(ctrl, render))
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("payday", map[string]string{creds.User: creds.Password}))
		r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

		r.Route("/seasons/{season:\\d+}", func(r chi.Router) {
			r.Post("/playoffs", playoffsHandler(ctrl, render))

			r.Route("/weeks/{week:\\d+}", func(r chi.Router) {
				r.Post("/awards/recompute", recomputeHandler(ctrl, render))
				r.Post("/awards", manualAwardHandler(ctrl, render))
				r.Post("/scores/sync", syncScoresHandler(ctrl, render))
				r.Post("/close", closeWeekHandler(ctrl, render))
			})
		})
	})

	return r
}
