package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	if app.config.cors.allowAll {
		mux.Use(app.CORS)
	}

	mux.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", app.handleStatus)

		r.Get("/cards", app.handleCards)
		r.Get("/attendance", app.handleAttendanceList)

		r.Get("/modal", app.handleCurrentModal)
		r.Post("/modal", app.handleOpenModal)
		r.Delete("/modal", app.handleCloseModal)
		r.Post("/modal/punch-in", app.handlePunchIn)
		r.Post("/modal/punch-out", app.handlePunchOut)

		r.Get("/clock", app.handleClock)
		r.Get("/clock/stream", app.handleClockStream)

		r.Get("/users/{userId}/records/{date}", app.handleGetRecord)
	})

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		if route.SubRoutes == nil {
			parsedRoutes = append(parsedRoutes, route.Pattern)
			continue
		}

		prefix := strings.TrimSuffix(route.Pattern, "/*")
		for _, sub := range chiRoutesToStrings(route.SubRoutes.Routes()) {
			parsedRoutes = append(parsedRoutes, prefix+sub)
		}
	}
	return parsedRoutes
}
