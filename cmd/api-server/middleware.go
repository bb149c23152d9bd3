package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/protomem/time-clock/internal/ctxstore"
	"github.com/protomem/time-clock/internal/model"
	"github.com/protomem/time-clock/internal/response"
	"github.com/rs/cors"

	"github.com/tomasen/realip"
)

var (
	_traceIDKey    = ctxstore.NewKey[string]("traceId")
	_accessNoteKey = ctxstore.NewKey[*accessNote]("attendance")
)

// accessNote is filled in by attendance handlers and reported by logAccess.
type accessNote struct {
	action string
	userID model.UserID
}

func (app *application) noteAccess(r *http.Request, action string, userID model.UserID) {
	note := _accessNoteKey.MustFrom(r.Context())
	note.action = action
	note.userID = userID
}

func (app *application) traceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tid := genTraceID()
		w.Header().Set("X-Trace-Id", tid)
		ctx := _traceIDKey.With(r.Context(), tid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err != nil {
				app.serverError(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) logAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		note := new(accessNote)
		r = r.WithContext(_accessNoteKey.With(r.Context(), note))

		mw := response.NewMetricsResponseWriter(w)
		next.ServeHTTP(mw, r)

		var (
			ip     = realip.FromRequest(r)
			method = r.Method
			url    = r.URL.String()
			proto  = r.Proto
			tid, _ = _traceIDKey.From(r.Context())
		)

		userAttrs := slog.Group("user", "ip", ip)
		requestAttrs := slog.Group("request", "method", method, "url", url, "proto", proto, _traceIDKey.String(), tid)
		responseAttrs := slog.Group("response", "status", mw.StatusCode, "size", mw.BytesCount)

		attrs := []any{userAttrs, requestAttrs, responseAttrs}
		if note.action != "" {
			attrs = append(attrs, slog.Group("attendance", "action", note.action, "userId", note.userID))
		}

		app.serverLogger().Info("access", attrs...)
	})
}

func (app *application) CORS(next http.Handler) http.Handler {
	return cors.AllowAll().Handler(next)
}

func genTraceID() string {
	id, _ := uuid.NewRandom()
	return id.String()
}
