package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/protomem/time-clock/internal/model"
)

func userIDFromRequest(r *http.Request) model.UserID {
	return strings.TrimSpace(chi.URLParam(r, "userId"))
}

func dateFromRequest(r *http.Request) model.DateKey {
	return strings.TrimSpace(chi.URLParam(r, "date"))
}
