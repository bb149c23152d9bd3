package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/protomem/time-clock/internal/board"
	"github.com/protomem/time-clock/internal/clock"
	"github.com/protomem/time-clock/internal/model"
	"github.com/protomem/time-clock/internal/request"
	"github.com/protomem/time-clock/internal/response"
	"github.com/protomem/time-clock/internal/validator"
)

const _clockTickInterval = time.Second

func (app *application) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, response.JSONObject{"status": "OK"}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleCards(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, app.board.Cards(r.Context())); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleAttendanceList(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, app.board.List(r.Context())); err != nil {
		app.serverError(w, r, err)
	}
}

type requestOpenModal struct {
	UserID model.UserID `json:"userId"`
}

type responseModal struct {
	Modal board.Modal `json:"modal"`
}

func (app *application) handleOpenModal(w http.ResponseWriter, r *http.Request) {
	var input requestOpenModal
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	if validateRequestOpenModal(&v, input); v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	modal := app.board.Open(r.Context(), input.UserID)
	app.noteAccess(r, "open", input.UserID)

	if err := response.JSON(w, http.StatusOK, responseModal{Modal: modal}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleCurrentModal(w http.ResponseWriter, r *http.Request) {
	modal, ok := app.board.Current(r.Context())
	if !ok {
		app.errorMessage(w, r, http.StatusNotFound, "modal is closed", nil)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseModal{Modal: modal}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleCloseModal(w http.ResponseWriter, r *http.Request) {
	app.board.Close(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

type responsePunch struct {
	Outcome board.Outcome `json:"outcome"`
}

func (app *application) handlePunchIn(w http.ResponseWriter, r *http.Request) {
	out := app.board.PunchIn(r.Context())
	app.noteAccess(r, "punch-in", out.UserID)

	app.requestLogger(r).Debug("punch-in handled", "userId", out.UserID, "changed", out.Changed)

	if err := response.JSON(w, http.StatusOK, responsePunch{Outcome: out}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handlePunchOut(w http.ResponseWriter, r *http.Request) {
	out := app.board.PunchOut(r.Context())
	app.noteAccess(r, "punch-out", out.UserID)

	app.requestLogger(r).Debug("punch-out handled", "userId", out.UserID, "changed", out.Changed)

	if err := response.JSON(w, http.StatusOK, responsePunch{Outcome: out}); err != nil {
		app.serverError(w, r, err)
	}
}

type responseClock struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func newResponseClock(now time.Time) responseClock {
	return responseClock{
		Date: clock.DateDisplay(now),
		Time: clock.TimeDisplay(now),
	}
}

func (app *application) handleClock(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, newResponseClock(app.clock.Now())); err != nil {
		app.serverError(w, r, err)
	}
}

// handleClockStream repaints the ambient clock once per tick as server-sent
// events. It only reads the clock.
func (app *application) handleClockStream(w http.ResponseWriter, r *http.Request) {
	app.wg.Add(1)
	defer app.wg.Done()

	rc := http.NewResponseController(w)
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		app.requestLogger(r).Debug("cannot clear write deadline", "error", err)
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ticker := time.NewTicker(_clockTickInterval)
	defer ticker.Stop()

	send := func(now time.Time) error {
		c := newResponseClock(now)
		if _, err := fmt.Fprintf(w, "event: tick\ndata: {\"date\":%q,\"time\":%q}\n\n", c.Date, c.Time); err != nil {
			return err
		}
		return rc.Flush()
	}

	if err := send(app.clock.Now()); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case <-app.stopping:
			return
		case <-ticker.C:
			if err := send(app.clock.Now()); err != nil {
				return
			}
		}
	}
}

type responseRecord struct {
	UserID model.UserID      `json:"userId"`
	Date   model.DateKey     `json:"date"`
	Record model.DailyRecord `json:"record"`
}

func (app *application) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromRequest(r)
	date := dateFromRequest(r)

	var v validator.Validator
	validateUserID(&v, userID)
	validateDateKey(&v, date)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	app.noteAccess(r, "record", userID)

	rec, ok := app.board.Record(r.Context(), userID, date)
	if !ok {
		app.errorMessage(w, r, http.StatusNotFound, model.NewError("record", model.ErrNotFound).Error(), nil)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseRecord{UserID: userID, Date: date, Record: rec}); err != nil {
		app.serverError(w, r, err)
	}
}
