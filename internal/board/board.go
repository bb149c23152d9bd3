// Package board drives the time-clock screen: the employee cards, the punch
// modal of the selected employee and the attendance list. Every view it
// returns is derived from the store at call time.
package board

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/protomem/time-clock/internal/attendance"
	"github.com/protomem/time-clock/internal/clock"
	"github.com/protomem/time-clock/internal/model"
	"github.com/protomem/time-clock/internal/roster"
	"github.com/protomem/time-clock/internal/store"
)

type Card struct {
	Employee model.Employee  `json:"employee"`
	Date     model.DateKey   `json:"date"`
	View     attendance.View `json:"view"`

	// InActive and OutActive highlight the card badges.
	InActive  bool `json:"inActive"`
	OutActive bool `json:"outActive"`
}

type Cards struct {
	Date  model.DateKey `json:"date"`
	Empty bool          `json:"empty"`
	Cards []Card        `json:"cards"`
}

type Modal struct {
	Employee model.Employee  `json:"employee"`
	Date     model.DateKey   `json:"date"`
	View     attendance.View `json:"view"`
}

// Outcome is the result of a punch action.
type Outcome struct {
	UserID  model.UserID      `json:"userId"`
	Date    model.DateKey     `json:"date"`
	Changed bool              `json:"changed"`
	Record  model.DailyRecord `json:"record"`
	View    attendance.View   `json:"view"`
}

// Board serializes all operations: handlers run to completion one at a time.
type Board struct {
	Logger *slog.Logger

	mu       sync.Mutex
	store    *store.Store
	dir      roster.Directory
	clock    clock.Clock
	selected *model.UserID
}

func New(logger *slog.Logger, st *store.Store, dir roster.Directory, clk clock.Clock) *Board {
	if clk == nil {
		clk = clock.System
	}

	return &Board{
		Logger: logger.With("module", "board"),
		store:  st,
		dir:    dir,
		clock:  clk,
	}
}

// Reload hydrates the dataset from storage and drops the selection.
func (b *Board) Reload(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ds := b.store.Load(ctx)
	b.selected = nil

	b.Logger.Debug("board reloaded", "countUsers", len(ds), "countEmployees", len(b.dir.All()))
}

func (b *Board) Cards(_ context.Context) Cards {
	b.mu.Lock()
	defer b.mu.Unlock()

	today := clock.Today(b.clock)
	employees := b.dir.All()

	out := Cards{
		Date:  today,
		Empty: len(employees) == 0,
		Cards: make([]Card, 0, len(employees)),
	}

	for _, emp := range employees {
		rec, _ := b.store.Lookup(emp.ID, today)
		out.Cards = append(out.Cards, Card{
			Employee:  emp,
			Date:      today,
			View:      attendance.DeriveView(rec),
			InActive:  rec != nil && rec.PunchedIn,
			OutActive: rec != nil && rec.FinishTime != nil,
		})
	}

	return out
}

// Open selects id and returns its modal. Unknown ids get a placeholder
// identity and can still punch.
func (b *Board) Open(_ context.Context, id model.UserID) Modal {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.selected = &id

	if _, ok := b.dir.Lookup(id); !ok {
		b.Logger.Warn("opened unknown user", "userId", id)
	}

	return b.modal(id)
}

// Current returns the modal of the selected user, ok is false when closed.
func (b *Board) Current(_ context.Context) (Modal, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.selected == nil {
		return Modal{}, false
	}
	return b.modal(*b.selected), true
}

// Close drops the selection. Committed records are kept.
func (b *Board) Close(_ context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.selected = nil
}

func (b *Board) modal(id model.UserID) Modal {
	today := clock.Today(b.clock)
	rec, _ := b.store.Lookup(id, today)

	return Modal{
		Employee: roster.Identify(b.dir, id),
		Date:     today,
		View:     attendance.DeriveView(rec),
	}
}

// Record returns a copy of the stored record of id on date.
func (b *Board) Record(_ context.Context, id model.UserID, date model.DateKey) (model.DailyRecord, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rec, ok := b.store.Lookup(id, date)
	if !ok {
		return model.DailyRecord{}, false
	}
	return *rec, true
}

func (b *Board) PunchIn(ctx context.Context) Outcome {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()
	today := clock.DateKey(now)

	if b.selected == nil {
		b.Logger.Warn("punch-in without selected user")
		return Outcome{Date: today, View: attendance.DeriveView(nil)}
	}
	id := *b.selected

	rec := b.store.GetOrCreateRecord(id, today)
	changed := attendance.PunchIn(rec, clock.WallTime(now))

	return b.commit(ctx, "punch-in", id, today, now, rec, changed)
}

func (b *Board) PunchOut(ctx context.Context) Outcome {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()
	today := clock.DateKey(now)

	if b.selected == nil {
		b.Logger.Warn("punch-out without selected user")
		return Outcome{Date: today, View: attendance.DeriveView(nil)}
	}
	id := *b.selected

	rec, ok := b.store.Lookup(id, today)
	if !ok {
		b.Logger.Warn("punch-out without punch-in record", "userId", id, "date", today)
		return Outcome{UserID: id, Date: today, View: attendance.DeriveView(nil)}
	}

	changed := attendance.PunchOut(rec, clock.WallTime(now))

	return b.commit(ctx, "punch-out", id, today, now, rec, changed)
}

func (b *Board) commit(
	ctx context.Context, action string,
	id model.UserID, date model.DateKey, now time.Time,
	rec *model.DailyRecord, changed bool,
) Outcome {
	logger := b.Logger.With("action", action, "userId", id, "date", date)

	if !changed {
		logger.Debug("ignored punch", "state", attendance.StateOf(rec).String())
		return Outcome{UserID: id, Date: date, Record: *rec, View: attendance.DeriveView(rec)}
	}

	emp := roster.Identify(b.dir, id)
	rec.UserName = emp.Name
	rec.Department = emp.Department
	rec.Timestamp = clock.Timestamp(now)

	if err := b.store.Flush(ctx); err != nil {
		logger.Error("failed to save attendance", "error", err)
	}

	logger.Info("punched", "name", emp.Name, "department", emp.Department, "time", clock.WallTime(now))

	b.selected = nil

	return Outcome{UserID: id, Date: date, Changed: true, Record: *rec, View: attendance.DeriveView(rec)}
}
