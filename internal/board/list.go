package board

import (
	"context"

	"golang.org/x/exp/slices"

	"github.com/protomem/time-clock/internal/attendance"
	"github.com/protomem/time-clock/internal/clock"
	"github.com/protomem/time-clock/internal/model"
)

type Row struct {
	Employee    model.Employee `json:"employee"`
	Date        model.DateKey  `json:"date"`
	StartLabel  string         `json:"startLabel"`
	FinishLabel string         `json:"finishLabel"`
}

type List struct {
	Empty bool  `json:"empty"`
	Rows  []Row `json:"rows"`
}

// List renders one row per roster employee and date, for every stored date
// plus today, oldest first.
func (b *Board) List(_ context.Context) List {
	b.mu.Lock()
	defer b.mu.Unlock()

	today := clock.Today(b.clock)
	employees := b.dir.All()

	out := List{
		Empty: len(employees) == 0,
		Rows:  []Row{},
	}

	for _, emp := range employees {
		dates := b.store.Dates(emp.ID)
		if !slices.Contains(dates, today) {
			dates = append(dates, today)
		}
		slices.Sort(dates)

		for _, date := range dates {
			rec, _ := b.store.Lookup(emp.ID, date)
			view := attendance.DeriveView(rec)

			out.Rows = append(out.Rows, Row{
				Employee:    emp,
				Date:        date,
				StartLabel:  view.StartLabel,
				FinishLabel: view.FinishLabel,
			})
		}
	}

	return out
}
