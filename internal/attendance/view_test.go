package attendance

import (
	"testing"

	"github.com/protomem/time-clock/internal/model"
)

func TestDeriveView(t *testing.T) {
	tests := []struct {
		name string
		rec  *model.DailyRecord
		want View
	}{
		{
			name: "nil record",
			rec:  nil,
			want: View{PunchInEnabled: true, PunchOutEnabled: false, StartLabel: UnpunchedLabel, FinishLabel: UnpunchedLabel},
		},
		{
			name: "unpunched",
			rec:  &model.DailyRecord{},
			want: View{PunchInEnabled: true, PunchOutEnabled: false, StartLabel: UnpunchedLabel, FinishLabel: UnpunchedLabel},
		},
		{
			name: "punched in",
			rec:  &model.DailyRecord{StartTime: strPtr("09:00"), PunchedIn: true},
			want: View{PunchInEnabled: false, PunchOutEnabled: true, StartLabel: "09:00", FinishLabel: UnpunchedLabel},
		},
		{
			name: "punched out",
			rec:  &model.DailyRecord{StartTime: strPtr("09:00"), FinishTime: strPtr("18:00"), PunchedIn: true},
			want: View{PunchInEnabled: false, PunchOutEnabled: false, StartLabel: "09:00", FinishLabel: "18:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveView(tt.rec); got != tt.want {
				t.Fatalf("DeriveView() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDeriveViewFollowsTransitions(t *testing.T) {
	rec := &model.DailyRecord{}

	PunchIn(rec, "09:00")
	view := DeriveView(rec)
	if view.PunchInEnabled || !view.PunchOutEnabled {
		t.Fatalf("after punch-in: %+v", view)
	}

	PunchOut(rec, "18:00")
	view = DeriveView(rec)
	if view.PunchInEnabled || view.PunchOutEnabled {
		t.Fatalf("after punch-out: %+v", view)
	}
	if view.StartLabel != "09:00" || view.FinishLabel != "18:00" {
		t.Fatalf("labels: %+v", view)
	}
}
