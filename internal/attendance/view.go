package attendance

import "github.com/protomem/time-clock/internal/model"

const UnpunchedLabel = "unpunched"

type View struct {
	PunchInEnabled  bool   `json:"punchInEnabled"`
	PunchOutEnabled bool   `json:"punchOutEnabled"`
	StartLabel      string `json:"startLabel"`
	FinishLabel     string `json:"finishLabel"`
}

// DeriveView computes the controls state for rec. A nil record derives the
// same view as a fresh one.
func DeriveView(rec *model.DailyRecord) View {
	if rec == nil {
		rec = &model.DailyRecord{}
	}

	return View{
		PunchInEnabled:  !rec.PunchedIn,
		PunchOutEnabled: rec.PunchedIn && rec.FinishTime == nil,
		StartLabel:      label(rec.StartTime),
		FinishLabel:     label(rec.FinishTime),
	}
}

func label(t *model.WallTime) string {
	if t == nil {
		return UnpunchedLabel
	}
	return *t
}
