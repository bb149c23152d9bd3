package store

import (
	"bytes"
	"encoding/json"

	"github.com/protomem/time-clock/internal/attendance"
	"github.com/protomem/time-clock/internal/clock"
	"github.com/protomem/time-clock/internal/model"
)

var _null = []byte("null")

// Encode serializes the full dataset. Users without records are written as
// empty objects; the dataset must otherwise satisfy the decode schema.
func Encode(ds model.Dataset) (string, error) {
	ds = normalize(ds)
	if err := validate(ds); err != nil {
		return "", err
	}

	data, err := json.Marshal(ds)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Decode parses a serialized dataset. Unknown fields are ignored, anything
// else that does not match the schema is an error.
func Decode(blob string) (model.Dataset, error) {
	raw := []byte(blob)
	if bytes.Equal(bytes.TrimSpace(raw), _null) {
		return model.Dataset{}, nil
	}

	var ds model.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, err
	}
	if ds == nil {
		ds = model.Dataset{}
	}

	if err := validate(ds); err != nil {
		return nil, err
	}

	return ds, nil
}

// normalize returns ds with nil record maps replaced by empty ones. ds itself
// is left untouched.
func normalize(ds model.Dataset) model.Dataset {
	out := make(model.Dataset, len(ds))
	for userID, records := range ds {
		if records == nil {
			records = model.DailyRecords{}
		}
		out[userID] = records
	}
	return out
}

func validate(ds model.Dataset) error {
	for userID, records := range ds {
		if records == nil {
			return model.Invalidf("attendance data", "user %q: records must be an object", userID)
		}

		for date, rec := range records {
			if !clock.ValidDateKey(date) {
				return model.Invalidf("attendance data", "user %q: date key %q", userID, date)
			}
			if rec == nil {
				return model.Invalidf("attendance data", "user %q date %s: record must be an object", userID, date)
			}
			if rec.StartTime != nil && !clock.ValidWallTime(*rec.StartTime) {
				return model.Invalidf("attendance data", "user %q date %s: start time %q", userID, date, *rec.StartTime)
			}
			if rec.FinishTime != nil && !clock.ValidWallTime(*rec.FinishTime) {
				return model.Invalidf("attendance data", "user %q date %s: finish time %q", userID, date, *rec.FinishTime)
			}
			if !attendance.Valid(*rec) {
				return model.Invalidf("attendance data", "user %q date %s: inconsistent record", userID, date)
			}
		}
	}

	return nil
}
