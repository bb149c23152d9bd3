// Package store owns the attendance dataset of a session and its round trip
// to a key-value medium.
package store

import (
	"context"
	"log/slog"

	"golang.org/x/exp/maps"

	"github.com/protomem/time-clock/internal/kv"
	"github.com/protomem/time-clock/internal/model"
)

const DefaultKey = "userAttendanceData"

type Store struct {
	Logger *slog.Logger

	medium kv.Medium
	key    string
	data   model.Dataset
}

func New(logger *slog.Logger, medium kv.Medium, key string) *Store {
	if key == "" {
		key = DefaultKey
	}

	return &Store{
		Logger: logger.With("module", "store", "key", key),
		medium: medium,
		key:    key,
		data:   model.Dataset{},
	}
}

// Load replaces the in-memory dataset with the persisted one. It never fails:
// an absent, unreadable or malformed blob yields an empty dataset.
func (s *Store) Load(ctx context.Context) model.Dataset {
	s.data = s.read(ctx)
	return s.data
}

func (s *Store) read(ctx context.Context) model.Dataset {
	blob, ok, err := s.medium.Get(ctx, s.key)
	if err != nil {
		s.Logger.Error("failed to read attendance data", "error", err)
		return model.Dataset{}
	}
	if !ok {
		s.Logger.Debug("no attendance data stored")
		return model.Dataset{}
	}

	ds, err := Decode(blob)
	if err != nil {
		s.Logger.Error("failed to decode attendance data", "error", err)
		return model.Dataset{}
	}

	s.Logger.Debug("attendance data loaded", "countUsers", len(ds))

	return ds
}

// Save overwrites the persisted blob with ds, which becomes the in-memory
// dataset. A dataset that Load would reject is not written and leaves both
// the medium and the in-memory dataset unchanged.
func (s *Store) Save(ctx context.Context, ds model.Dataset) error {
	ds = normalize(ds)

	blob, err := Encode(ds)
	if err != nil {
		s.Logger.Warn("refused to write attendance data", "error", err)
		return err
	}

	s.data = ds

	if err := s.medium.Set(ctx, s.key, blob); err != nil {
		s.Logger.Warn("failed to write attendance data", "error", err)
		return model.NewError("attendance data", err)
	}

	s.Logger.Debug("attendance data saved", "countUsers", len(ds), "size", len(blob))

	return nil
}

// Flush persists the in-memory dataset.
func (s *Store) Flush(ctx context.Context) error {
	return s.Save(ctx, s.data)
}

func (s *Store) Dataset() model.Dataset {
	return s.data
}

// Lookup returns the record of user on date without creating it.
func (s *Store) Lookup(userID model.UserID, date model.DateKey) (*model.DailyRecord, bool) {
	rec, ok := s.data[userID][date]
	return rec, ok && rec != nil
}

// GetOrCreateRecord returns the record of user on date, inserting a fresh one
// when missing. Nothing is persisted until the next Save or Flush.
func (s *Store) GetOrCreateRecord(userID model.UserID, date model.DateKey) *model.DailyRecord {
	records, ok := s.data[userID]
	if !ok {
		records = model.DailyRecords{}
		s.data[userID] = records
	}

	rec, ok := records[date]
	if !ok || rec == nil {
		rec = &model.DailyRecord{}
		records[date] = rec
	}

	return rec
}

// Dates returns the dates recorded for user, in no particular order.
func (s *Store) Dates(userID model.UserID) []model.DateKey {
	return maps.Keys(s.data[userID])
}
