package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vitals/internal/health"
)

// GetSamples returns the cached raw samples for a fetch key and the
// time they were fetched, or ErrNotCached on a miss.
func (s *Store) GetSamples(metric health.MetricType, period health.Period) ([]health.RawSample, time.Time, error) {
	var payload, fetchedAt string
	err := s.db.QueryRow(
		`SELECT payload, fetched_at FROM sample_cache WHERE metric = ? AND period = ?`,
		string(metric), string(period),
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrNotCached
	}
	if err != nil {
		return nil, time.Time{}, err
	}

	var samples []health.RawSample
	if err := json.Unmarshal([]byte(payload), &samples); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding cached %s samples: %w", metric, err)
	}

	at, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parsing fetched_at: %w", err)
	}

	return samples, at, nil
}

// PutSamples stores the raw samples for a fetch key, replacing any
// previous payload.
func (s *Store) PutSamples(metric health.MetricType, period health.Period, samples []health.RawSample) error {
	payload, err := json.Marshal(samples)
	if err != nil {
		return fmt.Errorf("encoding %s samples: %w", metric, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO sample_cache (metric, period, payload, fetched_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (metric, period) DO UPDATE SET
			payload = excluded.payload,
			fetched_at = excluded.fetched_at`,
		string(metric), string(period), string(payload), time.Now().Format(time.RFC3339),
	)
	return err
}
