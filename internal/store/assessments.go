package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AssessmentSnapshot is the persisted summary of one assessment run,
// kept for the score-over-time view. The full Assessment value itself
// is never persisted.
type AssessmentSnapshot struct {
	ID           string
	GeneratedAt  time.Time
	Status       string
	OverallScore *float64
	Category     string
	DomainScores map[string]float64
}

// SaveAssessment stores a snapshot and returns its generated id.
func (s *Store) SaveAssessment(snap AssessmentSnapshot) (string, error) {
	id := snap.ID
	if id == "" {
		id = uuid.NewString()
	}

	domains, err := json.Marshal(snap.DomainScores)
	if err != nil {
		return "", fmt.Errorf("encoding domain scores: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO assessments (id, generated_at, status, overall_score, category, domain_scores)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		snap.GeneratedAt.Format(time.RFC3339),
		snap.Status,
		toNullFloat64(snap.OverallScore),
		snap.Category,
		string(domains),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// LatestAssessment returns the most recent snapshot, or
// ErrNoAssessments when history is empty.
func (s *Store) LatestAssessment() (*AssessmentSnapshot, error) {
	snaps, err := s.ListAssessments(1)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, ErrNoAssessments
	}
	return &snaps[0], nil
}

// ListAssessments returns snapshots ordered newest first.
func (s *Store) ListAssessments(limit int) ([]AssessmentSnapshot, error) {
	rows, err := s.db.Query(
		`SELECT id, generated_at, status, overall_score, category, domain_scores
		 FROM assessments ORDER BY generated_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []AssessmentSnapshot
	for rows.Next() {
		var (
			snap        AssessmentSnapshot
			generatedAt string
			overall     sql.NullFloat64
			domains     string
		)
		if err := rows.Scan(&snap.ID, &generatedAt, &snap.Status, &overall, &snap.Category, &domains); err != nil {
			return nil, err
		}

		snap.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing generated_at: %w", err)
		}
		if overall.Valid {
			v := overall.Float64
			snap.OverallScore = &v
		}
		if err := json.Unmarshal([]byte(domains), &snap.DomainScores); err != nil {
			return nil, fmt.Errorf("decoding domain scores: %w", err)
		}

		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// PreviousAssessment returns the snapshot immediately before the most
// recent one, for delta display. ErrNoAssessments when there is no
// history that deep.
func (s *Store) PreviousAssessment() (*AssessmentSnapshot, error) {
	snaps, err := s.ListAssessments(2)
	if err != nil {
		return nil, err
	}
	if len(snaps) < 2 {
		return nil, ErrNoAssessments
	}
	return &snaps[1], nil
}

func toNullFloat64(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
