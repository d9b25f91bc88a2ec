package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"farmatch-backend/internal/domain"
	"farmatch-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

const profilesSchema = `
	CREATE TABLE IF NOT EXISTS profiles (
		identity     TEXT PRIMARY KEY,
		answers      JSONB NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL
	)
`

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

// EnsureSchema creates the profiles table when missing. There are no migrations.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, profilesSchema); err != nil {
		return fmt.Errorf("failed to create profiles table: %w", err)
	}
	return nil
}

func (r *profileRepo) Put(ctx context.Context, profile *domain.Profile) error {
	answers, err := json.Marshal(profile.Answers.Map())
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	query := `
		INSERT INTO profiles (identity, answers, submitted_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (identity) DO UPDATE SET
			answers = EXCLUDED.answers,
			submitted_at = EXCLUDED.submitted_at
	`
	if _, err := r.db.Exec(ctx, query, profile.Identity, answers, profile.SubmittedAt); err != nil {
		return fmt.Errorf("failed to store profile %s: %w", profile.Identity, err)
	}
	return nil
}

func (r *profileRepo) GetAll(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT identity, answers, submitted_at FROM profiles ORDER BY identity`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		var (
			identity    string
			raw         []byte
			submittedAt time.Time
		)
		if err := rows.Scan(&identity, &raw, &submittedAt); err != nil {
			logger.Log.Debug("Skipping unreadable profile row", "error", err)
			continue
		}

		var fields map[string]string
		if err := json.Unmarshal(raw, &fields); err != nil {
			logger.Log.Debug("Skipping malformed profile", "identity", identity, "error", err)
			continue
		}

		profiles = append(profiles, domain.Profile{
			Identity:    identity,
			Answers:     domain.AnswersFromMap(fields),
			SubmittedAt: submittedAt.UTC(),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}

	return profiles, nil
}

func (r *profileRepo) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT identity FROM profiles ORDER BY identity`)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile keys: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan profile key: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *profileRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
