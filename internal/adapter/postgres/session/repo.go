// Package session implements the dialog Session store using PostgreSQL.
package session

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/heart-approvals/internal/adapter/postgres"
	"github.com/heartmarshall/heart-approvals/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const sessionColumns = `submitter_id, step, content_kind, media_ref, media_mime, filename, link_url,
event_name, asset_type, updated_at`

const getSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE submitter_id = $1`

// upsertSQL overwrites every column: a restarted dialog never inherits fields.
const upsertSQL = `
INSERT INTO sessions (submitter_id, step, content_kind, media_ref, media_mime, filename, link_url,
                      event_name, asset_type, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (submitter_id) DO UPDATE SET
    step         = EXCLUDED.step,
    content_kind = EXCLUDED.content_kind,
    media_ref    = EXCLUDED.media_ref,
    media_mime   = EXCLUDED.media_mime,
    filename     = EXCLUDED.filename,
    link_url     = EXCLUDED.link_url,
    event_name   = EXCLUDED.event_name,
    asset_type   = EXCLUDED.asset_type,
    updated_at   = EXCLUDED.updated_at`

const deleteSQL = `DELETE FROM sessions WHERE submitter_id = $1`

// Get returns the open session of submitterID.
// Returns domain.ErrNotFound if the submitter is idle.
func (r *Repo) Get(ctx context.Context, submitterID string) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSession(querier.QueryRow(ctx, getSQL, submitterID))
	if err != nil {
		return nil, postgres.MapError(err, "session", submitterID)
	}

	return s, nil
}

// Upsert stores s, replacing any previous session of the same submitter.
func (r *Repo) Upsert(ctx context.Context, s *domain.Session) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err := querier.Exec(ctx, upsertSQL,
		s.SubmitterID,
		string(s.Step),
		string(s.Content.Kind),
		s.Content.MediaRef,
		s.Content.MediaMime,
		s.Content.Filename,
		s.Content.LinkURL,
		s.EventName,
		s.AssetType,
		updatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "session", s.SubmitterID)
	}

	return nil
}

// Delete removes the session of submitterID. Deleting an absent session is a no-op.
func (r *Repo) Delete(ctx context.Context, submitterID string) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := querier.Exec(ctx, deleteSQL, submitterID); err != nil {
		return postgres.MapError(err, "session", submitterID)
	}

	return nil
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	var (
		s           domain.Session
		step        string
		contentKind string
	)

	err := row.Scan(
		&s.SubmitterID,
		&step,
		&contentKind,
		&s.Content.MediaRef,
		&s.Content.MediaMime,
		&s.Content.Filename,
		&s.Content.LinkURL,
		&s.EventName,
		&s.AssetType,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Step = domain.SessionStep(step)
	s.Content.Kind = domain.ContentKind(contentKind)

	return &s, nil
}
