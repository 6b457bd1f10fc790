// Package vote implements the Vote ledger using PostgreSQL.
// A vote is a row keyed by (message_id, approver_id); presence is endorsement.
package vote

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/heart-approvals/internal/adapter/postgres"
)

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vote repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Add records approverID's vote on messageID. It reports whether a row was
// inserted; a repeated vote is a no-op returning false.
func (r *Repo) Add(ctx context.Context, messageID, approverID string) (bool, error) {
	query, args, err := postgres.Builder().
		Insert("votes").
		Columns("message_id", "approver_id").
		Values(messageID, approverID).
		Suffix("ON CONFLICT (message_id, approver_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build add vote: %w", err)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "vote", messageID)
	}

	return ct.RowsAffected() == 1, nil
}

// Remove withdraws approverID's vote on messageID and reports whether one existed.
func (r *Repo) Remove(ctx context.Context, messageID, approverID string) (bool, error) {
	query, args, err := postgres.Builder().
		Delete("votes").
		Where(squirrel.Eq{"message_id": messageID, "approver_id": approverID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build remove vote: %w", err)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "vote", messageID)
	}

	return ct.RowsAffected() == 1, nil
}

// Count returns the number of distinct approvers currently endorsing messageID.
func (r *Repo) Count(ctx context.Context, messageID string) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From("votes").
		Where(squirrel.Eq{"message_id": messageID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count votes: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "vote", messageID)
	}

	return n, nil
}

// ListVoters returns the approvers endorsing messageID in voting order.
func (r *Repo) ListVoters(ctx context.Context, messageID string) ([]string, error) {
	query, args, err := postgres.Builder().
		Select("approver_id").
		From("votes").
		Where(squirrel.Eq{"message_id": messageID}).
		OrderBy("created_at", "approver_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list voters: %w", err)
	}

	voters := []string{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &voters, query, args...); err != nil {
		return nil, postgres.MapError(err, "vote", messageID)
	}

	return voters, nil
}
