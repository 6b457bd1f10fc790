// Package item implements the Item store using PostgreSQL.
package item

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/heart-approvals/internal/adapter/postgres"
	"github.com/heartmarshall/heart-approvals/internal/domain"
)

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const itemColumns = `message_id, tracking_code, submitter_id, submitter_name, group_id,
event_name, asset_type, content_kind, link_url, status, created_at, approved_at`

const createSQL = `
INSERT INTO items (message_id, tracking_code, submitter_id, submitter_name, group_id,
                   event_name, asset_type, content_kind, link_url, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'PENDING', $10)
RETURNING ` + itemColumns

const getByMessageIDSQL = `
SELECT ` + itemColumns + `
FROM items
WHERE message_id = $1`

const getForUpdateSQL = getByMessageIDSQL + `
FOR UPDATE`

const markApprovedSQL = `
UPDATE items
SET status = 'APPROVED', approved_at = now()
WHERE message_id = $1 AND status = 'PENDING'`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByMessageID returns an item by its group message identifier.
// Returns domain.ErrNotFound if no item was broadcast under that id.
func (r *Repo) GetByMessageID(ctx context.Context, messageID string) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	item, err := scanItem(querier.QueryRow(ctx, getByMessageIDSQL, messageID))
	if err != nil {
		return nil, postgres.MapError(err, "item", messageID)
	}

	return item, nil
}

// GetByMessageIDForUpdate is GetByMessageID with a row lock held until the
// surrounding transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByMessageIDForUpdate(ctx context.Context, messageID string) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	item, err := scanItem(querier.QueryRow(ctx, getForUpdateSQL, messageID))
	if err != nil {
		return nil, postgres.MapError(err, "item", messageID)
	}

	return item, nil
}

// GetByTrackingCode returns the most recently created item carrying code.
// Tracking codes are not unique; older collisions are shadowed.
func (r *Repo) GetByTrackingCode(ctx context.Context, code string) (*domain.Item, error) {
	query, args, err := postgres.Builder().
		Select(itemColumns).
		From("items").
		Where(squirrel.Eq{"tracking_code": code}).
		OrderBy("created_at DESC", "message_id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get by tracking code: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	item, err := scanItem(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", code)
	}

	return item, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new PENDING item and returns the persisted domain.Item.
// A second item with the same message id results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	row := querier.QueryRow(ctx, createSQL,
		item.MessageID,
		item.TrackingCode,
		item.SubmitterID,
		item.SubmitterName,
		item.GroupID,
		item.EventName,
		item.AssetType,
		string(item.ContentKind),
		item.LinkURL,
		createdAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "item", item.MessageID)
	}

	return created, nil
}

// MarkApproved moves a PENDING item to APPROVED. It reports true only when
// this call performed the transition; an already approved item yields false.
func (r *Repo) MarkApproved(ctx context.Context, messageID string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := querier.Exec(ctx, markApprovedSQL, messageID)
	if err != nil {
		return false, postgres.MapError(err, "item", messageID)
	}

	return ct.RowsAffected() == 1, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		item        domain.Item
		contentKind string
		status      string
	)

	err := row.Scan(
		&item.MessageID,
		&item.TrackingCode,
		&item.SubmitterID,
		&item.SubmitterName,
		&item.GroupID,
		&item.EventName,
		&item.AssetType,
		&contentKind,
		&item.LinkURL,
		&status,
		&item.CreatedAt,
		&item.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}

	item.ContentKind = domain.ContentKind(contentKind)
	item.Status = domain.ItemStatus(status)

	return &item, nil
}
