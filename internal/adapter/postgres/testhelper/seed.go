package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/heart-approvals/internal/domain"
)

// UniqueID returns a short unique string for generating non-conflicting test data.
func UniqueID(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedItem inserts a PENDING item with unique identifiers and returns it.
func SeedItem(t *testing.T, pool *pgxpool.Pool, trackingCode string) domain.Item {
	t.Helper()

	item := domain.Item{
		MessageID:     UniqueID("wamid"),
		TrackingCode:  trackingCode,
		SubmitterID:   UniqueID("351"),
		SubmitterName: "Test Submitter",
		GroupID:       "120363000000000000@g.us",
		EventName:     "Gala",
		AssetType:     "Poster A3",
		ContentKind:   domain.ContentKindImage,
		Status:        domain.ItemStatusPending,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO items (message_id, tracking_code, submitter_id, submitter_name, group_id,
		                    event_name, asset_type, content_kind, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		item.MessageID, item.TrackingCode, item.SubmitterID, item.SubmitterName, item.GroupID,
		item.EventName, item.AssetType, string(item.ContentKind), string(item.Status), item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed item: %v", err)
	}

	return item
}
