package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Harshitasingh-co/VidyaMitra/internal/alert"
	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

// ListAlerts returns the user's alerts, newest first. unreadOnly narrows to
// alerts not yet marked read.
func (s *Service) ListAlerts(ctx context.Context, userID string, unreadOnly bool) ([]model.UserAlert, error) {
	query := `SELECT id::text, user_id, listing_id::text, alert_type, title, message, is_read, created_at
	          FROM user_alerts WHERE user_id = $1`
	if unreadOnly {
		query += ` AND NOT is_read`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listAlerts query: %w", err)
	}
	defer rows.Close()

	alerts := make([]model.UserAlert, 0)
	for rows.Next() {
		var a model.UserAlert
		if err := rows.Scan(&a.ID, &a.UserID, &a.ListingID, &a.Type, &a.Title, &a.Message, &a.IsRead, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("listAlerts scan: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, nil
}

// MarkAlertRead flips the read flag on one of the user's alerts.
func (s *Service) MarkAlertRead(ctx context.Context, userID, alertID string) (model.UserAlert, error) {
	var a model.UserAlert
	err := s.pool.QueryRow(ctx,
		`UPDATE user_alerts SET is_read = TRUE
		 WHERE id = $1::uuid AND user_id = $2
		 RETURNING id::text, user_id, listing_id::text, alert_type, title, message, is_read, created_at`,
		alertID, userID,
	).Scan(&a.ID, &a.UserID, &a.ListingID, &a.Type, &a.Title, &a.Message, &a.IsRead, &a.CreatedAt)
	if err != nil {
		return model.UserAlert{}, ErrNotFound
	}
	return a, nil
}

// fireAlert persists a rule result behind its dedupe key. The key insert is
// the atomic once-only gate: losing the conflict means the alert already
// fired, which is not an error. Key and alert commit together, so a failed
// alert insert releases the key for the next evaluation. Publish failures
// are non-fatal.
func (s *Service) fireAlert(ctx context.Context, res alert.Result) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		slog.Warn("alert tx begin failed", "key", res.DedupeKey, "err", err)
		return
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`INSERT INTO alert_dedupe (dedupe_key) VALUES ($1) ON CONFLICT DO NOTHING`,
		res.DedupeKey,
	)
	if err != nil {
		slog.Warn("alert dedupe insert failed", "key", res.DedupeKey, "err", err)
		return
	}
	if tag.RowsAffected() == 0 {
		return
	}

	a := res.Alert
	_, err = tx.Exec(ctx,
		`INSERT INTO user_alerts (id, user_id, listing_id, alert_type, title, message)
		 VALUES ($1::uuid, $2, $3::uuid, $4, $5, $6)`,
		a.ID, a.UserID, a.ListingID, string(a.Type), a.Title, a.Message,
	)
	if err != nil {
		slog.Warn("alert insert failed", "key", res.DedupeKey, "err", err)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		slog.Warn("alert tx commit failed", "key", res.DedupeKey, "err", err)
		return
	}

	// Publish so a gateway can forward the alert over SSE.
	event, _ := json.Marshal(map[string]string{
		"type":      "EVENT_ALERT_CREATED",
		"alertId":   a.ID,
		"userId":    a.UserID,
		"alertType": string(a.Type),
		"title":     a.Title,
	})
	if err := s.rdb.Publish(ctx, "EVENT_ALERT_CREATED", event).Err(); err != nil {
		slog.Warn("publish EVENT_ALERT_CREATED failed", "err", err)
	}
}
