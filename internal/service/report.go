package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

// ReportScam files a fraud report against a listing. Reports start in the
// pending moderation state; review happens out of band.
func (s *Service) ReportScam(ctx context.Context, userID, listingID, reason string, details *string) (model.ScamReport, error) {
	if strings.TrimSpace(reason) == "" {
		return model.ScamReport{}, model.Invalid("reason", "must not be blank")
	}
	if _, err := s.GetListing(ctx, listingID); err != nil {
		return model.ScamReport{}, err
	}

	var r model.ScamReport
	err := s.pool.QueryRow(ctx,
		`INSERT INTO scam_reports (id, listing_id, reported_by, reason, details)
		 VALUES ($1::uuid, $2::uuid, $3, $4, $5)
		 RETURNING id::text, listing_id::text, reported_by, reason, details, status, created_at, reviewed_at, reviewed_by`,
		uuid.NewString(), listingID, userID, strings.TrimSpace(reason), details,
	).Scan(&r.ID, &r.ListingID, &r.ReportedBy, &r.Reason, &r.Details, &r.Status,
		&r.CreatedAt, &r.ReviewedAt, &r.ReviewedBy)
	if err != nil {
		return model.ScamReport{}, fmt.Errorf("reportScam: %w", err)
	}
	return r, nil
}
