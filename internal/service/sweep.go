package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Harshitasingh-co/VidyaMitra/internal/alert"
	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

// EvaluateDailyAlerts runs the time-driven alert rules across every profile
// and active listing: new matches, approaching deadlines, and season starts.
// Dedupe keys make the sweep idempotent, so re-running on the same day is
// harmless. Rule failures for one user never abort the sweep.
func (s *Service) EvaluateDailyAlerts(ctx context.Context) error {
	now := time.Now().UTC()

	profiles, err := s.listProfiles(ctx)
	if err != nil {
		return err
	}
	listings, err := s.ListListings(ctx)
	if err != nil {
		return err
	}

	fired := 0
	for _, profile := range profiles {
		seen, err := s.matchedListingIDs(ctx, profile.UserID)
		if err != nil {
			slog.Warn("alert sweep: load matched listings failed", "userId", profile.UserID, "err", err)
			continue
		}

		for _, listing := range listings {
			if res, ok, err := alert.NewMatch(profile, listing, seen, s.alerts, now); err != nil {
				slog.Warn("alert sweep: new-match rule failed", "userId", profile.UserID, "listingId", listing.ID, "err", err)
			} else if ok {
				s.fireAlert(ctx, res)
				fired++
			}

			if res, ok := alert.Deadline(profile.UserID, listing, now, s.alerts); ok {
				s.fireAlert(ctx, res)
				fired++
			}
		}

		if res, ok, err := alert.SeasonStart(profile, now, s.alerts); err != nil {
			slog.Warn("alert sweep: season rule failed", "userId", profile.UserID, "err", err)
		} else if ok {
			s.fireAlert(ctx, res)
			fired++
		}
	}

	slog.Info("alert sweep complete",
		"profiles", len(profiles), "listings", len(listings), "candidates", fired)
	return nil
}

func (s *Service) listProfiles(ctx context.Context) ([]model.StudentProfile, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+profileColumns+` FROM student_profiles ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("listProfiles query: %w", err)
	}
	defer rows.Close()

	profiles := make([]model.StudentProfile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("listProfiles scan: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// matchedListingIDs returns the listings the user has already matched
// against; those are "seen" and never produce new-match alerts.
func (s *Service) matchedListingIDs(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT listing_id::text FROM skill_matches WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		seen[id] = true
	}
	return seen, nil
}
