package service

import (
	"context"
	"fmt"

	"github.com/Harshitasingh-co/VidyaMitra/internal/match"
	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

// ListListings returns all active listings, newest first.
func (s *Service) ListListings(ctx context.Context) ([]model.InternshipListing, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+listingColumns+`
		 FROM internship_listings
		 WHERE is_active
		 ORDER BY posted_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("listListings query: %w", err)
	}
	defer rows.Close()

	listings := make([]model.InternshipListing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("listListings scan: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// RankedListings returns the active listings ordered by skill-match quality
// for the given user. Requires a saved profile.
func (s *Service) RankedListings(ctx context.Context, userID string) ([]match.Ranked, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	listings, err := s.ListListings(ctx)
	if err != nil {
		return nil, err
	}
	return match.Rank(listings, profile.Skills)
}

// GetListing returns one listing by id, active or not.
func (s *Service) GetListing(ctx context.Context, listingID string) (model.InternshipListing, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+listingColumns+` FROM internship_listings WHERE id = $1::uuid`, listingID)
	l, err := scanListing(row)
	if err != nil {
		return model.InternshipListing{}, ErrNotFound
	}
	return l, nil
}
