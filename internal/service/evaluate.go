package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Harshitasingh-co/VidyaMitra/internal/alert"
	"github.com/Harshitasingh-co/VidyaMitra/internal/match"
	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
	"github.com/Harshitasingh-co/VidyaMitra/internal/readiness"
	"github.com/Harshitasingh-co/VidyaMitra/internal/verification"
)

// VerifyListing runs verification on a listing, caches the result, and
// reflects the outcome back onto the listing row. Re-running overwrites the
// previous result wholesale.
func (s *Service) VerifyListing(ctx context.Context, listingID string) (model.VerificationResult, error) {
	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return model.VerificationResult{}, err
	}

	result, err := verification.Verify(listing, s.weights)
	if err != nil {
		return model.VerificationResult{}, err
	}

	signals, _ := json.Marshal(result.Signals)
	flags, _ := json.Marshal(result.RedFlags)
	_, err = s.pool.Exec(ctx,
		`INSERT INTO verification_results
		   (listing_id, status, trust_score, signals, red_flags, notes, last_verified)
		 VALUES ($1::uuid, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (listing_id) DO UPDATE SET
		   status        = EXCLUDED.status,
		   trust_score   = EXCLUDED.trust_score,
		   signals       = EXCLUDED.signals,
		   red_flags     = EXCLUDED.red_flags,
		   notes         = EXCLUDED.notes,
		   last_verified = EXCLUDED.last_verified`,
		result.ListingID, string(result.Status), result.TrustScore,
		signals, flags, result.Notes, result.LastVerified,
	)
	if err != nil {
		return model.VerificationResult{}, fmt.Errorf("verifyListing upsert: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`UPDATE internship_listings
		 SET verification_status = $1, trust_score = $2, red_flags = $3, updated_at = NOW()
		 WHERE id = $4::uuid`,
		string(result.Status), result.TrustScore, flags, listingID,
	)
	if err != nil {
		return model.VerificationResult{}, fmt.Errorf("verifyListing listing update: %w", err)
	}
	return result, nil
}

// GetVerification returns the cached verification result for a listing, if any.
func (s *Service) GetVerification(ctx context.Context, listingID string) (model.VerificationResult, error) {
	var (
		r              model.VerificationResult
		signals, flags []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT listing_id::text, status, trust_score, signals, red_flags, notes, last_verified
		 FROM verification_results WHERE listing_id = $1::uuid`, listingID,
	).Scan(&r.ListingID, &r.Status, &r.TrustScore, &signals, &flags, &r.Notes, &r.LastVerified)
	if err != nil {
		return model.VerificationResult{}, ErrNotFound
	}
	if err := json.Unmarshal(signals, &r.Signals); err != nil {
		return model.VerificationResult{}, fmt.Errorf("getVerification signals: %w", err)
	}
	if len(flags) > 0 {
		if err := json.Unmarshal(flags, &r.RedFlags); err != nil {
			return model.VerificationResult{}, fmt.Errorf("getVerification red_flags: %w", err)
		}
	}
	return r, nil
}

// MatchListing computes the skill match between the user's profile and a
// listing, persisting the result. Recomputation replaces the stored row.
func (s *Service) MatchListing(ctx context.Context, userID, listingID string) (model.SkillMatch, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return model.SkillMatch{}, err
	}
	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return model.SkillMatch{}, err
	}

	sm, err := match.Compute(profile.Skills, listing)
	if err != nil {
		return model.SkillMatch{}, err
	}
	sm.UserID = userID

	path, _ := json.Marshal(sm.LearningPath)
	_, err = s.pool.Exec(ctx,
		`INSERT INTO skill_matches
		   (user_id, listing_id, match_percentage, matching_skills, missing_skills, learning_path)
		 VALUES ($1, $2::uuid, $3, $4, $5, $6)
		 ON CONFLICT (user_id, listing_id) DO UPDATE SET
		   match_percentage = EXCLUDED.match_percentage,
		   matching_skills  = EXCLUDED.matching_skills,
		   missing_skills   = EXCLUDED.missing_skills,
		   learning_path    = EXCLUDED.learning_path,
		   updated_at       = NOW()`,
		sm.UserID, sm.ListingID, sm.MatchPercentage, sm.MatchingSkills, sm.MissingSkills, path,
	)
	if err != nil {
		return model.SkillMatch{}, fmt.Errorf("matchListing upsert: %w", err)
	}
	return sm, nil
}

// ScoreReadiness recomputes the skill match, scores apply-readiness against
// the supplied resume strength, and persists the score. When the overall
// score improves enough over the stored one, a readiness alert fires.
func (s *Service) ScoreReadiness(ctx context.Context, userID, listingID string, resumeStrength int) (model.ReadinessScore, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return model.ReadinessScore{}, err
	}
	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return model.ReadinessScore{}, err
	}

	sm, err := s.MatchListing(ctx, userID, listingID)
	if err != nil {
		return model.ReadinessScore{}, err
	}

	score, err := readiness.Score(profile, listing, sm, resumeStrength)
	if err != nil {
		return model.ReadinessScore{}, err
	}

	previous, err := s.getReadiness(ctx, userID, listingID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return model.ReadinessScore{}, err
	}
	var old *model.ReadinessScore
	if err == nil {
		old = &previous
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO readiness_scores
		   (user_id, listing_id, overall_score, resume_strength, skill_match,
		    semester_readiness, recommendation, improvement_actions)
		 VALUES ($1, $2::uuid, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id, listing_id) DO UPDATE SET
		   overall_score       = EXCLUDED.overall_score,
		   resume_strength     = EXCLUDED.resume_strength,
		   skill_match         = EXCLUDED.skill_match,
		   semester_readiness  = EXCLUDED.semester_readiness,
		   recommendation      = EXCLUDED.recommendation,
		   improvement_actions = EXCLUDED.improvement_actions,
		   updated_at          = NOW()`,
		score.UserID, score.ListingID, score.OverallScore, score.ResumeStrength,
		score.SkillMatch, score.SemesterReadiness, score.Recommendation, score.ImprovementActions,
	)
	if err != nil {
		return model.ReadinessScore{}, fmt.Errorf("scoreReadiness upsert: %w", err)
	}

	if res, fired := alert.ReadinessImproved(old, score, s.alerts, time.Now().UTC()); fired {
		s.fireAlert(ctx, res)
	}
	return score, nil
}

func (s *Service) getSkillMatch(ctx context.Context, userID, listingID string) (model.SkillMatch, error) {
	var (
		sm   model.SkillMatch
		path []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT user_id, listing_id::text, match_percentage, matching_skills, missing_skills, learning_path
		 FROM skill_matches WHERE user_id = $1 AND listing_id = $2::uuid`,
		userID, listingID,
	).Scan(&sm.UserID, &sm.ListingID, &sm.MatchPercentage, &sm.MatchingSkills, &sm.MissingSkills, &path)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.SkillMatch{}, ErrNotFound
	}
	if err != nil {
		return model.SkillMatch{}, fmt.Errorf("getSkillMatch: %w", err)
	}
	if len(path) > 0 {
		if err := json.Unmarshal(path, &sm.LearningPath); err != nil {
			return model.SkillMatch{}, fmt.Errorf("getSkillMatch learning_path: %w", err)
		}
	}
	return sm, nil
}

// ListingDetail bundles a listing with whatever cached evaluations exist for
// the requesting user. Absent evaluations stay nil rather than being
// computed on the fly.
type ListingDetail struct {
	Listing      model.InternshipListing   `json:"listing"`
	Verification *model.VerificationResult `json:"verification"`
	Match        *model.SkillMatch         `json:"match"`
	Readiness    *model.ReadinessScore     `json:"readiness"`
}

// GetListingDetail returns a listing and the user's cached verification,
// match, and readiness records.
func (s *Service) GetListingDetail(ctx context.Context, userID, listingID string) (ListingDetail, error) {
	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return ListingDetail{}, err
	}
	detail := ListingDetail{Listing: listing}

	if v, err := s.GetVerification(ctx, listingID); err == nil {
		detail.Verification = &v
	}
	if m, err := s.getSkillMatch(ctx, userID, listingID); err == nil {
		detail.Match = &m
	}
	if r, err := s.getReadiness(ctx, userID, listingID); err == nil {
		detail.Readiness = &r
	}
	return detail, nil
}

func (s *Service) getReadiness(ctx context.Context, userID, listingID string) (model.ReadinessScore, error) {
	var r model.ReadinessScore
	err := s.pool.QueryRow(ctx,
		`SELECT user_id, listing_id::text, overall_score, resume_strength, skill_match,
		        semester_readiness, recommendation, improvement_actions
		 FROM readiness_scores WHERE user_id = $1 AND listing_id = $2::uuid`,
		userID, listingID,
	).Scan(&r.UserID, &r.ListingID, &r.OverallScore, &r.ResumeStrength, &r.SkillMatch,
		&r.SemesterReadiness, &r.Recommendation, &r.ImprovementActions)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ReadinessScore{}, ErrNotFound
	}
	if err != nil {
		return model.ReadinessScore{}, fmt.Errorf("getReadiness: %w", err)
	}
	return r, nil
}
