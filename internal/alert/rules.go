// Package alert holds the pure rule functions that decide when a user alert
// fires. Each rule inspects already-fetched state and returns an optional
// Result; persistence and dedupe-key storage belong to the caller.
package alert

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Harshitasingh-co/VidyaMitra/internal/calendar"
	"github.com/Harshitasingh-co/VidyaMitra/internal/match"
	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

// Config carries the tunable thresholds shared by all rules.
type Config struct {
	// MatchThreshold is the minimum skill-match percentage for a new-match alert.
	MatchThreshold int
	// DeadlineBoundaries are the days-remaining marks a deadline alert fires at.
	DeadlineBoundaries []int
	// ReadinessDelta is the minimum overall-score improvement worth announcing.
	ReadinessDelta int
	// SeasonLeadMonths is how far ahead of an apply window the season alert fires.
	SeasonLeadMonths int
}

func DefaultConfig() Config {
	return Config{
		MatchThreshold:     50,
		DeadlineBoundaries: []int{7, 3, 1},
		ReadinessDelta:     10,
		SeasonLeadMonths:   2,
	}
}

// Result pairs a candidate alert with the dedupe key that makes its emission
// idempotent. The caller must claim the key atomically before persisting the
// alert; a second evaluation producing the same key is a no-op.
type Result struct {
	Alert     model.UserAlert
	DedupeKey string
}

func newAlert(userID string, listingID *string, typ model.AlertType, title, message string, now time.Time) model.UserAlert {
	return model.UserAlert{
		ID:        uuid.NewString(),
		UserID:    userID,
		ListingID: listingID,
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: now,
	}
}

// NewMatch fires when a listing the user has not seen before matches their
// skills at or above the configured threshold. seen holds the listing IDs
// already visible to the user.
func NewMatch(profile model.StudentProfile, listing model.InternshipListing, seen map[string]bool, cfg Config, now time.Time) (Result, bool, error) {
	if seen[listing.ID] {
		return Result{}, false, nil
	}
	sm, err := match.Compute(profile.Skills, listing)
	if err != nil {
		return Result{}, false, err
	}
	if sm.MatchPercentage < cfg.MatchThreshold {
		return Result{}, false, nil
	}

	id := listing.ID
	a := newAlert(profile.UserID, &id, model.AlertNewMatch,
		fmt.Sprintf("New match: %s at %s", listing.Title, listing.Company),
		fmt.Sprintf("%s at %s matches %d%% of your skills.", listing.Title, listing.Company, sm.MatchPercentage),
		now)
	return Result{
		Alert:     a,
		DedupeKey: fmt.Sprintf("%s|%s|%s", profile.UserID, listing.ID, model.AlertNewMatch),
	}, true, nil
}

// Deadline fires when the listing's application deadline is exactly one of
// the configured boundaries away from today. The dedupe key encodes the
// boundary, so each of the 7/3/1-day marks fires at most once per listing.
func Deadline(userID string, listing model.InternshipListing, today time.Time, cfg Config) (Result, bool) {
	if listing.ApplicationDeadline == nil {
		return Result{}, false
	}
	days := daysUntil(today, *listing.ApplicationDeadline)
	for _, boundary := range cfg.DeadlineBoundaries {
		if days != boundary {
			continue
		}
		noun := "days"
		if boundary == 1 {
			noun = "day"
		}
		id := listing.ID
		a := newAlert(userID, &id, model.AlertDeadlineApproaching,
			fmt.Sprintf("Deadline in %d %s: %s", boundary, noun, listing.Title),
			fmt.Sprintf("The application for %s at %s closes in %d %s.", listing.Title, listing.Company, boundary, noun),
			today)
		return Result{
			Alert:     a,
			DedupeKey: fmt.Sprintf("%s|%s|%s|%dd", userID, listing.ID, model.AlertDeadlineApproaching, boundary),
		}, true
	}
	return Result{}, false
}

// daysUntil counts whole calendar days from today to the deadline, ignoring
// the time-of-day component of both.
func daysUntil(today, deadline time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24)
}

// ReadinessImproved fires when a recomputed readiness score beats the prior
// one by at least the configured delta. A nil old score means first
// computation, which is not an improvement.
func ReadinessImproved(old *model.ReadinessScore, latest model.ReadinessScore, cfg Config, now time.Time) (Result, bool) {
	if old == nil {
		return Result{}, false
	}
	delta := latest.OverallScore - old.OverallScore
	if delta < cfg.ReadinessDelta {
		return Result{}, false
	}

	id := latest.ListingID
	a := newAlert(latest.UserID, &id, model.AlertReadinessImproved,
		fmt.Sprintf("Readiness up %d points", delta),
		fmt.Sprintf("Your readiness score rose from %d to %d. %s", old.OverallScore, latest.OverallScore, latest.Recommendation),
		now)
	return Result{
		Alert:     a,
		DedupeKey: fmt.Sprintf("%s|%s|%s|%d", latest.UserID, latest.ListingID, model.AlertReadinessImproved, latest.OverallScore),
	}, true
}

// SeasonStart fires when the apply window for the student's semester opens
// within the configured lead time. The dedupe key carries the season year so
// each window is announced once, even across a December wrap.
func SeasonStart(profile model.StudentProfile, today time.Time, cfg Config) (Result, bool, error) {
	w, err := calendar.PreparationWindow(profile.CurrentSemester, today.Month())
	if err != nil {
		return Result{}, false, err
	}
	if w.IsWithinWindow || w.MonthsUntilWindow < 1 || w.MonthsUntilWindow > cfg.SeasonLeadMonths {
		return Result{}, false, nil
	}

	e, err := calendar.ForSemester(profile.CurrentSemester)
	if err != nil {
		return Result{}, false, err
	}
	seasonYear := today.Year()
	if int(today.Month())+w.MonthsUntilWindow > 12 {
		seasonYear++
	}

	a := newAlert(profile.UserID, nil, model.AlertSeasonStarting,
		fmt.Sprintf("%s season opens soon", e.Focus),
		fmt.Sprintf("Applications for %s open in %d month(s) (%s). %s", e.Focus, w.MonthsUntilWindow, e.ApplyWindow, e.Recommendation),
		today)
	return Result{
		Alert:     a,
		DedupeKey: fmt.Sprintf("%s|%s|%d", profile.UserID, model.AlertSeasonStarting, seasonYear),
	}, true, nil
}
