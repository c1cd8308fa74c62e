// Package match compares a student's skills against internship requirements:
// match percentage, matching/missing partition, learning-path suggestions for
// the gaps, and relevance ranking across listings.
//
// Skill identity is the canonicalized string — lowercased and
// whitespace-trimmed — so "Python" and " python " are the same skill.
package match

import (
	"math"
	"sort"
	"strings"

	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

// Canonical returns the identity key for a skill name.
func Canonical(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// canonicalSet folds names into canonical keys, remembering the first
// original spelling for display. Blank entries are dropped.
func canonicalSet(names []string, display map[string]string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		c := Canonical(n)
		if c == "" {
			continue
		}
		set[c] = true
		if _, ok := display[c]; !ok {
			display[c] = strings.TrimSpace(n)
		}
	}
	return set
}

// Compute builds the SkillMatch between userSkills and the listing.
//
// The percentage is driven by required skills only —
// round(100 · matched-required / required) — so preferred skills shape the
// learning path but never the number. A listing with no required skills
// matches at 100: nothing required means fully qualified.
func Compute(userSkills []string, listing model.InternshipListing) (model.SkillMatch, error) {
	if strings.TrimSpace(listing.ID) == "" {
		return model.SkillMatch{}, model.Invalid("listingId", "is required")
	}

	display := make(map[string]string)
	required := canonicalSet(listing.RequiredSkills, display)
	preferred := canonicalSet(listing.PreferredSkills, display)
	user := canonicalSet(userSkills, make(map[string]string))

	// considered = required ∪ preferred; matching/missing partition it.
	// Both sides stay non-nil so they reach persistence as empty arrays,
	// never SQL NULL.
	matching := make([]string, 0)
	missing := make([]string, 0)
	matchedRequired := 0
	for c := range required {
		if user[c] {
			matching = append(matching, display[c])
			matchedRequired++
		} else {
			missing = append(missing, display[c])
		}
	}
	for c := range preferred {
		if required[c] {
			continue
		}
		if user[c] {
			matching = append(matching, display[c])
		} else {
			missing = append(missing, display[c])
		}
	}
	sort.Strings(matching)
	sort.Strings(missing)

	pct := 100
	if len(required) > 0 {
		pct = int(math.Round(100 * float64(matchedRequired) / float64(len(required))))
	}

	return model.SkillMatch{
		ListingID:       listing.ID,
		MatchPercentage: pct,
		MatchingSkills:  matching,
		MissingSkills:   missing,
		LearningPath:    buildLearningPath(missing, required),
	}, nil
}

// Ranked pairs a listing with its computed match, for sorted feeds.
type Ranked struct {
	Listing model.InternshipListing `json:"listing"`
	Match   model.SkillMatch        `json:"match"`
}

// Rank computes the match for every listing and orders the result by match
// percentage descending; ties break by earlier application deadline (listings
// without one sort after those with one), then by listing ID so the order is
// fully deterministic.
func Rank(listings []model.InternshipListing, userSkills []string) ([]Ranked, error) {
	ranked := make([]Ranked, 0, len(listings))
	for _, l := range listings {
		m, err := Compute(userSkills, l)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, Ranked{Listing: l, Match: m})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Match.MatchPercentage != b.Match.MatchPercentage {
			return a.Match.MatchPercentage > b.Match.MatchPercentage
		}
		ad, bd := a.Listing.ApplicationDeadline, b.Listing.ApplicationDeadline
		switch {
		case ad != nil && bd == nil:
			return true
		case ad == nil && bd != nil:
			return false
		case ad != nil && bd != nil && !ad.Equal(*bd):
			return ad.Before(*bd)
		}
		return a.Listing.ID < b.Listing.ID
	})
	return ranked, nil
}
