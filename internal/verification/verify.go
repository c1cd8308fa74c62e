package verification

import (
	"fmt"
	"strings"
	"time"

	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

// Verify runs the full verification pipeline for a listing: signals, red-flag
// detection, trust scoring, classification and notes. It is deterministic —
// the same listing always produces the same score and status — and has no
// side effects; persisting the result is the caller's concern.
//
// The company_verified signal needs an external company registry and is
// always false here; a collaborator that can supply it should set it on the
// returned result and re-derive the score.
func Verify(l model.InternshipListing, w Weights) (model.VerificationResult, error) {
	if strings.TrimSpace(l.Title) == "" {
		return model.VerificationResult{}, model.Invalid("title", "is required")
	}
	if strings.TrimSpace(l.Company) == "" {
		return model.VerificationResult{}, model.Invalid("company", "is required")
	}

	signals := model.VerificationSignals{
		OfficialDomain: OfficialDomain(l.Company, l.CompanyDomain),
		KnownPlatform:  KnownPlatform(l.Platform),
	}
	flags := DetectRedFlags(l, w)
	score := TrustScore(signals, flags, w)

	return model.VerificationResult{
		ListingID:    l.ID,
		Status:       Classify(score),
		TrustScore:   score,
		Signals:      signals,
		RedFlags:     flags,
		Notes:        notes(signals, flags, score),
		LastVerified: time.Now().UTC(),
	}, nil
}

// TrustScore combines signals and red flags into a 0-100 score: the base
// score minus a per-severity penalty for each flag, plus a bonus per positive
// signal, clamped to [0, 100].
func TrustScore(signals model.VerificationSignals, flags []model.RedFlag, w Weights) int {
	score := w.Base
	if signals.OfficialDomain {
		score += w.DomainBonus
	}
	if signals.KnownPlatform {
		score += w.PlatformBonus
	}
	if signals.CompanyVerified {
		score += w.CompanyBonus
	}
	for _, f := range flags {
		switch f.Severity {
		case model.SeverityHigh:
			score -= w.HighPenalty
		case model.SeverityMedium:
			score -= w.MediumPenalty
		case model.SeverityLow:
			score -= w.LowPenalty
		}
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Classify maps a trust score to its status. Total: every score lands in
// exactly one of the three classes.
func Classify(score int) model.VerificationStatus {
	switch {
	case score >= verifiedFloor:
		return model.StatusVerified
	case score >= useCautionFloor:
		return model.StatusUseCaution
	default:
		return model.StatusPotentialScam
	}
}

// notes renders the human-readable summary stored with the result.
func notes(signals model.VerificationSignals, flags []model.RedFlag, score int) string {
	var b strings.Builder
	if signals.OfficialDomain {
		b.WriteString("Official company domain verified.\n")
	}
	if signals.KnownPlatform {
		b.WriteString("Listed on a known platform.\n")
	}
	if signals.CompanyVerified {
		b.WriteString("Company verified by external sources.\n")
	}
	if len(flags) > 0 {
		fmt.Fprintf(&b, "%d red flag(s) detected:\n", len(flags))
		for _, f := range flags {
			fmt.Fprintf(&b, "  - [%s] %s\n", f.Severity, f.Description)
		}
	}
	switch Classify(score) {
	case model.StatusVerified:
		b.WriteString("This internship appears legitimate and safe to apply.")
	case model.StatusUseCaution:
		b.WriteString("Exercise caution. Verify details before applying.")
	default:
		b.WriteString("High risk of fraud. Avoid this internship.")
	}
	return b.String()
}
