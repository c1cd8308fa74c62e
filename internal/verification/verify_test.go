package verification_test

import (
	"errors"
	"testing"

	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
	"github.com/Harshitasingh-co/VidyaMitra/internal/verification"
)

func strPtr(s string) *string { return &s }

// cleanListing returns a listing with nothing suspicious about it.
func cleanListing() model.InternshipListing {
	return model.InternshipListing{
		ID:             "listing-1",
		Title:          "Backend Engineering Intern",
		Company:        "TechCorp",
		Location:       "Bengaluru",
		InternshipType: model.TypeSummer,
		Duration:       "3 months",
		Stipend:        "₹15,000/month",
		RequiredSkills: []string{"Go", "SQL"},
		Responsibilities: []string{
			"Build and maintain REST APIs for the core product",
			"Write unit and integration tests for new services",
		},
	}
}

// ── Verify — classification and bounds ─────────────────────────────────────

// Scenario: known platform + matching domain + no red flags must verify.
func TestVerify_CleanListingOnKnownPlatform(t *testing.T) {
	l := cleanListing()
	l.Platform = strPtr("Internshala")
	l.CompanyDomain = strPtr("techcorp.com")

	res, err := verification.Verify(l, verification.DefaultWeights())
	if err != nil {
		t.Fatalf("Verify unexpected error: %v", err)
	}
	if res.TrustScore < 80 {
		t.Errorf("TrustScore = %d, want >= 80", res.TrustScore)
	}
	if res.Status != model.StatusVerified {
		t.Errorf("Status = %q, want Verified", res.Status)
	}
	if !res.Signals.KnownPlatform || !res.Signals.OfficialDomain {
		t.Errorf("Signals = %+v, want both platform and domain set", res.Signals)
	}
	if len(res.RedFlags) != 0 {
		t.Errorf("RedFlags = %v, want none", res.RedFlags)
	}
}

// Scenario: ₹60,000/month for an entry-level role plus Gmail-only contact —
// two red flags, score capped well below Verified.
func TestVerify_HighStipendGmailContact(t *testing.T) {
	l := cleanListing()
	l.Stipend = "₹60,000/month"
	l.CompanyDomain = strPtr("gmail.com")

	res, err := verification.Verify(l, verification.DefaultWeights())
	if err != nil {
		t.Fatalf("Verify unexpected error: %v", err)
	}
	if len(res.RedFlags) != 2 {
		t.Fatalf("got %d red flags (%v), want 2", len(res.RedFlags), res.RedFlags)
	}
	var sawStipend, sawEmail bool
	for _, f := range res.RedFlags {
		switch f.Type {
		case model.FlagUnrealisticStipend:
			sawStipend = true
			if f.Severity != model.SeverityHigh {
				t.Errorf("unrealistic_stipend severity = %q, want high", f.Severity)
			}
		case model.FlagNonOfficialEmail:
			sawEmail = true
			if f.Severity != model.SeverityMedium {
				t.Errorf("non_official_email severity = %q, want medium", f.Severity)
			}
		}
	}
	if !sawStipend || !sawEmail {
		t.Fatalf("missing expected flags in %v", res.RedFlags)
	}
	if res.TrustScore > 55 {
		t.Errorf("TrustScore = %d, want <= 55", res.TrustScore)
	}
	if res.Status == model.StatusVerified {
		t.Error("Status must never be Verified for this listing")
	}
}

func TestVerify_StatusMatchesScoreEverywhere(t *testing.T) {
	listings := []model.InternshipListing{
		cleanListing(),
		func() model.InternshipListing {
			l := cleanListing()
			l.Stipend = "₹80k per month, small registration fee required"
			l.Responsibilities = nil
			return l
		}(),
		func() model.InternshipListing {
			l := cleanListing()
			l.Platform = strPtr("LinkedIn")
			return l
		}(),
	}
	for i, l := range listings {
		res, err := verification.Verify(l, verification.DefaultWeights())
		if err != nil {
			t.Fatalf("listing %d: unexpected error: %v", i, err)
		}
		if res.TrustScore < 0 || res.TrustScore > 100 {
			t.Errorf("listing %d: TrustScore %d out of [0,100]", i, res.TrustScore)
		}
		if (res.Status == model.StatusVerified) != (res.TrustScore >= 80) {
			t.Errorf("listing %d: status %q inconsistent with score %d", i, res.Status, res.TrustScore)
		}
		if (res.Status == model.StatusPotentialScam) != (res.TrustScore < 50) {
			t.Errorf("listing %d: status %q inconsistent with score %d", i, res.Status, res.TrustScore)
		}
		if res.Status == model.StatusPending {
			t.Errorf("listing %d: a verification result can never be Pending", i)
		}
	}
}

// Verification is deterministic: same listing, same outcome.
func TestVerify_Idempotent(t *testing.T) {
	l := cleanListing()
	l.Platform = strPtr("naukri") // unknown platform
	l.Stipend = "Unpaid"

	a, err := verification.Verify(l, verification.DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := verification.Verify(l, verification.DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.TrustScore != b.TrustScore || a.Status != b.Status {
		t.Errorf("repeat verification diverged: (%d,%q) vs (%d,%q)",
			a.TrustScore, a.Status, b.TrustScore, b.Status)
	}
}

func TestVerify_MissingRequiredFields(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*model.InternshipListing)
	}{
		{"blank title", func(l *model.InternshipListing) { l.Title = "  " }},
		{"blank company", func(l *model.InternshipListing) { l.Company = "" }},
	} {
		l := cleanListing()
		tc.mutate(&l)
		_, err := verification.Verify(l, verification.DefaultWeights())
		if err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
			continue
		}
		var ve *model.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: error is %T, want *model.ValidationError", tc.name, err)
		}
	}
}

// ── TrustScore ─────────────────────────────────────────────────────────────

func TestTrustScore_ClampsToBounds(t *testing.T) {
	w := verification.DefaultWeights()

	allSignals := model.VerificationSignals{OfficialDomain: true, KnownPlatform: true, CompanyVerified: true}
	if got := verification.TrustScore(allSignals, nil, w); got != 100 {
		t.Errorf("all-signals score = %d, want clamp to 100", got)
	}

	manyFlags := []model.RedFlag{
		{Type: model.FlagRegistrationFee, Severity: model.SeverityHigh},
		{Type: model.FlagUnrealisticStipend, Severity: model.SeverityHigh},
		{Type: model.FlagWhatsAppOnly, Severity: model.SeverityMedium},
		{Type: model.FlagNonOfficialEmail, Severity: model.SeverityMedium},
		{Type: model.FlagVagueDescription, Severity: model.SeverityLow},
	}
	if got := verification.TrustScore(model.VerificationSignals{}, manyFlags, w); got != 5 {
		// 100 - 30 - 30 - 15 - 15 - 5
		t.Errorf("all-flags score = %d, want 5", got)
	}
}

func TestTrustScore_PenaltiesBySeverity(t *testing.T) {
	w := verification.DefaultWeights()
	cases := []struct {
		severity model.RedFlagSeverity
		want     int
	}{
		{model.SeverityHigh, 70},
		{model.SeverityMedium, 85},
		{model.SeverityLow, 95},
	}
	for _, c := range cases {
		flags := []model.RedFlag{{Type: model.FlagVagueDescription, Severity: c.severity}}
		if got := verification.TrustScore(model.VerificationSignals{}, flags, w); got != c.want {
			t.Errorf("severity %s: score = %d, want %d", c.severity, got, c.want)
		}
	}
}

// ── Classify boundaries ────────────────────────────────────────────────────

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  model.VerificationStatus
	}{
		{100, model.StatusVerified},
		{80, model.StatusVerified},
		{79, model.StatusUseCaution},
		{50, model.StatusUseCaution},
		{49, model.StatusPotentialScam},
		{0, model.StatusPotentialScam},
	}
	for _, c := range cases {
		if got := verification.Classify(c.score); got != c.want {
			t.Errorf("Classify(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}
