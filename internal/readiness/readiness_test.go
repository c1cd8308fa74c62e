package readiness_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
	"github.com/Harshitasingh-co/VidyaMitra/internal/readiness"
)

func profile(semester int) model.StudentProfile {
	return model.StudentProfile{
		UserID:          "user-1",
		GraduationYear:  2027,
		CurrentSemester: semester,
		Degree:          "B.Tech",
		Branch:          "CSE",
	}
}

func listing(t model.InternshipType) model.InternshipListing {
	return model.InternshipListing{ID: "listing-1", Title: "Intern", Company: "TechCorp", InternshipType: t}
}

func skillMatch(pct int, missing ...string) model.SkillMatch {
	return model.SkillMatch{UserID: "user-1", ListingID: "listing-1", MatchPercentage: pct, MissingSkills: missing}
}

// ── Score — formula and recommendation ─────────────────────────────────────

// resume 80, skill 67, semester 90 is not directly producible from the fit
// table, so the formula cases below exercise the weighting; this one pins the
// documented example through exact arithmetic.
func TestScore_WeightedFormula(t *testing.T) {
	cases := []struct {
		resume, skill, semester int
		want                    int
	}{
		{80, 67, 90, 78}, // round(24 + 26.8 + 27) = round(77.8)
		{0, 0, 0, 0},
		{100, 100, 100, 100},
		{50, 50, 50, 50},
	}
	for _, c := range cases {
		got := int(math.Round(0.3*float64(c.resume) + 0.4*float64(c.skill) + 0.3*float64(c.semester)))
		if got != c.want {
			t.Fatalf("test fixture broken: %+v", c)
		}
	}

	// Through the engine: semester 4 + Summer gives semester component 100.
	s, err := readiness.Score(profile(4), listing(model.TypeSummer), skillMatch(67), 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := int(math.Round(0.3*80 + 0.4*67 + 0.3*100)) // 81
	if s.OverallScore != want {
		t.Errorf("OverallScore = %d, want %d", s.OverallScore, want)
	}
	if s.ResumeStrength != 80 || s.SkillMatch != 67 || s.SemesterReadiness != 100 {
		t.Errorf("components = %d/%d/%d, want 80/67/100", s.ResumeStrength, s.SkillMatch, s.SemesterReadiness)
	}
}

func TestScore_ApplyNowBoundary(t *testing.T) {
	// Semester 4 Summer pins semester at 100, so overall = round(0.3r + 0.4s + 30).
	cases := []struct {
		resume, skill int
		applyNow      bool
	}{
		{80, 67, true}, // 81
		{60, 55, true}, // 70 exactly
		{40, 40, false},
		{0, 0, false},
	}
	for _, c := range cases {
		s, err := readiness.Score(profile(4), listing(model.TypeSummer), skillMatch(c.skill), c.resume)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		applyNow := s.Recommendation == "Apply Now"
		wantApply := s.OverallScore >= 70
		if applyNow != wantApply {
			t.Errorf("resume=%d skill=%d: overall=%d recommendation=%q — Apply Now iff overall ≥ 70",
				c.resume, c.skill, s.OverallScore, s.Recommendation)
		}
		if c.applyNow && !applyNow {
			t.Errorf("resume=%d skill=%d: overall=%d, expected Apply Now", c.resume, c.skill, s.OverallScore)
		}
	}
}

// Larger shortfall must never suggest a shorter preparation period.
func TestScore_PreparationPeriodMonotonic(t *testing.T) {
	order := map[string]int{
		"2 weeks":    1,
		"1 month":    2,
		"2-3 months": 3,
		"3-6 months": 4,
	}
	prev := 0
	prevOverall := 101
	for skill := 100; skill >= 0; skill -= 10 {
		s, err := readiness.Score(profile(4), listing(model.TypeWinter), skillMatch(skill), 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.OverallScore >= 70 {
			continue
		}
		if s.OverallScore > prevOverall {
			t.Fatal("test walks overall downward; fixture broken")
		}
		prevOverall = s.OverallScore
		rank := 0
		for period, r := range order {
			if strings.Contains(s.Recommendation, period) {
				rank = r
			}
		}
		if rank == 0 {
			t.Fatalf("recommendation %q names no known period", s.Recommendation)
		}
		if rank < prev {
			t.Errorf("overall=%d: period rank %d shrank below %d", s.OverallScore, rank, prev)
		}
		prev = rank
	}
}

// ── Semester readiness buckets ─────────────────────────────────────────────

func TestSemesterReadiness_ExactSeasonalMatch(t *testing.T) {
	cases := []struct {
		semester int
		itype    model.InternshipType
	}{
		{3, model.TypeSummer},
		{4, model.TypeSummer},
		{5, model.TypeWinter},
		{6, model.TypeWinter},
		{7, model.TypeOffCycle},
	}
	for _, c := range cases {
		got, err := readiness.SemesterReadiness(c.semester, c.itype)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 100 {
			t.Errorf("semester %d %s fit = %d, want 100", c.semester, c.itype, got)
		}
	}
}

func TestSemesterReadiness_MonotonicInFit(t *testing.T) {
	// Semester 4: summer > research > off-cycle > winter.
	scores := make([]int, 0, 4)
	for _, it := range []model.InternshipType{model.TypeSummer, model.TypeResearch, model.TypeOffCycle, model.TypeWinter} {
		got, err := readiness.SemesterReadiness(4, it)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		scores = append(scores, got)
	}
	for i := 1; i < len(scores); i++ {
		if scores[i] >= scores[i-1] {
			t.Errorf("fit scores %v not strictly decreasing with worse fit", scores)
		}
	}
}

func TestSemesterReadiness_EarlySemestersAreTooEarly(t *testing.T) {
	for _, sem := range []int{1, 2} {
		for _, it := range []model.InternshipType{model.TypeSummer, model.TypeWinter, model.TypeResearch, model.TypeOffCycle} {
			got, err := readiness.SemesterReadiness(sem, it)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got > 40 {
				t.Errorf("semester %d %s fit = %d, want a mismatch bucket", sem, it, got)
			}
		}
	}
}

func TestSemesterReadiness_InvalidSemester(t *testing.T) {
	if _, err := readiness.SemesterReadiness(9, model.TypeSummer); err == nil {
		t.Error("expected error for semester 9")
	}
}

// ── Improvement actions ────────────────────────────────────────────────────

// A perfect score has nothing to improve, but the list must still be an
// empty array rather than NULL when stored.
func TestScore_PerfectScoreActionsEmptyNotNil(t *testing.T) {
	s, err := readiness.Score(profile(4), listing(model.TypeSummer), skillMatch(100), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.OverallScore != 100 {
		t.Fatalf("OverallScore = %d, want 100", s.OverallScore)
	}
	if s.ImprovementActions == nil {
		t.Error("ImprovementActions is nil at overall 100, want empty slice")
	}
	if len(s.ImprovementActions) != 0 {
		t.Errorf("ImprovementActions = %v, want empty", s.ImprovementActions)
	}
}

func TestScore_ImprovementActionsNonEmptyBelowPerfect(t *testing.T) {
	s, err := readiness.Score(profile(4), listing(model.TypeSummer), skillMatch(67, "Power BI"), 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.OverallScore >= 100 {
		t.Fatal("fixture should be below 100")
	}
	if len(s.ImprovementActions) == 0 {
		t.Error("ImprovementActions must be non-empty when overall < 100")
	}
}

func TestScore_ActionsTargetLowestComponent(t *testing.T) {
	// resume 90, skill 30, semester 100 → skill is weakest.
	s, err := readiness.Score(profile(4), listing(model.TypeSummer), skillMatch(30, "Python", "SQL"), 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(s.ImprovementActions[0], "skill") {
		t.Errorf("first action %q should target the skill gap", s.ImprovementActions[0])
	}

	// resume 30, skill 90, semester 100 → resume is weakest.
	s, err = readiness.Score(profile(4), listing(model.TypeSummer), skillMatch(90), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(s.ImprovementActions[0], "resume") {
		t.Errorf("first action %q should target the resume", s.ImprovementActions[0])
	}
}

// Equal component scores resolve by priority: skill, then resume, then semester.
func TestScore_ActionTieBreaksOnSkillFirst(t *testing.T) {
	// Semester 8 gives an 80 fit; resume 80 and skill 80 tie with it.
	s, err := readiness.Score(profile(8), listing(model.TypeSummer), skillMatch(80, "Go"), 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(s.ImprovementActions[0], "skill") {
		t.Errorf("tied components: first action %q should target skill_match", s.ImprovementActions[0])
	}
}

// ── Validation ─────────────────────────────────────────────────────────────

func TestScore_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		run  func() error
	}{
		{"resume strength below range", func() error {
			_, err := readiness.Score(profile(4), listing(model.TypeSummer), skillMatch(50), -1)
			return err
		}},
		{"resume strength above range", func() error {
			_, err := readiness.Score(profile(4), listing(model.TypeSummer), skillMatch(50), 101)
			return err
		}},
		{"skill match out of range", func() error {
			_, err := readiness.Score(profile(4), listing(model.TypeSummer), skillMatch(130), 50)
			return err
		}},
		{"invalid semester", func() error {
			_, err := readiness.Score(profile(0), listing(model.TypeSummer), skillMatch(50), 50)
			return err
		}},
		{"missing listing id", func() error {
			l := listing(model.TypeSummer)
			l.ID = ""
			_, err := readiness.Score(profile(4), l, skillMatch(50), 50)
			return err
		}},
	}
	for _, c := range cases {
		err := c.run()
		if err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
			continue
		}
		var ve *model.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: error is %T, want *model.ValidationError", c.name, err)
		}
	}
}
