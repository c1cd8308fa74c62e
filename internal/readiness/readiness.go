// Package readiness combines resume strength, skill match and semester
// appropriateness into one weighted apply-readiness score.
//
// The resume strength component comes from an external resume-analysis
// collaborator and is treated as an opaque 0-100 input.
package readiness

import (
	"fmt"
	"math"

	"github.com/Harshitasingh-co/VidyaMitra/internal/calendar"
	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

// Component weights: overall = 0.3·resume + 0.4·skill + 0.3·semester.
const (
	resumeWeight   = 0.3
	skillWeight    = 0.4
	semesterWeight = 0.3
)

const applyFloor = 70

// semesterFit scores how well a listing's internship type fits the
// calendar-recommended season for each semester. Exact seasonal match is 100,
// plausible alternatives land in the middle, off-season types at the bottom;
// semesters 1-2 are skill-building so everything is too early.
var semesterFit = map[int]map[model.InternshipType]int{
	1: {model.TypeSummer: 20, model.TypeWinter: 20, model.TypeResearch: 20, model.TypeOffCycle: 20},
	2: {model.TypeSummer: 20, model.TypeWinter: 20, model.TypeResearch: 20, model.TypeOffCycle: 20},
	3: {model.TypeSummer: 100, model.TypeResearch: 70, model.TypeOffCycle: 60, model.TypeWinter: 40},
	4: {model.TypeSummer: 100, model.TypeResearch: 70, model.TypeOffCycle: 60, model.TypeWinter: 40},
	5: {model.TypeWinter: 100, model.TypeSummer: 80, model.TypeResearch: 70, model.TypeOffCycle: 60},
	6: {model.TypeWinter: 100, model.TypeSummer: 80, model.TypeResearch: 70, model.TypeOffCycle: 60},
	7: {model.TypeOffCycle: 100, model.TypeResearch: 80, model.TypeWinter: 60, model.TypeSummer: 40},
	8: {model.TypeSummer: 80, model.TypeWinter: 80, model.TypeResearch: 80, model.TypeOffCycle: 80},
}

// SemesterReadiness scores the seasonal fit between the student's current
// semester and the listing's internship type.
func SemesterReadiness(semester int, internshipType model.InternshipType) (int, error) {
	if _, err := calendar.ForSemester(semester); err != nil {
		return 0, err
	}
	fit, ok := semesterFit[semester][internshipType]
	if !ok {
		return 0, model.Invalid("internshipType", "unknown type %q", internshipType)
	}
	return fit, nil
}

// Score computes the full ReadinessScore for one (profile, listing) pair.
// skillMatch must be the pair's current SkillMatch; resumeStrength comes from
// the resume-analysis collaborator.
func Score(profile model.StudentProfile, listing model.InternshipListing, skillMatch model.SkillMatch, resumeStrength int) (model.ReadinessScore, error) {
	if resumeStrength < 0 || resumeStrength > 100 {
		return model.ReadinessScore{}, model.Invalid("resumeStrength", "must be between 0 and 100, got %d", resumeStrength)
	}
	if skillMatch.MatchPercentage < 0 || skillMatch.MatchPercentage > 100 {
		return model.ReadinessScore{}, model.Invalid("skillMatch", "match percentage out of range: %d", skillMatch.MatchPercentage)
	}
	if listing.ID == "" {
		return model.ReadinessScore{}, model.Invalid("listingId", "is required")
	}

	semester, err := SemesterReadiness(profile.CurrentSemester, listing.InternshipType)
	if err != nil {
		return model.ReadinessScore{}, err
	}

	skill := skillMatch.MatchPercentage
	overall := int(math.Round(resumeWeight*float64(resumeStrength) +
		skillWeight*float64(skill) +
		semesterWeight*float64(semester)))

	return model.ReadinessScore{
		UserID:             profile.UserID,
		ListingID:          listing.ID,
		OverallScore:       overall,
		ResumeStrength:     resumeStrength,
		SkillMatch:         skill,
		SemesterReadiness:  semester,
		Recommendation:     recommendation(overall),
		ImprovementActions: improvementActions(resumeStrength, skill, semester, overall, skillMatch),
	}, nil
}

// recommendation is "Apply Now" at or above the apply floor; below it, the
// suggested preparation period grows with the shortfall.
func recommendation(overall int) string {
	if overall >= applyFloor {
		return "Apply Now"
	}
	gap := applyFloor - overall
	var period string
	switch {
	case gap <= 10:
		period = "2 weeks"
	case gap <= 25:
		period = "1 month"
	case gap <= 45:
		period = "2-3 months"
	default:
		period = "3-6 months"
	}
	return fmt.Sprintf("Prepare for %s before applying", period)
}

// improvementActions targets the weakest component first. Ties resolve in
// component priority order: skill match, then resume strength, then semester
// readiness. Other components below the apply floor get secondary actions.
// A perfect overall score yields an empty (non-nil) list.
func improvementActions(resume, skill, semester, overall int, sm model.SkillMatch) []string {
	if overall >= 100 {
		return []string{}
	}

	type component struct {
		name     string
		score    int
		priority int
	}
	comps := []component{
		{"skill_match", skill, 0},
		{"resume_strength", resume, 1},
		{"semester_readiness", semester, 2},
	}
	weakest := comps[0]
	for _, c := range comps[1:] {
		if c.score < weakest.score {
			weakest = c
		}
	}

	actionFor := func(name string) string {
		switch name {
		case "skill_match":
			if n := len(sm.MissingSkills); n > 0 {
				return fmt.Sprintf("Close the skill gap: learn the %d missing skill(s) on the learning path", n)
			}
			return "Deepen the skills this listing asks for with projects"
		case "resume_strength":
			return "Strengthen your resume: add recent projects and quantify your impact"
		default:
			return "Target internships that fit your current semester's application season"
		}
	}

	actions := []string{actionFor(weakest.name)}
	for _, c := range comps {
		if c.name != weakest.name && c.score < applyFloor {
			actions = append(actions, actionFor(c.name))
		}
	}
	return actions
}
