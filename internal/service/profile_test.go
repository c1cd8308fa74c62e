package service

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

var validationNow = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func validProfile() model.StudentProfile {
	return model.StudentProfile{
		UserID:          "user-1",
		GraduationYear:  2028,
		CurrentSemester: 4,
		Degree:          "B.Tech",
		Branch:          "CSE",
		Skills:          []string{"Python", "SQL"},
	}
}

// ── validateProfile ────────────────────────────────────────────────────────

func TestValidateProfile_Valid(t *testing.T) {
	p := validProfile()
	if err := validateProfile(&p, validationNow); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateProfile_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.StudentProfile)
		field  string
	}{
		{"blank user id", func(p *model.StudentProfile) { p.UserID = "  " }, "userId"},
		{"semester zero", func(p *model.StudentProfile) { p.CurrentSemester = 0 }, "currentSemester"},
		{"semester nine", func(p *model.StudentProfile) { p.CurrentSemester = 9 }, "currentSemester"},
		{"graduation in the past", func(p *model.StudentProfile) { p.GraduationYear = 2025 }, "graduationYear"},
		{"graduation too far out", func(p *model.StudentProfile) { p.GraduationYear = 2040 }, "graduationYear"},
		{"blank degree", func(p *model.StudentProfile) { p.Degree = "" }, "degree"},
		{"blank branch", func(p *model.StudentProfile) { p.Branch = " " }, "branch"},
		{"bad internship type", func(p *model.StudentProfile) {
			v := model.LocationPreference("Nearby")
			p.InternshipType = &v
		}, "internshipType"},
		{"bad compensation preference", func(p *model.StudentProfile) {
			v := model.CompensationPreference("Generous")
			p.CompensationPreference = &v
		}, "compensationPreference"},
	}
	for _, c := range cases {
		p := validProfile()
		c.mutate(&p)
		err := validateProfile(&p, validationNow)
		if err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
			continue
		}
		var ve *model.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: error is %T, want *model.ValidationError", c.name, err)
			continue
		}
		if ve.Field != c.field {
			t.Errorf("%s: Field = %q, want %q", c.name, ve.Field, c.field)
		}
	}
}

func TestValidateProfile_ListCaps(t *testing.T) {
	p := validProfile()
	for i := 0; i <= maxSkills; i++ {
		p.Skills = append(p.Skills, "skill-"+strconv.Itoa(i))
	}
	err := validateProfile(&p, validationNow)
	var ve *model.ValidationError
	if !errors.As(err, &ve) || ve.Field != "skills" {
		t.Errorf("expected skills cap violation, got %v", err)
	}
}

func TestValidateProfile_DeduplicatesLists(t *testing.T) {
	p := validProfile()
	p.Skills = []string{"Python", "python", "  PYTHON ", "", "SQL"}
	if err := validateProfile(&p, validationNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Skills) != 2 {
		t.Fatalf("Skills = %v, want 2 entries", p.Skills)
	}
	if p.Skills[0] != "Python" || p.Skills[1] != "SQL" {
		t.Errorf("Skills = %v; first spelling and order must survive dedupe", p.Skills)
	}
}
