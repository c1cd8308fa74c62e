package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

// Profile list caps. Oversized submissions are rejected, not truncated.
const (
	maxSkills          = 50
	maxPreferredRoles  = 20
	maxTargetCompanies = 30
)

// validateProfile checks an incoming profile submission. Lists are
// deduplicated in place (first spelling wins, case-insensitive).
func validateProfile(p *model.StudentProfile, now time.Time) error {
	if strings.TrimSpace(p.UserID) == "" {
		return model.Invalid("userId", "must not be blank")
	}
	if p.CurrentSemester < 1 || p.CurrentSemester > 8 {
		return model.Invalid("currentSemester", "must be between 1 and 8, got %d", p.CurrentSemester)
	}
	year := now.Year()
	if p.GraduationYear < year || p.GraduationYear > year+10 {
		return model.Invalid("graduationYear", "must be between %d and %d, got %d", year, year+10, p.GraduationYear)
	}
	if strings.TrimSpace(p.Degree) == "" {
		return model.Invalid("degree", "must not be blank")
	}
	if strings.TrimSpace(p.Branch) == "" {
		return model.Invalid("branch", "must not be blank")
	}

	p.Skills = dedupe(p.Skills)
	p.PreferredRoles = dedupe(p.PreferredRoles)
	p.TargetCompanies = dedupe(p.TargetCompanies)

	if len(p.Skills) > maxSkills {
		return model.Invalid("skills", "at most %d entries, got %d", maxSkills, len(p.Skills))
	}
	if len(p.PreferredRoles) > maxPreferredRoles {
		return model.Invalid("preferredRoles", "at most %d entries, got %d", maxPreferredRoles, len(p.PreferredRoles))
	}
	if len(p.TargetCompanies) > maxTargetCompanies {
		return model.Invalid("targetCompanies", "at most %d entries, got %d", maxTargetCompanies, len(p.TargetCompanies))
	}

	if p.InternshipType != nil {
		if _, err := model.ParseLocationPreference(string(*p.InternshipType)); err != nil {
			return model.Invalid("internshipType", "%s", err.Error())
		}
	}
	if p.CompensationPreference != nil {
		if _, err := model.ParseCompensationPreference(string(*p.CompensationPreference)); err != nil {
			return model.Invalid("compensationPreference", "%s", err.Error())
		}
	}
	return nil
}

// dedupe drops blank entries and case-insensitive duplicates, keeping the
// first spelling and the original order.
func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}

// UpsertProfile saves a profile as a whole-record replacement keyed by user id.
func (s *Service) UpsertProfile(ctx context.Context, p model.StudentProfile) (model.StudentProfile, error) {
	if err := validateProfile(&p, time.Now()); err != nil {
		return model.StudentProfile{}, err
	}

	var itype, cpref *string
	if p.InternshipType != nil {
		v := string(*p.InternshipType)
		itype = &v
	}
	if p.CompensationPreference != nil {
		v := string(*p.CompensationPreference)
		cpref = &v
	}

	row := s.pool.QueryRow(ctx,
		`INSERT INTO student_profiles
		   (user_id, graduation_year, current_semester, degree, branch,
		    skills, preferred_roles, internship_type, compensation_preference,
		    target_companies, resume_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (user_id) DO UPDATE SET
		   graduation_year         = EXCLUDED.graduation_year,
		   current_semester        = EXCLUDED.current_semester,
		   degree                  = EXCLUDED.degree,
		   branch                  = EXCLUDED.branch,
		   skills                  = EXCLUDED.skills,
		   preferred_roles         = EXCLUDED.preferred_roles,
		   internship_type         = EXCLUDED.internship_type,
		   compensation_preference = EXCLUDED.compensation_preference,
		   target_companies        = EXCLUDED.target_companies,
		   resume_url              = EXCLUDED.resume_url,
		   updated_at              = NOW()
		 RETURNING `+profileColumns,
		p.UserID, p.GraduationYear, p.CurrentSemester, p.Degree, p.Branch,
		p.Skills, p.PreferredRoles, itype, cpref,
		p.TargetCompanies, p.ResumeURL,
	)
	saved, err := scanProfile(row)
	if err != nil {
		return model.StudentProfile{}, fmt.Errorf("upsertProfile: %w", err)
	}
	return saved, nil
}

// GetProfile returns the profile for the given user.
func (s *Service) GetProfile(ctx context.Context, userID string) (model.StudentProfile, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM student_profiles WHERE user_id = $1`, userID)
	p, err := scanProfile(row)
	if err != nil {
		return model.StudentProfile{}, ErrNotFound
	}
	return p, nil
}

// DeleteProfile removes the profile and its per-user computed records.
func (s *Service) DeleteProfile(ctx context.Context, userID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM student_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("deleteProfile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
