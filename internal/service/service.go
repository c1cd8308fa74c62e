// Package service contains the transport-facing business logic for the
// readiness service. It is transport-agnostic: the HTTP handler in this
// package and the background sweep both sit on top of Service.
package service

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Harshitasingh-co/VidyaMitra/internal/alert"
	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
	"github.com/Harshitasingh-co/VidyaMitra/internal/verification"
)

// ─── Service ─────────────────────────────────────────────────────────────────

// Service encapsulates profile, listing, evaluation, and alert logic over
// Postgres and Redis.
type Service struct {
	pool    *pgxpool.Pool
	rdb     *redis.Client
	weights verification.Weights
	alerts  alert.Config
}

// NewService returns a configured Service with default scoring weights and
// alert thresholds.
func NewService(pool *pgxpool.Pool, rdb *redis.Client) *Service {
	return &Service{
		pool:    pool,
		rdb:     rdb,
		weights: verification.DefaultWeights(),
		alerts:  alert.DefaultConfig(),
	}
}

// ─── Sentinel errors ─────────────────────────────────────────────────────────

// ErrNotFound is returned when a record is missing or does not belong to the user.
var ErrNotFound = fmt.Errorf("not found")

// ─── Row scanning ────────────────────────────────────────────────────────────

const profileColumns = `user_id, graduation_year, current_semester, degree, branch,
	skills, preferred_roles, internship_type, compensation_preference,
	target_companies, resume_url, created_at, updated_at`

func scanProfile(row pgx.Row) (model.StudentProfile, error) {
	var (
		p            model.StudentProfile
		itype, cpref *string
	)
	err := row.Scan(
		&p.UserID, &p.GraduationYear, &p.CurrentSemester, &p.Degree, &p.Branch,
		&p.Skills, &p.PreferredRoles, &itype, &cpref,
		&p.TargetCompanies, &p.ResumeURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return model.StudentProfile{}, err
	}
	if itype != nil {
		v := model.LocationPreference(*itype)
		p.InternshipType = &v
	}
	if cpref != nil {
		v := model.CompensationPreference(*cpref)
		p.CompensationPreference = &v
	}
	return p, nil
}

const listingColumns = `id::text, title, company, company_domain, platform, location,
	internship_type, duration, stipend, required_skills, preferred_skills,
	responsibilities, application_deadline, start_date, verification_status,
	trust_score, red_flags, posted_date, is_active, created_at, updated_at`

func scanListing(row pgx.Row) (model.InternshipListing, error) {
	var (
		l     model.InternshipListing
		flags []byte
	)
	err := row.Scan(
		&l.ID, &l.Title, &l.Company, &l.CompanyDomain, &l.Platform, &l.Location,
		&l.InternshipType, &l.Duration, &l.Stipend, &l.RequiredSkills, &l.PreferredSkills,
		&l.Responsibilities, &l.ApplicationDeadline, &l.StartDate, &l.VerificationStatus,
		&l.TrustScore, &flags, &l.PostedDate, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return model.InternshipListing{}, err
	}
	if len(flags) > 0 {
		if err := json.Unmarshal(flags, &l.RedFlags); err != nil {
			return model.InternshipListing{}, fmt.Errorf("listing %s red_flags: %w", l.ID, err)
		}
	}
	return l, nil
}
