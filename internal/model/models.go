package model

import "time"

// StudentProfile is the student's saved internship-search profile.
// Saves are whole-record replacements keyed by UserID — there are no partial
// updates, so a stored profile is always internally consistent.
type StudentProfile struct {
	UserID                 string                  `json:"userId"`
	GraduationYear         int                     `json:"graduationYear"`
	CurrentSemester        int                     `json:"currentSemester"`
	Degree                 string                  `json:"degree"`
	Branch                 string                  `json:"branch"`
	Skills                 []string                `json:"skills"`
	PreferredRoles         []string                `json:"preferredRoles"`
	InternshipType         *LocationPreference     `json:"internshipType"`
	CompensationPreference *CompensationPreference `json:"compensationPreference"`
	TargetCompanies        []string                `json:"targetCompanies"`
	ResumeURL              *string                 `json:"resumeUrl"`
	CreatedAt              time.Time               `json:"createdAt"`
	UpdatedAt              time.Time               `json:"updatedAt"`
}

// RedFlag is a single detected fraud indicator on a listing.
type RedFlag struct {
	Type        RedFlagType     `json:"type"`
	Severity    RedFlagSeverity `json:"severity"`
	Description string          `json:"description"`
}

// InternshipListing is one internship offer in the feed. Listings are created
// by the ingestion collaborator, re-verified in place, and soft-deleted via
// IsActive.
type InternshipListing struct {
	ID                  string             `json:"id"`
	Title               string             `json:"title"`
	Company             string             `json:"company"`
	CompanyDomain       *string            `json:"companyDomain"`
	Platform            *string            `json:"platform"`
	Location            string             `json:"location"`
	InternshipType      InternshipType     `json:"internshipType"`
	Duration            string             `json:"duration"`
	Stipend             string             `json:"stipend"`
	RequiredSkills      []string           `json:"requiredSkills"`
	PreferredSkills     []string           `json:"preferredSkills"`
	Responsibilities    []string           `json:"responsibilities"`
	ApplicationDeadline *time.Time         `json:"applicationDeadline"`
	StartDate           *time.Time         `json:"startDate"`
	VerificationStatus  VerificationStatus `json:"verificationStatus"`
	TrustScore          int                `json:"trustScore"`
	RedFlags            []RedFlag          `json:"redFlags"`
	PostedDate          time.Time          `json:"postedDate"`
	IsActive            bool               `json:"isActive"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

// VerificationSignals are the positive trust indicators checked during
// verification.
type VerificationSignals struct {
	OfficialDomain  bool `json:"officialDomain"`
	KnownPlatform   bool `json:"knownPlatform"`
	CompanyVerified bool `json:"companyVerified"`
}

// VerificationResult is the outcome of one verification run, one-to-one with
// a listing. It is overwritten wholesale each time verification runs and
// cached until then.
type VerificationResult struct {
	ListingID    string              `json:"listingId"`
	Status       VerificationStatus  `json:"status"`
	TrustScore   int                 `json:"trustScore"`
	Signals      VerificationSignals `json:"signals"`
	RedFlags     []RedFlag           `json:"redFlags"`
	Notes        string              `json:"notes"`
	LastVerified time.Time           `json:"lastVerified"`
}

// LearningPathItem is a study suggestion for one missing skill.
type LearningPathItem struct {
	Skill         string   `json:"skill"`
	EstimatedTime string   `json:"estimatedTime"`
	Difficulty    string   `json:"difficulty"`
	Priority      string   `json:"priority"`
	Resources     []string `json:"resources"`
}

// SkillMatch compares a user's skills against one listing. Keyed by
// (UserID, ListingID) and recomputed whenever either side's skills change.
//
// Invariant: MatchingSkills and MissingSkills partition the listing's
// required ∪ preferred skills.
type SkillMatch struct {
	UserID          string             `json:"userId"`
	ListingID       string             `json:"listingId"`
	MatchPercentage int                `json:"matchPercentage"`
	MatchingSkills  []string           `json:"matchingSkills"`
	MissingSkills   []string           `json:"missingSkills"`
	LearningPath    []LearningPathItem `json:"learningPath"`
}

// ReadinessScore is the weighted apply-readiness assessment for one
// (user, listing) pair. OverallScore is always derived:
//
//	overall = round(0.3·resume + 0.4·skill + 0.3·semester)
type ReadinessScore struct {
	UserID             string   `json:"userId"`
	ListingID          string   `json:"listingId"`
	OverallScore       int      `json:"overallScore"`
	ResumeStrength     int      `json:"resumeStrength"`
	SkillMatch         int      `json:"skillMatch"`
	SemesterReadiness  int      `json:"semesterReadiness"`
	Recommendation     string   `json:"recommendation"`
	ImprovementActions []string `json:"improvementActions"`
}

// UserAlert is a notification record produced by the alert rules. Only the
// read flag ever mutates after creation.
type UserAlert struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ListingID *string   `json:"listingId"`
	Type      AlertType `json:"alertType"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// ScamReport is a student-filed fraud report awaiting moderation.
type ScamReport struct {
	ID         string           `json:"id"`
	ListingID  string           `json:"listingId"`
	ReportedBy string           `json:"reportedBy"`
	Reason     string           `json:"reason"`
	Details    *string          `json:"details"`
	Status     ScamReportStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	ReviewedAt *time.Time       `json:"reviewedAt"`
	ReviewedBy *string          `json:"reviewedBy"`
}
