// Package model defines the shared data structures for the internship
// verification and readiness service.
//
// Every closed vocabulary is a typed string with a ParseX function that
// rejects unknown values, so handlers can validate raw client input before it
// reaches an engine or the database.
package model

import "fmt"

// InternshipType mirrors the internship_type column on listings.
type InternshipType string

const (
	TypeSummer   InternshipType = "Summer"
	TypeWinter   InternshipType = "Winter"
	TypeResearch InternshipType = "Research"
	TypeOffCycle InternshipType = "Off-cycle"
)

// ParseInternshipType converts a raw string to an InternshipType, returning
// an error for unknown values.
func ParseInternshipType(s string) (InternshipType, error) {
	t := InternshipType(s)
	switch t {
	case TypeSummer, TypeWinter, TypeResearch, TypeOffCycle:
		return t, nil
	}
	return "", fmt.Errorf("unknown internship type %q", s)
}

// VerificationStatus is the trust classification of a listing.
// Pending is the listing default before the first verification run; a
// VerificationResult itself always carries one of the other three.
type VerificationStatus string

const (
	StatusPending       VerificationStatus = "Pending"
	StatusVerified      VerificationStatus = "Verified"
	StatusUseCaution    VerificationStatus = "Use Caution"
	StatusPotentialScam VerificationStatus = "Potential Scam"
)

// ParseVerificationStatus converts a raw string to a VerificationStatus.
func ParseVerificationStatus(s string) (VerificationStatus, error) {
	st := VerificationStatus(s)
	switch st {
	case StatusPending, StatusVerified, StatusUseCaution, StatusPotentialScam:
		return st, nil
	}
	return "", fmt.Errorf("unknown verification status %q", s)
}

// LocationPreference is the student's preferred work arrangement.
type LocationPreference string

const (
	PreferRemote LocationPreference = "Remote"
	PreferOnSite LocationPreference = "On-site"
	PreferHybrid LocationPreference = "Hybrid"
)

// ParseLocationPreference converts a raw string to a LocationPreference.
func ParseLocationPreference(s string) (LocationPreference, error) {
	p := LocationPreference(s)
	switch p {
	case PreferRemote, PreferOnSite, PreferHybrid:
		return p, nil
	}
	return "", fmt.Errorf("unknown location preference %q", s)
}

// CompensationPreference is the student's stipend expectation.
type CompensationPreference string

const (
	CompensationPaid   CompensationPreference = "Paid"
	CompensationUnpaid CompensationPreference = "Unpaid"
	CompensationAny    CompensationPreference = "Any"
)

// ParseCompensationPreference converts a raw string to a CompensationPreference.
func ParseCompensationPreference(s string) (CompensationPreference, error) {
	p := CompensationPreference(s)
	switch p {
	case CompensationPaid, CompensationUnpaid, CompensationAny:
		return p, nil
	}
	return "", fmt.Errorf("unknown compensation preference %q", s)
}

// AlertType identifies which rule produced a UserAlert.
type AlertType string

const (
	AlertNewMatch            AlertType = "new_match"
	AlertDeadlineApproaching AlertType = "deadline_approaching"
	AlertReadinessImproved   AlertType = "readiness_improved"
	AlertSeasonStarting      AlertType = "season_starting"
)

// ParseAlertType converts a raw string to an AlertType.
func ParseAlertType(s string) (AlertType, error) {
	t := AlertType(s)
	switch t {
	case AlertNewMatch, AlertDeadlineApproaching, AlertReadinessImproved, AlertSeasonStarting:
		return t, nil
	}
	return "", fmt.Errorf("unknown alert type %q", s)
}

// ScamReportStatus tracks moderation of a student-filed report.
type ScamReportStatus string

const (
	ReportPending   ScamReportStatus = "Pending"
	ReportReviewed  ScamReportStatus = "Reviewed"
	ReportConfirmed ScamReportStatus = "Confirmed"
	ReportDismissed ScamReportStatus = "Dismissed"
)

// ParseScamReportStatus converts a raw string to a ScamReportStatus.
func ParseScamReportStatus(s string) (ScamReportStatus, error) {
	st := ScamReportStatus(s)
	switch st {
	case ReportPending, ReportReviewed, ReportConfirmed, ReportDismissed:
		return st, nil
	}
	return "", fmt.Errorf("unknown scam report status %q", s)
}

// RedFlagType is the closed set of fraud indicators the verification engine
// can detect. Keeping this an enum (rather than free-form strings) keeps the
// detector set exhaustive and testable.
type RedFlagType string

const (
	FlagRegistrationFee    RedFlagType = "registration_fee"
	FlagWhatsAppOnly       RedFlagType = "whatsapp_only"
	FlagNonOfficialEmail   RedFlagType = "non_official_email"
	FlagUnrealisticStipend RedFlagType = "unrealistic_stipend"
	FlagVagueDescription   RedFlagType = "vague_description"
)

// RedFlagSeverity tiers a detected fraud indicator.
type RedFlagSeverity string

const (
	SeverityLow    RedFlagSeverity = "low"
	SeverityMedium RedFlagSeverity = "medium"
	SeverityHigh   RedFlagSeverity = "high"
)
