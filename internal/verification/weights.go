// Package verification implements fraud-detection heuristics for internship
// listings: positive trust signals, red-flag detectors, trust scoring and the
// Verified / Use Caution / Potential Scam classification.
package verification

// Classification cutoffs: Verified at 80 and above, Potential Scam below 50.
const (
	verifiedFloor   = 80
	useCautionFloor = 50
)

// Weights holds every tunable scoring constant. Callers inject it so tests
// can vary thresholds without touching shared state.
type Weights struct {
	// Base is the starting score before signals and flags are applied.
	Base int

	// Per-severity penalties subtracted for each detected red flag.
	HighPenalty   int
	MediumPenalty int
	LowPenalty    int

	// Bonuses added per positive signal.
	DomainBonus   int
	PlatformBonus int
	CompanyBonus  int

	// StipendCeiling is the monthly stipend (INR) above which an
	// entry-level listing is flagged as unrealistic.
	StipendCeiling float64

	// MinResponsibilityLength is the shortest acceptable single-item
	// responsibility description before it counts as vague.
	MinResponsibilityLength int
}

// DefaultWeights returns the production scoring constants.
func DefaultWeights() Weights {
	return Weights{
		Base:                    100,
		HighPenalty:             30,
		MediumPenalty:           15,
		LowPenalty:              5,
		DomainBonus:             10,
		PlatformBonus:           10,
		CompanyBonus:            10,
		StipendCeiling:          50000,
		MinResponsibilityLength: 50,
	}
}
