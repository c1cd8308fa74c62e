package verification

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

// Keyword lists scanned case-insensitively over the listing's combined text
// (title + company + stipend + responsibilities).
var (
	registrationFeeKeywords = []string{
		"registration fee",
		"registration charge",
		"enrollment fee",
		"joining fee",
		"application fee",
		"processing fee",
		"security deposit",
		"refundable deposit",
		"pay to apply",
		"payment required",
	}

	whatsAppOnlyKeywords = []string{
		"whatsapp only",
		"contact on whatsapp",
		"whatsapp for details",
		"message on whatsapp",
		"dm on whatsapp",
		"whatsapp number",
	}

	vagueKeywords = []string{
		"various tasks",
		"general work",
		"miscellaneous duties",
		"as assigned",
		"other duties",
		"flexible role",
		"multiple responsibilities",
	}
)

var stipendAmount = regexp.MustCompile(`([0-9]+(?:,[0-9]+)*(?:\.[0-9]+)?)`)

// combinedText joins the searchable free-text fields of a listing, lowercased.
func combinedText(l model.InternshipListing) string {
	parts := []string{l.Title, l.Company, l.Stipend}
	parts = append(parts, l.Responsibilities...)
	return strings.ToLower(strings.Join(parts, " "))
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// detectRegistrationFee flags listings that ask applicants for money.
func detectRegistrationFee(text string) (model.RedFlag, bool) {
	if !containsAny(text, registrationFeeKeywords) {
		return model.RedFlag{}, false
	}
	return model.RedFlag{
		Type:        model.FlagRegistrationFee,
		Severity:    model.SeverityHigh,
		Description: "Asks for a registration or enrollment fee",
	}, true
}

// detectWhatsAppOnly flags listings whose only contact channel is a
// messaging handle.
func detectWhatsAppOnly(text string) (model.RedFlag, bool) {
	if !containsAny(text, whatsAppOnlyKeywords) {
		return model.RedFlag{}, false
	}
	return model.RedFlag{
		Type:        model.FlagWhatsAppOnly,
		Severity:    model.SeverityMedium,
		Description: "Uses WhatsApp as the only contact method",
	}, true
}

// detectNonOfficialEmail flags listings whose "official" contact domain is a
// consumer mail service.
func detectNonOfficialEmail(l model.InternshipListing) (model.RedFlag, bool) {
	if l.CompanyDomain == nil {
		return model.RedFlag{}, false
	}
	d := strings.ToLower(strings.TrimSpace(*l.CompanyDomain))
	if !freeMailDomains[d] {
		return model.RedFlag{}, false
	}
	return model.RedFlag{
		Type:        model.FlagNonOfficialEmail,
		Severity:    model.SeverityMedium,
		Description: fmt.Sprintf("Uses non-official email domain (%s) for communication", d),
	}, true
}

// detectUnrealisticStipend flags stipends above the configured ceiling.
// The maximum numeric token in the stipend text is taken as the monthly
// amount, so a range like "₹50,000-80,000" is judged by its upper bound; a
// "k" suffix immediately after a number multiplies that number by 1000.
func detectUnrealisticStipend(l model.InternshipListing, w Weights) (model.RedFlag, bool) {
	raw := strings.ToLower(l.Stipend)
	locs := stipendAmount.FindAllStringIndex(raw, -1)
	if locs == nil {
		return model.RedFlag{}, false
	}
	var amount float64
	for _, loc := range locs {
		var n float64
		if _, err := fmt.Sscanf(strings.ReplaceAll(raw[loc[0]:loc[1]], ",", ""), "%f", &n); err != nil {
			continue
		}
		if rest := strings.TrimLeft(raw[loc[1]:], " "); strings.HasPrefix(rest, "k") {
			n *= 1000
		}
		if n > amount {
			amount = n
		}
	}
	if amount <= w.StipendCeiling {
		return model.RedFlag{}, false
	}
	return model.RedFlag{
		Type:        model.FlagUnrealisticStipend,
		Severity:    model.SeverityHigh,
		Description: fmt.Sprintf("Unrealistically high stipend (₹%.0f/month) for an entry-level internship", amount),
	}, true
}

// detectVagueDescription flags listings with no responsibilities, a single
// too-short responsibility, or several vague filler phrases.
func detectVagueDescription(l model.InternshipListing, w Weights) (model.RedFlag, bool) {
	if len(l.Responsibilities) == 0 {
		return model.RedFlag{
			Type:        model.FlagVagueDescription,
			Severity:    model.SeverityLow,
			Description: "No responsibilities specified",
		}, true
	}

	joined := strings.ToLower(strings.Join(l.Responsibilities, " "))
	vagueCount := 0
	for _, kw := range vagueKeywords {
		if strings.Contains(joined, kw) {
			vagueCount++
		}
	}
	tooShort := len(l.Responsibilities) == 1 && len(l.Responsibilities[0]) < w.MinResponsibilityLength
	if vagueCount < 2 && !tooShort {
		return model.RedFlag{}, false
	}
	return model.RedFlag{
		Type:        model.FlagVagueDescription,
		Severity:    model.SeverityLow,
		Description: "Responsibilities are vague or poorly defined",
	}, true
}

// DetectRedFlags runs every detector against the listing. Each detector
// contributes at most one flag, so the result is bounded by the detector set.
func DetectRedFlags(l model.InternshipListing, w Weights) []model.RedFlag {
	text := combinedText(l)

	flags := make([]model.RedFlag, 0, 5)
	if f, ok := detectRegistrationFee(text); ok {
		flags = append(flags, f)
	}
	if f, ok := detectWhatsAppOnly(text); ok {
		flags = append(flags, f)
	}
	if f, ok := detectNonOfficialEmail(l); ok {
		flags = append(flags, f)
	}
	if f, ok := detectUnrealisticStipend(l, w); ok {
		flags = append(flags, f)
	}
	if f, ok := detectVagueDescription(l, w); ok {
		flags = append(flags, f)
	}
	return flags
}
