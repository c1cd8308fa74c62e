package verification

import (
	"regexp"
	"strings"
)

// knownPlatforms is the fixed allow-list of legitimate listing platforms,
// matched case-insensitively.
var knownPlatforms = map[string]bool{
	"internshala":         true,
	"linkedin":            true,
	"wellfound":           true,
	"aicte":               true,
	"nsdc":                true,
	"company career page": true,
}

// freeMailDomains are consumer mail services. A company "domain" from this
// set is never official and additionally trips the non_official_email flag.
var freeMailDomains = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"rediffmail.com": true,
	"ymail.com":      true,
}

var (
	corporateSuffix = regexp.MustCompile(`\s+(pvt\.?|ltd\.?|inc\.?|corp\.?|llc|limited|private)$`)
	nonAlnum        = regexp.MustCompile(`[^a-z0-9]`)
)

// commonTLDs are domain labels skipped when matching the company name, so
// "careers.techcorp.co.in" is compared on "careers" and "techcorp" only.
var commonTLDs = map[string]bool{
	"com": true, "org": true, "net": true, "edu": true, "gov": true,
	"co": true, "in": true, "io": true, "ai": true,
}

// KnownPlatform reports whether platform is on the allow-list.
func KnownPlatform(platform *string) bool {
	if platform == nil {
		return false
	}
	return knownPlatforms[strings.ToLower(strings.TrimSpace(*platform))]
}

// OfficialDomain reports whether domain textually corresponds to the company
// name. The heuristic: lowercase and trim both; reject free-mail domains;
// fold the company to alphanumerics after stripping trailing corporate
// suffixes (pvt/ltd/inc/...); then accept if any non-TLD domain label
// contains the folded company name or vice versa.
func OfficialDomain(company string, domain *string) bool {
	if domain == nil {
		return false
	}
	d := strings.ToLower(strings.TrimSpace(*domain))
	if d == "" || freeMailDomains[d] {
		return false
	}

	folded := strings.ToLower(strings.TrimSpace(company))
	folded = corporateSuffix.ReplaceAllString(folded, "")
	folded = nonAlnum.ReplaceAllString(folded, "")
	if folded == "" {
		return false
	}

	for _, part := range strings.Split(d, ".") {
		if commonTLDs[part] {
			continue
		}
		label := nonAlnum.ReplaceAllString(part, "")
		if label == "" {
			continue
		}
		if strings.Contains(label, folded) || strings.Contains(folded, label) {
			return true
		}
	}
	return false
}
