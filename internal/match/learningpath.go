package match

import (
	"sort"
	"strings"

	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

// Static skill-difficulty table. Anything unlisted defaults to medium.
var skillDifficulty = map[string]string{
	// short ramp-up
	"git":  "easy",
	"html": "easy",
	"css":  "easy",
	"sql":  "easy",

	// a few weeks
	"python":     "medium",
	"javascript": "medium",
	"java":       "medium",
	"go":         "medium",
	"react":      "medium",
	"node.js":    "medium",
	"django":     "medium",
	"flask":      "medium",
	"rest api":   "medium",
	"mongodb":    "medium",
	"postgresql": "medium",
	"power bi":   "medium",
	"excel":      "medium",

	// sustained effort
	"machine learning":    "hard",
	"data science":        "hard",
	"deep learning":       "hard",
	"kubernetes":          "hard",
	"aws":                 "hard",
	"system design":       "hard",
	"distributed systems": "hard",
}

var learningTimes = map[string]string{
	"easy":   "1-2 weeks",
	"medium": "3-4 weeks",
	"hard":   "6-8 weeks",
}

// Static resource suggestions per skill. No live lookups — this is a stub
// mapping a collaborator can replace with a real catalogue later.
var learningResources = map[string][]string{
	"python":           {"Python Official Tutorial (python.org)", "Coursera: Python for Everybody", "Real Python Tutorials"},
	"java":             {"Oracle Java Tutorials", "Codecademy: Learn Java"},
	"javascript":       {"MDN Web Docs: JavaScript Guide", "freeCodeCamp: JavaScript Algorithms", "Eloquent JavaScript (book)"},
	"go":               {"A Tour of Go (go.dev)", "Go by Example", "Effective Go"},
	"react":            {"React Official Documentation", "freeCodeCamp: Front End Development Libraries"},
	"node.js":          {"Node.js Official Guides", "freeCodeCamp: Back End Development"},
	"django":           {"Django Official Tutorial", "Django for Beginners (book)"},
	"flask":            {"Flask Official Tutorial", "Flask Mega-Tutorial"},
	"sql":              {"SQLBolt Interactive Tutorial", "Khan Academy: Intro to SQL", "Mode Analytics: SQL Tutorial"},
	"mongodb":          {"MongoDB University", "MongoDB Official Documentation"},
	"postgresql":       {"PostgreSQL Official Tutorial", "PostgreSQL Exercises"},
	"power bi":         {"Microsoft Learn: Power BI Fundamentals", "Power BI Guided Learning"},
	"machine learning": {"Coursera: Machine Learning by Andrew Ng", "fast.ai: Practical Deep Learning", "Google's ML Crash Course"},
	"aws":              {"AWS Training and Certification", "freeCodeCamp: AWS Cloud Practitioner"},
	"docker":           {"Docker Official Get Started Guide", "Play with Docker Classroom"},
	"kubernetes":       {"Kubernetes Official Tutorial", "CNCF Kubernetes Fundamentals"},
	"git":              {"Git Official Documentation", "GitHub Learning Lab", "Atlassian Git Tutorial"},
	"rest api":         {"Postman Learning Center", "freeCodeCamp: APIs for Beginners"},
	"graphql":          {"GraphQL Official Tutorial", "How to GraphQL"},
}

var defaultResources = []string{
	"Coursera: search for relevant courses",
	"YouTube: search for tutorials",
	"Official documentation for the technology",
}

func difficultyFor(canonical string) string {
	if d, ok := skillDifficulty[canonical]; ok {
		return d
	}
	return "medium"
}

// resourcesFor returns suggestions for a skill, falling back to a partial
// match ("react.js" picks up "react") and then to the generic list.
func resourcesFor(canonical string) []string {
	if rs, ok := learningResources[canonical]; ok {
		return rs
	}
	for key, rs := range learningResources {
		if len(key) < 3 {
			continue
		}
		if len(canonical) >= 3 && (strings.Contains(canonical, key) || strings.Contains(key, canonical)) {
			return rs
		}
	}
	return defaultResources
}

var priorityOrder = map[string]int{"High": 0, "Medium": 1, "Low": 2}

// buildLearningPath emits one item per missing skill. Skills required by the
// listing rank High and come first; preferred-only skills rank Medium. Within
// a priority tier the order is alphabetical for determinism.
func buildLearningPath(missing []string, required map[string]bool) []model.LearningPathItem {
	items := make([]model.LearningPathItem, 0, len(missing))
	for _, skill := range missing {
		c := Canonical(skill)
		difficulty := difficultyFor(c)
		priority := "Medium"
		if required[c] {
			priority = "High"
		}
		items = append(items, model.LearningPathItem{
			Skill:         skill,
			EstimatedTime: learningTimes[difficulty],
			Difficulty:    capitalize(difficulty),
			Priority:      priority,
			Resources:     resourcesFor(c),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if priorityOrder[items[i].Priority] != priorityOrder[items[j].Priority] {
			return priorityOrder[items[i].Priority] < priorityOrder[items[j].Priority]
		}
		return Canonical(items[i].Skill) < Canonical(items[j].Skill)
	})
	return items
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
