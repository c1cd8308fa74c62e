// Package calendar maps a student's semester to the internship-application
// timeline: which season to target, when applications open, and when the
// internship itself runs.
//
// Semester timeline:
//
//	1-2  Skill Building          — no applications yet
//	3-4  Summer Internships      — apply Jan-Mar, intern May-Jul
//	5-6  Winter/Summer           — apply Aug-Oct, intern Dec-Jan
//	7    Final Year Internships  — apply Jul-Sep, intern Jan-Apr
//	8    Pre-Placement           — apply window ongoing, period flexible
//
// Everything here is a pure table lookup plus month arithmetic; no I/O.
package calendar

import (
	"time"

	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

// Entry is the timeline guidance for one semester.
type Entry struct {
	Semester         int          `json:"semester"`
	Focus            string       `json:"focus"`
	Description      string       `json:"description"`
	ApplyWindow      string       `json:"applyWindow"`
	InternshipPeriod string       `json:"internshipPeriod"`
	ApplyMonths      []time.Month `json:"applyMonths"`
	InternshipMonths []time.Month `json:"internshipMonths"`
	Recommendation   string       `json:"recommendation"`
}

var entries = map[int]Entry{
	1: {
		Semester:       1,
		Focus:          "Skill Building",
		Description:    "Focus on building foundational skills and academic performance",
		Recommendation: "Too early for internships. Focus on coursework and skill development.",
	},
	2: {
		Semester:       2,
		Focus:          "Skill Building",
		Description:    "Continue skill development and explore areas of interest",
		Recommendation: "Too early for internships. Build projects and learn new technologies.",
	},
	3: {
		Semester:         3,
		Focus:            "Summer Internships",
		Description:      "Apply for summer internships to gain industry experience",
		ApplyWindow:      "Jan-Mar",
		InternshipPeriod: "May-Jul",
		ApplyMonths:      []time.Month{time.January, time.February, time.March},
		InternshipMonths: []time.Month{time.May, time.June, time.July},
		Recommendation:   "Apply for Summer Internships between January and March for May-July positions.",
	},
	4: {
		Semester:         4,
		Focus:            "Summer Internships",
		Description:      "Prime time for summer internship applications",
		ApplyWindow:      "Jan-Mar",
		InternshipPeriod: "May-Jul",
		ApplyMonths:      []time.Month{time.January, time.February, time.March},
		InternshipMonths: []time.Month{time.May, time.June, time.July},
		Recommendation:   "Apply for Summer Internships between January and March for May-July positions.",
	},
	5: {
		Semester:         5,
		Focus:            "Winter/Summer Internships",
		Description:      "Apply for winter internships or prepare for next summer",
		ApplyWindow:      "Aug-Oct",
		InternshipPeriod: "Dec-Jan",
		ApplyMonths:      []time.Month{time.August, time.September, time.October},
		InternshipMonths: []time.Month{time.December, time.January},
		Recommendation:   "Apply for Winter Internships between August and October for December-January positions.",
	},
	6: {
		Semester:         6,
		Focus:            "Winter/Summer Internships",
		Description:      "Continue applying for winter internships or summer opportunities",
		ApplyWindow:      "Aug-Oct",
		InternshipPeriod: "Dec-Jan",
		ApplyMonths:      []time.Month{time.August, time.September, time.October},
		InternshipMonths: []time.Month{time.December, time.January},
		Recommendation:   "Apply for Winter Internships between August and October for December-January positions.",
	},
	7: {
		Semester:         7,
		Focus:            "Final Year Internships",
		Description:      "Apply for final year internships and pre-placement opportunities",
		ApplyWindow:      "Jul-Sep",
		InternshipPeriod: "Jan-Apr",
		ApplyMonths:      []time.Month{time.July, time.August, time.September},
		InternshipMonths: []time.Month{time.January, time.February, time.March, time.April},
		Recommendation:   "Apply for Final Year Internships between July and September for January-April positions.",
	},
	8: {
		Semester:         8,
		Focus:            "Pre-Placement",
		Description:      "Focus on placement preparation and final projects",
		ApplyWindow:      "Ongoing",
		InternshipPeriod: "Flexible",
		ApplyMonths:      allMonths(),
		InternshipMonths: allMonths(),
		Recommendation:   "Focus on placement preparation. Apply for short-term or flexible internships as needed.",
	},
}

func allMonths() []time.Month {
	ms := make([]time.Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		ms = append(ms, m)
	}
	return ms
}

// ForSemester returns the timeline entry for semester (1-8).
func ForSemester(semester int) (Entry, error) {
	e, ok := entries[semester]
	if !ok {
		return Entry{}, model.Invalid("semester", "must be between 1 and 8, got %d", semester)
	}
	return e, nil
}

// Window reports how far away the semester's application window is.
type Window struct {
	MonthsUntilWindow int  `json:"monthsUntilWindow"`
	IsWithinWindow    bool `json:"isWithinWindow"`
}

// PreparationWindow computes the gap between currentMonth and the start of
// the semester's apply window, wrapping across the year boundary (November
// relative to a January window is 2 months away, never negative).
// Semesters without an apply window report a zero, not-within window.
func PreparationWindow(semester int, currentMonth time.Month) (Window, error) {
	e, err := ForSemester(semester)
	if err != nil {
		return Window{}, err
	}
	if currentMonth < time.January || currentMonth > time.December {
		return Window{}, model.Invalid("month", "must be between 1 and 12, got %d", int(currentMonth))
	}

	if len(e.ApplyMonths) == 0 {
		return Window{}, nil
	}
	for _, m := range e.ApplyMonths {
		if m == currentMonth {
			return Window{IsWithinWindow: true}, nil
		}
	}

	// Next window start: the earliest apply month after the current month,
	// or the earliest of next year when none remain this year.
	next := time.Month(0)
	for _, m := range e.ApplyMonths {
		if m > currentMonth && (next == 0 || m < next) {
			next = m
		}
	}
	if next != 0 {
		return Window{MonthsUntilWindow: int(next - currentMonth)}, nil
	}

	first := e.ApplyMonths[0]
	for _, m := range e.ApplyMonths {
		if m < first {
			first = m
		}
	}
	return Window{MonthsUntilWindow: int(time.December-currentMonth) + int(first)}, nil
}

// Deadline is one upcoming timeline marker for a semester.
type Deadline struct {
	Kind        string     `json:"kind"`
	Month       time.Month `json:"month"`
	Description string     `json:"description"`
}

// Marker kinds returned by UpcomingDeadlines.
const (
	DeadlineWindowOpens     = "Application Window Opens"
	DeadlineWindowCloses    = "Application Window Closes"
	DeadlineInternshipStart = "Internship Starts"
)

// UpcomingDeadlines lists the semester's timeline markers ordered by how soon
// they occur relative to currentMonth, wrapping into next year. Skill-building
// semesters have none.
func UpcomingDeadlines(semester int, currentMonth time.Month) ([]Deadline, error) {
	e, err := ForSemester(semester)
	if err != nil {
		return nil, err
	}
	if currentMonth < time.January || currentMonth > time.December {
		return nil, model.Invalid("month", "must be between 1 and 12, got %d", int(currentMonth))
	}
	if len(e.ApplyMonths) == 0 {
		return nil, nil
	}

	opens, closes := e.ApplyMonths[0], e.ApplyMonths[0]
	for _, m := range e.ApplyMonths {
		if m < opens {
			opens = m
		}
		if m > closes {
			closes = m
		}
	}
	starts := e.InternshipMonths[0]
	for _, m := range e.InternshipMonths {
		if m < starts {
			starts = m
		}
	}

	ds := []Deadline{
		{Kind: DeadlineWindowOpens, Month: opens, Description: "Start applying for " + e.Focus},
		{Kind: DeadlineWindowCloses, Month: closes, Description: "Last month to apply for " + e.Focus},
		{Kind: DeadlineInternshipStart, Month: starts, Description: "Expected start for " + e.Focus},
	}

	// Sort by distance from the current month, months behind us wrap to
	// next year.
	dist := func(m time.Month) int {
		if m >= currentMonth {
			return int(m - currentMonth)
		}
		return int(m) + 12 - int(currentMonth)
	}
	for i := 0; i < len(ds); i++ {
		for j := i + 1; j < len(ds); j++ {
			if dist(ds[j].Month) < dist(ds[i].Month) {
				ds[i], ds[j] = ds[j], ds[i]
			}
		}
	}
	return ds, nil
}
