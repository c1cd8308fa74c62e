package calendar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Harshitasingh-co/VidyaMitra/internal/calendar"
	"github.com/Harshitasingh-co/VidyaMitra/internal/model"
)

// ── ForSemester ────────────────────────────────────────────────────────────

func TestForSemester_AllValidSemesters(t *testing.T) {
	for s := 1; s <= 8; s++ {
		e, err := calendar.ForSemester(s)
		if err != nil {
			t.Fatalf("ForSemester(%d) unexpected error: %v", s, err)
		}
		if e.Semester != s {
			t.Errorf("ForSemester(%d).Semester = %d", s, e.Semester)
		}
		if e.Focus == "" {
			t.Errorf("ForSemester(%d) has empty Focus", s)
		}
	}
}

func TestForSemester_ApplyingSemestersHaveWindows(t *testing.T) {
	for _, s := range []int{3, 4, 5, 6, 7} {
		e, err := calendar.ForSemester(s)
		if err != nil {
			t.Fatalf("ForSemester(%d) unexpected error: %v", s, err)
		}
		if e.ApplyWindow == "" || e.InternshipPeriod == "" {
			t.Errorf("ForSemester(%d): applyWindow=%q internshipPeriod=%q, want both non-empty",
				s, e.ApplyWindow, e.InternshipPeriod)
		}
		if len(e.ApplyMonths) == 0 || len(e.InternshipMonths) == 0 {
			t.Errorf("ForSemester(%d): month lists must be non-empty", s)
		}
	}
}

func TestForSemester_SkillBuildingHasNoWindow(t *testing.T) {
	for _, s := range []int{1, 2} {
		e, err := calendar.ForSemester(s)
		if err != nil {
			t.Fatalf("ForSemester(%d) unexpected error: %v", s, err)
		}
		if e.Focus != "Skill Building" {
			t.Errorf("ForSemester(%d).Focus = %q, want Skill Building", s, e.Focus)
		}
		if e.ApplyWindow != "" || len(e.ApplyMonths) != 0 {
			t.Errorf("ForSemester(%d) should have no apply window", s)
		}
	}
}

func TestForSemester_Semester4(t *testing.T) {
	e, err := calendar.ForSemester(4)
	if err != nil {
		t.Fatalf("ForSemester(4) unexpected error: %v", err)
	}
	if e.Focus != "Summer Internships" {
		t.Errorf("Focus = %q, want Summer Internships", e.Focus)
	}
	if e.ApplyWindow != "Jan-Mar" {
		t.Errorf("ApplyWindow = %q, want Jan-Mar", e.ApplyWindow)
	}
	if e.InternshipPeriod != "May-Jul" {
		t.Errorf("InternshipPeriod = %q, want May-Jul", e.InternshipPeriod)
	}
}

func TestForSemester_OutOfRange(t *testing.T) {
	for _, s := range []int{0, -1, 9, 100} {
		_, err := calendar.ForSemester(s)
		if err == nil {
			t.Errorf("ForSemester(%d) expected error, got nil", s)
			continue
		}
		var ve *model.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("ForSemester(%d) error is %T, want *model.ValidationError", s, err)
		}
	}
}

// ── PreparationWindow ──────────────────────────────────────────────────────

func TestPreparationWindow_WithinWindow(t *testing.T) {
	for _, m := range []time.Month{time.January, time.February, time.March} {
		w, err := calendar.PreparationWindow(4, m)
		if err != nil {
			t.Fatalf("PreparationWindow(4, %s) unexpected error: %v", m, err)
		}
		if !w.IsWithinWindow {
			t.Errorf("PreparationWindow(4, %s).IsWithinWindow = false, want true", m)
		}
		if w.MonthsUntilWindow != 0 {
			t.Errorf("PreparationWindow(4, %s).MonthsUntilWindow = %d, want 0", m, w.MonthsUntilWindow)
		}
	}
}

// Current month November, window starts January → 2 months, not -9.
func TestPreparationWindow_YearWraparound(t *testing.T) {
	w, err := calendar.PreparationWindow(4, time.November)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.IsWithinWindow {
		t.Error("November is not inside a Jan-Mar window")
	}
	if w.MonthsUntilWindow != 2 {
		t.Errorf("MonthsUntilWindow = %d, want 2", w.MonthsUntilWindow)
	}
}

func TestPreparationWindow_SameYear(t *testing.T) {
	// Semester 5 window opens in August; May is 3 months out.
	w, err := calendar.PreparationWindow(5, time.May)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.IsWithinWindow || w.MonthsUntilWindow != 3 {
		t.Errorf("got %+v, want 3 months out, not within", w)
	}
}

func TestPreparationWindow_SkillBuildingSemester(t *testing.T) {
	w, err := calendar.PreparationWindow(1, time.June)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.IsWithinWindow || w.MonthsUntilWindow != 0 {
		t.Errorf("semester 1 has no window, got %+v", w)
	}
}

func TestPreparationWindow_OngoingWindow(t *testing.T) {
	// Semester 8 applies year-round, so any month is inside the window.
	for m := time.January; m <= time.December; m++ {
		w, err := calendar.PreparationWindow(8, m)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !w.IsWithinWindow {
			t.Errorf("PreparationWindow(8, %s) should be within window", m)
		}
	}
}

func TestPreparationWindow_InvalidMonth(t *testing.T) {
	for _, m := range []time.Month{0, 13} {
		if _, err := calendar.PreparationWindow(4, m); err == nil {
			t.Errorf("PreparationWindow(4, %d) expected error, got nil", int(m))
		}
	}
}

// ── UpcomingDeadlines ──────────────────────────────────────────────────────

func TestUpcomingDeadlines_Semester4FromDecember(t *testing.T) {
	ds, err := calendar.UpcomingDeadlines(4, time.December)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds) != 3 {
		t.Fatalf("got %d deadlines, want 3", len(ds))
	}
	// From December everything is next year, soonest first: opens (Jan),
	// closes (Mar), internship starts (May).
	want := []struct {
		kind  string
		month time.Month
	}{
		{calendar.DeadlineWindowOpens, time.January},
		{calendar.DeadlineWindowCloses, time.March},
		{calendar.DeadlineInternshipStart, time.May},
	}
	for i, w := range want {
		if ds[i].Kind != w.kind || ds[i].Month != w.month {
			t.Errorf("deadline[%d] = %q/%s, want %q/%s", i, ds[i].Kind, ds[i].Month, w.kind, w.month)
		}
	}
}

func TestUpcomingDeadlines_WrapsPastMarkers(t *testing.T) {
	// From February the semester-4 window-open (January) is behind us and
	// must sort last (11 months away), not first.
	ds, err := calendar.UpcomingDeadlines(4, time.February)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds[len(ds)-1].Kind != calendar.DeadlineWindowOpens {
		t.Errorf("last deadline = %q, want %q", ds[len(ds)-1].Kind, calendar.DeadlineWindowOpens)
	}
}

func TestUpcomingDeadlines_NoneForSkillBuilding(t *testing.T) {
	ds, err := calendar.UpcomingDeadlines(2, time.June)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds) != 0 {
		t.Errorf("got %d deadlines for semester 2, want 0", len(ds))
	}
}
