package stats

import "time"

// Window is a half-open reporting interval [Start, End) in a fixed reporting
// timezone. Loc drives both boundary construction and calendar-day bucketing;
// it is an explicit parameter, never a process-wide default.
type Window struct {
	Start time.Time
	End   time.Time
	Loc   *time.Location
}

// NewWindow builds a window over explicit instants. A nil location falls back
// to UTC.
func NewWindow(start, end time.Time, loc *time.Location) Window {
	if loc == nil {
		loc = time.UTC
	}
	return Window{Start: start, End: end, Loc: loc}
}

// DayWindow builds a window covering whole calendar days from first through
// last inclusive, in the reporting timezone. The upper bound is midnight of
// the day after last, keeping the interval half-open.
func DayWindow(first, last time.Time, loc *time.Location) Window {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, loc)
	end := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	return Window{Start: start, End: end, Loc: loc}
}

// Contains reports whether a unix timestamp falls inside [Start, End).
func (w Window) Contains(unix int64) bool {
	t := time.Unix(unix, 0)
	return !t.Before(w.Start) && t.Before(w.End)
}

// Day returns the calendar-day bucket key for a unix timestamp in the
// reporting timezone.
func (w Window) Day(unix int64) string {
	loc := w.Loc
	if loc == nil {
		loc = time.UTC
	}
	return dayKey(unix, loc)
}

// FilterSubmissions selects the submissions whose creation time falls inside
// the window. Pure order-preserving subsequence selection.
func FilterSubmissions(subs []Submission, w Window) []Submission {
	result := make([]Submission, 0, len(subs))
	for _, s := range subs {
		if w.Contains(s.CreationTime) {
			result = append(result, s)
		}
	}
	return result
}

// FilterParticipations selects the participations whose resolved contest start
// time falls inside the window. Pure order-preserving subsequence selection.
func FilterParticipations(parts []ContestParticipation, w Window) []ContestParticipation {
	result := make([]ContestParticipation, 0, len(parts))
	for _, p := range parts {
		if w.Contains(p.Timestamp) {
			result = append(result, p)
		}
	}
	return result
}
