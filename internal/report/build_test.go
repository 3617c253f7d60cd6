package report

import (
	"context"
	"reflect"
	"testing"
	"time"

	"cf-insight/internal/codeforces"
	"cf-insight/internal/config"
	"cf-insight/internal/snapshot"
	"cf-insight/internal/stats"
)

func seedStore(t *testing.T) *snapshot.Store {
	t.Helper()
	store, err := snapshot.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.SaveContests([]codeforces.ContestDTO{
		{ID: 1, Name: "Round 1", StartTimeSeconds: 1741000000},
	}); err != nil {
		t.Fatalf("SaveContests failed: %v", err)
	}

	if err := store.SaveSubmissions("alice", []codeforces.SubmissionDTO{
		{
			ID: 1, ContestID: 1, CreationTimeSeconds: 1741003600,
			Problem: codeforces.ProblemDTO{ContestID: 1, Index: "A", Name: "P1", Rating: 800, Tags: []string{"math"}},
			Author:  codeforces.PartyDTO{ParticipantType: "CONTESTANT"},
			Verdict: "OK",
		},
		{
			ID: 2, ContestID: 1, CreationTimeSeconds: 1741003700,
			Problem: codeforces.ProblemDTO{ContestID: 1, Index: "B", Name: "P2", Rating: 1200, Tags: []string{"dp"}},
			Author:  codeforces.PartyDTO{ParticipantType: "CONTESTANT"},
			// unjudged
		},
	}); err != nil {
		t.Fatalf("SaveSubmissions failed: %v", err)
	}

	if err := store.SaveRating("alice", []codeforces.RatingChangeDTO{
		{ContestID: 1, ContestName: "Round 1", Rank: 10, OldRating: 1000, NewRating: 1060},
	}); err != nil {
		t.Fatalf("SaveRating failed: %v", err)
	}

	return store
}

func testWindow() stats.Window {
	return stats.NewWindow(
		time.Unix(1740000000, 0),
		time.Unix(1742000000, 0),
		time.UTC,
	)
}

func TestBuildAll_FullPipeline(t *testing.T) {
	store := seedStore(t)
	members := []config.Member{{Name: "Alice", Handle: "alice"}}

	reports, err := BuildAll(context.Background(), store, members, testWindow())
	if err != nil {
		t.Fatalf("BuildAll failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}

	r := reports[0]
	if r.Name != "Alice" || r.Handle != "alice" {
		t.Errorf("identity = %s/%s", r.Name, r.Handle)
	}
	// The unjudged submission is dropped during normalization.
	if r.Stats.Attempted != 1 || r.Stats.Solved != 1 {
		t.Errorf("Attempted/Solved = %d/%d, want 1/1", r.Stats.Attempted, r.Stats.Solved)
	}
	if r.Stats.AvgDifficulty != 800 {
		t.Errorf("AvgDifficulty = %d, want 800", r.Stats.AvgDifficulty)
	}
	if len(r.Stats.ContestResults) != 1 || r.Stats.ContestResults[0].Timestamp != 1741000000 {
		t.Errorf("ContestResults = %+v", r.Stats.ContestResults)
	}
}

func TestBuildAll_StaleDirectorySkipsUserNotReport(t *testing.T) {
	store := seedStore(t)

	// bob's rating references a contest the directory doesn't know.
	if err := store.SaveRating("bob", []codeforces.RatingChangeDTO{{ContestID: 999}}); err != nil {
		t.Fatalf("SaveRating failed: %v", err)
	}

	members := []config.Member{
		{Name: "Alice", Handle: "alice"},
		{Name: "Bob", Handle: "bob"},
	}

	reports, err := BuildAll(context.Background(), store, members, testWindow())
	if err != nil {
		t.Fatalf("BuildAll failed: %v", err)
	}
	if len(reports) != 1 || reports[0].Handle != "alice" {
		t.Errorf("reports = %+v, want only alice", reports)
	}
}

func TestBuildAll_EmptyWindow(t *testing.T) {
	store := seedStore(t)
	members := []config.Member{{Name: "Alice", Handle: "alice"}}

	// A window before any activity yields an all-zero summary, not an error.
	window := stats.NewWindow(time.Unix(0, 0), time.Unix(1000, 0), time.UTC)
	reports, err := BuildAll(context.Background(), store, members, window)
	if err != nil {
		t.Fatalf("BuildAll failed: %v", err)
	}
	if reports[0].Stats.Attempted != 0 || reports[0].Stats.Solved != 0 {
		t.Errorf("stats = %+v, want all-zero", reports[0].Stats)
	}
}

func TestTopTags(t *testing.T) {
	freq := map[string]int{"dp": 5, "math": 5, "greedy": 7, "graphs": 1}

	got := TopTags(freq, 3)

	want := []TagCount{{"greedy", 7}, {"dp", 5}, {"math", 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopTags = %v, want %v", got, want)
	}
}

func TestSortedDays(t *testing.T) {
	daily := map[string]int{"2025-03-12": 1, "2025-03-10": 3, "2025-03-11": 2}

	got := SortedDays(daily)

	want := []DayCount{{"2025-03-10", 3}, {"2025-03-11", 2}, {"2025-03-12", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedDays = %v, want %v", got, want)
	}
}
