package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"cf-insight/internal/codeforces"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store
}

func TestStore_MissingSnapshotIsEmpty(t *testing.T) {
	store := newTestStore(t)

	subs, err := store.LoadSubmissions("nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subs) != 0 {
		t.Errorf("got %d submissions, want 0", len(subs))
	}

	contests, err := store.LoadContests()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contests) != 0 {
		t.Errorf("got %d contests, want 0", len(contests))
	}
}

func TestStore_SubmissionsRoundtrip(t *testing.T) {
	store := newTestStore(t)

	in := []codeforces.SubmissionDTO{
		{
			ID:                  101,
			ContestID:           7,
			CreationTimeSeconds: 1700000000,
			Problem:             codeforces.ProblemDTO{ContestID: 7, Index: "A", Name: "Watermelon", Rating: 800, Tags: []string{"math"}},
			Author:              codeforces.PartyDTO{ParticipantType: "CONTESTANT"},
			ProgrammingLanguage: "GNU C++17",
			Verdict:             "OK",
		},
		{
			ID:                  102,
			ContestID:           7,
			CreationTimeSeconds: 1700000100,
			Problem:             codeforces.ProblemDTO{ContestID: 7, Index: "B", Name: "Unrated", Tags: []string{}},
			Author:              codeforces.PartyDTO{ParticipantType: "PRACTICE"},
			ProgrammingLanguage: "Go",
			// no verdict: still in the judging queue, must survive the roundtrip
		},
	}

	if err := store.SaveSubmissions("alice", in); err != nil {
		t.Fatalf("SaveSubmissions failed: %v", err)
	}

	out, err := store.LoadSubmissions("alice")
	if err != nil {
		t.Fatalf("LoadSubmissions failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d submissions, want 2", len(out))
	}
	if out[0].ID != 101 || out[0].Problem.Rating != 800 {
		t.Errorf("first submission corrupted: %+v", out[0])
	}
	if out[1].Verdict != "" {
		t.Errorf("unjudged submission gained a verdict: %q", out[1].Verdict)
	}
}

func TestStore_RatingRoundtrip(t *testing.T) {
	store := newTestStore(t)

	in := []codeforces.RatingChangeDTO{
		{ContestID: 1, ContestName: "Round 1", Rank: 50, OldRating: 1200, NewRating: 1260},
	}
	if err := store.SaveRating("alice", in); err != nil {
		t.Fatalf("SaveRating failed: %v", err)
	}

	out, err := store.LoadRating("alice")
	if err != nil {
		t.Fatalf("LoadRating failed: %v", err)
	}
	if len(out) != 1 || out[0].NewRating != 1260 {
		t.Errorf("rating snapshot corrupted: %+v", out)
	}
}

func TestStore_ContestsRoundtrip(t *testing.T) {
	store := newTestStore(t)

	in := []codeforces.ContestDTO{
		{ID: 1, Name: "Round 1", Phase: "FINISHED", StartTimeSeconds: 1600000000},
	}
	if err := store.SaveContests(in); err != nil {
		t.Fatalf("SaveContests failed: %v", err)
	}

	out, err := store.LoadContests()
	if err != nil {
		t.Fatalf("LoadContests failed: %v", err)
	}
	if len(out) != 1 || out[0].StartTimeSeconds != 1600000000 {
		t.Errorf("contest snapshot corrupted: %+v", out)
	}
}

func TestStore_SaveLeavesNoTempFile(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveContests([]codeforces.ContestDTO{{ID: 1}}); err != nil {
		t.Fatalf("SaveContests failed: %v", err)
	}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestStore_CorruptSnapshotIsAnError(t *testing.T) {
	store := newTestStore(t)

	path := filepath.Join(store.Dir(), "contests.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := store.LoadContests(); err == nil {
		t.Error("expected an error for a corrupt snapshot")
	}
}
