package stats

import (
	"errors"
	"testing"

	"cf-insight/internal/codeforces"
)

func rawSub(verdict, participantType string) codeforces.SubmissionDTO {
	return codeforces.SubmissionDTO{
		ID:                  42,
		ContestID:           7,
		CreationTimeSeconds: 1700000000,
		RelativeTimeSeconds: 3600,
		Problem: codeforces.ProblemDTO{
			ContestID: 7,
			Index:     "B",
			Name:      "Two Buttons",
			Rating:    1400,
			Tags:      []string{"dfs and similar", "graphs"},
		},
		Author:              codeforces.PartyDTO{ParticipantType: participantType},
		ProgrammingLanguage: "GNU C++17",
		Verdict:             verdict,
	}
}

func TestNormalizeSubmission_DropsUnjudged(t *testing.T) {
	if _, ok := NormalizeSubmission(rawSub("", "CONTESTANT")); ok {
		t.Error("record without verdict should be dropped")
	}
}

func TestNormalizeSubmission_ParticipantTypeMapping(t *testing.T) {
	tests := []struct {
		participantType string
		wantInContest   bool
	}{
		{"CONTESTANT", true},
		{"PRACTICE", false},
		{"VIRTUAL", false},
		{"OUT_OF_COMPETITION", false},
		{"MANAGER", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.participantType, func(t *testing.T) {
			s, ok := NormalizeSubmission(rawSub("OK", tt.participantType))
			if !ok {
				t.Fatal("judged record should not be dropped")
			}
			if s.InContest != tt.wantInContest {
				t.Errorf("InContest = %v, want %v", s.InContest, tt.wantInContest)
			}
		})
	}
}

func TestNormalizeSubmission_CopiesFields(t *testing.T) {
	s, ok := NormalizeSubmission(rawSub("WRONG_ANSWER", "PRACTICE"))
	if !ok {
		t.Fatal("judged record should not be dropped")
	}

	if s.ID != 42 || s.ContestID != 7 || s.CreationTime != 1700000000 || s.RelativeTime != 3600 {
		t.Errorf("identity fields not copied: %+v", s)
	}
	if s.Language != "GNU C++17" || s.Verdict != "WRONG_ANSWER" {
		t.Errorf("language/verdict not copied: %+v", s)
	}
	if s.Problem.Index != "B" || s.Problem.Name != "Two Buttons" || s.Problem.Rating != 1400 {
		t.Errorf("problem fields not copied: %+v", s.Problem)
	}
	if len(s.Problem.Tags) != 2 {
		t.Errorf("tags not copied: %v", s.Problem.Tags)
	}
}

func TestNormalizeSubmission_MissingRatingDefaultsToZero(t *testing.T) {
	raw := rawSub("OK", "PRACTICE")
	raw.Problem.Rating = 0 // unrated problems omit the field on the wire

	s, _ := NormalizeSubmission(raw)
	if s.Problem.Rating != 0 {
		t.Errorf("Rating = %d, want 0", s.Problem.Rating)
	}
}

func TestNormalizeSubmissions_OrderAndCount(t *testing.T) {
	raw := []codeforces.SubmissionDTO{
		rawSub("OK", "CONTESTANT"),
		rawSub("", "CONTESTANT"), // in judging queue, dropped
		rawSub("WRONG_ANSWER", "PRACTICE"),
	}

	got := NormalizeSubmissions(raw)

	if len(got) != 2 {
		t.Fatalf("got %d submissions, want 2", len(got))
	}
	if got[0].Verdict != "OK" || got[1].Verdict != "WRONG_ANSWER" {
		t.Errorf("order not preserved: %v, %v", got[0].Verdict, got[1].Verdict)
	}
}

func TestNormalizeParticipations_ResolvesTimestamps(t *testing.T) {
	index := NewContestIndex([]codeforces.ContestDTO{
		{ID: 7, Name: "Round 7", StartTimeSeconds: 1690000000},
	})
	raw := []codeforces.RatingChangeDTO{
		{ContestID: 7, ContestName: "Round 7", Rank: 12, OldRating: 1400, NewRating: 1455},
	}

	got, err := NormalizeParticipations(raw, index)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d participations, want 1", len(got))
	}
	p := got[0]
	if p.Timestamp != 1690000000 {
		t.Errorf("Timestamp = %d, want 1690000000", p.Timestamp)
	}
	if p.Rank != 12 || p.OldRating != 1400 || p.NewRating != 1455 {
		t.Errorf("fields not copied: %+v", p)
	}
	if p.RatingChange() != 55 {
		t.Errorf("RatingChange() = %d, want 55", p.RatingChange())
	}
}

func TestNormalizeParticipations_UnknownContestIsHardError(t *testing.T) {
	index := NewContestIndex(nil)
	raw := []codeforces.RatingChangeDTO{{ContestID: 99}}

	_, err := NormalizeParticipations(raw, index)
	if !errors.Is(err, ErrContestNotFound) {
		t.Errorf("err = %v, want ErrContestNotFound", err)
	}
}
