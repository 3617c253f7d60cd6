package codeforces

import "encoding/json"

// envelope is the top-level container every API method returns.
// Status is "OK" or "FAILED"; Comment carries the failure reason.
type envelope struct {
	Status  string          `json:"status"`
	Comment string          `json:"comment,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
}

// ProblemDTO mirrors the wire schema of a problem object.
type ProblemDTO struct {
	ContestID int      `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Rating    int      `json:"rating,omitempty"` // absent for unrated problems
	Tags      []string `json:"tags"`
}

// PartyDTO is the author block of a submission. ParticipantType is one of
// CONTESTANT, PRACTICE, VIRTUAL, MANAGER, OUT_OF_COMPETITION.
type PartyDTO struct {
	ParticipantType string `json:"participantType"`
}

// SubmissionDTO mirrors the wire schema of one user.status entry.
// Verdict is absent while the submission is still in the judging queue.
type SubmissionDTO struct {
	ID                  int64      `json:"id"`
	ContestID           int        `json:"contestId"`
	CreationTimeSeconds int64      `json:"creationTimeSeconds"`
	RelativeTimeSeconds int64      `json:"relativeTimeSeconds"`
	Problem             ProblemDTO `json:"problem"`
	Author              PartyDTO   `json:"author"`
	ProgrammingLanguage string     `json:"programmingLanguage"`
	Verdict             string     `json:"verdict,omitempty"`
}

// RatingChangeDTO mirrors one user.rating entry.
type RatingChangeDTO struct {
	ContestID               int    `json:"contestId"`
	ContestName             string `json:"contestName"`
	Handle                  string `json:"handle"`
	Rank                    int    `json:"rank"`
	RatingUpdateTimeSeconds int64  `json:"ratingUpdateTimeSeconds"`
	OldRating               int    `json:"oldRating"`
	NewRating               int    `json:"newRating"`
}

// ContestDTO mirrors one contest.list entry.
type ContestDTO struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Phase            string `json:"phase"`
	StartTimeSeconds int64  `json:"startTimeSeconds"`
	DurationSeconds  int64  `json:"durationSeconds"`
}
