package stats

// Problem identifies a single task on the platform. Identity is (ContestID, Index);
// a Rating of 0 means the problem has no published difficulty.
type Problem struct {
	ContestID int      `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Rating    int      `json:"rating"`
	Tags      []string `json:"tags"`
}

// Submission is a single judged attempt. InContest reflects the author's
// participation type at submission time and is never recomputed afterwards.
type Submission struct {
	ID           int64   `json:"id"`
	ContestID    int     `json:"contestId"`
	CreationTime int64   `json:"creationTime"` // unix seconds
	RelativeTime int64   `json:"relativeTime"`
	Problem      Problem `json:"problem"`
	Language     string  `json:"language"`
	Verdict      string  `json:"verdict"`
	InContest    bool    `json:"inContest"`
}

// VerdictOK is the accepted verdict; everything else is a rejected attempt.
const VerdictOK = "OK"

// ContestParticipation is one rated result for a user. Timestamp is the contest
// start time resolved from the contest directory.
type ContestParticipation struct {
	ContestID int    `json:"contestId"`
	Name      string `json:"name"`
	Rank      int    `json:"rank"`
	OldRating int    `json:"oldRating"`
	NewRating int    `json:"newRating"`
	Timestamp int64  `json:"timestamp"` // unix seconds, contest start
}

// RatingChange returns the rating delta this contest produced.
func (c ContestParticipation) RatingChange() int {
	return c.NewRating - c.OldRating
}

// UserStats is the aggregate summary for one user over one reporting window.
// All fields are derived in a single pass by Aggregate; the value is never
// mutated after construction.
//
// ContestCount counts distinct contests with at least one accepted in-contest
// submission. It may exceed len(ContestResults) when a touched contest has no
// rated result in the participation snapshot.
type UserStats struct {
	Attempted      int                    `json:"attempted"`
	Solved         int                    `json:"solved"`
	AvgDifficulty  int                    `json:"avgDifficulty"` // multiple of 50, 0 if no rated solves
	Problems       []Problem              `json:"problems"`      // solved only, submission order
	TagFrequency   map[string]int         `json:"tagFrequency"`
	DailySolves    map[string]int         `json:"dailySolves"` // key: calendar day (2006-01-02) in the reporting timezone
	ContestCount   int                    `json:"contestCount"`
	ContestResults []ContestParticipation `json:"contestResults"`
}
