package stats

import "cf-insight/internal/codeforces"

// participantContestant marks a submission made as an official contest
// participant. Virtual, practice and out-of-competition authors do not count.
const participantContestant = "CONTESTANT"

// NormalizeSubmission converts one raw wire record into a domain Submission.
// Returns ok=false for records the platform has not finished judging yet
// (no verdict); those are an expected transient state, not an error.
func NormalizeSubmission(raw codeforces.SubmissionDTO) (Submission, bool) {
	if raw.Verdict == "" {
		return Submission{}, false
	}

	return Submission{
		ID:           raw.ID,
		ContestID:    raw.ContestID,
		CreationTime: raw.CreationTimeSeconds,
		RelativeTime: raw.RelativeTimeSeconds,
		Problem: Problem{
			ContestID: raw.Problem.ContestID,
			Index:     raw.Problem.Index,
			Name:      raw.Problem.Name,
			Rating:    raw.Problem.Rating, // zero value when the problem is unrated
			Tags:      raw.Problem.Tags,
		},
		Language:  raw.ProgrammingLanguage,
		Verdict:   raw.Verdict,
		InContest: raw.Author.ParticipantType == participantContestant,
	}, true
}

// NormalizeSubmissions maps a raw snapshot to domain entities, dropping
// unjudged records and preserving input order.
func NormalizeSubmissions(raw []codeforces.SubmissionDTO) []Submission {
	result := make([]Submission, 0, len(raw))
	for _, r := range raw {
		if s, ok := NormalizeSubmission(r); ok {
			result = append(result, s)
		}
	}
	return result
}

// NormalizeParticipations converts raw rating changes into domain entities,
// resolving each contest's start time through the directory. A contest id
// missing from the directory is a hard error: defaulting the timestamp would
// silently corrupt window filtering and trajectory ordering.
func NormalizeParticipations(raw []codeforces.RatingChangeDTO, index *ContestIndex) ([]ContestParticipation, error) {
	result := make([]ContestParticipation, 0, len(raw))
	for _, r := range raw {
		start, err := index.Resolve(r.ContestID)
		if err != nil {
			return nil, err
		}
		result = append(result, ContestParticipation{
			ContestID: r.ContestID,
			Name:      r.ContestName,
			Rank:      r.Rank,
			OldRating: r.OldRating,
			NewRating: r.NewRating,
			Timestamp: start,
		})
	}
	return result, nil
}
