package stats

import (
	"math"
	"time"
)

// difficultyStep is the granularity the average difficulty is reported in.
const difficultyStep = 50

// Aggregate folds a normalized (and typically window-filtered) submission list
// plus the user's contest participations into a single UserStats value. The
// fold is deterministic, total over any well-formed input including empty
// lists, and performs one pass in input order:
//
//   - every submission counts toward Attempted;
//   - only verdict OK submissions feed the remaining counters;
//   - AvgDifficulty averages the ratings of rated (rating > 0) solves, then
//     rounds half-up on the quotient to the nearest multiple of 50, so an
//     average of exactly 225 reports as 250;
//   - ContestResults keeps, in input order, exactly the participations whose
//     contest saw at least one accepted in-contest submission;
//   - daily buckets are calendar days of CreationTime in loc (UTC when nil).
func Aggregate(subs []Submission, parts []ContestParticipation, loc *time.Location) UserStats {
	if loc == nil {
		loc = time.UTC
	}

	solved := 0
	sumDifficulty := 0
	ratedSolved := 0
	solvedProblems := make([]Problem, 0, len(subs))
	tagFreq := make(map[string]int)
	dailySolves := make(map[string]int)
	touched := make(map[int]bool)

	for _, s := range subs {
		if s.Verdict != VerdictOK {
			continue
		}
		solved++
		sumDifficulty += s.Problem.Rating
		if s.Problem.Rating > 0 {
			ratedSolved++
		}
		solvedProblems = append(solvedProblems, s.Problem)
		dailySolves[dayKey(s.CreationTime, loc)]++
		for _, tag := range s.Problem.Tags {
			tagFreq[tag]++
		}
		if s.InContest {
			touched[s.ContestID] = true
		}
	}

	avgDifficulty := 0
	if ratedSolved > 0 {
		avg := float64(sumDifficulty) / float64(ratedSolved)
		avgDifficulty = int(math.Floor(avg/difficultyStep+0.5)) * difficultyStep
	}

	contestResults := make([]ContestParticipation, 0, len(parts))
	for _, p := range parts {
		if touched[p.ContestID] {
			contestResults = append(contestResults, p)
		}
	}

	return UserStats{
		Attempted:      len(subs),
		Solved:         solved,
		AvgDifficulty:  avgDifficulty,
		Problems:       solvedProblems,
		TagFrequency:   tagFreq,
		DailySolves:    dailySolves,
		ContestCount:   len(touched),
		ContestResults: contestResults,
	}
}

// dayKey buckets a unix timestamp into its calendar day in loc.
func dayKey(unix int64, loc *time.Location) string {
	return time.Unix(unix, 0).In(loc).Format("2006-01-02")
}
