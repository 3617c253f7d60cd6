package stats

import (
	"errors"
	"fmt"

	"cf-insight/internal/codeforces"
)

// ErrContestNotFound signals that a contest id is absent from the cached
// contest directory. Callers should treat it as "directory is stale, refresh
// upstream", never substitute a default start time.
var ErrContestNotFound = errors.New("contest not found in directory")

// ContestIndex resolves contest ids to start times using a locally cached
// snapshot of the full contest directory. Read-only after construction.
type ContestIndex struct {
	starts map[int]int64
}

// NewContestIndex builds an index from a contest-list snapshot.
func NewContestIndex(contests []codeforces.ContestDTO) *ContestIndex {
	starts := make(map[int]int64, len(contests))
	for _, c := range contests {
		starts[c.ID] = c.StartTimeSeconds
	}
	return &ContestIndex{starts: starts}
}

// Resolve returns the start time (unix seconds) of the given contest, or a
// wrapped ErrContestNotFound if the directory has no entry for it.
func (idx *ContestIndex) Resolve(contestID int) (int64, error) {
	start, ok := idx.starts[contestID]
	if !ok {
		return 0, fmt.Errorf("contest %d: %w", contestID, ErrContestNotFound)
	}
	return start, nil
}

// Len returns the number of contests in the directory.
func (idx *ContestIndex) Len() int {
	return len(idx.starts)
}
