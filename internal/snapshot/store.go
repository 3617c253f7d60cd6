package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"cf-insight/internal/codeforces"
)

// Store persists raw API payloads as flat JSON files keyed by handle:
// <handle>_submissions.json, <handle>_rating.json and a shared contests.json.
// Files hold the wire schema verbatim so snapshots stay diffable against the
// API and survive domain-type changes.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the snapshot directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) submissionsPath(handle string) string {
	return filepath.Join(s.dir, handle+"_submissions.json")
}

func (s *Store) ratingPath(handle string) string {
	return filepath.Join(s.dir, handle+"_rating.json")
}

func (s *Store) contestsPath() string {
	return filepath.Join(s.dir, "contests.json")
}

// LoadSubmissions reads a handle's submission snapshot. A missing file is an
// empty snapshot, not an error.
func (s *Store) LoadSubmissions(handle string) ([]codeforces.SubmissionDTO, error) {
	var subs []codeforces.SubmissionDTO
	if err := s.load(s.submissionsPath(handle), &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// SaveSubmissions overwrites a handle's submission snapshot atomically.
func (s *Store) SaveSubmissions(handle string, subs []codeforces.SubmissionDTO) error {
	return s.save(s.submissionsPath(handle), subs)
}

// LoadRating reads a handle's rating-change snapshot.
func (s *Store) LoadRating(handle string) ([]codeforces.RatingChangeDTO, error) {
	var changes []codeforces.RatingChangeDTO
	if err := s.load(s.ratingPath(handle), &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

// SaveRating overwrites a handle's rating-change snapshot atomically.
func (s *Store) SaveRating(handle string, changes []codeforces.RatingChangeDTO) error {
	return s.save(s.ratingPath(handle), changes)
}

// LoadContests reads the contest directory snapshot.
func (s *Store) LoadContests() ([]codeforces.ContestDTO, error) {
	var contests []codeforces.ContestDTO
	if err := s.load(s.contestsPath(), &contests); err != nil {
		return nil, err
	}
	return contests, nil
}

// SaveContests overwrites the contest directory snapshot atomically.
func (s *Store) SaveContests(contests []codeforces.ContestDTO) error {
	return s.save(s.contestsPath(), contests)
}

func (s *Store) load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // no snapshot yet
		}
		return fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("corrupt snapshot %s: %w", path, err)
	}
	return nil
}

// save writes via a temp file and renames, so a crash never leaves a
// half-written snapshot behind.
func (s *Store) save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename snapshot: %w", err)
	}

	log.Debug().Str("path", path).Msg("Snapshot saved")
	return nil
}
