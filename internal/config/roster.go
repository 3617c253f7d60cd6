package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Member maps a display name to a platform handle.
type Member struct {
	Name   string `toml:"name"`
	Handle string `toml:"handle"`
}

// Roster is the set of users a report covers.
type Roster struct {
	Members []Member `toml:"members"`
}

// LoadRoster reads the TOML roster file:
//
//	[[members]]
//	name = "Jane Doe"
//	handle = "jdoe"
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster %s: %w", path, err)
	}

	var roster Roster
	if err := toml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("invalid roster %s: %w", path, err)
	}

	for i, m := range roster.Members {
		if m.Handle == "" {
			return nil, fmt.Errorf("roster %s: member %d has no handle", path, i+1)
		}
		if m.Name == "" {
			roster.Members[i].Name = m.Handle
		}
	}
	return &roster, nil
}

// Handles returns the members' handles in roster order.
func (r *Roster) Handles() []string {
	handles := make([]string, 0, len(r.Members))
	for _, m := range r.Members {
		handles = append(handles, m.Handle)
	}
	return handles
}
