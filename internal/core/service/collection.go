package service

import (
	"strings"
	"sync"

	"github.com/adminhub/user-management/internal/core/domain"
)

// Collection is the in-memory user list owned exclusively by the
// UserService. It is replaced wholesale after every load; the only
// incremental mutation is Patch, the optimistic single-entity path.
//
// The original design ran on a single-threaded UI queue; an HTTP host is
// concurrent, so reads and writes are guarded by a RWMutex.
type Collection struct {
	mu     sync.RWMutex
	users  []domain.User
	stats  domain.Stats
	loaded bool
}

func NewCollection() *Collection {
	return &Collection{}
}

// Replace swaps the full record set and recomputes aggregate stats.
func (c *Collection) Replace(users []domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.users = make([]domain.User, len(users))
	copy(c.users, users)
	c.stats = computeStats(c.users)
	c.loaded = true
}

// Loaded reports whether an initial load has completed.
func (c *Collection) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Snapshot returns a copy of the current record set.
func (c *Collection) Snapshot() []domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.User, len(c.users))
	copy(out, c.users)
	return out
}

// Stats returns the aggregate counts computed at the last replace/patch.
func (c *Collection) Stats() domain.Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Names returns the normalized (lower-cased, trimmed) names of all records.
// It is the supplier handed to the duplicate-name checker, evaluated at
// validation time so the checker sees the latest snapshot.
func (c *Collection) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.users))
	for i, u := range c.users {
		names[i] = domain.NormalizeName(u.Name)
	}
	return names
}

// Filter returns the records matching text as a case-insensitive substring
// of the name or role. It is display-only: the store is not consulted and
// the underlying list is untouched. An empty query matches everything.
func (c *Collection) Filter(text string) []domain.User {
	query := strings.ToLower(strings.TrimSpace(text))
	if query == "" {
		return c.Snapshot()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.User
	for _, u := range c.users {
		if strings.Contains(strings.ToLower(u.Name), query) ||
			strings.Contains(strings.ToLower(string(u.Role)), query) {
			out = append(out, u)
		}
	}
	return out
}

// Patch updates a single entry in place and recomputes stats. This is the
// optimistic alternative to a full reload after a mutation; it reports
// false when the record is not present, in which case the caller should
// fall back to a reload.
func (c *Collection) Patch(user domain.User) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.users {
		if c.users[i].ID == user.ID {
			c.users[i] = user
			c.stats = computeStats(c.users)
			return true
		}
	}
	return false
}

func computeStats(users []domain.User) domain.Stats {
	s := domain.Stats{Total: len(users)}
	for _, u := range users {
		if u.IsActive {
			s.Active++
		}
	}
	s.Inactive = s.Total - s.Active
	return s
}
