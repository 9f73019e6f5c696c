package constraint

import (
	"net/http"
	"sort"
	"sync"
)

type member struct {
	constraint Constraint
	position   int
}

// Set evaluates a group of constraints the way an action-selection pipeline
// does: every member must accept for the candidate to survive. Members run
// in ascending Order; ties fall back to registration order. Registration and
// evaluation are safe for concurrent use.
type Set struct {
	mu      sync.RWMutex
	members []member
}

// NewSet builds a Set from the given constraints, ignoring nil entries.
func NewSet(constraints ...Constraint) *Set {
	s := &Set{}
	for _, c := range constraints {
		s.Add(c)
	}
	return s
}

// Add registers a constraint. Nil constraints are ignored.
func (s *Set) Add(c Constraint) {
	if s == nil || c == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, member{constraint: c, position: len(s.members)})
}

// Len reports the number of registered constraints.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

// Accept reports whether every registered constraint accepts the request.
// An empty set accepts everything.
func (s *Set) Accept(r *http.Request) bool {
	if s == nil {
		return true
	}
	s.mu.RLock()
	members := append([]member(nil), s.members...)
	s.mu.RUnlock()

	sort.SliceStable(members, func(i, j int) bool {
		if members[i].constraint.Order() == members[j].constraint.Order() {
			return members[i].position < members[j].position
		}
		return members[i].constraint.Order() < members[j].constraint.Order()
	})

	for _, entry := range members {
		if !entry.constraint.Accept(r) {
			return false
		}
	}
	return true
}
