// Package member holds the family roster.
package member

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hearthhq/hearth/internal/domain/shared"
)

var (
	ErrNameRequired    = errors.New("member name is required")
	ErrInvalidRole     = errors.New("unknown member role")
	ErrInvalidBirthday = errors.New("birthdate must be YYYY-MM-DD")
	ErrMemberNotFound  = errors.New("family member not found")
)

// DateLayout is the birthdate format
const DateLayout = "2006-01-02"

// Role is a member's place in the family
type Role string

const (
	RoleParent Role = "Parent"
	RoleChild  Role = "Child"
	RoleOther  Role = "Other"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	return r == RoleParent || r == RoleChild || r == RoleOther
}

// Member is one person in the household
type Member struct {
	ID        int
	Name      string
	Role      Role
	Birthdate string
	Image     string
	Initials  string
}

// Age returns the member's age in whole years at now, or -1 without a
// readable birthdate
func (m Member) Age(now time.Time) int {
	born, err := time.Parse(DateLayout, m.Birthdate)
	if err != nil {
		return -1
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age
}

// Initials derives the avatar letters: the first letters of the first two
// words, or the first two letters of a single word, upper-cased.
func Initials(name string) string {
	words := strings.Split(name, " ")
	if len(words) > 1 && words[0] != "" && words[1] != "" {
		return strings.ToUpper(firstRunes(words[0], 1) + firstRunes(words[1], 1))
	}
	return strings.ToUpper(firstRunes(strings.TrimSpace(name), 2))
}

func firstRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Roster is the member list aggregate
type Roster struct {
	members []Member
}

// NewRoster wraps existing members
func NewRoster(members ...Member) *Roster {
	r := &Roster{members: make([]Member, len(members))}
	copy(r.members, members)
	return r
}

// Add appends a member with the next id and derived initials. The name is
// trimmed and required; the role defaults to Child.
func (r *Roster) Add(m Member) (Member, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return Member{}, ErrNameRequired
	}
	if m.Role == "" {
		m.Role = RoleChild
	}
	if !m.Role.IsValid() {
		return Member{}, ErrInvalidRole
	}
	if m.Birthdate != "" {
		if _, err := time.Parse(DateLayout, m.Birthdate); err != nil {
			return Member{}, ErrInvalidBirthday
		}
	}

	ids := make([]int, len(r.members))
	for i, existing := range r.members {
		ids[i] = existing.ID
	}
	m.ID = shared.NextID(ids)
	m.Initials = Initials(m.Name)
	r.members = append(r.members, m)
	return m, nil
}

// Delete removes member id
func (r *Roster) Delete(id int) error {
	for i := range r.members {
		if r.members[i].ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return ErrMemberNotFound
}

// Get returns member id
func (r *Roster) Get(id int) (Member, bool) {
	for _, m := range r.members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// Members returns a copy of the roster
func (r *Roster) Members() []Member {
	out := make([]Member, len(r.members))
	copy(out, r.members)
	return out
}
