package volunteer

import (
	"strings"
)

// MatchCandidate is an Available volunteer considered for an assignment.
// OpenAssignments counts rows in Assigned or In Progress status; the roster
// does not track this directly, it is derived per match.
type MatchCandidate struct {
	ID              string
	Name            string
	SkillSet        string
	OpenAssignments int64
}

// SelectVolunteer picks the volunteer for a task. Skill filtering is a
// case-insensitive substring match against the volunteer's skill set; when
// nobody matches the skill, any available volunteer qualifies. Ties resolve
// to the fewest open assignments, then the lowest ID, so repeated runs over
// the same roster are deterministic. Returns nil when the candidate list is
// empty: the caller still records the assignment, unstaffed.
func SelectVolunteer(candidates []MatchCandidate, skillFilter string) *MatchCandidate {
	if len(candidates) == 0 {
		return nil
	}

	pool := candidates
	if filter := strings.TrimSpace(skillFilter); filter != "" {
		var skilled []MatchCandidate
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c.SkillSet), strings.ToLower(filter)) {
				skilled = append(skilled, c)
			}
		}
		if len(skilled) > 0 {
			pool = skilled
		}
	}

	best := pool[0]
	for _, c := range pool[1:] {
		if c.OpenAssignments < best.OpenAssignments ||
			(c.OpenAssignments == best.OpenAssignments && c.ID < best.ID) {
			best = c
		}
	}
	return &best
}
