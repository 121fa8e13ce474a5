package volunteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectVolunteerPrefersSkillMatch(t *testing.T) {
	// V1 is busy so never enters the candidate list; V2 matches the skill,
	// V3 does not.
	picked := SelectVolunteer([]MatchCandidate{
		{ID: "v2", Name: "Dina", SkillSet: "Medical, First Aid"},
		{ID: "v3", Name: "Rudi", SkillSet: "Logistics"},
	}, "Medical")

	require.NotNil(t, picked)
	assert.Equal(t, "v2", picked.ID)
}

func TestSelectVolunteerFallsBackWithoutSkillMatch(t *testing.T) {
	picked := SelectVolunteer([]MatchCandidate{
		{ID: "v3", Name: "Rudi", SkillSet: "Logistics"},
	}, "Medical")

	require.NotNil(t, picked)
	assert.Equal(t, "v3", picked.ID)
}

func TestSelectVolunteerSkillMatchIsCaseInsensitiveSubstring(t *testing.T) {
	picked := SelectVolunteer([]MatchCandidate{
		{ID: "a", SkillSet: "heavy machinery, MEDICAL triage"},
		{ID: "b", SkillSet: "cooking"},
	}, "medical")

	require.NotNil(t, picked)
	assert.Equal(t, "a", picked.ID)
}

func TestSelectVolunteerPrefersFewestOpenAssignments(t *testing.T) {
	picked := SelectVolunteer([]MatchCandidate{
		{ID: "a", SkillSet: "Medical", OpenAssignments: 3},
		{ID: "b", SkillSet: "Medical", OpenAssignments: 1},
		{ID: "c", SkillSet: "Medical", OpenAssignments: 2},
	}, "Medical")

	require.NotNil(t, picked)
	assert.Equal(t, "b", picked.ID)
}

func TestSelectVolunteerTieBreaksOnLowestID(t *testing.T) {
	candidates := []MatchCandidate{
		{ID: "zz", OpenAssignments: 1},
		{ID: "aa", OpenAssignments: 1},
		{ID: "mm", OpenAssignments: 1},
	}

	first := SelectVolunteer(candidates, "")
	second := SelectVolunteer(candidates, "")
	require.NotNil(t, first)
	assert.Equal(t, "aa", first.ID)
	assert.Equal(t, first.ID, second.ID)
}

func TestSelectVolunteerEmptyRoster(t *testing.T) {
	assert.Nil(t, SelectVolunteer(nil, "Medical"))
	assert.Nil(t, SelectVolunteer([]MatchCandidate{}, ""))
}

func TestSelectVolunteerBlankFilterSkipsSkillRestriction(t *testing.T) {
	picked := SelectVolunteer([]MatchCandidate{
		{ID: "a", SkillSet: "Medical", OpenAssignments: 2},
		{ID: "b", SkillSet: "", OpenAssignments: 0},
	}, "   ")

	require.NotNil(t, picked)
	assert.Equal(t, "b", picked.ID)
}
