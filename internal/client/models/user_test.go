package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUser_HasRole(t *testing.T) {
	u := &User{
		Roles: []RoleRef{
			{Role: Role{Title: "SUPPORT"}},
			{Role: Role{Title: RoleSuperAdmin}},
		},
	}
	require.True(t, u.HasRole(RoleSuperAdmin))
	require.False(t, u.HasRole("AUDITOR"))
}

func TestUser_HasRole_EmptyRoleSet(t *testing.T) {
	u := &User{}
	require.False(t, u.HasRole(RoleSuperAdmin))
}

func TestUser_UnmarshalNestedRoles(t *testing.T) {
	raw := `{"id":"u1","email":"a@b.c","name":"A","userRole":[{"role":{"title":"SUPER_ADMIN"}}]}`
	var u User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))
	require.Equal(t, "u1", u.ID)
	require.True(t, u.HasRole(RoleSuperAdmin))
}

func TestExperienceTier_Valid(t *testing.T) {
	for _, tier := range []ExperienceTier{TierBeginner, TierIntermediate, TierAdvanced} {
		require.True(t, tier.Valid())
	}
	require.False(t, ExperienceTier("EXPERT").Valid())
	require.False(t, ExperienceTier("").Valid())
}

func TestProgression_Clone_IsDeep(t *testing.T) {
	p := &Progression{
		UserID:         "u1",
		XP:             1500,
		Level:          5,
		ExperienceTier: TierIntermediate,
		LevelInfo:      &LevelInfo{Level: 5, Progress: 40},
	}

	c := p.Clone()
	c.XP = 9999
	c.LevelInfo.Progress = 99

	require.Equal(t, 1500, p.XP)
	require.Equal(t, 40, p.LevelInfo.Progress)
}

func TestProgression_Clone_Nil(t *testing.T) {
	var p *Progression
	require.Nil(t, p.Clone())
}
