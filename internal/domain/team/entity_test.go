//go:build unit

package team_test

import (
	"strings"
	"testing"
	"time"

	"field-booking/internal/domain/team"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	leaderID := uuid.New()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("creator leads the team", func(t *testing.T) {
		tm, leader, err := team.New(leaderID, "  Friday Five  ", " casual ", now)
		require.NoError(t, err)

		assert.Equal(t, "Friday Five", tm.Name())
		assert.Equal(t, "casual", tm.Description())
		assert.Equal(t, leaderID, tm.LeaderID())
		assert.Equal(t, team.Member{TeamID: tm.ID(), UserID: leaderID, Role: team.MemberRoleLeader, JoinedAt: now}, leader)
	})

	t.Run("name is required", func(t *testing.T) {
		_, _, err := team.New(leaderID, "   ", "", now)
		require.ErrorIs(t, err, team.ErrInvalidTeam)
	})

	t.Run("name is bounded", func(t *testing.T) {
		_, _, err := team.New(leaderID, strings.Repeat("a", 101), "", now)
		require.ErrorIs(t, err, team.ErrInvalidTeam)
	})
}

func TestTeam_Revise(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name     string
		newName  *string
		newDesc  *string
		errIs    error
		wantName string
		wantDesc string
	}{
		{name: "rename", newName: strPtr(" Night Owls "), wantName: "Night Owls", wantDesc: "casual"},
		{name: "describe", newDesc: strPtr(""), wantName: "Friday Five", wantDesc: ""},
		{name: "nothing given", wantName: "Friday Five", wantDesc: "casual"},
		{
			name:     "blank name changes nothing",
			newName:  strPtr(" "),
			newDesc:  strPtr("ignored"),
			errIs:    team.ErrInvalidTeam,
			wantName: "Friday Five",
			wantDesc: "casual",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := team.Reconstruct(uuid.New(), "Friday Five", "casual", uuid.New(), time.Now())

			err := tm.Revise(tt.newName, tt.newDesc)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantName, tm.Name())
			assert.Equal(t, tt.wantDesc, tm.Description())
		})
	}
}

func TestTeam_CanRemove(t *testing.T) {
	leaderID := uuid.New()
	tm := team.Reconstruct(uuid.New(), "Friday Five", "", leaderID, time.Now())

	require.ErrorIs(t, tm.CanRemove(leaderID), team.ErrCannotRemoveLeader)
	require.NoError(t, tm.CanRemove(uuid.New()))
}
