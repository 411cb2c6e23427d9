package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusPending, false},
		{StatusAccepted, StatusCompleted, true},
		{StatusAccepted, StatusRejected, false},
		{StatusAccepted, StatusPending, false},
		{StatusRejected, StatusCompleted, false},
		{StatusRejected, StatusAccepted, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusAccepted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusAccepted, StatusRejected, StatusCompleted} {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}
	assert.False(t, Status("cancelled").Valid())
	assert.False(t, Status("").Valid())
}

func TestUserHasSkill(t *testing.T) {
	u := &User{
		SkillsOffered: []string{"React", "TypeScript"},
		SkillsWanted:  []string{"Photography"},
	}

	assert.True(t, u.HasSkill("React"))
	assert.True(t, u.HasSkill("Photography"))
	assert.False(t, u.HasSkill("react"), "skill match is exact, not case-folded")
	assert.False(t, u.HasSkill("Spanish"))
}

func TestUserIsAvailable(t *testing.T) {
	u := &User{Availability: []string{"Weekends", "Evenings"}}

	assert.True(t, u.IsAvailable("Weekends"))
	assert.False(t, u.IsAvailable("Flexible"))
	assert.False(t, u.IsAvailable("weekends"))
}
