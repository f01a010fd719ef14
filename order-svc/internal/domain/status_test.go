package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatuses(t *testing.T) {
	tests := []struct {
		from Status
		want []Status
	}{
		{StatusPending, []Status{StatusPreparing, StatusCancelled}},
		{StatusPreparing, []Status{StatusPending, StatusReady, StatusCancelled}},
		{StatusReady, []Status{StatusPreparing, StatusCompleted, StatusCancelled}},
		{StatusCompleted, []Status{}},
		{StatusCancelled, []Status{}},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.from), func(t *testing.T) {
			assert.ElementsMatch(t, testCase.want, NextStatuses(testCase.from))
		})
	}
}

func TestCanTransition_RejectsJumps(t *testing.T) {
	assert.False(t, CanTransition(StatusPending, StatusCompleted))
	assert.False(t, CanTransition(StatusPending, StatusReady))
	assert.False(t, CanTransition(StatusCompleted, StatusPending))
	assert.False(t, CanTransition(StatusCancelled, StatusPreparing))
	assert.False(t, CanTransition(StatusReady, StatusReady))
	assert.True(t, CanTransition(StatusReady, StatusCompleted))
}

func TestRoleCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		from, to Status
		want     bool
	}{
		{"kitchen starts", RoleKitchen, StatusPending, StatusPreparing, true},
		{"bar starts", RoleBartender, StatusPending, StatusPreparing, true},
		{"wait cannot start", RoleWaitstaff, StatusPending, StatusPreparing, false},
		{"kitchen finishes", RoleKitchen, StatusPreparing, StatusReady, true},
		{"wait completes", RoleWaitstaff, StatusReady, StatusCompleted, true},
		{"bar completes", RoleBartender, StatusReady, StatusCompleted, true},
		{"wait cancels", RoleWaitstaff, StatusPreparing, StatusCancelled, true},
		{"bar cannot cancel", RoleBartender, StatusPending, StatusCancelled, false},
		{"kitchen goes back", RoleKitchen, StatusReady, StatusPreparing, true},
		{"wait cannot go back", RoleWaitstaff, StatusPreparing, StatusPending, false},
		{"owner anything legal", RoleOwner, StatusPreparing, StatusPending, true},
		{"owner not illegal", RoleOwner, StatusPending, StatusCompleted, false},
		{"unknown role", Role("GUEST"), StatusPending, StatusPreparing, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, RoleCanTransition(testCase.role, testCase.from, testCase.to))
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusReady.Terminal())
	assert.True(t, StatusReady.Active())
	assert.False(t, StatusCancelled.Active())
	assert.False(t, Status("DONE").Valid())
}
