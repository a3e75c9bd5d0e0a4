package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
)

func TestWeekStatusValue_Editable(t *testing.T) {
	tests := []struct {
		status domain.WeekStatusValue
		want   bool
	}{
		{domain.StatusDraft, true},
		{domain.StatusReopened, true},
		{domain.StatusPending, false},
		{domain.StatusApproved, false},
		{domain.StatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Editable())
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from domain.WeekStatusValue
		to   domain.WeekStatusValue
		role domain.Role
		want bool
	}{
		{"user submits draft", domain.StatusDraft, domain.StatusPending, domain.RoleUser, true},
		{"user resubmits reopened week", domain.StatusReopened, domain.StatusPending, domain.RoleUser, true},
		{"user cannot approve", domain.StatusPending, domain.StatusApproved, domain.RoleUser, false},
		{"user cannot reject", domain.StatusPending, domain.StatusRejected, domain.RoleUser, false},
		{"user cannot reopen approved week", domain.StatusApproved, domain.StatusReopened, domain.RoleUser, false},
		{"user cannot act on pending", domain.StatusPending, domain.StatusDraft, domain.RoleUser, false},
		{"admin approves pending", domain.StatusPending, domain.StatusApproved, domain.RoleAdmin, true},
		{"admin rejects pending", domain.StatusPending, domain.StatusRejected, domain.RoleAdmin, true},
		{"admin approves straight from draft", domain.StatusDraft, domain.StatusApproved, domain.RoleAdmin, true},
		{"admin reopens approved week", domain.StatusApproved, domain.StatusReopened, domain.RoleAdmin, true},
		{"admin reopens rejected week", domain.StatusRejected, domain.StatusReopened, domain.RoleAdmin, true},
		{"admin decides reopened week", domain.StatusReopened, domain.StatusApproved, domain.RoleAdmin, true},
		{"admin cannot move approved back to draft", domain.StatusApproved, domain.StatusDraft, domain.RoleAdmin, false},
		{"same status is a no-op for users", domain.StatusApproved, domain.StatusApproved, domain.RoleUser, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanTransition(tt.from, tt.to, tt.role))
		})
	}
}

func TestUser_CanManageTimesheets(t *testing.T) {
	admin := domain.User{Role: domain.RoleAdmin}
	regular := domain.User{Role: domain.RoleUser}

	assert.True(t, admin.CanManageTimesheets())
	assert.False(t, regular.CanManageTimesheets())
}
