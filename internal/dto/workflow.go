package dto

import "github.com/tempora-hq/timesheet-backend/internal/core/domain"

// UpdateWeekStatusRequest asks for a week status transition.
type UpdateWeekStatusRequest struct {
	Status domain.WeekStatusValue `json:"status" binding:"required,oneof=draft pending approved rejected reopened"`
}

// WeekStatusResponse is the transport representation of a week status record.
type WeekStatusResponse struct {
	WeekStart string                 `json:"weekStart"`
	Status    domain.WeekStatusValue `json:"status"`
	// Transitions lists the statuses the acting user may move this week to.
	Transitions []domain.WeekStatusValue `json:"transitions,omitempty"`
	// Editable reports whether the acting user may mutate entries in this week.
	Editable bool `json:"editable"`
}
