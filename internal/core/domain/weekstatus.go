package domain

// WeekStatusValue is the approval state of one (user-visible) timesheet week.
type WeekStatusValue string

const (
	StatusDraft    WeekStatusValue = "draft"
	StatusPending  WeekStatusValue = "pending"
	StatusApproved WeekStatusValue = "approved"
	StatusRejected WeekStatusValue = "rejected"
	StatusReopened WeekStatusValue = "reopened"
)

// IsValid reports whether s is one of the five known statuses.
func (s WeekStatusValue) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected, StatusReopened:
		return true
	}
	return false
}

// Editable reports whether entries in a week with this status may be changed
// by a regular user. Reopened behaves identically to draft.
func (s WeekStatusValue) Editable() bool {
	return s == StatusDraft || s == StatusReopened
}

// WeekStatus is the lock record governing editability of every time entry whose
// date falls within [WeekStart, WeekStart+6]. Weeks with no record are
// implicitly draft. Records are never deleted, only transitioned.
type WeekStatus struct {
	WeekStart string          `json:"weekStart"` // ISO date of the week's Monday, primary key
	Status    WeekStatusValue `json:"status"`
	AuditFields
}

// allowedTransitions encodes which status changes each role may request.
// The week-status store itself upserts unconditionally; this table gates the
// transport layer, mirroring where the checks sat in the original application.
var allowedTransitions = map[Role]map[WeekStatusValue][]WeekStatusValue{
	RoleUser: {
		StatusDraft:    {StatusPending},
		StatusReopened: {StatusPending},
	},
	RoleAdmin: {
		StatusDraft:    {StatusPending, StatusApproved, StatusRejected},
		StatusPending:  {StatusApproved, StatusRejected},
		StatusApproved: {StatusReopened},
		StatusRejected: {StatusReopened},
		StatusReopened: {StatusApproved, StatusRejected},
	},
}

// CanTransition reports whether an actor with the given role may move a week
// from one status to another. Requesting the current status again is treated
// as a no-op and always allowed.
func CanTransition(from, to WeekStatusValue, role Role) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[role][from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses the role may move the week to,
// excluding the no-op. Useful for building action menus.
func AllowedTransitions(from WeekStatusValue, role Role) []WeekStatusValue {
	return allowedTransitions[role][from]
}
