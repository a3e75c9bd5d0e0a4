package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
)

func rate(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// SeedDemoData loads the sample catalog the application ships with: two
// users (one admin), three customers, four projects and two decided weeks.
func (s *Store) SeedDemoData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     "seed",
		LastUpdatedAt: now,
		LastUpdatedBy: "seed",
	}

	s.users = []domain.User{
		{UserID: "u-john", Name: "John Doe", Email: "john@example.com", Role: domain.RoleAdmin, DailyRate: rate(500), AuditFields: audit},
		{UserID: "u-jane", Name: "Jane Smith", Email: "jane@example.com", Role: domain.RoleUser, DailyRate: rate(400), AuditFields: audit},
	}

	s.customers = []domain.Customer{
		{CustomerID: "c-acme", Name: "Acme Corp", IsActive: true, AuditFields: audit},
		{CustomerID: "c-beta", Name: "Beta Co", IsActive: true, AuditFields: audit},
		{CustomerID: "c-gamma", Name: "Gamma Ltd", IsActive: false, AuditFields: audit},
	}

	s.projects = []domain.Project{
		{ProjectID: "p-alpha", CustomerID: "c-acme", Name: "Project Alpha", IsActive: true, AuditFields: audit},
		{ProjectID: "p-bravo", CustomerID: "c-acme", Name: "Project Bravo", IsActive: true, AuditFields: audit},
		{ProjectID: "p-charlie", CustomerID: "c-beta", Name: "Project Charlie", IsActive: true, AuditFields: audit},
		{ProjectID: "p-delta", CustomerID: "c-gamma", Name: "Project Delta", IsActive: false, AuditFields: audit},
	}

	for _, ws := range []domain.WeekStatus{
		{WeekStart: "2024-04-08", Status: domain.StatusApproved, AuditFields: audit},
		{WeekStart: "2024-04-15", Status: domain.StatusPending, AuditFields: audit},
	} {
		s.weekStatuses[ws.WeekStart] = ws
		s.weekOrder = append(s.weekOrder, ws.WeekStart)
	}
}
