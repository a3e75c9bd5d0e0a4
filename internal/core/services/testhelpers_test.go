package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tempora-hq/timesheet-backend/internal/adapters/database/memory"
	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portssvc "github.com/tempora-hq/timesheet-backend/internal/core/ports/services"
	"github.com/tempora-hq/timesheet-backend/internal/core/services"
	"github.com/tempora-hq/timesheet-backend/internal/platform/config"
)

// testEnv wires the full service container over a fresh memory store with a
// small fixed catalog: two users, two customers, three projects.
type testEnv struct {
	svc    *portssvc.ServiceContainer
	admin  domain.User
	member domain.User
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func day(v string) time.Time {
	d, err := domain.ParseDate(v)
	must(err)
	return d
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

func newTestEnv() *testEnv {
	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "timesheet-backend-test",
	}

	env := &testEnv{
		svc: services.NewServiceContainer(cfg, repos),
		admin: domain.User{
			UserID:    "u-admin",
			Name:      "Ada Admin",
			Email:     "ada@example.com",
			Role:      domain.RoleAdmin,
			DailyRate: decPtr("500"),
		},
		member: domain.User{
			UserID:    "u-member",
			Name:      "Mel Member",
			Email:     "mel@example.com",
			Role:      domain.RoleUser,
			DailyRate: decPtr("400"),
		},
	}

	ctx := context.Background()
	must(repos.UserRepo.SaveUser(ctx, env.admin))
	must(repos.UserRepo.SaveUser(ctx, env.member))

	must(repos.CustomerRepo.SaveCustomer(ctx, domain.Customer{
		CustomerID: "c-acme", Name: "Acme Corp", IsActive: true,
	}))
	must(repos.CustomerRepo.SaveCustomer(ctx, domain.Customer{
		CustomerID: "c-beta", Name: "Beta Ltd", IsActive: true,
	}))

	must(repos.ProjectRepo.SaveProject(ctx, domain.Project{
		ProjectID: "p-alpha", CustomerID: "c-acme", Name: "Alpha", IsActive: true,
		BudgetDays: decPtr("10"), BudgetCost: decPtr("40000"),
	}))
	must(repos.ProjectRepo.SaveProject(ctx, domain.Project{
		ProjectID: "p-bravo", CustomerID: "c-acme", Name: "Bravo", IsActive: true,
	}))
	must(repos.ProjectRepo.SaveProject(ctx, domain.Project{
		ProjectID: "p-charlie", CustomerID: "c-beta", Name: "Charlie", IsActive: true,
	}))

	return env
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
