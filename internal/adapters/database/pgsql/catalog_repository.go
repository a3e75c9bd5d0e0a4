package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tempora-hq/timesheet-backend/internal/core/domain"
	portsrepo "github.com/tempora-hq/timesheet-backend/internal/core/ports/repositories"
)

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

var _ portsrepo.CustomerRepositoryFacade = (*CustomerRepository)(nil)

func (r *CustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
        INSERT INTO customers (customer_id, name, contact_person, email, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		customer.CustomerID,
		customer.Name,
		customer.ContactPerson,
		customer.Email,
		customer.IsActive,
		customer.CreatedAt,
		customer.CreatedBy,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
        UPDATE customers
        SET name = $2, contact_person = $3, email = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
        WHERE customer_id = $1;
    `
	_, err := r.db.Exec(ctx, query,
		customer.CustomerID,
		customer.Name,
		customer.ContactPerson,
		customer.Email,
		customer.IsActive,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	// No cascade by design: dependent projects and entries stay behind and
	// resolve to "Unknown" in reports.
	_, err := r.db.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
        SELECT customer_id, name, contact_person, email, is_active, created_at, created_by, last_updated_at, last_updated_by
        FROM customers
        WHERE customer_id = $1;
    `
	var customer domain.Customer
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&customer.CustomerID,
		&customer.Name,
		&customer.ContactPerson,
		&customer.Email,
		&customer.IsActive,
		&customer.CreatedAt,
		&customer.CreatedBy,
		&customer.LastUpdatedAt,
		&customer.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find customer by ID: %w", err)
	}
	return &customer, nil
}

func (r *CustomerRepository) FindCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `
        SELECT customer_id, name, contact_person, email, is_active, created_at, created_by, last_updated_at, last_updated_by
        FROM customers
        ORDER BY created_at;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.CustomerID,
			&customer.Name,
			&customer.ContactPerson,
			&customer.Email,
			&customer.IsActive,
			&customer.CreatedAt,
			&customer.CreatedBy,
			&customer.LastUpdatedAt,
			&customer.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

var _ portsrepo.ProjectRepositoryFacade = (*ProjectRepository)(nil)

const projectColumns = `project_id, customer_id, name, description, is_active, budget_days, budget_cost, created_at, created_by, last_updated_at, last_updated_by`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var project domain.Project
	err := row.Scan(
		&project.ProjectID,
		&project.CustomerID,
		&project.Name,
		&project.Description,
		&project.IsActive,
		&project.BudgetDays,
		&project.BudgetCost,
		&project.CreatedAt,
		&project.CreatedBy,
		&project.LastUpdatedAt,
		&project.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	query := `
        INSERT INTO projects (` + projectColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		project.ProjectID,
		project.CustomerID,
		project.Name,
		project.Description,
		project.IsActive,
		project.BudgetDays,
		project.BudgetCost,
		project.CreatedAt,
		project.CreatedBy,
		project.LastUpdatedAt,
		project.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	query := `
        UPDATE projects
        SET customer_id = $2, name = $3, description = $4, is_active = $5, budget_days = $6, budget_cost = $7, last_updated_at = $8, last_updated_by = $9
        WHERE project_id = $1;
    `
	_, err := r.db.Exec(ctx, query,
		project.ProjectID,
		project.CustomerID,
		project.Name,
		project.Description,
		project.IsActive,
		project.BudgetDays,
		project.BudgetCost,
		project.LastUpdatedAt,
		project.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM projects WHERE project_id = $1;`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`
	project, err := scanProject(r.db.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find project by ID: %w", err)
	}
	return project, nil
}

func (r *ProjectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) FindProjects(ctx context.Context) ([]domain.Project, error) {
	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at;`)
}

func (r *ProjectRepository) FindProjectsByCustomer(ctx context.Context, customerID string) ([]domain.Project, error) {
	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects WHERE customer_id = $1 ORDER BY created_at;`, customerID)
}
