package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/companies/domain"
	jobrepo "github.com/GoSim-25-26J-441/jobly-backend/internal/jobs/repository"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres/sqlbuild"
)

const columns = `handle, name, description, num_employees, logo_url`

// nameConstraint is the UNIQUE constraint on companies.name in schema.sql.
const nameConstraint = "companies_name_key"

// uniqueViolation returns the constraint behind a 23505 error, or ok=false
// for any other error.
func uniqueViolation(err error) (constraint string, ok bool) {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == postgres.UniqueViolation {
		return pgErr.Constraint, true
	}
	return "", false
}

func scanCompany(s jobrepo.Scanner) (domain.Company, error) {
	var (
		c    domain.Company
		emps sql.NullInt64
		logo sql.NullString
	)
	if err := s.Scan(&c.Handle, &c.Name, &c.Description, &emps, &logo); err != nil {
		return domain.Company{}, err
	}
	if emps.Valid {
		v := int(emps.Int64)
		c.NumEmployees = &v
	}
	if logo.Valid {
		v := logo.String
		c.LogoURL = &v
	}
	return c, nil
}

// CompanyRepository provides persistence operations for companies
type CompanyRepository struct {
	db *sql.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create inserts a company. A taken handle is reported as a duplicate, both by
// the pre-check and by the unique constraint when two creates race. A taken
// name is a duplicate of its own.
func (r *CompanyRepository) Create(ctx context.Context, req domain.CreateCompanyRequest) (*domain.Company, error) {
	var existing string
	err := r.db.QueryRowContext(ctx, `SELECT handle FROM companies WHERE handle = $1`, req.Handle).Scan(&existing)
	switch {
	case err == nil:
		return nil, apperr.Duplicate("Duplicate company: %s", req.Handle)
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("check company: %w", err)
	}

	const q = `
INSERT INTO companies (handle, name, description, num_employees, logo_url)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + columns + `;
`
	c, err := scanCompany(r.db.QueryRowContext(ctx, q, req.Handle, req.Name, req.Description, req.NumEmployees, req.LogoURL))
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == nameConstraint {
				return nil, apperr.Duplicate("Duplicate company name: %s", req.Name)
			}
			return nil, apperr.Duplicate("Duplicate company: %s", req.Handle)
		}
		return nil, fmt.Errorf("create company: %w", err)
	}
	return &c, nil
}

// FindAll returns the companies matching f ordered by name.
func (r *CompanyRepository) FindAll(ctx context.Context, f domain.Filter) ([]domain.Company, error) {
	var p sqlbuild.Predicate
	p.Contains("name", f.Name)
	if f.ByEmployees() {
		p.Gt("num_employees", f.MinBound())
		if f.MaxEmployees != nil {
			p.Lt("num_employees", *f.MaxEmployees)
		}
	}

	where, args, err := p.Where()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM companies`+where+` ORDER BY name`, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Company, 0, 16)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the company with its jobs ordered by id.
func (r *CompanyRepository) Get(ctx context.Context, handle string) (*domain.CompanyWithJobs, error) {
	c, err := scanCompany(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM companies WHERE handle = $1`, handle))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("No company: %s", handle)
		}
		return nil, fmt.Errorf("get company: %w", err)
	}

	jobs, err := jobrepo.NewJobRepository(r.db).ListByCompany(ctx, handle)
	if err != nil {
		return nil, err
	}
	return &domain.CompanyWithJobs{Company: c, Jobs: jobs}, nil
}

// Update applies the supplied fields of req to the company.
func (r *CompanyRepository) Update(ctx context.Context, handle string, req domain.UpdateCompanyRequest) (*domain.Company, error) {
	set, err := sqlbuild.PartialUpdate(req.Fields(), domain.UpdateColumns)
	if err != nil {
		return nil, err
	}

	q := `UPDATE companies SET ` + set.SQL + ` WHERE handle = ` + set.NextPlaceholder() + ` RETURNING ` + columns
	c, err := scanCompany(r.db.QueryRowContext(ctx, q, append(set.Args, handle)...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("No company: %s", handle)
		}
		if _, ok := uniqueViolation(err); ok && req.Name != nil {
			return nil, apperr.Duplicate("Duplicate company name: %s", *req.Name)
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return &c, nil
}

// Remove deletes the company. Its jobs go with it.
func (r *CompanyRepository) Remove(ctx context.Context, handle string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE handle = $1`, handle)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperr.NotFound("No company: %s", handle)
	}
	return nil
}
