package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/jobs/domain"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres/sqlbuild"
)

// Columns is the select list every job query returns, in ScanJob order.
const Columns = `id, title, salary, equity, company_handle`

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanJob reads one row selected with Columns.
func ScanJob(s Scanner) (domain.Job, error) {
	var (
		j      domain.Job
		salary sql.NullInt64
		equity sql.NullFloat64
	)
	if err := s.Scan(&j.ID, &j.Title, &salary, &equity, &j.CompanyHandle); err != nil {
		return domain.Job{}, err
	}
	if salary.Valid {
		v := int(salary.Int64)
		j.Salary = &v
	}
	if equity.Valid {
		v := equity.Float64
		j.Equity = &v
	}
	return j, nil
}

// JobRepository provides persistence operations for jobs
type JobRepository struct {
	db *sql.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a job. The company handle must name an existing company.
func (r *JobRepository) Create(ctx context.Context, req domain.CreateJobRequest) (*domain.Job, error) {
	const q = `
INSERT INTO jobs (title, salary, equity, company_handle)
VALUES ($1, $2, $3, $4)
RETURNING ` + Columns + `;
`
	j, err := ScanJob(r.db.QueryRowContext(ctx, q, req.Title, req.Salary, req.Equity, req.CompanyHandle))
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == postgres.ForeignKeyViolation {
			return nil, apperr.InvalidRequest("No company: %s", req.CompanyHandle)
		}
		return nil, fmt.Errorf("create job: %w", err)
	}
	return &j, nil
}

// FindAll returns the jobs matching f ordered by title.
func (r *JobRepository) FindAll(ctx context.Context, f domain.Filter) ([]domain.Job, error) {
	var p sqlbuild.Predicate
	p.Contains("title", f.Title)
	if f.MinSalary != nil {
		p.Gte("salary", *f.MinSalary)
	}
	if f.HasEquity {
		p.Gt("equity", 0)
	}

	where, args, err := p.Where()
	if err != nil {
		return nil, err
	}

	q := `SELECT ` + Columns + ` FROM jobs` + where + ` ORDER BY title, id`
	return r.list(ctx, q, args...)
}

// ListByCompany returns the jobs owned by handle ordered by id.
func (r *JobRepository) ListByCompany(ctx context.Context, handle string) ([]domain.Job, error) {
	const q = `SELECT ` + Columns + ` FROM jobs WHERE company_handle = $1 ORDER BY id`
	return r.list(ctx, q, handle)
}

// Get returns the job with the given id.
func (r *JobRepository) Get(ctx context.Context, id int) (*domain.Job, error) {
	const q = `SELECT ` + Columns + ` FROM jobs WHERE id = $1`
	j, err := ScanJob(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("No job: %d", id)
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &j, nil
}

// Update applies the supplied fields of req to the job.
func (r *JobRepository) Update(ctx context.Context, id int, req domain.UpdateJobRequest) (*domain.Job, error) {
	set, err := sqlbuild.PartialUpdate(req.Fields(), domain.UpdateColumns)
	if err != nil {
		return nil, err
	}

	q := `UPDATE jobs SET ` + set.SQL + ` WHERE id = ` + set.NextPlaceholder() + ` RETURNING ` + Columns
	j, err := ScanJob(r.db.QueryRowContext(ctx, q, append(set.Args, id)...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("No job: %d", id)
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return &j, nil
}

// Remove deletes the job.
func (r *JobRepository) Remove(ctx context.Context, id int) error {
	const q = `DELETE FROM jobs WHERE id = $1`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperr.NotFound("No job: %d", id)
	}
	return nil
}

func (r *JobRepository) list(ctx context.Context, q string, args ...any) ([]domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Job, 0, 16)
	for rows.Next() {
		j, err := ScanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
