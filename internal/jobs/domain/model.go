package domain

import "github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres/sqlbuild"

// Job is a posting owned by a company.
type Job struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Salary        *int     `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
}

// CreateJobRequest is the body accepted by POST /jobs.
type CreateJobRequest struct {
	Title         string   `json:"title" binding:"required"`
	Salary        *int     `json:"salary" binding:"omitempty,min=0,max=2147483647"`
	Equity        *float64 `json:"equity" binding:"omitempty,min=0,max=1"`
	CompanyHandle string   `json:"company_handle" binding:"required,max=25"`
}

// UpdateJobRequest holds the mutable fields of a job. Nil fields are left
// untouched; id and company handle cannot be changed.
type UpdateJobRequest struct {
	Title  *string  `json:"title,omitempty" binding:"omitempty,min=1"`
	Salary *int     `json:"salary,omitempty" binding:"omitempty,min=0,max=2147483647"`
	Equity *float64 `json:"equity,omitempty" binding:"omitempty,min=0,max=1"`
}

// UpdateColumns is empty because every mutable job field is stored under its
// own name.
var UpdateColumns = sqlbuild.ColumnMap{}

// Fields lists the supplied updates in declaration order.
func (r UpdateJobRequest) Fields() sqlbuild.Fields {
	var f sqlbuild.Fields
	if r.Title != nil {
		f = append(f, sqlbuild.Field{Name: "title", Value: *r.Title})
	}
	if r.Salary != nil {
		f = append(f, sqlbuild.Field{Name: "salary", Value: *r.Salary})
	}
	if r.Equity != nil {
		f = append(f, sqlbuild.Field{Name: "equity", Value: *r.Equity})
	}
	return f
}
