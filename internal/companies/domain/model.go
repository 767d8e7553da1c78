package domain

import (
	jobdomain "github.com/GoSim-25-26J-441/jobly-backend/internal/jobs/domain"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres/sqlbuild"
)

// Company is an employer identified by its handle.
type Company struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// CompanyWithJobs is a company together with the jobs it owns.
type CompanyWithJobs struct {
	Company
	Jobs []jobdomain.Job `json:"jobs"`
}

// CreateCompanyRequest is the body accepted by POST /companies.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle" binding:"required,max=25,lowercase"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	NumEmployees *int    `json:"numEmployees" binding:"omitempty,min=0,max=2147483647"`
	LogoURL      *string `json:"logoUrl" binding:"omitempty,url"`
}

// UpdateCompanyRequest holds the mutable fields of a company. The handle is
// immutable.
type UpdateCompanyRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Description  *string `json:"description,omitempty"`
	NumEmployees *int    `json:"numEmployees,omitempty" binding:"omitempty,min=0,max=2147483647"`
	LogoURL      *string `json:"logoUrl,omitempty" binding:"omitempty,url"`
}

// UpdateColumns maps API field names to company columns. name and
// description are stored under their own names.
var UpdateColumns = sqlbuild.ColumnMap{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

// Fields lists the supplied updates in declaration order, keyed by API name.
func (r UpdateCompanyRequest) Fields() sqlbuild.Fields {
	var f sqlbuild.Fields
	if r.Name != nil {
		f = append(f, sqlbuild.Field{Name: "name", Value: *r.Name})
	}
	if r.Description != nil {
		f = append(f, sqlbuild.Field{Name: "description", Value: *r.Description})
	}
	if r.NumEmployees != nil {
		f = append(f, sqlbuild.Field{Name: "numEmployees", Value: *r.NumEmployees})
	}
	if r.LogoURL != nil {
		f = append(f, sqlbuild.Field{Name: "logoUrl", Value: *r.LogoURL})
	}
	return f
}
