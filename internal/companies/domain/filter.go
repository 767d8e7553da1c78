package domain

import (
	"github.com/GoSim-25-26J-441/jobly-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres/sqlbuild"
)

// FilterKeys are the search parameters GET /companies accepts.
var FilterKeys = []string{"name", "minEmployees", "maxEmployees"}

// Filter is a validated company search. A nil bound is unbounded.
type Filter struct {
	Name         string
	MinEmployees *int
	MaxEmployees *int
}

// ByEmployees reports whether either employee bound was supplied; the
// employee count is only constrained in that case.
func (f Filter) ByEmployees() bool {
	return f.MinEmployees != nil || f.MaxEmployees != nil
}

// MinBound is the exclusive lower employee bound, 0 when not supplied.
func (f Filter) MinBound() int {
	if f.MinEmployees == nil {
		return 0
	}
	return *f.MinEmployees
}

// ParseFilter validates p against FilterKeys.
func ParseFilter(p sqlbuild.Params) (Filter, error) {
	if err := p.CheckKeys(FilterKeys...); err != nil {
		return Filter{}, err
	}

	minEmp, err := p.Int("minEmployees")
	if err != nil {
		return Filter{}, err
	}
	maxEmp, err := p.Int("maxEmployees")
	if err != nil {
		return Filter{}, err
	}
	if minEmp != nil && maxEmp != nil && *minEmp > *maxEmp {
		return Filter{}, apperr.InvalidRequest("minEmployees cannot be greater than maxEmployees")
	}

	return Filter{
		Name:         p.String("name"),
		MinEmployees: minEmp,
		MaxEmployees: maxEmp,
	}, nil
}
