package domain

import "github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres/sqlbuild"

// FilterKeys are the search parameters GET /jobs accepts.
var FilterKeys = []string{"title", "minSalary", "equity"}

// Filter is a validated job search.
type Filter struct {
	Title     string
	MinSalary *int
	// HasEquity restricts results to jobs with nonzero equity.
	HasEquity bool
}

// ParseFilter validates p against FilterKeys and resolves defaults. The equity
// flag is only set by the literal string "true", which is what a query string
// carries.
func ParseFilter(p sqlbuild.Params) (Filter, error) {
	if err := p.CheckKeys(FilterKeys...); err != nil {
		return Filter{}, err
	}

	minSalary, err := p.Int("minSalary")
	if err != nil {
		return Filter{}, err
	}

	return Filter{
		Title:     p.String("title"),
		MinSalary: minSalary,
		HasEquity: p.Flag("equity"),
	}, nil
}
