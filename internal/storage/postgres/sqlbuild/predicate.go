// Package sqlbuild renders the parameterized SQL fragments used by the entity
// repositories: WHERE predicates for filtered searches and SET clauses for
// partial updates. Everything here is a pure function of its input; nothing is
// executed against the store.
package sqlbuild

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

var allowedOperators = map[string]bool{
	"=": true, "<>": true, ">": true, "<": true, ">=": true, "<=": true, "ILIKE": true,
}

// Placeholder returns the positional parameter for the given 1-based index.
func Placeholder(index int) string {
	return fmt.Sprintf("$%d", index)
}

// Cond is a single comparison of a column against a bound value.
type Cond struct {
	Column string
	Op     string
	Value  any
}

// Predicate accumulates conditions joined with AND. The zero value matches
// every row.
type Predicate struct {
	conds []Cond
	errs  []error
}

// Add appends column <op> value. Unknown operators are reported by Build.
func (p *Predicate) Add(column, op string, value any) *Predicate {
	if !allowedOperators[op] {
		p.errs = append(p.errs, fmt.Errorf("sqlbuild: operator %q not allowed", op))
		return p
	}
	p.conds = append(p.conds, Cond{Column: column, Op: op, Value: value})
	return p
}

// Contains matches rows whose column contains substr, case-insensitively.
// LIKE wildcards in substr are escaped so it matches literally.
func (p *Predicate) Contains(column, substr string) *Predicate {
	return p.Add(column, "ILIKE", "%"+escapeLike(substr)+"%")
}

func (p *Predicate) Gt(column string, value any) *Predicate  { return p.Add(column, ">", value) }
func (p *Predicate) Gte(column string, value any) *Predicate { return p.Add(column, ">=", value) }
func (p *Predicate) Lt(column string, value any) *Predicate  { return p.Add(column, "<", value) }

// Build renders the predicate without the WHERE keyword, numbering
// placeholders from 1, and returns the bound values in the same order.
func (p *Predicate) Build() (string, []any, error) {
	if p == nil {
		return "", nil, nil
	}
	if len(p.errs) > 0 {
		return "", nil, p.errs[0]
	}

	parts := make([]string, 0, len(p.conds))
	args := make([]any, 0, len(p.conds))
	for i, c := range p.conds {
		parts = append(parts, fmt.Sprintf("%s %s %s", pq.QuoteIdentifier(c.Column), c.Op, Placeholder(i+1)))
		args = append(args, c.Value)
	}
	return strings.Join(parts, " AND "), args, nil
}

// Where renders " WHERE <predicate>", or "" if the predicate is unconstrained.
func (p *Predicate) Where() (string, []any, error) {
	cond, args, err := p.Build()
	if err != nil || cond == "" {
		return "", args, err
	}
	return " WHERE " + cond, args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
