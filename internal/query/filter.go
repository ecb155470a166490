// Package query builds parameterized SQL predicates from validated filters and
// runs count + windowed fetch pagination against them.
package query

import (
	"strings"
)

// Kind is the constraint type of one Condition.
type Kind int

const (
	KindEqual Kind = iota
	KindRange
	KindFlag
	KindSearch
)

// Condition is one constraint on a column (or, for search, a set of columns).
// Column names always come from code, never from request input.
type Condition struct {
	Kind    Kind
	Column  string
	Columns []string
	Value   any
	Min     *float64
	Max     *float64
}

// Predicate is an immutable conjunction of conditions. The zero value matches every row.
type Predicate struct {
	conds []Condition
}

// Conditions returns a copy of the predicate's conditions.
func (p Predicate) Conditions() []Condition {
	out := make([]Condition, len(p.conds))
	copy(out, p.conds)
	return out
}

func (p Predicate) Len() int { return len(p.conds) }

// Where renders the predicate as a SQL boolean expression (without the WHERE
// keyword) plus its positional arguments.
func (p Predicate) Where() (string, []any) {
	where := []string{"1=1"}
	args := []any{}

	for _, c := range p.conds {
		switch c.Kind {
		case KindEqual, KindFlag:
			where = append(where, c.Column+" = ?")
			args = append(args, c.Value)
		case KindRange:
			if c.Min != nil {
				where = append(where, c.Column+" >= ?")
				args = append(args, *c.Min)
			}
			if c.Max != nil {
				where = append(where, c.Column+" <= ?")
				args = append(args, *c.Max)
			}
		case KindSearch:
			like := "%" + escapeLike(strings.ToLower(c.Value.(string))) + "%"
			ors := make([]string, 0, len(c.Columns))
			for _, col := range c.Columns {
				ors = append(ors, "LOWER("+col+") LIKE ?")
				args = append(args, like)
			}
			where = append(where, "("+strings.Join(ors, " OR ")+")")
		}
	}
	return strings.Join(where, " AND "), args
}

// Builder accumulates conditions. Nil or empty inputs add no constraint.
type Builder struct {
	conds []Condition
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Equal constrains column to exactly v.
func (b *Builder) Equal(column string, v *string) *Builder {
	if v != nil {
		b.conds = append(b.conds, Condition{Kind: KindEqual, Column: column, Value: *v})
	}
	return b
}

// Range constrains column to the inclusive interval [min, max]; a nil bound is open.
func (b *Builder) Range(column string, min, max *float64) *Builder {
	if min == nil && max == nil {
		return b
	}
	b.conds = append(b.conds, Condition{Kind: KindRange, Column: column, Min: min, Max: max})
	return b
}

// Flag constrains a boolean column when v is set.
func (b *Builder) Flag(column string, v *bool) *Builder {
	if v != nil {
		b.conds = append(b.conds, Condition{Kind: KindFlag, Column: column, Value: *v})
	}
	return b
}

// Search adds a case-insensitive substring match OR-ed across columns.
func (b *Builder) Search(term string, columns ...string) *Builder {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return b
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	b.conds = append(b.conds, Condition{Kind: KindSearch, Columns: cols, Value: term})
	return b
}

// Build returns a predicate detached from the builder.
func (b *Builder) Build() Predicate {
	conds := make([]Condition, len(b.conds))
	copy(conds, b.conds)
	return Predicate{conds: conds}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
