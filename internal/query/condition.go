package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations generate a SQL fragment with Postgres positional
// placeholders ($1, $2, ...) starting at the given argument index,
// together with the argument values the fragment consumes.
type Condition interface {
	SQL(argIndex int) (string, []any)
}

type binaryCondition struct {
	field string
	op    string
	value any
}

func (c binaryCondition) SQL(argIndex int) (string, []any) {
	return fmt.Sprintf("%s %s $%d", c.field, c.op, argIndex), []any{c.value}
}

// Eq creates an equality condition.
// Example: Eq("store_id", 3) generates "store_id = $1".
func Eq(field string, value any) Condition {
	return binaryCondition{field: field, op: "=", value: value}
}

// Gte creates an inclusive lower-bound condition.
func Gte(field string, value any) Condition {
	return binaryCondition{field: field, op: ">=", value: value}
}

// Lte creates an inclusive upper-bound condition.
func Lte(field string, value any) Condition {
	return binaryCondition{field: field, op: "<=", value: value}
}

type iLikeCondition struct {
	field string
	term  string
}

func (c iLikeCondition) SQL(argIndex int) (string, []any) {
	return fmt.Sprintf("%s ILIKE $%d", c.field, argIndex), []any{"%" + c.term + "%"}
}

// ILike creates a case-insensitive substring match on field.
// The term is wrapped with % wildcards at render time.
func ILike(field, term string) Condition {
	return iLikeCondition{field: field, term: term}
}

type existsCondition struct {
	subquery string
	args     []any
}

func (c existsCondition) SQL(argIndex int) (string, []any) {
	sub := fmt.Sprintf(c.subquery, argIndex)
	return "EXISTS (" + sub + ")", c.args
}

// Exists creates an EXISTS condition over a correlated subquery.
// The subquery must contain exactly one %d verb marking where the
// positional placeholder number goes.
func Exists(subquery string, args ...any) Condition {
	return existsCondition{subquery: subquery, args: args}
}
