package dataset

import (
	"context"
	"fmt"
	"strings"
)

// Statement is a named, parameterised SELECT from the query catalog.
type Statement struct {
	Name string
	SQL  string
	Args []any
}

// Key identifies the statement for result caching: the literal SQL text
// plus its bound arguments. Name does not take part.
func (s Statement) Key() string {
	if len(s.Args) == 0 {
		return s.SQL
	}
	var b strings.Builder
	b.WriteString(s.SQL)
	for i, arg := range s.Args {
		fmt.Fprintf(&b, "\x00$%d=%T:%v", i+1, arg, arg)
	}
	return b.String()
}

func (s Statement) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("statement name is required")
	}
	if strings.TrimSpace(s.SQL) == "" {
		return fmt.Errorf("statement %s has no sql", s.Name)
	}
	return nil
}

// Querier executes catalog statements against the warehouse.
type Querier interface {
	Query(ctx context.Context, stmt Statement) (Table, error)
}

// QuerierFunc adapts a function to Querier.
type QuerierFunc func(ctx context.Context, stmt Statement) (Table, error)

func (f QuerierFunc) Query(ctx context.Context, stmt Statement) (Table, error) {
	return f(ctx, stmt)
}
