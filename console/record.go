// Package console implements the client-side state model shared by the
// admin, staff and franchise dashboards: a local mirror of several
// remote collections, derived stat counters, optimistic mutations and
// a single destructive-action confirmation gate. It talks to the REST
// facade through a Gateway, normally the resty-backed HTTPGateway.
package console

import (
	"context"
	"fmt"
)

// Record is the transient in-memory copy of one resource row. Field
// names match the JSON the REST facade returns.
type Record map[string]interface{}

// ID returns the record's id as a string. The facade serializes ids as
// JSON numbers, so both numeric and string forms are accepted.
func (r Record) ID() string {
	switch v := r["id"].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Status returns the record's status field, or "" if absent.
func (r Record) Status() string {
	s, _ := r["status"].(string)
	return s
}

// clone returns a shallow copy, so optimistic replaces never alias the
// record a caller is still holding.
func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Gateway is the resource-client surface the console drives. Paths are
// REST facade routes like "/api/admin/testimonials".
type Gateway interface {
	List(ctx context.Context, path string) ([]Record, error)
	Insert(ctx context.Context, path string, fields Record) (Record, error)
	Update(ctx context.Context, path, id string, fields Record) (Record, error)
	Patch(ctx context.Context, path string, fields Record) (Record, error)
	Delete(ctx context.Context, path, id string) error
}

// ResourceSpec describes one collection a dashboard mirrors.
type ResourceSpec struct {
	Kind string // local name, e.g. "testimonials"
	Path string // REST facade route
}

// StatsFunc derives named counters from the collections. It must be a
// pure function of its input; the controller recomputes it after every
// collection change.
type StatsFunc func(collections map[string][]Record) map[string]int
