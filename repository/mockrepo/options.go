package mockrepo

import (
	"context"

	"github.com/neuronlabs/sideload/mapping"
	"github.com/neuronlabs/sideload/repository"
)

// Option is a function that sets the repository options.
type Option func(r *Repository)

// WithGraph sets the repository into the graph mode. Relation getters
// without a queued callback are then served from the resource own relation
// methods, while the repository counts the distinct underlying fetches.
func WithGraph() Option {
	return func(r *Repository) {
		r.graph = true
	}
}

// CallOptions are the settings for the OnXXX queued callbacks.
type CallOptions struct {
	Permanent bool
	Count     int
}

// CallOption is function that changes call options.
type CallOption func(o *CallOptions)

// Permanent marks the callback as permanent - it is never consumed.
func Permanent() CallOption {
	return func(o *CallOptions) {
		o.Permanent = true
	}
}

// Count sets the number of executions of given callback.
func Count(count int) CallOption {
	return func(o *CallOptions) {
		o.Count = count
	}
}

// GetRelationFunc is the single relation getter callback.
type GetRelationFunc func(ctx context.Context, res mapping.Resource, field string) (mapping.Resource, error)

// SingleExecuter is an executor of the single relation getter callbacks.
type SingleExecuter struct {
	Options     *CallOptions
	ExecuteFunc GetRelationFunc
}

// GetRelationsFunc is the many relation getter callback.
type GetRelationsFunc func(ctx context.Context, res mapping.Resource, field string) ([]mapping.Resource, error)

// MultiExecuter is an executor of the many relation getter callbacks.
type MultiExecuter struct {
	Options     *CallOptions
	ExecuteFunc GetRelationsFunc
}

// LifecycleFunc is the dial and close callback.
type LifecycleFunc func(ctx context.Context) error

// LifecycleExecuter is an executor of the lifecycle callbacks.
type LifecycleExecuter struct {
	Options     *CallOptions
	ExecuteFunc LifecycleFunc
}

// HealthFunc is the health check callback.
type HealthFunc func(ctx context.Context) (*repository.HealthResponse, error)

// HealthExecuter is an executor of the health check callbacks.
type HealthExecuter struct {
	Options     *CallOptions
	ExecuteFunc HealthFunc
}
