package mockrepo

import (
	"context"
	"fmt"

	"github.com/neuronlabs/sideload/log"
	"github.com/neuronlabs/sideload/mapping"
	"github.com/neuronlabs/sideload/repository"
)

// Compile time checks for the repository interface implementations.
var (
	_ repository.Repository    = &Repository{}
	_ repository.Dialer        = &Repository{}
	_ repository.Closer        = &Repository{}
	_ repository.HealthChecker = &Repository{}
)

// Repository is a mock repository implementation. The relation getters
// execute queued one-shot callbacks. In the graph mode the getters without
// a queued callback serve the relations from the resource own relation
// methods and the repository keeps the ledger of the distinct underlying
// fetches - the instrument for the query count tests.
type Repository struct {
	SingleGetters  []*SingleExecuter
	MultiGetters   []*MultiExecuter
	Dialers        []*LifecycleExecuter
	Closers        []*LifecycleExecuter
	HealthCheckers []*HealthExecuter

	// GetRelationCalls and GetRelationsCalls count the relation accessor invocations.
	GetRelationCalls  int
	GetRelationsCalls int
	// FetchCount counts the distinct resources materialized in the graph
	// mode. A resource reached for the second time is served from the
	// already materialized data and doesn't increase the counter.
	FetchCount int
	// DialCalls, CloseCalls and HealthCheckCalls count the lifecycle invocations.
	DialCalls        int
	CloseCalls       int
	HealthCheckCalls int

	graph   bool
	fetched map[fetchKey]struct{}
}

// New creates new mock repository with provided options.
func New(options ...Option) *Repository {
	r := &Repository{}
	for _, option := range options {
		option(r)
	}
	return r
}

// OnGetRelation adds the single relation getter callback.
func (r *Repository) OnGetRelation(getFunc GetRelationFunc, options ...CallOption) {
	o := &CallOptions{}
	for _, option := range options {
		option(o)
	}
	r.SingleGetters = append(r.SingleGetters, &SingleExecuter{Options: o, ExecuteFunc: getFunc})
}

// GetRelation implements repository.Repository interface.
func (r *Repository) GetRelation(ctx context.Context, res mapping.Resource, field string) (mapping.Resource, error) {
	r.GetRelationCalls++
	if len(r.SingleGetters) == 0 {
		if r.graph {
			return r.graphRelation(ctx, res, field)
		}
		log.Panicf("no single relation getters found for the field: '%s'", field)
	}
	getter := r.SingleGetters[0]
	if getter.Options.Count > 0 {
		getter.Options.Count--
	}
	if getter.Options.Count == 0 && !getter.Options.Permanent {
		r.SingleGetters = r.SingleGetters[1:]
	}
	return getter.ExecuteFunc(ctx, res, field)
}

// OnGetRelations adds the many relation getter callback.
func (r *Repository) OnGetRelations(getFunc GetRelationsFunc, options ...CallOption) {
	o := &CallOptions{}
	for _, option := range options {
		option(o)
	}
	r.MultiGetters = append(r.MultiGetters, &MultiExecuter{Options: o, ExecuteFunc: getFunc})
}

// GetRelations implements repository.Repository interface.
func (r *Repository) GetRelations(ctx context.Context, res mapping.Resource, field string) ([]mapping.Resource, error) {
	r.GetRelationsCalls++
	if len(r.MultiGetters) == 0 {
		if r.graph {
			return r.graphRelations(ctx, res, field)
		}
		log.Panicf("no many relation getters found for the field: '%s'", field)
	}
	getter := r.MultiGetters[0]
	if getter.Options.Count > 0 {
		getter.Options.Count--
	}
	if getter.Options.Count == 0 && !getter.Options.Permanent {
		r.MultiGetters = r.MultiGetters[1:]
	}
	return getter.ExecuteFunc(ctx, res, field)
}

// OnDial adds the dial callback.
func (r *Repository) OnDial(dialFunc LifecycleFunc, options ...CallOption) {
	o := &CallOptions{}
	for _, option := range options {
		option(o)
	}
	r.Dialers = append(r.Dialers, &LifecycleExecuter{Options: o, ExecuteFunc: dialFunc})
}

// Dial implements repository.Dialer interface. Without a queued callback the
// dial is a successful no-op.
func (r *Repository) Dial(ctx context.Context) error {
	r.DialCalls++
	if len(r.Dialers) == 0 {
		return nil
	}
	dialer := r.Dialers[0]
	if dialer.Options.Count > 0 {
		dialer.Options.Count--
	}
	if dialer.Options.Count == 0 && !dialer.Options.Permanent {
		r.Dialers = r.Dialers[1:]
	}
	return dialer.ExecuteFunc(ctx)
}

// OnClose adds the close callback.
func (r *Repository) OnClose(closeFunc LifecycleFunc, options ...CallOption) {
	o := &CallOptions{}
	for _, option := range options {
		option(o)
	}
	r.Closers = append(r.Closers, &LifecycleExecuter{Options: o, ExecuteFunc: closeFunc})
}

// Close implements repository.Closer interface. Without a queued callback
// the close is a successful no-op.
func (r *Repository) Close(ctx context.Context) error {
	r.CloseCalls++
	if len(r.Closers) == 0 {
		return nil
	}
	closer := r.Closers[0]
	if closer.Options.Count > 0 {
		closer.Options.Count--
	}
	if closer.Options.Count == 0 && !closer.Options.Permanent {
		r.Closers = r.Closers[1:]
	}
	return closer.ExecuteFunc(ctx)
}

// OnHealthCheck adds the health check callback.
func (r *Repository) OnHealthCheck(healthFunc HealthFunc, options ...CallOption) {
	o := &CallOptions{}
	for _, option := range options {
		option(o)
	}
	r.HealthCheckers = append(r.HealthCheckers, &HealthExecuter{Options: o, ExecuteFunc: healthFunc})
}

// HealthCheck implements repository.HealthChecker interface. Without a
// queued callback the repository reports the pass status.
func (r *Repository) HealthCheck(ctx context.Context) (*repository.HealthResponse, error) {
	r.HealthCheckCalls++
	if len(r.HealthCheckers) == 0 {
		return &repository.HealthResponse{Status: repository.StatusPass}, nil
	}
	checker := r.HealthCheckers[0]
	if checker.Options.Count > 0 {
		checker.Options.Count--
	}
	if checker.Options.Count == 0 && !checker.Options.Permanent {
		r.HealthCheckers = r.HealthCheckers[1:]
	}
	return checker.ExecuteFunc(ctx)
}

// fetchKey is the identity of a single materialized resource instance.
type fetchKey struct {
	goType string
	id     interface{}
}

func (r *Repository) graphRelation(ctx context.Context, res mapping.Resource, field string) (mapping.Resource, error) {
	related, err := repository.ModelRelations{}.GetRelation(ctx, res, field)
	if err != nil || related == nil {
		return related, err
	}
	r.countFetch(related)
	return related, nil
}

func (r *Repository) graphRelations(ctx context.Context, res mapping.Resource, field string) ([]mapping.Resource, error) {
	related, err := repository.ModelRelations{}.GetRelations(ctx, res, field)
	if err != nil {
		return nil, err
	}
	for _, relation := range related {
		if relation != nil {
			r.countFetch(relation)
		}
	}
	return related, nil
}

func (r *Repository) countFetch(res mapping.Resource) {
	key := fetchKey{goType: fmt.Sprintf("%T", res), id: res.ResourceID()}
	if _, ok := r.fetched[key]; ok {
		return
	}
	if r.fetched == nil {
		r.fetched = map[fetchKey]struct{}{}
	}
	r.fetched[key] = struct{}{}
	r.FetchCount++
}
