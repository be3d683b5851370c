package render

import (
	"context"

	"github.com/google/uuid"

	"github.com/neuronlabs/sideload/log"
	"github.com/neuronlabs/sideload/mapping"
	"github.com/neuronlabs/sideload/repository"
)

// relationKey identifies a single (resource, relation field) fetch within
// one rendered document.
type relationKey struct {
	parent mapping.ResourceKey
	field  string
}

// fetchedRelation is a memoized result of a single relation fetch.
type fetchedRelation struct {
	resources []mapping.Resource
}

// scope is the state of a single document rendering. A scope is created per
// render call and is never shared - all the traversal state lives on one
// call stack, no locking involved.
type scope struct {
	// id is the unique scope identifier.
	id uuid.UUID

	serializers *mapping.SerializerMap
	repository  repository.Repository
	nestedLimit int
	countLimit  int

	store   *store
	fetched map[relationKey]*fetchedRelation
}

func (r *Renderer) newScope() *scope {
	return &scope{
		id:          uuid.New(),
		serializers: r.serializers,
		repository:  r.repository,
		nestedLimit: r.nestedLimit,
		countLimit:  r.countLimit,
		store:       newStore(),
		fetched:     make(map[relationKey]*fetchedRelation),
	}
}

func (s *scope) logFormat(format string) string {
	return "SCOPE[" + s.id.String() + "] " + format
}

// fetchRelation resolves the related resources for given 'field' of the
// resource 'res'. The first resolution of a (resource, field) pair goes
// through the repository, every further one is served from the scope memo.
// Nil resources within the fetched values are dropped. Repository failures
// are not retried and propagate unchanged.
func (s *scope) fetchRelation(ctx context.Context, parent mapping.ResourceKey, res mapping.Resource, field string, toMany bool) ([]mapping.Resource, error) {
	k := relationKey{parent: parent, field: field}
	if fetched, ok := s.fetched[k]; ok {
		if log.IsAllowed(log.LevelDebug3) {
			log.Debug3f(s.logFormat("Relation: '%s' of the resource: '%s' served from the memo"), field, parent)
		}
		return fetched.resources, nil
	}

	var resources []mapping.Resource
	if toMany {
		related, err := s.repository.GetRelations(ctx, res, field)
		if err != nil {
			return nil, err
		}
		for _, rel := range related {
			if rel != nil {
				resources = append(resources, rel)
			}
		}
		if log.IsAllowed(log.LevelDebug3) {
			s.verifyReiterable(ctx, res, field, len(related))
		}
	} else {
		related, err := s.repository.GetRelation(ctx, res, field)
		if err != nil {
			return nil, err
		}
		if related != nil {
			resources = append(resources, related)
		}
	}
	s.fetched[k] = &fetchedRelation{resources: resources}
	if log.IsAllowed(log.LevelDebug2) {
		log.Debug2f(s.logFormat("Fetched relation: '%s' of the resource: '%s' - %d resources"), field, parent, len(resources))
	}
	return resources, nil
}

// verifyReiterable reads given to-many relation once more and checks that
// both reads match in size. The repository contract requires relation
// values that allow repeated reads - a single-use sequence consumed twice
// silently yields an empty second pass.
func (s *scope) verifyReiterable(ctx context.Context, res mapping.Resource, field string, size int) {
	again, err := s.repository.GetRelations(ctx, res, field)
	switch {
	case err != nil:
		log.Warningf(s.logFormat("Relation: '%s' of the resource: '%T' failed on the second read: %v"), field, res, err)
	case len(again) != size:
		log.Warningf(s.logFormat("Relation: '%s' of the resource: '%T' is not re-iterable - %d resources on the first read, %d on the second"), field, res, size, len(again))
	}
}
