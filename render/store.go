package render

import (
	"github.com/neuronlabs/sideload/codec"
	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/log"
	"github.com/neuronlabs/sideload/mapping"
)

// keyState is the state of a single resource key within the store.
type keyState int

const (
	// stateNew is the state of the keys not yet known to the store.
	stateNew keyState = iota
	// statePending is the state of the keys registered within the store
	// with no record attached yet.
	statePending
	// stateEmitted is the state of the keys with their records attached.
	stateEmitted
)

// String implements fmt.Stringer interface.
func (s keyState) String() string {
	switch s {
	case stateNew:
		return "new"
	case statePending:
		return "pending"
	case stateEmitted:
		return "emitted"
	}
	return "unknown"
}

// storeEntry is a single resource entry within the store.
type storeEntry struct {
	key    mapping.ResourceKey
	state  keyState
	record *codec.Record
}

// store deduplicates the sideloaded records within a single rendered
// document. Every key is registered exactly once and keeps the output slot
// of its first discovery.
type store struct {
	entries map[mapping.ResourceKey]*storeEntry
	order   []*storeEntry
}

func newStore() *store {
	return &store{entries: make(map[mapping.ResourceKey]*storeEntry)}
}

// getOrMarkPending gets the state of given 'key'. A key new to the store
// gets registered as pending and reserves its output slot.
func (s *store) getOrMarkPending(key mapping.ResourceKey) keyState {
	if e, ok := s.entries[key]; ok {
		return e.state
	}
	e := &storeEntry{key: key, state: statePending}
	s.entries[key] = e
	s.order = append(s.order, e)
	return stateNew
}

// finalize attaches the serialized 'record' to the pending 'key' and marks
// it emitted.
func (s *store) finalize(key mapping.ResourceKey, record *codec.Record) {
	e, ok := s.entries[key]
	if !ok {
		log.Errorf("Finalizing the resource: '%s' that was never marked pending", key)
		return
	}
	e.state = stateEmitted
	e.record = record
}

// record gets the record attached to given 'key'. Returns nil for the keys
// without an attached record.
func (s *store) record(key mapping.ResourceKey) *codec.Record {
	e, ok := s.entries[key]
	if !ok {
		return nil
	}
	return e.record
}

// len returns the number of the keys registered within the store.
func (s *store) len() int {
	return len(s.order)
}

// records returns the attached records in the first discovery order of
// their keys. An entry left pending means a broken traversal and results in
// an internal error.
func (s *store) records() ([]*codec.Record, error) {
	records := make([]*codec.Record, len(s.order))
	for i, e := range s.order {
		if e.state != stateEmitted {
			return nil, errors.WrapDetf(ErrInternal, "included resource: '%s' left in the '%s' state", e.key, e.state)
		}
		records[i] = e.record
	}
	return records, nil
}
