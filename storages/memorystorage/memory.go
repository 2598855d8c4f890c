// Package memorystorage provides an in-memory fabrica.Storage implementation
// for fast and descriptive feedback loops during development and testing.
package memorystorage

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	uuid "github.com/satori/go.uuid"

	"github.com/fabrica-go/fabrica"
	"github.com/fabrica-go/fabrica/extid"
	"github.com/fabrica-go/fabrica/reflects"
)

var _ fabrica.Storage = &Memory{}

// New returns an empty in-memory storage.
func New() *Memory {
	return &Memory{tables: make(map[string]table)}
}

type table map[interface{}]fabrica.Entity

// Memory stores entity values in a table per entity type, guarded by a RWMutex.
type Memory struct {
	mutex  sync.RWMutex
	tables map[string]table
	seq    int64
}

// Create stores the pointed entity and links the freshly assigned
// identifier into its ext:"ID" field. Entities that already carry
// an identifier are refused.
func (s *Memory) Create(ctx context.Context, ptr fabrica.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if id, ok := extid.Lookup(ptr); ok {
		return fmt.Errorf(`entity already has an ID: %v`, id)
	}

	sf, field, ok := extid.LookupStructField(ptr)
	if !ok {
		return fabrica.ErrIDRequired
	}

	id, err := s.newID(sf.Name, field)
	if err != nil {
		return err
	}
	if err := extid.Set(ptr, id); err != nil {
		return err
	}
	// the field may hold the id in a narrower kind than the generated one,
	// and table keys must match what extid.Lookup reports later
	id, _ = extid.Lookup(ptr)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.tableFor(ptr)[id] = reflects.BaseValueOf(ptr).Interface()
	return nil
}

// FindByID links the stored entity into the received pointer
// and reports whether the id was present at all.
func (s *Memory) FindByID(ctx context.Context, ptr fabrica.Entity, id interface{}) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	t, ok := s.lookupTable(ptr)
	if !ok {
		return false, nil
	}

	ent, ok := t[id]
	if !ok {
		return false, nil
	}

	return true, reflects.Link(ent, ptr)
}

// FindAll returns a snapshot of every stored entity of T's type.
func (s *Memory) FindAll(ctx context.Context, T fabrica.Entity) ([]fabrica.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	t, _ := s.lookupTable(T)

	var entities []fabrica.Entity
	for _, ent := range t {
		entities = append(entities, ent)
	}
	return entities, nil
}

// Update replaces the stored entity that shares the pointed entity's identifier.
func (s *Memory) Update(ctx context.Context, ptr fabrica.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id, ok := extid.Lookup(ptr)
	if !ok {
		return fabrica.ErrIDRequired
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	t := s.tableFor(ptr)
	if _, ok := t[id]; !ok {
		return fabrica.ErrNotFound
	}

	t[id] = reflects.BaseValueOf(ptr).Interface()
	return nil
}

// DeleteByID removes the entity of T's type stored under the id.
func (s *Memory) DeleteByID(ctx context.Context, T fabrica.Entity, id interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	t := s.tableFor(T)
	if _, ok := t[id]; !ok {
		return fabrica.ErrNotFound
	}

	delete(t, id)
	return nil
}

// DeleteAll erases every stored entity of T's type.
func (s *Memory) DeleteAll(ctx context.Context, T fabrica.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.tables, reflects.FullyQualifiedName(T))
	return nil
}

// tableFor inserts the table of T's type when missing,
// so it must be called while holding the write lock.
func (s *Memory) tableFor(T fabrica.Entity) table {
	name := reflects.FullyQualifiedName(T)
	if _, ok := s.tables[name]; !ok {
		s.tables[name] = make(table)
	}
	return s.tables[name]
}

// lookupTable never mutates, holding the read lock is enough.
func (s *Memory) lookupTable(T fabrica.Entity) (table, bool) {
	t, ok := s.tables[reflects.FullyQualifiedName(T)]
	return t, ok
}

func (s *Memory) newID(fieldName string, field reflect.Value) (interface{}, error) {
	switch field.Kind() {
	case reflect.String:
		return uuid.NewV4().String(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return atomic.AddInt64(&s.seq, 1), nil

	case reflect.Interface:
		return atomic.AddInt64(&s.seq, 1), nil

	default:
		return nil, fmt.Errorf(`can't generate an id for %s field of %s kind`,
			fieldName, field.Kind())
	}
}
