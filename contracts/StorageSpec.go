// Package contracts provides reusable behavior suites, so every storage
// implementation and factory setup can prove itself against the same
// expectations.
package contracts

import (
	"context"
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/fabrica-go/fabrica"
	"github.com/fabrica-go/fabrica/extid"
	"github.com/fabrica-go/fabrica/factory"
	"github.com/fabrica-go/fabrica/reflects"
)

// StorageSpec is the behavior contract of a fabrica.Storage implementation,
// exercised through entities of T's type built by the received factory.
// T must have an ext:"ID" field.
type StorageSpec struct {
	T       fabrica.Entity
	Subject func(tb testing.TB) fabrica.Storage
	Factory func(tb testing.TB) *factory.Factory
}

func (c StorageSpec) String() string { return `StorageSpec` }

func (c StorageSpec) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c StorageSpec) Benchmark(b *testing.B) { b.Skip() }

func (c StorageSpec) Spec(s *testcase.Spec) {
	s.Let(`context`, func(t *testcase.T) interface{} {
		return context.Background()
	})
	s.Let(`storage`, func(t *testcase.T) interface{} {
		return c.Subject(t)
	})
	s.Let(`factory`, func(t *testcase.T) interface{} {
		return c.Factory(t)
	})

	var (
		getContext = func(t *testcase.T) context.Context {
			return t.I(`context`).(context.Context)
		}
		storage = func(t *testcase.T) fabrica.Storage {
			return t.I(`storage`).(fabrica.Storage)
		}
		build = func(t *testcase.T) fabrica.Entity {
			ptr, err := t.I(`factory`).(*factory.Factory).Build(c.T)
			require.Nil(t, err)
			return ptr
		}
		create = func(t *testcase.T) fabrica.Entity {
			ptr := build(t)
			require.Nil(t, storage(t).Create(getContext(t), ptr))
			return ptr
		}
		idOf = func(t *testcase.T, ent fabrica.Entity) interface{} {
			id, ok := extid.Lookup(ent)
			require.True(t, ok, `stored entity is expected to have an external ID`)
			return id
		}
	)

	s.Describe(`.Create`, func(s *testcase.Spec) {
		s.Then(`it assigns the external ID of the entity`, func(t *testcase.T) {
			_ = idOf(t, create(t))
		})

		s.Then(`the stored entity is findable by its id`, func(t *testcase.T) {
			ptr := create(t)

			found := reflects.New(c.T)
			ok, err := storage(t).FindByID(getContext(t), found, idOf(t, ptr))
			require.Nil(t, err)
			require.True(t, ok)
			require.Equal(t,
				reflects.BaseValueOf(ptr).Interface(),
				reflects.BaseValueOf(found).Interface())
		})

		s.Then(`entities keep their own identity`, func(t *testcase.T) {
			require.NotEqual(t, idOf(t, create(t)), idOf(t, create(t)))
		})

		s.Then(`an entity that already carries an ID is refused`, func(t *testcase.T) {
			ptr := create(t)
			require.Error(t, storage(t).Create(getContext(t), ptr))
		})
	})

	s.Describe(`.FindByID`, func(s *testcase.Spec) {
		s.Then(`an unknown id reports not found without an error`, func(t *testcase.T) {
			ptr := create(t)
			id := idOf(t, ptr)
			require.Nil(t, storage(t).DeleteByID(getContext(t), c.T, id))

			found, err := storage(t).FindByID(getContext(t), reflects.New(c.T), id)
			require.Nil(t, err)
			require.False(t, found)
		})
	})

	s.Describe(`.Update`, func(s *testcase.Spec) {
		s.Then(`a stored entity can be updated`, func(t *testcase.T) {
			ptr := create(t)
			require.Nil(t, storage(t).Update(getContext(t), ptr))
		})

		s.Then(`an entity that is not stored can't be updated`, func(t *testcase.T) {
			ptr := create(t)
			require.Nil(t, storage(t).DeleteByID(getContext(t), c.T, idOf(t, ptr)))
			require.Equal(t, fabrica.ErrNotFound, storage(t).Update(getContext(t), ptr))
		})
	})

	s.Describe(`.DeleteByID`, func(s *testcase.Spec) {
		s.Then(`the entity is gone afterwards`, func(t *testcase.T) {
			ptr := create(t)
			id := idOf(t, ptr)
			require.Nil(t, storage(t).DeleteByID(getContext(t), c.T, id))

			found, err := storage(t).FindByID(getContext(t), reflects.New(c.T), id)
			require.Nil(t, err)
			require.False(t, found)
		})

		s.Then(`a missing id yields ErrNotFound`, func(t *testcase.T) {
			ptr := create(t)
			id := idOf(t, ptr)
			require.Nil(t, storage(t).DeleteByID(getContext(t), c.T, id))
			require.Equal(t, fabrica.ErrNotFound, storage(t).DeleteByID(getContext(t), c.T, id))
		})
	})

	s.Describe(`.DeleteAll`, func(s *testcase.Spec) {
		s.Then(`every entity of the type is erased`, func(t *testcase.T) {
			create(t)
			create(t)
			require.Nil(t, storage(t).DeleteAll(getContext(t), c.T))

			all, err := storage(t).FindAll(getContext(t), c.T)
			require.Nil(t, err)
			require.Len(t, all, 0)
		})
	})

	s.Describe(`.FindAll`, func(s *testcase.Spec) {
		s.Then(`every stored entity of the type is returned`, func(t *testcase.T) {
			require.Nil(t, storage(t).DeleteAll(getContext(t), c.T))
			a := create(t)
			b := create(t)

			all, err := storage(t).FindAll(getContext(t), c.T)
			require.Nil(t, err)
			require.Len(t, all, 2)
			require.Contains(t, all, reflects.BaseValueOf(a).Interface())
			require.Contains(t, all, reflects.BaseValueOf(b).Interface())
		})
	})
}
