package contracts

import (
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/fabrica-go/fabrica"
	"github.com/fabrica-go/fabrica/extid"
	"github.com/fabrica-go/fabrica/factory"
)

// FactorySpec is the behavior contract every factory setup has to meet
// for a registered entity type with an ext:"ID" field.
type FactorySpec struct {
	T       fabrica.Entity
	Factory func(tb testing.TB) *factory.Factory
}

func (c FactorySpec) String() string { return `FactorySpec` }

func (c FactorySpec) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c FactorySpec) Benchmark(b *testing.B) { b.Skip() }

func (c FactorySpec) Spec(s *testcase.Spec) {
	s.Parallel()

	s.Let(`factory`, func(t *testcase.T) interface{} {
		return c.Factory(t)
	})

	getFactory := func(t *testcase.T) *factory.Factory {
		return t.I(`factory`).(*factory.Factory)
	}

	s.Describe(`.Build`, func(s *testcase.Spec) {
		subject := func(t *testcase.T) fabrica.Entity {
			ptr, err := getFactory(t).Build(c.T)
			require.Nil(t, err)
			return ptr
		}

		s.Then(`the external ID is left empty`, func(t *testcase.T) {
			_, ok := extid.Lookup(subject(t))
			require.False(t, ok)
		})

		s.Then(`the record is not considered stubbed`, func(t *testcase.T) {
			require.False(t, getFactory(t).IsStubbed(subject(t)))
		})
	})

	s.Describe(`.BuildStubbed`, func(s *testcase.Spec) {
		subject := func(t *testcase.T) fabrica.Entity {
			ptr, err := getFactory(t).BuildStubbed(c.T)
			require.Nil(t, err)
			return ptr
		}

		s.Then(`the record looks persisted`, func(t *testcase.T) {
			_, ok := extid.Lookup(subject(t))
			require.True(t, ok)
		})

		s.Then(`each stubbed record has its own identity`, func(t *testcase.T) {
			var ids []interface{}

			for i := 0; i < 42; i++ {
				id, ok := extid.Lookup(subject(t))
				require.True(t, ok)
				require.NotContains(t, ids, id)
				ids = append(ids, id)
			}
		})

		s.Then(`the record is known to be stubbed`, func(t *testcase.T) {
			require.True(t, getFactory(t).IsStubbed(subject(t)))
		})
	})
}
