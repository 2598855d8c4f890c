package reflects_test

import (
	"reflect"
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/fabrica-go/fabrica/reflects"
)

func TestLink(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Parallel()

	subject := func(t *testcase.T) error {
		return reflects.Link(t.I(`src`), t.I(`ptr`))
	}

	andPtrPointsToSomethingWithTheSameType := func(s *testcase.Spec, ptrValue func() interface{}) {
		s.And(`ptr points to the same type`, func(s *testcase.Spec) {
			s.Let(`ptr`, func(t *testcase.T) interface{} {
				return ptrValue()
			})

			s.Then(`the pointed value equals the source value`, func(t *testcase.T) {
				require.Nil(t, subject(t))
				require.Equal(t, t.I(`src`), reflect.ValueOf(t.I(`ptr`)).Elem().Interface())
			})
		})
	}

	type T struct{ str string }

	s.When(`the value to be linked is`, func(s *testcase.Spec) {
		s.Context(`a primitive non pointer type`, func(s *testcase.Spec) {
			s.Let(`src`, func(t *testcase.T) interface{} {
				return `Hello, World!`
			})

			andPtrPointsToSomethingWithTheSameType(s, func() interface{} {
				var str string
				return &str
			})
		})

		s.Context(`a struct type`, func(s *testcase.Spec) {
			s.Let(`src`, func(t *testcase.T) interface{} {
				return T{str: `Hello, World!`}
			})

			andPtrPointsToSomethingWithTheSameType(s, func() interface{} {
				return &T{}
			})
		})

		s.Context(`a pointer to a struct type`, func(s *testcase.Spec) {
			s.Let(`src`, func(t *testcase.T) interface{} {
				return &T{str: `Hello, World!`}
			})

			andPtrPointsToSomethingWithTheSameType(s, func() interface{} {
				value := &T{}
				return &value
			})
		})
	})

	s.When(`the destination can't hold the source value`, func(s *testcase.Spec) {
		s.Let(`src`, func(t *testcase.T) interface{} {
			return T{str: `Hello, World!`}
		})
		s.Let(`ptr`, func(t *testcase.T) interface{} {
			var str string
			return &str
		})

		s.Then(`an error is returned instead of a panic`, func(t *testcase.T) {
			require.Error(t, subject(t))
		})
	})
}
