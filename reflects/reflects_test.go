package reflects_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fabrica-go/fabrica/reflects"
)

type StructObject struct {
	Name string
}

type InterfaceObject interface{}

func TestBaseTypeOf(t *testing.T) {
	t.Parallel()

	expected := reflect.TypeOf(StructObject{})

	require.Equal(t, expected, reflects.BaseTypeOf(StructObject{}))
	require.Equal(t, expected, reflects.BaseTypeOf(&StructObject{}))

	ptr := &StructObject{}
	require.Equal(t, expected, reflects.BaseTypeOf(&ptr))
}

func TestBaseValueOf(t *testing.T) {
	t.Parallel()

	expected := StructObject{Name: `foo`}

	require.Equal(t, expected, reflects.BaseValueOf(expected).Interface())
	require.Equal(t, expected, reflects.BaseValueOf(&expected).Interface())
}

func TestNew(t *testing.T) {
	t.Parallel()

	ptr := reflects.New(StructObject{Name: `ignored`})

	require.IsType(t, &StructObject{}, ptr)
	require.Equal(t, StructObject{}, *ptr.(*StructObject))

	require.IsType(t, &StructObject{}, reflects.New(&StructObject{}))
}

func TestName(t *testing.T) {
	t.Parallel()

	require.Equal(t, `StructObject`, reflects.Name(StructObject{}))
	require.Equal(t, `StructObject`, reflects.Name(&StructObject{}))
}

func TestFullyQualifiedName(t *testing.T) {
	t.Run(`when the given struct has a package`, func(t *testing.T) {
		t.Parallel()

		const expected = `"github.com/fabrica-go/fabrica/reflects_test".StructObject`

		require.Equal(t, expected, reflects.FullyQualifiedName(StructObject{}))
		require.Equal(t, expected, reflects.FullyQualifiedName(&StructObject{}))

		var i InterfaceObject = &StructObject{}
		require.Equal(t, expected, reflects.FullyQualifiedName(i))
	})

	t.Run(`when the given value is a primitive`, func(t *testing.T) {
		t.Parallel()

		require.Equal(t, `string`, reflects.FullyQualifiedName(`hello`))
	})
}

func TestSymbolicName(t *testing.T) {
	t.Parallel()

	require.Equal(t, `reflects_test.StructObject`, reflects.SymbolicName(StructObject{}))
	require.Equal(t, `string`, reflects.SymbolicName(`hello`))
}
