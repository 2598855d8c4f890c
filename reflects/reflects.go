// Package reflects holds the reflection helpers the factory and the storage
// adapters share for working with entity structs.
package reflects

import (
	"fmt"
	"path/filepath"
	"reflect"
)

// BaseTypeOf returns the underlying struct type of T,
// unwrapping any level of pointer indirection.
func BaseTypeOf(i interface{}) reflect.Type {
	t := reflect.TypeOf(i)

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}

// BaseValueOf returns the underlying value of T,
// unwrapping any level of pointer indirection.
func BaseValueOf(i interface{}) reflect.Value {
	v := reflect.ValueOf(i)

	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	return v
}

// New returns a pointer to a fresh zero value of T's base type.
func New(T interface{}) interface{} {
	return reflect.New(BaseTypeOf(T)).Interface()
}

// Name returns the base type name of T.
func Name(i interface{}) string {
	return BaseTypeOf(i).Name()
}

// FullyQualifiedName returns the type name prefixed with the quoted package path,
// so entities with the same type name from different packages never collide.
func FullyQualifiedName(e interface{}) string {
	t := BaseTypeOf(e)

	if t.PkgPath() == "" {
		return t.Name()
	}

	return fmt.Sprintf(`%q.%s`, t.PkgPath(), t.Name())
}

// SymbolicName is a short, human-friendly variant of FullyQualifiedName.
func SymbolicName(e interface{}) string {
	t := BaseTypeOf(e)

	if t.PkgPath() == "" {
		return t.Name()
	}

	return fmt.Sprintf(`%s.%s`, filepath.Base(t.PkgPath()), t.Name())
}
