package reflects

import (
	"fmt"
	"reflect"
)

// LookupField returns the value of the named attribute of the entity,
// reporting whether the entity's struct defines such an attribute at all.
func LookupField(ent interface{}, name string) (interface{}, bool) {
	val := BaseValueOf(ent)

	if val.Kind() != reflect.Struct {
		return nil, false
	}

	field := val.FieldByName(name)
	if !field.IsValid() {
		return nil, false
	}

	return field.Interface(), true
}

// SetField assigns a value to the named attribute of the entity the pointer refers to.
// Assigning an attribute the struct doesn't define, or a value of an unacceptable type,
// is an error that names the offending attribute.
func SetField(ptr interface{}, name string, value interface{}) error {
	r := reflect.ValueOf(ptr)

	if r.Kind() != reflect.Ptr {
		return fmt.Errorf(`pointer expected to set %q on %s`, name, FullyQualifiedName(ptr))
	}

	elem := r.Elem()
	for elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}

	if elem.Kind() != reflect.Struct {
		return fmt.Errorf(`%s is not a struct, it has no attribute %q`, FullyQualifiedName(ptr), name)
	}

	field := elem.FieldByName(name)
	if !field.IsValid() || !field.CanSet() {
		return fmt.Errorf(`%s has no attribute named %q`, FullyQualifiedName(ptr), name)
	}

	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}

	v := reflect.ValueOf(value)

	switch {
	case v.Type().AssignableTo(field.Type()):
		field.Set(v)

	case isNumericKind(v.Kind()) && isNumericKind(field.Kind()):
		field.Set(v.Convert(field.Type()))

	default:
		return fmt.Errorf(`attribute %q of %s doesn't accept %T values`,
			name, FullyQualifiedName(ptr), value)
	}

	return nil
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
