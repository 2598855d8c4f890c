// Package extid locates and manages the external resource identifier field
// of an entity struct. The identifier field is found by the ext:"ID" struct
// tag, or as a fallback, by the field name ID.
package extid

import (
	"fmt"
	"reflect"

	"github.com/fabrica-go/fabrica"
	"github.com/fabrica-go/fabrica/reflects"
)

// Lookup returns the entity's external identifier,
// reporting ok only when the identifier field holds a non-zero value.
func Lookup(ent interface{}) (id interface{}, ok bool) {
	_, val, ok := LookupStructField(ent)
	if !ok {
		return nil, false
	}
	return val.Interface(), !reflects.IsValueEmpty(val)
}

// Set assigns the id to the entity's external identifier field.
// A pointer must be given, else pass by value would prevent
// setting the struct field remotely.
func Set(ptr interface{}, id interface{}) error {
	r := reflect.ValueOf(ptr)

	if r.Kind() != reflect.Ptr {
		return fmt.Errorf(`pointer expected to set the ID of %s`, reflects.FullyQualifiedName(ptr))
	}

	_, val, ok := LookupStructField(ptr)
	if !ok {
		return fabrica.ErrIDRequired
	}

	if id == nil {
		val.Set(reflect.Zero(val.Type()))
		return nil
	}

	v := reflect.ValueOf(id)

	switch {
	case v.Type().AssignableTo(val.Type()):
		val.Set(v)

	case v.Type().ConvertibleTo(val.Type()) && v.Kind() != reflect.String && val.Kind() != reflect.String:
		val.Set(v.Convert(val.Type()))

	default:
		return fmt.Errorf(`%T is not a valid ID value for %s`, id, reflects.FullyQualifiedName(ptr))
	}

	return nil
}

// LookupStructField returns the reflection handle of the entity's
// external identifier field.
func LookupStructField(ent interface{}) (reflect.StructField, reflect.Value, bool) {
	val := reflects.BaseValueOf(ent)

	if val.Kind() != reflect.Struct {
		return reflect.StructField{}, reflect.Value{}, false
	}

	if sf, field, ok := lookupByTag(val); ok {
		return sf, field, true
	}

	const idFieldName = `ID`
	if byName := val.FieldByName(idFieldName); byName.IsValid() {
		sf, _ := val.Type().FieldByName(idFieldName)
		return sf, byName, true
	}

	return reflect.StructField{}, reflect.Value{}, false
}

func lookupByTag(val reflect.Value) (reflect.StructField, reflect.Value, bool) {
	const (
		lower = `id`
		upper = `ID`
	)
	for i := 0; i < val.NumField(); i++ {
		structField := val.Type().Field(i)

		if tag := structField.Tag.Get(`ext`); tag == upper || tag == lower {
			return structField, val.Field(i), true
		}
	}

	return reflect.StructField{}, reflect.Value{}, false
}
