package factory

import (
	"context"
	"fmt"
	"reflect"

	"github.com/fabrica-go/fabrica"
	"github.com/fabrica-go/fabrica/reflects"
)

// UpdateAttribute assigns one attribute of the record
// and persists the change through the received storage.
// An unknown attribute fails before the storage is touched.
func UpdateAttribute(ctx context.Context, s fabrica.Updater, ptr fabrica.Entity, name string, value interface{}) error {
	if err := reflects.SetField(ptr, name, value); err != nil {
		return err
	}
	return s.Update(ctx, ptr)
}

// Increment grows an integer attribute of the record by delta
// and persists the change through the received storage.
func Increment(ctx context.Context, s fabrica.Updater, ptr fabrica.Entity, name string, delta int64) error {
	return incrementBy(ctx, s, ptr, name, delta)
}

// Decrement shrinks an integer attribute of the record by delta
// and persists the change through the received storage.
func Decrement(ctx context.Context, s fabrica.Updater, ptr fabrica.Entity, name string, delta int64) error {
	return incrementBy(ctx, s, ptr, name, -delta)
}

func incrementBy(ctx context.Context, s fabrica.Updater, ptr fabrica.Entity, name string, delta int64) error {
	r := reflect.ValueOf(ptr)
	if r.Kind() != reflect.Ptr {
		return fmt.Errorf(`pointer expected to change %q on %s`, name, reflects.FullyQualifiedName(ptr))
	}

	field := r.Elem().FieldByName(name)
	if !field.IsValid() || !field.CanSet() {
		return fmt.Errorf(`%s has no attribute named %q`, reflects.FullyQualifiedName(ptr), name)
	}

	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		field.SetInt(field.Int() + delta)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		field.SetUint(uint64(int64(field.Uint()) + delta))

	default:
		return fmt.Errorf(`attribute %q of %s is not an integer`, name, reflects.FullyQualifiedName(ptr))
	}

	return s.Update(ctx, ptr)
}
