package factory

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// AttrFunc provides the default value for one attribute.
// It is evaluated once per build.
type AttrFunc func() interface{}

// SequenceFunc provides the default value for one attribute,
// fed with a counter that increases with every build.
type SequenceFunc func(n int64) interface{}

// DefineOption configures an entity definition within Factory.Define.
type DefineOption interface {
	setup(d *definition) error
}

type defineOptionFunc func(d *definition) error

func (fn defineOptionFunc) setup(d *definition) error { return fn(d) }

// Attr declares a default value provider for the named attribute.
func Attr(name string, fn AttrFunc) DefineOption {
	return defineOptionFunc(func(d *definition) error {
		if _, ok := d.typ.FieldByName(name); !ok {
			return fmt.Errorf(`%s has no attribute named %q`, d.typ.Name(), name)
		}
		d.attrs = append(d.attrs, attribute{name: name, fn: fn})
		return nil
	})
}

// Sequence declares a default value provider for the named attribute
// that receives a monotonically increasing counter,
// so every built record gets a distinct value.
func Sequence(name string, fn SequenceFunc) DefineOption {
	var n int64
	return Attr(name, func() interface{} {
		return fn(atomic.AddInt64(&n, 1))
	})
}

// Assoc declares the named field as an association: during a build the field
// receives a record built from its own type's definition with the same
// strategy as the owner. When a sibling field named <field>ID exists,
// it receives the association's identifier.
func Assoc(field string) DefineOption {
	return defineOptionFunc(func(d *definition) error {
		sf, ok := d.typ.FieldByName(field)
		if !ok {
			return fmt.Errorf(`%s has no association field named %q`, d.typ.Name(), field)
		}

		ft := sf.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() != reflect.Struct {
			return fmt.Errorf(`association field %s.%s must be a struct or a pointer to a struct`,
				d.typ.Name(), field)
		}

		d.assocs = append(d.assocs, association{field: field})
		return nil
	})
}

// RandomDefaults makes every attribute that is still zero after the declared
// defaults receive a random value fitting its kind.
// The identifier field, CreatedAt/UpdatedAt and association fields are left alone.
func RandomDefaults() DefineOption {
	return defineOptionFunc(func(d *definition) error {
		d.randomDefaults = true
		return nil
	})
}

// Override replaces one attribute value for the duration of a single build.
type Override struct {
	Name  string
	Value interface{}
}

// With creates an attribute Override for a build.
// Referring to an attribute the entity doesn't declare fails the build
// with an error naming the attribute.
func With(name string, value interface{}) Override {
	return Override{Name: name, Value: value}
}
